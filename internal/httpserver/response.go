package httpserver

import (
	"errors"
	"net/http"

	"stylegenie-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// statusFromError maps domain sentinels onto HTTP codes: validation failures
// to 400, missing entities to 404, order-number collisions to 409 and
// everything else (store or dependency failures) to 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrIncompleteAddress),
		errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateOrderNumber):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "server error"
	}
	c.JSON(status, gin.H{"error": message})
}
