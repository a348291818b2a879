package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	wishlistsvc "stylegenie-backend/internal/service/wishlist"
)

type toggleWishlistRequest struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
}

func toggleWishlistHandler(svc *wishlistsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req toggleWishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId and productId are required"})
			return
		}
		added, err := svc.Toggle(c.Request.Context(), req.UserID, req.ProductID)
		if err != nil {
			respondError(c, err)
			return
		}
		wl, err := svc.Get(c.Request.Context(), req.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		msg := "product removed from wishlist"
		if added {
			msg = "product added to wishlist"
		}
		c.JSON(http.StatusOK, gin.H{"message": msg, "wishlist": wl.ProductIDs})
	}
}

func checkWishlistHandler(svc *wishlistsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		saved, err := svc.Contains(c.Request.Context(), c.Param("userId"), c.Param("productId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"isInWishlist": saved})
	}
}

func getWishlistHandler(svc *wishlistsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		wl, err := svc.Get(c.Request.Context(), c.Param("userId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"wishlistItems": wl.ProductIDs})
	}
}
