package httpserver

import (
	"errors"
	"net/http"

	usersvc "stylegenie-backend/internal/service/user"

	"github.com/gin-gonic/gin"
)

type signinRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func signupHandler(svc *usersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in usersvc.SignupInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
			return
		}
		u, err := svc.Signup(c.Request.Context(), in)
		if err != nil {
			if usersvc.IsEmailTaken(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
				return
			}
			if errors.Is(err, usersvc.ErrPasswordMismatch) || errors.Is(err, usersvc.ErrMissingFields) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "user created", "userId": u.ID})
	}
}

func signinHandler(svc *usersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signinRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}
		u, token, err := svc.Signin(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, usersvc.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
				return
			}
			if errors.Is(err, usersvc.ErrMissingFields) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "sign in successful", "token": token, "userId": u.ID})
	}
}

func listUsersHandler(svc *usersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := svc.ListWithOrderStats(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func getUserHandler(svc *usersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
