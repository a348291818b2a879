package httpserver

import (
	"net/http"

	cartsvc "stylegenie-backend/internal/service/cart"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type updateCartQuantityRequest struct {
	Quantity int    `json:"quantity" binding:"required"`
	Color    string `json:"color"`
	Size     string `json:"size"`
}

func addToCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
			return
		}
		cart, err := svc.AddItem(c.Request.Context(), req.UserID, req.ProductID, req.Color, req.Size, req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product added to cart", "cart": cart})
	}
}

func getCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.Get(c.Request.Context(), c.Param("userId"))
		if err != nil {
			respondError(c, err)
			return
		}
		// An absent cart is a valid empty state, never a 404.
		c.JSON(http.StatusOK, gin.H{"items": cart.Items})
	}
}

func removeFromCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.RemoveItem(
			c.Request.Context(),
			c.Param("userId"),
			c.Param("productId"),
			c.Query("color"),
			c.Query("size"),
		)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "item removed from cart", "cart": cart})
	}
}

func updateCartQuantityHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCartQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}
		cart, err := svc.UpdateQuantity(
			c.Request.Context(),
			c.Param("userId"),
			c.Param("productId"),
			req.Color,
			req.Size,
			req.Quantity,
		)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "cart quantity updated", "cart": cart})
	}
}
