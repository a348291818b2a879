package httpserver

import (
	"net/http"

	"stylegenie-backend/internal/domain"
	ordersvc "stylegenie-backend/internal/service/order"

	"github.com/gin-gonic/gin"
)

type createOrderRequest struct {
	UserID        string             `json:"userId" binding:"required"`
	Items         []orderItemRequest `json:"items" binding:"required"`
	Address       addressRequest     `json:"address" binding:"required"`
	TotalCents    int64              `json:"totalCents" binding:"required"`
	PaymentMethod string             `json:"paymentMethod"`
}

type orderItemRequest struct {
	ProductID      string `json:"productId" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Image          string `json:"image"`
	UnitPriceCents int64  `json:"unitPriceCents" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required"`
	Color          string `json:"color"`
	Size           string `json:"size"`
}

type addressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func createOrderHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
			return
		}

		items := make([]domain.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, domain.OrderItem{
				ProductID:      item.ProductID,
				Name:           item.Name,
				Image:          item.Image,
				UnitPriceCents: item.UnitPriceCents,
				Quantity:       item.Quantity,
				Color:          item.Color,
				Size:           item.Size,
			})
		}

		order, err := svc.Create(c.Request.Context(), ordersvc.CreateInput{
			UserID: req.UserID,
			Items:  items,
			Address: domain.Address{
				Street:  req.Address.Street,
				City:    req.Address.City,
				State:   req.Address.State,
				Zip:     req.Address.Zip,
				Country: req.Address.Country,
			},
			TotalCents:    req.TotalCents,
			PaymentMethod: req.PaymentMethod,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "order created", "order": order})
	}
}

func listOrdersHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListAll(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

func getOrderHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := svc.Get(c.Request.Context(), c.Param("orderId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

func updateOrderStatusHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status required"})
			return
		}
		order, err := svc.SetStatus(c.Request.Context(), c.Param("orderId"), domain.OrderStatus(req.Status))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func listUserOrdersHandler(svc *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.ListByUser(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		// No orders is an empty list, not a 404.
		c.JSON(http.StatusOK, orders)
	}
}
