package httpserver

import (
	"log"

	cartsvc "stylegenie-backend/internal/service/cart"
	ordersvc "stylegenie-backend/internal/service/order"
	productsvc "stylegenie-backend/internal/service/product"
	usersvc "stylegenie-backend/internal/service/user"
	wishlistsvc "stylegenie-backend/internal/service/wishlist"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the services the router exposes.
type Deps struct {
	ProductSvc  *productsvc.Service
	CartSvc     *cartsvc.Service
	OrderSvc    *ordersvc.Service
	UserSvc     *usersvc.Service
	WishlistSvc *wishlistsvc.Service
}

// buildRouter wires routes for the API. The storefront and admin SPAs are
// served from other origins, so CORS stays wide open.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	api.POST("/signup", signupHandler(deps.UserSvc))
	api.POST("/signin", signinHandler(deps.UserSvc))
	api.GET("/users", listUsersHandler(deps.UserSvc))
	api.GET("/users/:id", getUserHandler(deps.UserSvc))
	api.GET("/users/:id/orders", listUserOrdersHandler(deps.OrderSvc))

	api.GET("/products", listProductsHandler(deps.ProductSvc))
	api.POST("/products", createProductHandler(deps.ProductSvc))
	api.GET("/products/:id", getProductHandler(deps.ProductSvc))
	api.PUT("/products/:id", updateProductHandler(deps.ProductSvc))
	api.DELETE("/products/:id", deleteProductHandler(deps.ProductSvc))

	api.POST("/cart/add", addToCartHandler(deps.CartSvc))
	api.GET("/cart/:userId", getCartHandler(deps.CartSvc))
	api.DELETE("/cart/remove/:userId/:productId", removeFromCartHandler(deps.CartSvc))
	api.PUT("/cart/update/:userId/:productId", updateCartQuantityHandler(deps.CartSvc))

	api.POST("/orders/create", createOrderHandler(deps.OrderSvc))
	api.GET("/orders", listOrdersHandler(deps.OrderSvc))
	api.GET("/orders/:orderId", getOrderHandler(deps.OrderSvc))
	api.PUT("/orders/:orderId", updateOrderStatusHandler(deps.OrderSvc))

	api.POST("/wishlist", toggleWishlistHandler(deps.WishlistSvc))
	api.GET("/wishlist/check/:userId/:productId", checkWishlistHandler(deps.WishlistSvc))
	api.GET("/wishlist/:userId", getWishlistHandler(deps.WishlistSvc))

	return router
}
