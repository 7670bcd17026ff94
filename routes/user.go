package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	addressControllers "github.com/Dolapo001/Zentoria/controllers/address"
	cartControllers "github.com/Dolapo001/Zentoria/controllers/cart"
	checkoutControllers "github.com/Dolapo001/Zentoria/controllers/checkout"
	orderControllers "github.com/Dolapo001/Zentoria/controllers/order"
	paymentControllers "github.com/Dolapo001/Zentoria/controllers/payment"
	productcontroller "github.com/Dolapo001/Zentoria/controllers/product"
	userControllers "github.com/Dolapo001/Zentoria/controllers/user"
	"github.com/Dolapo001/Zentoria/gateway"
	"github.com/Dolapo001/Zentoria/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, gw gateway.Client) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetProfile(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateProfile(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))                  // GET /user/cart
			cartGroup.POST("/", cartControllers.UpdateCartItem(db))              // POST /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db)) // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))             // DELETE /user/cart
		}

		// ──────────────── Checkout ────────────────
		userGroup.POST("/checkout", checkoutControllers.CheckoutHandler(db, gw)) // POST /user/checkout

		// ──────────────── Orders ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.GET("/", orderControllers.GetOrders(db))
			orderGroup.GET("/:order_id", orderControllers.GetOrderByID(db))
			orderGroup.DELETE("/:order_id", orderControllers.DeleteOrder(db))
		}
		userGroup.GET("/order-items/:order_item_id", orderControllers.GetOrderItem(db))
		userGroup.PUT("/order-items/:order_item_id", orderControllers.UpdateOrderItem(db))

		// ──────────────── Payments ────────────────
		paymentGroup := userGroup.Group("/payments")
		{
			paymentGroup.POST("/", paymentControllers.CreatePayment(db, gw))
			paymentGroup.GET("/:payment_id", paymentControllers.GetPayment(db))
			paymentGroup.PUT("/:payment_id", paymentControllers.UpdatePayment(db))
			paymentGroup.DELETE("/:payment_id", paymentControllers.DeletePayment(db))
		}

		// ──────────────── Shipping Addresses ────────────────
		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.POST("/", addressControllers.CreateAddress(db))
			addressGroup.GET("/:address_id", addressControllers.GetAddress(db))
			addressGroup.PUT("/:address_id", addressControllers.UpdateAddress(db))
			addressGroup.DELETE("/:address_id", addressControllers.DeleteAddress(db))
		}

		// ──────────────── Reviews + Favourites ────────────────
		userGroup.POST("/reviews", productcontroller.CreateReview(db))
		favGroup := userGroup.Group("/favourites")
		{
			favGroup.GET("/", productcontroller.GetFavourites(db))
			favGroup.POST("/:product_id", productcontroller.AddFavourite(db))
			favGroup.DELETE("/:product_id", productcontroller.RemoveFavourite(db))
		}

		// ──────────────── Order Status Stream ────────────────
		userGroup.GET("/orders-ws", orderControllers.OrderWebSocketHandler) // GET /user/orders-ws
	}
}
