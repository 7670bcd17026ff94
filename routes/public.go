package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	couponControllers "github.com/Dolapo001/Zentoria/controllers/coupon"
	paymentControllers "github.com/Dolapo001/Zentoria/controllers/payment"
	productcontroller "github.com/Dolapo001/Zentoria/controllers/product"
	promoControllers "github.com/Dolapo001/Zentoria/controllers/promo"
)

// SetupPublicRoutes registers catalog browsing endpoints that need no auth.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))

	r.GET("/coupons", couponControllers.ListCoupons(db))
	r.GET("/flash-sales", promoControllers.GetActiveFlashSales(db))
	r.GET("/offers", promoControllers.GetOffers(db))

	// Gateway callback, authenticated by tx_ref lookup rather than a session.
	r.POST("/payments/webhook", paymentControllers.GatewayWebhook(db))
}
