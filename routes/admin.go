package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	couponControllers "github.com/Dolapo001/Zentoria/controllers/coupon"
	orderControllers "github.com/Dolapo001/Zentoria/controllers/order"
	productcontroller "github.com/Dolapo001/Zentoria/controllers/product"
	promoControllers "github.com/Dolapo001/Zentoria/controllers/promo"
	userControllers "github.com/Dolapo001/Zentoria/controllers/user"
	"github.com/Dolapo001/Zentoria/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}
		adminGroup.POST("/subcategories", productcontroller.CreateSubCategory(db))

		// ─────────── Coupon Management ───────────
		couponAdmin := adminGroup.Group("/coupons")
		{
			couponAdmin.POST("", couponControllers.CreateCoupon(db))
			couponAdmin.PUT("/:coupon_id/extend", couponControllers.ExtendCoupon(db))
			couponAdmin.PUT("/:coupon_id/deactivate", couponControllers.DeactivateCoupon(db))
		}

		// ─────────── Promotions ───────────
		adminGroup.POST("/flash-sales", promoControllers.CreateFlashSale(db))
		adminGroup.POST("/offers", promoControllers.CreateOffer(db))

		// ─────────── Order Fulfilment ───────────
		adminGroup.GET("/orders", orderControllers.ListAllOrders(db))
		adminGroup.PUT("/orders/:order_id/status", orderControllers.UpdateOrderStatus(db))
	}
}
