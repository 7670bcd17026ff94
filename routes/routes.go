package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/auth"
	"github.com/Dolapo001/Zentoria/gateway"
	"github.com/Dolapo001/Zentoria/middleware"
)

// SetupRoutes is the single entry‐point that wires up Auth, Public, User, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, gw gateway.Client, mailer auth.Mailer) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, db, mailer)

	// 2️⃣ Public catalog routes
	SetupPublicRoutes(r, db)

	// 3️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, db, gw)

	// 4️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, db)

	// Prometheus scrape endpoint
	r.GET("/metrics", middleware.MetricsHandler())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
