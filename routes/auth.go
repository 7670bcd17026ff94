package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/auth"
	userControllers "github.com/Dolapo001/Zentoria/controllers/user"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, mailer auth.Mailer) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", userControllers.Register(db, mailer))
		authGroup.POST("/login", userControllers.Login(db))
		authGroup.POST("/verify-otp", userControllers.VerifyOTP(db))
		authGroup.POST("/resend-otp", userControllers.ResendOTP(db, mailer))

		// Google sign-in via Firebase ID token
		authGroup.POST("/google", auth.GoogleLoginHandler(db))
	}
}
