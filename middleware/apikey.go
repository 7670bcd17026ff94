package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Dolapo001/Zentoria/utils"
)

// ValidateAPIKey guards admin routes with a shared key.
func ValidateAPIKey(c *gin.Context) {
	apiKey := c.GetHeader("X-API-KEY")
	if apiKey == "" || apiKey != os.Getenv("ADMIN_API_KEY") {
		utils.Error(c, http.StatusUnauthorized, "Invalid or missing API key", nil)
		c.Abort()
		return
	}
	c.Next()
}
