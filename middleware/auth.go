package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Dolapo001/Zentoria/utils"
)

// ValidateToken parses the Authorization header and puts user_id and role
// into the gin context for downstream handlers.
func ValidateToken(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		utils.Error(c, http.StatusUnauthorized, "Authorization header is missing", nil)
		c.Abort()
		return
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		utils.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		utils.Error(c, http.StatusUnauthorized, "Invalid token claims", nil)
		c.Abort()
		return
	}
	if t, _ := claims["type"].(string); t != "access" {
		utils.Error(c, http.StatusUnauthorized, "Not an access token", nil)
		c.Abort()
		return
	}

	idClaim, ok := claims["user_id"].(float64)
	if !ok {
		utils.Error(c, http.StatusUnauthorized, "Invalid token claims", nil)
		c.Abort()
		return
	}

	c.Set("user_id", uint(idClaim))
	if role, ok := claims["role"].(string); ok {
		c.Set("role", role)
	}

	c.Next()
}

// UserID pulls the authenticated user id set by ValidateToken.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
