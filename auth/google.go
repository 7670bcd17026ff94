package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	firebase "firebase.google.com/go"
	firebaseauth "firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/models"
	"github.com/Dolapo001/Zentoria/utils"
)

var (
	firebaseOnce sync.Once
	firebaseAuth *firebaseauth.Client
	firebaseErr  error
	projectID    string
)

func firebaseClient() (*firebaseauth.Client, error) {
	firebaseOnce.Do(func() {
		ctx := context.Background()

		credsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
		projectID = os.Getenv("FIREBASE_PROJECT_ID")
		if credsJSON == "" || projectID == "" {
			firebaseErr = fmt.Errorf("firebase configuration missing")
			return
		}

		opt := option.WithCredentialsJSON([]byte(credsJSON))
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opt)
		if err != nil {
			firebaseErr = fmt.Errorf("error initializing Firebase app: %w", err)
			return
		}
		firebaseAuth, firebaseErr = app.Auth(ctx)
	})
	return firebaseAuth, firebaseErr
}

// POST /auth/google
// Verifies a Firebase ID token, fetches or creates the matching user and
// issues the same JWT pair as password login.
func GoogleLoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IDToken string `json:"id_token" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid request payload", nil)
			return
		}

		client, err := firebaseClient()
		if err != nil {
			utils.InternalError(c, err)
			return
		}

		token, err := client.VerifyIDTokenAndCheckRevoked(c.Request.Context(), req.IDToken)
		if err != nil {
			utils.Error(c, http.StatusUnauthorized, "Invalid Firebase ID token", nil)
			return
		}
		if token.Audience != projectID {
			utils.Error(c, http.StatusUnauthorized, "Invalid token audience", nil)
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)
		if email == "" {
			utils.Error(c, http.StatusUnauthorized, "Token carries no email claim", nil)
			return
		}

		var user models.User
		err = db.Where("email = ?", email).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			user = models.User{
				Username:       usernameFromEmail(email),
				Email:          email,
				PasswordHash:   "-", // social accounts have no local password
				Fullname:       name,
				ProfilePicture: picture,
				Provider:       "google",
				IsVerified:     true, // Google already verified the address
				Cart:           models.Cart{Status: models.CartStatusActive},
			}
			if err := db.Create(&user).Error; err != nil {
				utils.InternalError(c, err)
				return
			}
		} else if err == nil {
			db.Model(&user).Updates(models.User{Fullname: name, ProfilePicture: picture})
		} else {
			utils.InternalError(c, err)
			return
		}

		tokens, err := IssueTokens(user.ID, user.Email, Role(user))
		if err != nil {
			utils.InternalError(c, err)
			return
		}

		utils.SuccessWithTokens(c, http.StatusOK, "Login successful", user, tokens)
	}
}

// Role maps a user record to the role claim carried in its tokens.
func Role(u models.User) string {
	if u.IsStaff {
		return "admin"
	}
	return "user"
}

func usernameFromEmail(email string) string {
	name := strings.SplitN(email, "@", 2)[0]
	return name + "_" + randomSuffix(3)
}
