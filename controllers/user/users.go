package userControllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/auth"
	"github.com/Dolapo001/Zentoria/middleware"
	"github.com/Dolapo001/Zentoria/models"
	"github.com/Dolapo001/Zentoria/utils"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Fullname string `json:"fullname" binding:"required"`
	Gender   string `json:"gender" binding:"omitempty,oneof=male female"`
	Birthday string `json:"birthday"` // YYYY-MM-DD
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"` // email or username
	Password   string `json:"password" binding:"required"`
}

type VerifyOTPInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type UpdateProfileInput struct {
	Fullname       *string         `json:"fullname"`
	Gender         *string         `json:"gender"`
	Phone          *string         `json:"phone"`
	ProfilePicture *string         `json:"profile_picture"`
	Address        *models.Address `json:"address"`
}

// POST /auth/register
// Creates the user with an active cart, stores a TOTP secret and emails the
// first verification code.
func Register(db *gorm.DB, mailer auth.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}

		var birthday *time.Time
		if input.Birthday != "" {
			parsed, err := time.Parse("2006-01-02", input.Birthday)
			if err != nil {
				utils.Error(c, http.StatusBadRequest, "Invalid birthday, expected YYYY-MM-DD", nil)
				return
			}
			birthday = &parsed
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.InternalError(c, err)
			return
		}

		user := models.User{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: string(hash),
			Fullname:     input.Fullname,
			Gender:       input.Gender,
			Birthday:     birthday,
			Provider:     "local",
			Cart:         models.Cart{Status: models.CartStatusActive},
		}
		if err := db.Create(&user).Error; err != nil {
			utils.Error(c, http.StatusBadRequest, "Username or email already taken", nil)
			return
		}

		sendVerificationCode(db, mailer, &user)

		tokens, err := auth.IssueTokens(user.ID, user.Email, auth.Role(user))
		if err != nil {
			utils.InternalError(c, err)
			return
		}

		utils.SuccessWithTokens(c, http.StatusCreated, "User registered successfully", user, tokens)
	}
}

// POST /auth/login
// The identifier matches either email or username.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}

		var user models.User
		err := db.Where("email = ? OR username = ?", input.Identifier, input.Identifier).
			First(&user).Error
		if err != nil ||
			bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
			utils.Error(c, http.StatusUnauthorized, "Login failed", nil)
			return
		}

		tokens, err := auth.IssueTokens(user.ID, user.Email, auth.Role(user))
		if err != nil {
			utils.InternalError(c, err)
			return
		}

		utils.SuccessWithTokens(c, http.StatusOK, "Login Success", gin.H{"user_id": user.ID}, tokens)
	}
}

// POST /auth/verify-otp
func VerifyOTP(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input VerifyOTPInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "User not found", nil)
			return
		}

		var secret models.OTPSecret
		if err := db.Where("user_id = ?", user.ID).First(&secret).Error; err != nil {
			utils.Error(c, http.StatusBadRequest, "No verification code issued", nil)
			return
		}

		if !auth.ValidateOTP(secret.Secret, input.Code) {
			utils.Error(c, http.StatusBadRequest, "Invalid or expired code", nil)
			return
		}

		if err := db.Model(&user).Update("is_verified", true).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Account verified successfully", nil)
	}
}

// POST /auth/resend-otp
func ResendOTP(db *gorm.DB, mailer auth.Mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email string `json:"email" binding:"required,email"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "User not found", nil)
			return
		}

		sendVerificationCode(db, mailer, &user)
		utils.Success(c, http.StatusOK, "Verification code sent", nil)
	}
}

func sendVerificationCode(db *gorm.DB, mailer auth.Mailer, user *models.User) {
	secret, err := auth.GetOrCreateOTPSecret(db, user.ID)
	if err != nil {
		log.Printf("❌ Failed to issue OTP secret for user %d: %v", user.ID, err)
		return
	}
	code, err := auth.GenerateOTP(secret)
	if err != nil {
		log.Printf("❌ Failed to generate OTP for user %d: %v", user.ID, err)
		return
	}
	if err := mailer.Send(user.Email, "Your Zentoria verification code",
		"Your verification code is "+code+". It expires in 10 minutes."); err != nil {
		log.Printf("❌ Failed to send verification email to %s: %v", user.Email, err)
	}
}

// GET /user/
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		var user models.User
		if err := db.Preload("Cart.Items").First(&user, userID).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "User not found", nil)
			return
		}
		utils.Success(c, http.StatusOK, "User profile retrieved successfully", user)
	}
}

// PUT /user/
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "User not found", nil)
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data provided", gin.H{"error": err.Error()})
			return
		}

		if input.Fullname != nil {
			user.Fullname = *input.Fullname
		}
		if input.Gender != nil {
			user.Gender = *input.Gender
		}
		if input.Phone != nil {
			user.Phone = *input.Phone
		}
		if input.ProfilePicture != nil {
			user.ProfilePicture = *input.ProfilePicture
		}
		if input.Address != nil {
			user.Address = *input.Address
		}

		if err := db.Save(&user).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "User profile updated successfully", user)
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "username", "email", "fullname", "provider", "is_verified", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Users retrieved successfully", users)
	}
}
