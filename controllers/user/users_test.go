package userControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/models"
)

func setupLoginRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.ShippingAddress{},
	))

	r := gin.New()
	r.POST("/auth/login", Login(db))
	return r, db
}

func seedUser(t *testing.T, db *gorm.DB, username, email, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Fullname:     "Test Shopper",
		Provider:     "local",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func postLogin(t *testing.T, r *gin.Engine, identifier, password string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	body, err := json.Marshal(gin.H{"identifier": identifier, "password": password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w, envelope
}

func TestLoginByEmail(t *testing.T) {
	r, db := setupLoginRouter(t)
	user := seedUser(t, db, "shopper", "shopper@example.com", "hunter2hunter2")

	w, envelope := postLogin(t, r, "shopper@example.com", "hunter2hunter2")
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, float64(http.StatusOK), envelope["status_code"])
	assert.Equal(t, "success", envelope["status"])
	assert.Equal(t, "Login Success", envelope["message"])

	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(user.ID), data["user_id"])

	tokens, ok := envelope["tokens"].(map[string]interface{})
	require.True(t, ok, "tokens must be present on successful login")
	assert.NotEmpty(t, tokens["access"])
	assert.NotEmpty(t, tokens["refresh"])
}

func TestLoginByUsername(t *testing.T) {
	r, db := setupLoginRouter(t)
	seedUser(t, db, "shopper", "shopper@example.com", "hunter2hunter2")

	w, envelope := postLogin(t, r, "shopper", "hunter2hunter2")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", envelope["status"])

	tokens, ok := envelope["tokens"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, tokens["access"])
}

func TestLoginWrongPassword(t *testing.T) {
	r, db := setupLoginRouter(t)
	seedUser(t, db, "shopper", "shopper@example.com", "hunter2hunter2")

	w, envelope := postLogin(t, r, "shopper@example.com", "wrong-password")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	assert.Equal(t, float64(http.StatusUnauthorized), envelope["status_code"])
	assert.Equal(t, "error", envelope["status"])
	assert.Equal(t, "Login failed", envelope["message"])
	assert.Nil(t, envelope["data"])

	_, hasTokens := envelope["tokens"]
	assert.False(t, hasTokens, "no tokens on a failed login")
}

func TestLoginUnknownIdentifier(t *testing.T) {
	r, _ := setupLoginRouter(t)

	w, envelope := postLogin(t, r, "nobody@example.com", "whatever123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "error", envelope["status"])
	assert.Equal(t, "Login failed", envelope["message"])
}
