package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/middleware"
	"github.com/Dolapo001/Zentoria/models"
	"github.com/Dolapo001/Zentoria/utils"
)

type CartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// POST /user/cart
// Creates or updates the cart item for the product. The quantity is validated
// against current stock here; checkout re-validates atomically.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}
		if input.Quantity <= 0 {
			utils.Error(c, http.StatusBadRequest, "Quantity must be greater than zero", nil)
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				utils.Error(c, http.StatusBadRequest, "Product does not exist", nil)
				return
			}
			utils.InternalError(c, err)
			return
		}

		if input.Quantity > product.Quantity {
			utils.Error(c, http.StatusBadRequest, "Not enough quantity available", nil)
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "Cart not found", nil)
			return
		}

		var item models.CartItem
		err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).
			First(&item).Error
		if err == gorm.ErrRecordNotFound {
			newItem := models.CartItem{
				CartID:    cart.CartID,
				ProductID: product.ID,
				UnitPrice: product.Price,
				Quantity:  input.Quantity,
				AddedAt:   time.Now(),
			}
			if err := db.Create(&newItem).Error; err != nil {
				utils.InternalError(c, err)
				return
			}
			utils.Success(c, http.StatusCreated, "CartItem created successfully", newItem)
			return
		}
		if err != nil {
			utils.InternalError(c, err)
			return
		}

		item.Quantity = input.Quantity
		item.UnitPrice = product.Price
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "CartItem updated successfully", item)
	}
}

// GET /user/cart
func GetUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "Cart not found", nil)
			return
		}

		utils.Success(c, http.StatusOK, "Cart retrieved successfully", gin.H{
			"cart":        cart,
			"total_items": cart.TotalQuantity(),
			"total_cost":  cart.CalculateTotal(),
		})
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		productID := c.Param("product_id")

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "Cart not found", nil)
			return
		}

		result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
			Delete(&models.CartItem{})
		if result.Error != nil {
			utils.InternalError(c, result.Error)
			return
		}
		if result.RowsAffected == 0 {
			utils.Error(c, http.StatusNotFound, "CartItem not found", nil)
			return
		}
		utils.Success(c, http.StatusOK, "CartItem deleted successfully", nil)
	}
}

// DELETE /user/cart
func ClearUserCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "Cart not found", nil)
			return
		}

		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Cart cleared successfully", nil)
	}
}
