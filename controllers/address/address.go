package addressControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/middleware"
	"github.com/Dolapo001/Zentoria/models"
	"github.com/Dolapo001/Zentoria/utils"
)

type AddressInput struct {
	OrderID uint   `json:"order" binding:"required"`
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	ZipCode string `json:"zip_code" binding:"required"`
}

type AddressUpdateInput struct {
	Street  *string `json:"street"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zip_code"`
}

// POST /user/addresses
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Where("id = ? AND user_id = ?", input.OrderID, userID).First(&order).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "Order not found", nil)
			return
		}

		address := models.ShippingAddress{
			OrderID: order.ID,
			UserID:  userID,
			Street:  input.Street,
			City:    input.City,
			State:   input.State,
			ZipCode: input.ZipCode,
		}
		if err := db.Create(&address).Error; err != nil {
			utils.Error(c, http.StatusBadRequest, "Address already exists for this order", nil)
			return
		}
		utils.Success(c, http.StatusCreated, "Shipping address created successfully", address)
	}
}

// GET /user/addresses/:address_id
func GetAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		var address models.ShippingAddress
		err := db.Where("id = ? AND user_id = ?", c.Param("address_id"), userID).
			First(&address).Error
		if err != nil {
			utils.Error(c, http.StatusNotFound, "Shipping address not found", nil)
			return
		}
		utils.Success(c, http.StatusOK, "Shipping address retrieved successfully", address)
	}
}

// PUT /user/addresses/:address_id
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		var address models.ShippingAddress
		err := db.Where("id = ? AND user_id = ?", c.Param("address_id"), userID).
			First(&address).Error
		if err != nil {
			utils.Error(c, http.StatusNotFound, "Shipping address not found", nil)
			return
		}

		var input AddressUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}

		if input.Street != nil {
			address.Street = *input.Street
		}
		if input.City != nil {
			address.City = *input.City
		}
		if input.State != nil {
			address.State = *input.State
		}
		if input.ZipCode != nil {
			address.ZipCode = *input.ZipCode
		}

		if err := db.Save(&address).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Shipping address updated successfully", address)
	}
}

// DELETE /user/addresses/:address_id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		res := db.Where("id = ? AND user_id = ?", c.Param("address_id"), userID).
			Delete(&models.ShippingAddress{})
		if res.Error != nil {
			utils.InternalError(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			utils.Error(c, http.StatusNotFound, "Shipping address not found", nil)
			return
		}
		utils.Success(c, http.StatusOK, "Shipping address removed successfully", nil)
	}
}
