package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/middleware"
	"github.com/Dolapo001/Zentoria/models"
	"github.com/Dolapo001/Zentoria/utils"
)

// GET /user/favourites
func GetFavourites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		var favourites []models.FavouriteProduct
		if err := db.Where("user_id = ?", userID).Order("date_added DESC").
			Find(&favourites).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Favourites retrieved successfully", favourites)
	}
}

// POST /user/favourites/:product_id
func AddFavourite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		productID := c.Param("product_id")

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			utils.Error(c, http.StatusBadRequest, "Product does not exist", nil)
			return
		}

		favourite := models.FavouriteProduct{UserID: userID, ProductID: product.ID}
		if err := db.Create(&favourite).Error; err != nil {
			utils.Error(c, http.StatusBadRequest, "Product already in favourites", nil)
			return
		}
		utils.Success(c, http.StatusCreated, "Product added to favourites", favourite)
	}
}

// DELETE /user/favourites/:product_id
func RemoveFavourite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		res := db.Where("user_id = ? AND product_id = ?", userID, c.Param("product_id")).
			Delete(&models.FavouriteProduct{})
		if res.Error != nil {
			utils.InternalError(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			utils.Error(c, http.StatusNotFound, "Favourite not found", nil)
			return
		}
		utils.Success(c, http.StatusOK, "Product removed from favourites", nil)
	}
}
