package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/middleware"
	"github.com/Dolapo001/Zentoria/models"
	"github.com/Dolapo001/Zentoria/utils"
)

type ReviewInput struct {
	ProductID   string `json:"product_id" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	ReviewText  string `json:"review_text"`
	ReviewImage string `json:"review_image"`
}

// POST /user/reviews
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		var input ReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			utils.Error(c, http.StatusBadRequest, "Product does not exist", nil)
			return
		}

		review := models.ProductReview{
			ProductID:   product.ID,
			UserID:      userID,
			Rating:      input.Rating,
			ReviewText:  input.ReviewText,
			ReviewImage: input.ReviewImage,
		}
		if err := db.Create(&review).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusCreated, "Review created successfully", review)
	}
}
