package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/models"
	"github.com/Dolapo001/Zentoria/utils"
)

type ProductUpdateInput struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Price         *string `json:"price"`
	Quantity      *int    `json:"quantity"`
	Image         *string `json:"image"`
	Specification *string `json:"specification"`
	CategoryID    *uint   `json:"category_id"`
	SubCategoryID *uint   `json:"subcategory_id"`
	StyleID       *uint   `json:"style_id"`
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "Product not found", nil)
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			price, err := decimal.NewFromString(*input.Price)
			if err != nil || price.IsNegative() {
				utils.Error(c, http.StatusBadRequest, "Invalid price", nil)
				return
			}
			product.Price = price.Round(2)
		}
		if input.Quantity != nil {
			if *input.Quantity < 0 {
				utils.Error(c, http.StatusBadRequest, "Quantity must not be negative", nil)
				return
			}
			product.Quantity = *input.Quantity
		}
		if input.Image != nil {
			product.Image = *input.Image
		}
		if input.Specification != nil {
			product.Specification = *input.Specification
		}
		if input.CategoryID != nil {
			product.CategoryID = *input.CategoryID
		}
		if input.SubCategoryID != nil {
			product.SubCategoryID = input.SubCategoryID
		}
		if input.StyleID != nil {
			product.StyleID = input.StyleID
		}

		if err := db.Save(&product).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Product updated successfully", product)
	}
}
