package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/models"
	"github.com/Dolapo001/Zentoria/utils"
)

type ProductInput struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         string  `json:"price" binding:"required"`
	Quantity      int     `json:"quantity" binding:"min=0"`
	CategoryID    uint    `json:"category_id" binding:"required"`
	SubCategoryID *uint   `json:"subcategory_id"`
	Image         string  `json:"image"`
	Specification string  `json:"specification"`
	StyleID       *uint   `json:"style_id"`
	SizeIDs       []uint  `json:"size_ids"`
	ColorIDs      []uint  `json:"color_ids"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}

		price, err := decimal.NewFromString(input.Price)
		if err != nil || price.IsNegative() {
			utils.Error(c, http.StatusBadRequest, "Invalid price", nil)
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			utils.Error(c, http.StatusBadRequest, "Category does not exist", nil)
			return
		}

		var sizes []models.Size
		if len(input.SizeIDs) > 0 {
			if err := db.Where("id IN ?", input.SizeIDs).Find(&sizes).Error; err != nil {
				utils.InternalError(c, err)
				return
			}
		}
		var colors []models.Color
		if len(input.ColorIDs) > 0 {
			if err := db.Where("id IN ?", input.ColorIDs).Find(&colors).Error; err != nil {
				utils.InternalError(c, err)
				return
			}
		}

		product := models.Product{
			Name:          input.Name,
			Description:   input.Description,
			Price:         price.Round(2),
			Quantity:      input.Quantity,
			CategoryID:    input.CategoryID,
			SubCategoryID: input.SubCategoryID,
			Image:         input.Image,
			Specification: input.Specification,
			StyleID:       input.StyleID,
			Sizes:         sizes,
			Colors:        colors,
		}

		if err := db.Create(&product).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusCreated, "Product created successfully", product)
	}
}
