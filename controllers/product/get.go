package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/models"
	"github.com/Dolapo001/Zentoria/utils"
)

// GetProducts lists products with optional category/subcategory/style filters
// and limit/offset paging.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Sizes").Preload("Colors")

		if categoryID := c.Query("category_id"); categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}
		if subCategoryID := c.Query("subcategory_id"); subCategoryID != "" {
			query = query.Where("sub_category_id = ?", subCategoryID)
		}
		if styleID := c.Query("style_id"); styleID != "" {
			query = query.Where("style_id = ?", styleID)
		}

		limit := 50
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
				limit = n
			}
		}
		offset := 0
		if v := c.Query("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				offset = n
			}
		}

		var products []models.Product
		if err := query.Limit(limit).Offset(offset).Order("created_at DESC").
			Find(&products).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Products retrieved successfully", products)
	}
}

// GetProductByID returns a single product with sizes, colors and reviews.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.Preload("Sizes").Preload("Colors").First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				utils.Error(c, http.StatusNotFound, "Product not found", nil)
			} else {
				utils.InternalError(c, err)
			}
			return
		}

		var reviews []models.ProductReview
		db.Where("product_id = ?", product.ID).Order("review_date DESC").Find(&reviews)

		utils.Success(c, http.StatusOK, "Product retrieved successfully", gin.H{
			"product": product,
			"reviews": reviews,
		})
	}
}
