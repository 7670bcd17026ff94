package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/models"
	"github.com/Dolapo001/Zentoria/utils"
)

type CategoryInput struct {
	Name             string `json:"name" binding:"required"`
	Icon             string `json:"icon"`
	Description      string `json:"description"`
	ParentCategoryID *uint  `json:"parent_category_id"`
}

type SubCategoryInput struct {
	Name             string `json:"name" binding:"required"`
	ParentCategoryID uint   `json:"parent_category_id" binding:"required"`
}

// GET /categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Preload("SubCategories").Find(&categories).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Categories retrieved successfully", categories)
	}
}

// POST /admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}

		category := models.Category{
			Name:             input.Name,
			Icon:             input.Icon,
			Description:      input.Description,
			ParentCategoryID: input.ParentCategoryID,
		}
		if err := db.Create(&category).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusCreated, "Category created successfully", category)
	}
}

// POST /admin/subcategories
func CreateSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SubCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}

		var parent models.Category
		if err := db.First(&parent, input.ParentCategoryID).Error; err != nil {
			utils.Error(c, http.StatusBadRequest, "Parent category does not exist", nil)
			return
		}

		sub := models.SubCategory{Name: input.Name, ParentCategoryID: input.ParentCategoryID}
		if err := db.Create(&sub).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusCreated, "Subcategory created successfully", sub)
	}
}

// DELETE /admin/categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Delete(&models.Category{}, c.Param("id"))
		if res.Error != nil {
			utils.InternalError(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			utils.Error(c, http.StatusNotFound, "Category not found", nil)
			return
		}
		utils.Success(c, http.StatusOK, "Category deleted successfully", nil)
	}
}
