package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/models"
	"github.com/Dolapo001/Zentoria/utils"
)

// DELETE /admin/products/:id
// Soft delete; the row keeps historical order items valid.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Where("id = ?", c.Param("id")).Delete(&models.Product{})
		if res.Error != nil {
			utils.InternalError(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			utils.Error(c, http.StatusNotFound, "Product not found", nil)
			return
		}
		utils.Success(c, http.StatusOK, "Product deleted successfully", nil)
	}
}
