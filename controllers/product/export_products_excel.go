package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/models"
	"github.com/Dolapo001/Zentoria/utils"
)

// GET /admin/products/export-excel
// Streams the full catalog as an xlsx workbook.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			utils.InternalError(c, err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			utils.InternalError(c, err)
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Price", "Quantity",
			"CategoryID", "StyleCode", "Specification", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price.StringFixed(2))
			row.AddCell().SetValue(strconv.Itoa(p.Quantity))
			row.AddCell().SetValue(strconv.FormatUint(uint64(p.CategoryID), 10))
			row.AddCell().SetValue(p.StyleCode)
			row.AddCell().SetValue(p.Specification)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
		if err := file.Write(c.Writer); err != nil {
			utils.InternalError(c, err)
			return
		}
		c.Status(http.StatusOK)
	}
}
