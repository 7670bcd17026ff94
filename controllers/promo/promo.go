package promoControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/models"
	"github.com/Dolapo001/Zentoria/utils"
)

type FlashSaleInput struct {
	Title              string   `json:"title" binding:"required"`
	Description        string   `json:"description"`
	StartTime          string   `json:"start_time" binding:"required"` // RFC 3339
	EndTime            string   `json:"end_time" binding:"required"`
	DiscountPercentage string   `json:"discount_percentage" binding:"required"`
	ProductIDs         []string `json:"product_ids"`
}

type OfferInput struct {
	Title              string   `json:"title" binding:"required"`
	Description        string   `json:"description"`
	DiscountPercentage string   `json:"discount_percentage" binding:"required"`
	ProductIDs         []string `json:"product_ids"`
}

// GET /flash-sales
// Only sales whose window covers now.
func GetActiveFlashSales(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		var sales []models.FlashSale
		if err := db.Preload("Products").
			Where("start_time <= ? AND end_time > ?", now, now).
			Find(&sales).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Flash sales retrieved successfully", sales)
	}
}

// POST /admin/flash-sales
func CreateFlashSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input FlashSaleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}

		start, err := time.Parse(time.RFC3339, input.StartTime)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid start_time, expected RFC 3339", nil)
			return
		}
		end, err := time.Parse(time.RFC3339, input.EndTime)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid end_time, expected RFC 3339", nil)
			return
		}
		if !end.After(start) {
			utils.Error(c, http.StatusBadRequest, "end_time must be after start_time", nil)
			return
		}
		pct, err := decimal.NewFromString(input.DiscountPercentage)
		if err != nil || pct.IsNegative() {
			utils.Error(c, http.StatusBadRequest, "Invalid discount percentage", nil)
			return
		}

		var products []models.Product
		if len(input.ProductIDs) > 0 {
			if err := db.Where("id IN ?", input.ProductIDs).Find(&products).Error; err != nil {
				utils.InternalError(c, err)
				return
			}
		}

		sale := models.FlashSale{
			Title:              input.Title,
			Description:        input.Description,
			StartTime:          start,
			EndTime:            end,
			DiscountPercentage: pct,
			Products:           products,
		}
		if err := db.Create(&sale).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusCreated, "Flash sale created successfully", sale)
	}
}

// GET /offers
func GetOffers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var offers []models.Offer
		if err := db.Preload("Products").Find(&offers).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Offers retrieved successfully", offers)
	}
}

// POST /admin/offers
func CreateOffer(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input OfferInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}

		pct, err := decimal.NewFromString(input.DiscountPercentage)
		if err != nil || pct.IsNegative() {
			utils.Error(c, http.StatusBadRequest, "Invalid discount percentage", nil)
			return
		}

		var products []models.Product
		if len(input.ProductIDs) > 0 {
			if err := db.Where("id IN ?", input.ProductIDs).Find(&products).Error; err != nil {
				utils.InternalError(c, err)
				return
			}
		}

		offer := models.Offer{
			Title:              input.Title,
			Description:        input.Description,
			DiscountPercentage: pct,
			Products:           products,
		}
		if err := db.Create(&offer).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusCreated, "Offer created successfully", offer)
	}
}
