package couponControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/models"
	"github.com/Dolapo001/Zentoria/utils"
)

type CreateCouponInput struct {
	Code               string `json:"code"`
	DiscountPercentage string `json:"discount_percentage" binding:"required"`
	ExpiryDate         string `json:"expiry_date" binding:"required"` // RFC 3339
}

type ExtendCouponInput struct {
	Days int `json:"days" binding:"required,min=1"`
}

// GET /coupons
// Lists only coupons that are currently redeemable.
func ListCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupons []models.Coupon
		if err := db.Where("expired = ? AND expiry_date > ?", false, time.Now()).
			Find(&coupons).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Coupons retrieved successfully", coupons)
	}
}

// POST /admin/coupons
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}

		pct, err := decimal.NewFromString(input.DiscountPercentage)
		if err != nil || pct.IsNegative() {
			utils.Error(c, http.StatusBadRequest, "Invalid discount percentage", nil)
			return
		}
		expiry, err := time.Parse(time.RFC3339, input.ExpiryDate)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid expiry date, expected RFC 3339", nil)
			return
		}

		coupon := models.Coupon{
			Code:               input.Code,
			DiscountPercentage: pct,
			ExpiryDate:         expiry,
		}
		if err := db.Create(&coupon).Error; err != nil {
			if errors.Is(err, models.ErrPastExpiry) {
				utils.Error(c, http.StatusBadRequest, "Expiry date must be in the future", nil)
				return
			}
			utils.Error(c, http.StatusBadRequest, "Coupon code already exists", nil)
			return
		}
		utils.Success(c, http.StatusCreated, "Coupon created successfully", coupon)
	}
}

// PUT /admin/coupons/:coupon_id/extend
// Extending an already-expired coupon is a no-op, reported as such.
func ExtendCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ExtendCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}

		var coupon models.Coupon
		if err := db.First(&coupon, c.Param("coupon_id")).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "Coupon not found", nil)
			return
		}

		if !coupon.ExtendExpiry(input.Days, time.Now()) {
			utils.Success(c, http.StatusOK, "Coupon already expired, expiry unchanged", coupon)
			return
		}
		if err := db.Save(&coupon).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Coupon expiry extended successfully", coupon)
	}
}

// PUT /admin/coupons/:coupon_id/deactivate
func DeactivateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupon models.Coupon
		if err := db.First(&coupon, c.Param("coupon_id")).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "Coupon not found", nil)
			return
		}

		coupon.Deactivate()
		if err := db.Save(&coupon).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Coupon deactivated successfully", coupon)
	}
}
