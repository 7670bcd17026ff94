package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/gateway"
	"github.com/Dolapo001/Zentoria/middleware"
	"github.com/Dolapo001/Zentoria/store"
	"github.com/Dolapo001/Zentoria/utils"
)

type CheckoutInput struct {
	CouponCode string `json:"coupon_code"`
}

// POST /user/checkout
func CheckoutHandler(db *gorm.DB, gw gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		var input CheckoutInput
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&input); err != nil {
				utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
				return
			}
		}

		result, err := store.Checkout(c.Request.Context(), db, gw, userID, input.CouponCode)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrCartNotFound):
				utils.Error(c, http.StatusNotFound, "Cart not found", nil)
			case errors.Is(err, store.ErrEmptyCart):
				utils.Error(c, http.StatusBadRequest, "Cart is empty", nil)
			case errors.Is(err, store.ErrInvalidCoupon):
				utils.Error(c, http.StatusBadRequest, "Invalid coupon", nil)
			case errors.Is(err, store.ErrExpiredCoupon):
				utils.Error(c, http.StatusBadRequest, "Expired coupon", nil)
			case errors.Is(err, store.ErrInsufficientStock):
				utils.Error(c, http.StatusBadRequest, "Not enough quantity available", gin.H{"error": err.Error()})
			case errors.Is(err, store.ErrPaymentCreation):
				utils.Error(c, http.StatusBadRequest, "Payment failed", gin.H{"error": err.Error()})
			case errors.Is(err, gateway.ErrTimeout), errors.Is(err, gateway.ErrDeclined):
				// Order is committed; client can retry payment separately.
				utils.Error(c, http.StatusBadGateway, "Payment gateway failed", gin.H{
					"error":    err.Error(),
					"order_id": result.OrderID,
				})
			default:
				utils.InternalError(c, err)
			}
			return
		}

		utils.Success(c, http.StatusOK, "Checkout completed successfully", result)
	}
}
