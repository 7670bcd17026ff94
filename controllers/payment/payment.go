package paymentControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/gateway"
	"github.com/Dolapo001/Zentoria/middleware"
	"github.com/Dolapo001/Zentoria/models"
	"github.com/Dolapo001/Zentoria/utils"
)

type CreatePaymentInput struct {
	OrderID uint   `json:"order" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
	Method  string `json:"payment_method" binding:"required"`
}

// POST /user/payments
// Creates a pending payment for an owned order and, for the gateway method,
// initiates fund collection and returns the payment link.
func CreatePayment(db *gorm.DB, gw gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		var input CreatePaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}

		amount, err := decimal.NewFromString(input.Amount)
		if err != nil || amount.IsNegative() {
			utils.Error(c, http.StatusBadRequest, "Invalid amount", nil)
			return
		}
		if !models.ValidMethod(input.Method) {
			utils.Error(c, http.StatusBadRequest, "Unsupported payment method", nil)
			return
		}

		var order models.Order
		if err := db.Where("id = ? AND user_id = ?", input.OrderID, userID).First(&order).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "Order not found", nil)
			return
		}

		payment := models.Payment{
			OrderID: order.ID,
			UserID:  userID,
			Amount:  amount.Round(2),
			Method:  input.Method,
			Status:  models.PaymentStatusPending,
		}
		if err := db.Create(&payment).Error; err != nil {
			utils.Error(c, http.StatusBadRequest, "Payment already exists for this order", nil)
			return
		}

		if input.Method != models.PaymentMethodFlutterwave {
			utils.Success(c, http.StatusCreated, "Payment created successfully", payment)
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			utils.InternalError(c, err)
			return
		}

		txRef := uuid.NewString()
		link, err := gw.Initiate(c.Request.Context(), gateway.InitiateRequest{
			TxRef:       txRef,
			Amount:      payment.Amount,
			Email:       user.Email,
			Name:        user.Fullname,
			Phone:       user.Phone,
			RedirectURL: c.Query("redirect_url"),
		})
		if err != nil {
			db.Model(&payment).Updates(map[string]interface{}{
				"status":         models.PaymentStatusFailed,
				"transaction_id": txRef,
			})
			status := http.StatusBadGateway
			msg := "Payment gateway declined"
			if errors.Is(err, gateway.ErrTimeout) {
				msg = "Payment gateway timed out"
			}
			utils.Error(c, status, msg, gin.H{"error": err.Error(), "payment_id": payment.ID})
			return
		}

		db.Model(&payment).Update("transaction_id", link.TxRef)
		utils.Success(c, http.StatusCreated, "Payment created successfully", gin.H{
			"payment":      payment,
			"payment_link": link.Link,
		})
	}
}

// GET /user/payments/:payment_id
func GetPayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		var payment models.Payment
		err := db.Where("id = ? AND user_id = ?", c.Param("payment_id"), userID).
			First(&payment).Error
		if err != nil {
			utils.Error(c, http.StatusNotFound, "Payment not found", nil)
			return
		}
		utils.Success(c, http.StatusOK, "Payment details retrieved successfully", payment)
	}
}

type UpdatePaymentInput struct {
	Method string `json:"payment_method" binding:"required"`
}

// PUT /user/payments/:payment_id
// Only the method of a still-pending payment can change.
func UpdatePayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		var input UpdatePaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Error(c, http.StatusBadRequest, "Invalid data", gin.H{"error": err.Error()})
			return
		}
		if !models.ValidMethod(input.Method) {
			utils.Error(c, http.StatusBadRequest, "Unsupported payment method", nil)
			return
		}

		var payment models.Payment
		err := db.Where("id = ? AND user_id = ? AND status = ?",
			c.Param("payment_id"), userID, models.PaymentStatusPending).
			First(&payment).Error
		if err != nil {
			utils.Error(c, http.StatusNotFound, "Payment not found", nil)
			return
		}

		payment.Method = input.Method
		if err := db.Save(&payment).Error; err != nil {
			utils.InternalError(c, err)
			return
		}
		utils.Success(c, http.StatusOK, "Payment updated successfully", payment)
	}
}

// DELETE /user/payments/:payment_id
func DeletePayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		res := db.Where("id = ? AND user_id = ? AND status = ?",
			c.Param("payment_id"), userID, models.PaymentStatusPending).
			Delete(&models.Payment{})
		if res.Error != nil {
			utils.InternalError(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			utils.Error(c, http.StatusNotFound, "Payment not found", nil)
			return
		}
		utils.Success(c, http.StatusOK, "Payment canceled successfully", nil)
	}
}

// POST /payment/webhook
// The gateway posts transaction results here; an approved transaction flips
// the matching payment to Paid.
func GatewayWebhook(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event struct {
			TxRef  string `json:"tx_ref"`
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&event); err != nil || event.TxRef == "" {
			utils.Error(c, http.StatusBadRequest, "Malformed webhook payload", nil)
			return
		}

		if event.Status != "successful" {
			utils.Success(c, http.StatusOK, "Payment not successful", nil)
			return
		}

		res := db.Model(&models.Payment{}).
			Where("transaction_id = ?", event.TxRef).
			Update("status", models.PaymentStatusPaid)
		if res.Error != nil {
			utils.InternalError(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			utils.Error(c, http.StatusNotFound, "Unknown transaction reference", nil)
			return
		}
		utils.Success(c, http.StatusOK, "Payment confirmed", nil)
	}
}
