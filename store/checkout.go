package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/gateway"
	"github.com/Dolapo001/Zentoria/models"
)

// CheckoutResult reports what a committed checkout produced. PaymentLink is
// empty when the gateway call failed; the order and its pending payment still
// exist in that case.
type CheckoutResult struct {
	OrderID     uint            `json:"order_id"`
	PaymentID   uint            `json:"payment_id"`
	Amount      decimal.Decimal `json:"amount"`
	TxRef       string          `json:"tx_ref,omitempty"`
	PaymentLink string          `json:"payment_link,omitempty"`
}

// Checkout converts the user's cart into an order. Coupon validation happens
// up front; stock decrement, order + item snapshot, payment row and cart
// clearing all run inside one transaction, so any failure leaves no partial
// state behind. The gateway is only called after commit.
func Checkout(ctx context.Context, db *gorm.DB, gw gateway.Client, userID uint, couponCode string) (*CheckoutResult, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	total := cart.CalculateTotal()
	amount := total
	if couponCode != "" {
		var coupon models.Coupon
		if err := db.Where("code = ?", couponCode).First(&coupon).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCoupon
			}
			return nil, err
		}
		if !coupon.IsValid(time.Now()) {
			return nil, ErrExpiredCoupon
		}
		amount = total.Sub(coupon.Discount(total))
	}

	var order models.Order
	var payment models.Payment

	txErr := db.Transaction(func(tx *gorm.DB) error {
		// Conditional decrement: zero rows affected means another checkout
		// got there first or the cart is stale. Rolls back everything.
		for _, item := range cart.Items {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND quantity >= ?", item.ProductID, item.Quantity).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: product %s", ErrInsufficientStock, item.ProductID)
			}
		}

		orderItems := make([]models.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				UnitPrice: item.UnitPrice,
				Quantity:  item.Quantity,
			})
		}

		order = models.Order{
			UserID:    userID,
			Status:    models.OrderStatusProcessing,
			Total:     amount,
			Items:     orderItems,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		payment = models.Payment{
			OrderID: order.ID,
			UserID:  userID,
			Amount:  amount,
			Method:  models.PaymentMethodFlutterwave,
			Status:  models.PaymentStatusPending,
		}
		if err := validatePayment(&payment); err != nil {
			return err
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrPaymentCreation, err)
		}

		if err := tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
			Update("total", amount).Error; err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.CartID).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	result := &CheckoutResult{
		OrderID:   order.ID,
		PaymentID: payment.ID,
		Amount:    amount,
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return result, err
	}

	txRef := uuid.NewString()
	result.TxRef = txRef
	link, err := gw.Initiate(ctx, gateway.InitiateRequest{
		TxRef:       txRef,
		Amount:      amount,
		Email:       user.Email,
		Name:        user.Fullname,
		Phone:       user.Phone,
		RedirectURL: os.Getenv("PAYMENT_REDIRECT_URL"),
	})
	if err != nil {
		if dbErr := db.Model(&models.Payment{}).Where("id = ?", payment.ID).
			Updates(map[string]interface{}{
				"status":         models.PaymentStatusFailed,
				"transaction_id": txRef,
			}).Error; dbErr != nil {
			log.Printf("❌ Failed to mark payment %d failed after gateway error: %v", payment.ID, dbErr)
		}
		return result, err
	}

	// Without the stored reference the webhook can never confirm this payment.
	if dbErr := db.Model(&models.Payment{}).Where("id = ?", payment.ID).
		Update("transaction_id", link.TxRef).Error; dbErr != nil {
		log.Printf("❌ Failed to record tx_ref %s on payment %d: %v", link.TxRef, payment.ID, dbErr)
	}
	result.PaymentLink = link.Link
	return result, nil
}

func validatePayment(p *models.Payment) error {
	if p.OrderID == 0 {
		return fmt.Errorf("%w: missing order", ErrPaymentCreation)
	}
	if p.Amount.IsNegative() {
		return fmt.Errorf("%w: negative amount %s", ErrPaymentCreation, p.Amount)
	}
	if !models.ValidMethod(p.Method) {
		return fmt.Errorf("%w: unsupported method %q", ErrPaymentCreation, p.Method)
	}
	return nil
}
