package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentMethodBankTransfer = "Bank Transfer"
	PaymentMethodCard         = "Credit/Debit Card"
	PaymentMethodFlutterwave  = "Flutterwave"

	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
	PaymentStatusFailed  = "Failed"
)

type Payment struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       uint            `gorm:"uniqueIndex;not null" json:"order_id"`
	UserID        uint            `gorm:"not null" json:"user_id"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	Method        string          `gorm:"size:225" json:"payment_method"`
	TransactionID string          `gorm:"size:225" json:"transaction_id"`
	Status        string          `gorm:"size:50;default:Pending" json:"payment_status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ValidMethod reports whether m is one of the supported payment methods.
func ValidMethod(m string) bool {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodCard, PaymentMethodFlutterwave:
		return true
	}
	return false
}
