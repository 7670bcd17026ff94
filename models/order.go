package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing" // set at creation
	OrderStatusShipped    OrderStatus = "shipped"
)

type Order struct {
	ID              uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint             `gorm:"not null;index" json:"user_id"`
	Status          OrderStatus      `gorm:"type:VARCHAR(20);default:'processing'" json:"status"`
	Shipped         bool             `json:"shipped"`
	Total           decimal.Decimal  `gorm:"type:numeric(10,2)" json:"total"` // post-discount snapshot taken at checkout
	Items           []OrderItem      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Payment         *Payment         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payment,omitempty"`
	ShippingAddress *ShippingAddress `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"shipping_address,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index" json:"order_id"`
	ProductID string          `gorm:"type:uuid;not null" json:"product_id"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2)" json:"unit_price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
}

type ShippingAddress struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID uint   `gorm:"uniqueIndex;not null" json:"order_id"`
	UserID  uint   `gorm:"not null" json:"user_id"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

// CalculateOrderTotal recomputes the pre-discount sum from the loaded order
// items. The authoritative amount for payments is the Total snapshot; this is
// used when order items are edited after the fact.
func (o *Order) CalculateOrderTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.Round(2)
}

func (o *Order) IsShipped() bool {
	return o.Shipped
}

func (o *Order) IsPaid() bool {
	return o.Payment != nil && o.Payment.Status == PaymentStatusPaid
}
