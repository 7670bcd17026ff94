package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const CartStatusActive = "active"

type Cart struct {
	CartID    uint            `gorm:"primaryKey" json:"cart_id"`
	UserID    uint            `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Status    string          `gorm:"default:active" json:"status"`
	Total     decimal.Decimal `gorm:"type:numeric(10,2)" json:"total"` // denormalized, rewritten at checkout
	Items     []CartItem      `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type CartItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	CartID    uint            `gorm:"index" json:"cart_id"`
	ProductID string          `gorm:"type:uuid;not null" json:"product_id"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2)" json:"unit_price"` // price at the time the item was added
	Quantity  int             `gorm:"not null" json:"quantity"`
	AddedAt   time.Time       `json:"added_at"`
}

// CalculateTotal sums unit price x quantity over the loaded items, rounded to
// 2 decimal places. Pure read, does not touch the stored Total.
func (c *Cart) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.Round(2)
}

// TotalQuantity sums the quantities of the loaded items.
func (c *Cart) TotalQuantity() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}
