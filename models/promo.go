package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlashSale discounts a set of products for a bounded time window.
type FlashSale struct {
	ID                 uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title              string          `gorm:"size:255;not null" json:"title"`
	Description        string          `json:"description"`
	StartTime          time.Time       `gorm:"not null" json:"start_time"`
	EndTime            time.Time       `gorm:"not null" json:"end_time"`
	DiscountPercentage decimal.Decimal `gorm:"type:numeric(5,2)" json:"discount_percentage"`
	Products           []Product       `gorm:"many2many:flash_sale_products" json:"products,omitempty"`
}

// IsActive reports whether the sale window covers now.
func (f *FlashSale) IsActive(now time.Time) bool {
	return !now.Before(f.StartTime) && now.Before(f.EndTime)
}

// Offer is an open-ended product discount with no time bound.
type Offer struct {
	ID                 uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title              string          `gorm:"size:255;not null" json:"title"`
	Description        string          `json:"description"`
	DiscountPercentage decimal.Decimal `gorm:"type:numeric(5,2)" json:"discount_percentage"`
	Products           []Product       `gorm:"many2many:offer_products" json:"products,omitempty"`
}
