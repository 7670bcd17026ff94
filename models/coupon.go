package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrPastExpiry = errors.New("coupon expiry date is in the past")

type Coupon struct {
	ID                 uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Code               string          `gorm:"size:50;uniqueIndex" json:"code"` // auto-generated when blank
	DiscountPercentage decimal.Decimal `gorm:"type:numeric(5,2)" json:"discount_percentage"`
	ExpiryDate         time.Time       `gorm:"not null" json:"expiry_date"`
	Expired            bool            `json:"expired"` // cache only; IsValid is authoritative
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// IsValid is the single source of truth for redeemability. A coupon whose
// expiry equals now is already invalid (strict After).
func (c *Coupon) IsValid(now time.Time) bool {
	return !c.Expired && c.ExpiryDate.After(now)
}

// ExtendExpiry pushes the expiry out by the given number of days and clears
// the expired flag, but only while the current expiry is still in the future.
// Extending an already-expired coupon is a no-op, not an error.
func (c *Coupon) ExtendExpiry(days int, now time.Time) bool {
	if !c.ExpiryDate.After(now) {
		return false
	}
	c.ExpiryDate = c.ExpiryDate.AddDate(0, 0, days)
	c.Expired = false
	return true
}

// Deactivate marks the coupon expired unconditionally. Idempotent.
func (c *Coupon) Deactivate() {
	c.Expired = true
}

// Discount returns total x percentage / 100, rounded to 2 decimal places.
func (c *Coupon) Discount(total decimal.Decimal) decimal.Decimal {
	return total.Mul(c.DiscountPercentage).Div(decimal.NewFromInt(100)).Round(2)
}

// BeforeCreate rejects an expiry date already in the past and fills in a
// random code when none was supplied.
func (c *Coupon) BeforeCreate(tx *gorm.DB) error {
	if !c.ExpiryDate.After(time.Now()) {
		return ErrPastExpiry
	}
	if c.Code == "" {
		c.Code = randomCode(5)
	}
	return nil
}

// BeforeSave lazily flips the expired flag once the expiry has passed. The
// flag is never cleared here; only ExtendExpiry does that.
func (c *Coupon) BeforeSave(tx *gorm.DB) error {
	if !c.ExpiryDate.After(time.Now()) {
		c.Expired = true
	}
	return nil
}
