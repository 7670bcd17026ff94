package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestCouponIsValid(t *testing.T) {
	now := time.Now()

	c := Coupon{ExpiryDate: now.Add(time.Minute)}
	assert.True(t, c.IsValid(now))

	// Expiry exactly at now is already invalid.
	c = Coupon{ExpiryDate: now}
	assert.False(t, c.IsValid(now))

	c = Coupon{ExpiryDate: now.Add(-time.Minute)}
	assert.False(t, c.IsValid(now))

	// The cached flag wins even while the date is still in the future.
	c = Coupon{ExpiryDate: now.Add(time.Hour), Expired: true}
	assert.False(t, c.IsValid(now))
}

func TestCouponExtendExpiry(t *testing.T) {
	now := time.Now()
	expiry := now.Add(time.Hour)

	c := Coupon{ExpiryDate: expiry}
	assert.True(t, c.ExtendExpiry(7, now))
	assert.Equal(t, expiry.AddDate(0, 0, 7), c.ExpiryDate)
	assert.False(t, c.Expired)

	// Already past: no-op.
	c = Coupon{ExpiryDate: now.Add(-time.Hour), Expired: true}
	assert.False(t, c.ExtendExpiry(7, now))
	assert.Equal(t, now.Add(-time.Hour), c.ExpiryDate)
	assert.True(t, c.Expired)
}

func TestCouponDeactivateIdempotent(t *testing.T) {
	c := Coupon{ExpiryDate: time.Now().Add(time.Hour)}
	c.Deactivate()
	assert.True(t, c.Expired)
	c.Deactivate()
	assert.True(t, c.Expired)
}

func TestCouponDiscount(t *testing.T) {
	c := Coupon{DiscountPercentage: decimal.RequireFromString("10")}
	got := c.Discount(decimal.RequireFromString("20.00"))
	assert.True(t, got.Equal(decimal.RequireFromString("2.00")), "got %s", got)

	c = Coupon{DiscountPercentage: decimal.RequireFromString("12.5")}
	got = c.Discount(decimal.RequireFromString("19.99"))
	assert.True(t, got.Equal(decimal.RequireFromString("2.50")), "got %s", got)

	c = Coupon{DiscountPercentage: decimal.Zero}
	assert.True(t, c.Discount(decimal.RequireFromString("19.99")).IsZero())
}

func TestCouponCreateHooks(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Coupon{}))

	// Past expiry is rejected outright.
	bad := Coupon{
		DiscountPercentage: decimal.RequireFromString("10"),
		ExpiryDate:         time.Now().Add(-time.Hour),
	}
	assert.ErrorIs(t, db.Create(&bad).Error, ErrPastExpiry)

	// A blank code gets generated.
	good := Coupon{
		DiscountPercentage: decimal.RequireFromString("10"),
		ExpiryDate:         time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(&good).Error)
	assert.NotEmpty(t, good.Code)
}
