package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dolapo001/Zentoria/models"
)

func TestMarkExpiredCoupons(t *testing.T) {
	db := setupDB(t)

	fresh := models.Coupon{
		Code:               "FRESH",
		DiscountPercentage: decimal.RequireFromString("5"),
		ExpiryDate:         time.Now().Add(48 * time.Hour),
	}
	stale := models.Coupon{
		Code:               "STALE",
		DiscountPercentage: decimal.RequireFromString("5"),
		ExpiryDate:         time.Now().Add(time.Hour),
	}
	require.NoError(t, db.Create(&fresh).Error)
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Model(&models.Coupon{}).Where("id = ?", stale.ID).
		Update("expiry_date", time.Now().Add(-time.Minute)).Error)

	n, err := MarkExpiredCoupons(db, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var gotStale models.Coupon
	require.NoError(t, db.First(&gotStale, stale.ID).Error)
	assert.True(t, gotStale.Expired)

	var gotFresh models.Coupon
	require.NoError(t, db.First(&gotFresh, fresh.ID).Error)
	assert.False(t, gotFresh.Expired)

	// Second sweep finds nothing new.
	n, err = MarkExpiredCoupons(db, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}
