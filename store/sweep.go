package store

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/models"
)

// MarkExpiredCoupons flips the expired flag on every coupon whose expiry has
// passed. The flag is only a cache; IsValid stays authoritative either way.
func MarkExpiredCoupons(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Model(&models.Coupon{}).
		Where("expired = ? AND expiry_date <= ?", false, now).
		Update("expired", true)
	return res.RowsAffected, res.Error
}

// StartCouponSweep runs MarkExpiredCoupons on a fixed interval. Meant to be
// launched as a goroutine from main.
func StartCouponSweep(db *gorm.DB, interval time.Duration) {
	for {
		time.Sleep(interval)
		n, err := MarkExpiredCoupons(db, time.Now())
		if err != nil {
			log.Printf("❌ Coupon sweep failed: %v", err)
			continue
		}
		if n > 0 {
			log.Printf("🧹 Coupon sweep marked %d coupon(s) expired", n)
		}
	}
}
