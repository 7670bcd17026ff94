package auth

import (
	"errors"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"gorm.io/gorm"

	"github.com/Dolapo001/Zentoria/models"
)

// otpOpts mirrors the original verification flow: 6-digit codes valid for a
// 10 minute window.
var otpOpts = totp.ValidateOpts{
	Period:    600,
	Skew:      1,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// GetOrCreateOTPSecret returns the user's TOTP secret, creating one on first
// use and touching UpdatedAt on every reissue.
func GetOrCreateOTPSecret(db *gorm.DB, userID uint) (string, error) {
	var record models.OTPSecret
	err := db.Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		key, genErr := totp.Generate(totp.GenerateOpts{
			Issuer:      "Zentoria",
			AccountName: "user",
		})
		if genErr != nil {
			return "", genErr
		}
		record = models.OTPSecret{UserID: userID, Secret: key.Secret()}
		if createErr := db.Create(&record).Error; createErr != nil {
			return "", createErr
		}
		return record.Secret, nil
	}
	if err != nil {
		return "", err
	}
	if err := db.Model(&record).Update("updated_at", time.Now()).Error; err != nil {
		return "", err
	}
	return record.Secret, nil
}

// GenerateOTP produces the current code for the secret.
func GenerateOTP(secret string) (string, error) {
	return totp.GenerateCodeCustom(secret, time.Now(), otpOpts)
}

// ValidateOTP checks a submitted code against the secret.
func ValidateOTP(secret, code string) bool {
	ok, err := totp.ValidateCustom(code, secret, time.Now(), otpOpts)
	return err == nil && ok
}
