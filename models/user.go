package models

import "time"

type User struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username       string     `gorm:"uniqueIndex;not null" json:"username"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string     `gorm:"not null" json:"-"`
	Fullname       string     `json:"fullname"`
	Gender         string     `json:"gender"` // "male" or "female"
	Birthday       *time.Time `json:"birthday"`
	ProfilePicture string     `json:"profile_picture"`
	Phone          string     `json:"phone"`
	Address        Address    `gorm:"embedded" json:"address"`
	Provider       string     `json:"provider"` // "local" or "google"
	IsVerified     bool       `json:"is_verified"`
	IsStaff        bool       `json:"is_staff"`
	Cart           Cart       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart,omitempty"`
	Orders         []Order    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Address is embedded in User (profile address, not the order shipping address).
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// OTPSecret holds the per-user TOTP secret behind email verification codes.
type OTPSecret struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Secret    string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
