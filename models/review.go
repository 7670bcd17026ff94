package models

import "time"

type ProductReview struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   string    `gorm:"type:uuid;index;not null" json:"product_id"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	Rating      int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	ReviewText  string    `json:"review_text"`
	ReviewImage string    `json:"review_image"`
	ReviewDate  time.Time `gorm:"autoCreateTime" json:"review_date"`
}

type FavouriteProduct struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index:idx_fav_user_product,unique;not null" json:"user_id"`
	ProductID string    `gorm:"type:uuid;index:idx_fav_user_product,unique;not null" json:"product_id"`
	DateAdded time.Time `gorm:"autoCreateTime" json:"date_added"`
}
