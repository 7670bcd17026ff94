package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Category struct {
	ID               uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string `gorm:"not null" json:"name"`
	Icon             string `json:"icon"`
	Description      string `json:"description"`
	ParentCategoryID *uint  `json:"parent_category_id"`
	SubCategories    []SubCategory `gorm:"foreignKey:ParentCategoryID;constraint:OnDelete:CASCADE" json:"subcategories,omitempty"`
	Products         []Product     `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

type SubCategory struct {
	ID               uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string `gorm:"not null" json:"name"`
	ParentCategoryID uint   `gorm:"index" json:"parent_category_id"`
}

type Style struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Style string `gorm:"unique;not null" json:"style"`
}

type Size struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null" json:"name"` // e.g. "M", "XL", "M 9.5"
}

type Color struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

type Product struct {
	ID            string          `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string          `gorm:"not null" json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Quantity      int             `gorm:"not null;check:quantity >= 0" json:"quantity"`
	CategoryID    uint            `gorm:"index" json:"category_id"`
	SubCategoryID *uint           `json:"subcategory_id"`
	Image         string          `json:"image"`
	Specification string          `json:"specification"`
	StyleID       *uint           `json:"style_id"`
	StyleCode     string          `gorm:"uniqueIndex" json:"style_code"`
	Sizes         []Size          `gorm:"many2many:product_sizes" json:"available_sizes,omitempty"`
	Colors        []Color         `gorm:"many2many:product_colors" json:"available_colors,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate assigns the UUID primary key and a random style code when absent.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.StyleCode == "" {
		p.StyleCode = randomCode(5) // 5 bytes -> 10 hex chars
	}
	return nil
}

// IsAvailable reports whether the product can still be added to a cart.
func (p *Product) IsAvailable() bool {
	return p.Quantity > 0
}

func randomCode(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return uuid.NewString()[:n*2]
	}
	return hex.EncodeToString(bytes)
}
