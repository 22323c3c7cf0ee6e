package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	ProductStatusActive = "active"
	ProductStatusSold   = "sold" // stock exhausted; reverts to active when replenished
)

type Product struct {
	ID                uint            `gorm:"primaryKey;autoIncrement" json:"productId"`
	SellerID          uint            `gorm:"not null;index" json:"sellerId"`
	Seller            *User           `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	ProductName       string          `gorm:"not null" json:"productName"`
	Description       string          `json:"description"`
	Price             decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"price"`
	QuantityAvailable int             `gorm:"not null;default:0;check:quantity_available >= 0" json:"quantityAvailable"`
	Status            string          `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CategoryID        *uint           `json:"categoryId"`
	Category          *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ImageURL          string          `json:"imageUrl"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}
