package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cartId"`
	UserID    uint       `gorm:"uniqueIndex;not null" json:"-"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	Status    string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CartItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	CartID    uint    `gorm:"index;not null" json:"-"`
	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	// Price captured when the item was added. Nil for rows created before
	// price snapshotting; checkout falls back to the current product price.
	PriceAtAddition *decimal.Decimal `gorm:"type:numeric(15,2)" json:"priceAtAddition"`
	AddedAt         time.Time        `json:"addedAt"`
}
