package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypePercentage  DiscountType = "PERCENTAGE"
	DiscountTypeFixedAmount DiscountType = "FIXED_AMOUNT"
	DiscountTypeShipping    DiscountType = "SHIPPING"
)

type Voucher struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"voucherId"`
	DiscountCode string          `gorm:"uniqueIndex;not null" json:"discountCode"`
	DiscountType DiscountType    `gorm:"type:varchar(20);not null" json:"discountType"`
	// Percentage points for PERCENTAGE, currency amount for FIXED_AMOUNT,
	// unused for SHIPPING.
	DiscountValue      decimal.Decimal  `gorm:"type:numeric(15,2);not null" json:"discountValue"`
	MinimumOrderAmount *decimal.Decimal `gorm:"type:numeric(15,2)" json:"minimumOrderAmount"`
	ValidFrom          time.Time        `gorm:"not null" json:"validFrom"`
	ValidUntil         time.Time        `gorm:"not null" json:"validUntil"`
	UsageLimit         *int             `json:"usageLimit"`
	UsageCount         int              `gorm:"not null;default:0" json:"usageCount"`
	IsActive           bool             `gorm:"not null;default:true" json:"isActive"`
	CreatedAt          time.Time        `json:"createdAt"`
}
