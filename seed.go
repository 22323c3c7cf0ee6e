package main

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Etherealite769/WildMartBeta0.0.0/models"
)

// seedData populates default categories and sample vouchers when the tables
// are empty. Re-running is a no-op.
func seedData(db *gorm.DB) error {
	var categoryCount int64
	if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if categoryCount == 0 {
		names := []string{"electronics", "clothing", "books", "home", "accessories", "sports", "other"}
		for _, name := range names {
			if err := db.Create(&models.Category{CategoryName: name, IsActive: true}).Error; err != nil {
				return err
			}
			log.Printf("Created category: %s", name)
		}
	} else {
		log.Println("Categories already exist, skipping initialization")
	}

	var voucherCount int64
	if err := db.Model(&models.Voucher{}).Count(&voucherCount).Error; err != nil {
		return err
	}
	if voucherCount > 0 {
		log.Println("Vouchers already exist, skipping initialization")
		return nil
	}
	return seedSampleVouchers(db)
}

func seedSampleVouchers(db *gorm.DB) error {
	now := time.Now()
	intPtr := func(n int) *int { return &n }
	decPtr := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	vouchers := []models.Voucher{
		{
			DiscountCode:       "SAVE10",
			DiscountType:       models.DiscountTypePercentage,
			DiscountValue:      decimal.RequireFromString("10"),
			MinimumOrderAmount: decPtr("200"),
			ValidFrom:          now.AddDate(0, 0, -1),
			ValidUntil:         now.AddDate(0, 3, 0),
			UsageLimit:         intPtr(100),
			IsActive:           true,
		},
		{
			DiscountCode:       "SAVE100",
			DiscountType:       models.DiscountTypeFixedAmount,
			DiscountValue:      decimal.RequireFromString("100"),
			MinimumOrderAmount: decPtr("500"),
			ValidFrom:          now.AddDate(0, 0, -1),
			ValidUntil:         now.AddDate(0, 2, 0),
			UsageLimit:         intPtr(50),
			IsActive:           true,
		},
		{
			DiscountCode:       "FREESHIP",
			DiscountType:       models.DiscountTypeShipping,
			DiscountValue:      decimal.Zero, // unused for the shipping type
			MinimumOrderAmount: decPtr("300"),
			ValidFrom:          now.AddDate(0, 0, -1),
			ValidUntil:         now.AddDate(0, 1, 0),
			UsageLimit:         intPtr(30),
			IsActive:           true,
		},
	}
	for i := range vouchers {
		if err := db.Create(&vouchers[i]).Error; err != nil {
			return err
		}
		log.Printf("Created voucher: %s", vouchers[i].DiscountCode)
	}
	return nil
}
