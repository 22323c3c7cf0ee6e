package checkout

import (
	"errors"
	"testing"
	"time"

	"github.com/Etherealite769/WildMartBeta0.0.0/models"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func activeVoucher() models.Voucher {
	return models.Voucher{
		ID:            1,
		DiscountCode:  "SAVE10",
		DiscountType:  models.DiscountTypePercentage,
		DiscountValue: dec("10"),
		ValidFrom:     testNow.AddDate(0, 0, -7),
		ValidUntil:    testNow.AddDate(0, 1, 0),
		IsActive:      true,
	}
}

func TestValidateVoucher_Percentage(t *testing.T) {
	v := activeVoucher()
	discount, err := ValidateVoucher(&v, dec("200.00"), dec("10.00"), testNow)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	// 10% of the subtotal only, not of subtotal+shipping
	if discount.StringFixed(2) != "20.00" {
		t.Fatalf("discount expected 20.00, got %s", discount.StringFixed(2))
	}
}

func TestValidateVoucher_PercentageRounding(t *testing.T) {
	v := activeVoucher()
	v.DiscountValue = dec("15")
	// 15% of 33.33 = 4.9995 -> 5.00 rounded half away from zero
	discount, err := ValidateVoucher(&v, dec("33.33"), dec("1.67"), testNow)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if discount.StringFixed(2) != "5.00" {
		t.Fatalf("discount expected 5.00, got %s", discount.StringFixed(2))
	}
}

func TestValidateVoucher_FixedAmount(t *testing.T) {
	v := activeVoucher()
	v.DiscountType = models.DiscountTypeFixedAmount
	v.DiscountValue = dec("100")
	discount, err := ValidateVoucher(&v, dec("500.00"), dec("25.00"), testNow)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if discount.StringFixed(2) != "100.00" {
		t.Fatalf("discount expected 100.00, got %s", discount.StringFixed(2))
	}
}

func TestValidateVoucher_ShippingEqualsFee(t *testing.T) {
	v := activeVoucher()
	v.DiscountType = models.DiscountTypeShipping
	v.DiscountValue = dec("0")
	discount, err := ValidateVoucher(&v, dec("200.00"), dec("10.00"), testNow)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if discount.StringFixed(2) != "10.00" {
		t.Fatalf("discount expected 10.00, got %s", discount.StringFixed(2))
	}
}

func TestValidateVoucher_ClampToOrderTotal(t *testing.T) {
	v := activeVoucher()
	v.DiscountType = models.DiscountTypeFixedAmount
	v.DiscountValue = dec("500")
	discount, err := ValidateVoucher(&v, dec("100.00"), dec("5.00"), testNow)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	// capped at subtotal + shipping so the total can never go negative
	if discount.StringFixed(2) != "105.00" {
		t.Fatalf("discount expected 105.00, got %s", discount.StringFixed(2))
	}
}

func TestValidateVoucher_Rejections(t *testing.T) {
	limit := 5

	tests := []struct {
		name    string
		mutate  func(*models.Voucher)
		wantErr error
	}{
		{"nil voucher", nil, ErrInvalidVoucherCode},
		{"inactive", func(v *models.Voucher) { v.IsActive = false }, ErrVoucherInactive},
		{"not yet valid", func(v *models.Voucher) { v.ValidFrom = testNow.Add(time.Hour) }, ErrVoucherNotYetValid},
		{"expired", func(v *models.Voucher) { v.ValidUntil = testNow.Add(-time.Hour) }, ErrVoucherExpired},
		{"limit reached", func(v *models.Voucher) { v.UsageLimit = &limit; v.UsageCount = 5 }, ErrVoucherLimitReached},
		{"minimum not met", func(v *models.Voucher) { v.MinimumOrderAmount = decPtr("300") }, ErrVoucherMinimumNotMet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var voucher *models.Voucher
			if tt.mutate != nil {
				v := activeVoucher()
				tt.mutate(&v)
				voucher = &v
			}
			_, err := ValidateVoucher(voucher, dec("200.00"), dec("10.00"), testNow)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateVoucher_BoundaryTimes(t *testing.T) {
	v := activeVoucher()
	v.ValidFrom = testNow
	v.ValidUntil = testNow
	// both bounds are inclusive
	if _, err := ValidateVoucher(&v, dec("200.00"), dec("10.00"), testNow); err != nil {
		t.Fatalf("voucher valid exactly at its bounds: %v", err)
	}
}

func TestValidateVoucher_MinimumExactlyMet(t *testing.T) {
	v := activeVoucher()
	v.MinimumOrderAmount = decPtr("200")
	if _, err := ValidateVoucher(&v, dec("200.00"), dec("10.00"), testNow); err != nil {
		t.Fatalf("subtotal equal to the minimum should pass: %v", err)
	}
}

func TestValidateVoucher_UsageUnderLimit(t *testing.T) {
	v := activeVoucher()
	v.UsageLimit = intPtr(5)
	v.UsageCount = 4
	if _, err := ValidateVoucher(&v, dec("200.00"), dec("10.00"), testNow); err != nil {
		t.Fatalf("one redemption left should pass: %v", err)
	}
}
