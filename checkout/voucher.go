package checkout

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Etherealite769/WildMartBeta0.0.0/models"
)

var oneHundred = decimal.NewFromInt(100)

// ValidateVoucher evaluates a voucher against the order subtotal and the
// computed shipping fee, returning the authorized discount amount.
//
// It never mutates the voucher: incrementing the usage count is the
// orchestrator's job, so validation stays side-effect free and testable.
//
// Percentage discounts are rounded half away from zero at 2 fraction digits
// (decimal.Round); that mode is applied to every derived money value in this
// package.
func ValidateVoucher(v *models.Voucher, subtotal, shippingFee decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Zero, ErrInvalidVoucherCode
	}
	if !v.IsActive {
		return decimal.Zero, ErrVoucherInactive
	}
	if now.Before(v.ValidFrom) {
		return decimal.Zero, ErrVoucherNotYetValid
	}
	if now.After(v.ValidUntil) {
		return decimal.Zero, ErrVoucherExpired
	}
	if v.UsageLimit != nil && v.UsageCount >= *v.UsageLimit {
		return decimal.Zero, ErrVoucherLimitReached
	}
	if v.MinimumOrderAmount != nil && subtotal.LessThan(*v.MinimumOrderAmount) {
		return decimal.Zero, ErrVoucherMinimumNotMet
	}

	var discount decimal.Decimal
	switch v.DiscountType {
	case models.DiscountTypePercentage:
		discount = subtotal.Mul(v.DiscountValue).Div(oneHundred).Round(2)
	case models.DiscountTypeFixedAmount:
		discount = v.DiscountValue
	case models.DiscountTypeShipping:
		discount = shippingFee
	default:
		return decimal.Zero, fmt.Errorf("unknown discount type %q", v.DiscountType)
	}

	// A discount can never push the order total below zero.
	if max := subtotal.Add(shippingFee); discount.GreaterThan(max) {
		discount = max
	}
	return discount, nil
}
