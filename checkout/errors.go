package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrNoMatchingItems = errors.New("no cart items match the selected ids")

	ErrInvalidVoucherCode   = errors.New("invalid voucher code")
	ErrVoucherInactive      = errors.New("this voucher is no longer active")
	ErrVoucherNotYetValid   = errors.New("this voucher is not yet valid")
	ErrVoucherExpired       = errors.New("this voucher has expired")
	ErrVoucherLimitReached  = errors.New("this voucher has reached its usage limit")
	ErrVoucherMinimumNotMet = errors.New("minimum order amount not met for this voucher")

	ErrForbidden               = errors.New("unauthorized access to this order")
	ErrInvalidStatusTransition = errors.New("only pending orders can be cancelled")

	// Conflict errors: a conditional update found the row already changed by a
	// concurrent checkout. The transaction is rolled back; the caller may retry.
	ErrStockConflict   = errors.New("product stock changed during checkout, please try again")
	ErrVoucherConflict = errors.New("voucher usage limit was reached during checkout, please try again")
)

// InsufficientStockError reports the first cart line whose requested quantity
// exceeds the available stock.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product: %s (available %d, requested %d)",
		e.ProductName, e.Available, e.Requested)
}
