package checkout

import (
	"context"

	"github.com/Etherealite769/WildMartBeta0.0.0/models"
)

// Store is the persistence surface the checkout service runs against. The
// production implementation is GORM over Postgres; tests use an in-memory
// store with the same conditional-update semantics.
type Store interface {
	UserByID(ctx context.Context, id uint) (*models.User, error)

	// CartForCheckout loads the user's cart with items and their products,
	// taking row locks on the products so stock cannot change between the
	// resolution check and the decrement.
	CartForCheckout(ctx context.Context, userID uint) (*models.Cart, error)

	// VoucherByCode looks a voucher up by its exact (trimmed) code.
	// Returns ErrInvalidVoucherCode when no such code exists.
	VoucherByCode(ctx context.Context, code string) (*models.Voucher, error)

	// DecrementStock atomically subtracts qty from the product's stock,
	// refusing with ErrStockConflict if that would go negative. A product
	// reaching zero is flagged sold.
	DecrementStock(ctx context.Context, productID uint, qty int) error

	// RedeemVoucher atomically increments the usage count, refusing with
	// ErrVoucherConflict once the usage limit is reached.
	RedeemVoucher(ctx context.Context, voucherID uint) error

	CreateOrder(ctx context.Context, order *models.Order) error

	RemoveCartItems(ctx context.Context, cartID uint, itemIDs []uint) error
	ClearCart(ctx context.Context, cartID uint) error

	OrderByID(ctx context.Context, id uint) (*models.Order, error)
	OrdersByBuyer(ctx context.Context, buyerID uint) ([]models.Order, error)
	OrdersBySeller(ctx context.Context, sellerID uint) ([]models.Order, error)

	// UpdateOrderStatus transitions only when the current status matches
	// from; otherwise ErrInvalidStatusTransition.
	UpdateOrderStatus(ctx context.Context, orderID uint, from, to models.OrderStatus) error

	// MarkDelivered sets the status to Delivered with an optional delivery
	// confirmation image, regardless of the current status.
	MarkDelivered(ctx context.Context, orderID uint, image string) error

	// InTransaction runs fn against a transactional view of the store; any
	// error rolls every write back.
	InTransaction(ctx context.Context, fn func(Store) error) error
}
