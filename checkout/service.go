package checkout

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Etherealite769/WildMartBeta0.0.0/models"
)

// Service orchestrates checkout and the order status transitions. It is the
// sole caller of the resolver, voucher validator and assembler.
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Checkout converts the buyer's cart (or the selected subset of it) into an
// order within a single transaction. Any failure rolls back every write:
// validation happens before stock or voucher state is touched.
func (s *Service) Checkout(ctx context.Context, buyerID uint, in CheckoutInput) (*OrderSummary, error) {
	var summary *OrderSummary
	err := s.store.InTransaction(ctx, func(store Store) error {
		buyer, err := store.UserByID(ctx, buyerID)
		if err != nil {
			return err
		}
		cart, err := store.CartForCheckout(ctx, buyerID)
		if err != nil {
			return err
		}

		lines, err := ResolveLines(cart, in.SelectedItemIDs)
		if err != nil {
			return err
		}

		subtotal := Subtotal(lines)
		shippingFee := ComputeShippingFee(subtotal)

		discount := decimal.Zero
		var voucher *models.Voucher
		if code := strings.TrimSpace(in.VoucherCode); code != "" {
			voucher, err = store.VoucherByCode(ctx, code)
			if err != nil {
				return err
			}
			discount, err = ValidateVoucher(voucher, subtotal, shippingFee, s.now())
			if err != nil {
				return err
			}
		}

		order := AssembleOrder(buyer, lines, in.ShippingAddress, in.PaymentMethod,
			voucher, subtotal, shippingFee, discount, s.now())

		for _, line := range lines {
			if err := store.DecrementStock(ctx, line.Product.ID, line.Quantity); err != nil {
				return err
			}
		}
		if voucher != nil {
			if err := store.RedeemVoucher(ctx, voucher.ID); err != nil {
				return err
			}
		}
		if err := store.CreateOrder(ctx, order); err != nil {
			return err
		}

		// Two explicit outcomes: a selection prunes exactly the consumed
		// items, no selection clears the whole cart. This holds even when
		// the selection happens to cover every item.
		if len(in.SelectedItemIDs) > 0 {
			consumed := make([]uint, 0, len(lines))
			for _, line := range lines {
				consumed = append(consumed, line.CartItemID)
			}
			if err := store.RemoveCartItems(ctx, cart.CartID, consumed); err != nil {
				return err
			}
		} else {
			if err := store.ClearCart(ctx, cart.CartID); err != nil {
				return err
			}
		}

		summary = &OrderSummary{
			OrderID:         order.ID,
			OrderNumber:     order.OrderNumber,
			Subtotal:        order.Subtotal,
			ShippingFee:     order.ShippingFee,
			DiscountAmount:  order.DiscountAmount,
			TotalAmount:     order.TotalAmount,
			OrderStatus:     order.OrderStatus,
			PaymentStatus:   order.PaymentStatus,
			ShippingAddress: order.ShippingAddress,
			Message:         "Order placed successfully",
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// CancelOrder is the buyer-initiated Pending -> Cancelled transition. Any
// other source status is rejected.
func (s *Service) CancelOrder(ctx context.Context, buyerID, orderID uint) error {
	order, err := s.store.OrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.BuyerID != buyerID {
		return ErrForbidden
	}
	return s.store.UpdateOrderStatus(ctx, orderID, models.OrderStatusPending, models.OrderStatusCancelled)
}

// MarkDelivered is the seller-initiated delivery confirmation. Only a user who
// sells at least one item in the order may perform it; there is no source
// status restriction.
func (s *Service) MarkDelivered(ctx context.Context, sellerID, orderID uint, image string) error {
	order, err := s.store.OrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !sellsInOrder(order, sellerID) {
		return ErrForbidden
	}
	return s.store.MarkDelivered(ctx, orderID, image)
}

// BuyerOrders returns the buyer's order history as buyer views.
func (s *Service) BuyerOrders(ctx context.Context, buyerID uint) ([]OrderView, error) {
	orders, err := s.store.OrdersByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		view, err := BuyerOrderView(&orders[i], buyerID)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// BuyerOrder returns a single order as a buyer view, enforcing ownership.
func (s *Service) BuyerOrder(ctx context.Context, buyerID, orderID uint) (*OrderView, error) {
	order, err := s.store.OrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return BuyerOrderView(order, buyerID)
}

// SellerSales returns every order containing at least one of the seller's
// products, projected down to that seller's lines.
func (s *Service) SellerSales(ctx context.Context, sellerID uint) ([]OrderView, error) {
	orders, err := s.store.OrdersBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		view, err := SellerOrderView(&orders[i], sellerID)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

func sellsInOrder(order *models.Order, sellerID uint) bool {
	for _, item := range order.Items {
		if item.Product.SellerID == sellerID {
			return true
		}
	}
	return false
}
