package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Etherealite769/WildMartBeta0.0.0/models"
)

// memStore is an in-memory Store with the same conditional-update semantics
// as the GORM implementation. Mutations go through value copies, so a shallow
// snapshot of the maps is enough to roll a failed transaction back.
type memStore struct {
	mu          sync.Mutex
	users       map[uint]models.User
	products    map[uint]models.Product
	carts       map[uint]models.Cart // keyed by CartID
	vouchers    map[uint]models.Voucher
	orders      map[uint]models.Order
	nextCartID  uint
	nextItemID  uint
	nextOrderID uint
}

var _ Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		users:       make(map[uint]models.User),
		products:    make(map[uint]models.Product),
		carts:       make(map[uint]models.Cart),
		vouchers:    make(map[uint]models.Voucher),
		orders:      make(map[uint]models.Order),
		nextCartID:  1,
		nextItemID:  1,
		nextOrderID: 1,
	}
}

// ---- seeding helpers ----

func (m *memStore) addUser(u models.User) models.User {
	m.users[u.ID] = u
	return u
}

func (m *memStore) addProduct(p models.Product) models.Product {
	if p.Status == "" {
		p.Status = models.ProductStatusActive
	}
	m.products[p.ID] = p
	return p
}

func (m *memStore) addVoucher(v models.Voucher) models.Voucher {
	m.vouchers[v.ID] = v
	return v
}

// addCart creates a cart for the user and returns it with item ids assigned.
func (m *memStore) addCart(userID uint, items ...models.CartItem) models.Cart {
	cart := models.Cart{CartID: m.nextCartID, UserID: userID, Status: "active"}
	m.nextCartID++
	for _, item := range items {
		item.ID = m.nextItemID
		m.nextItemID++
		item.CartID = cart.CartID
		cart.Items = append(cart.Items, item)
	}
	m.carts[cart.CartID] = cart
	return cart
}

// ---- Store implementation ----

func (m *memStore) UserByID(_ context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (m *memStore) CartForCheckout(_ context.Context, userID uint) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cart := range m.carts {
		if cart.UserID != userID {
			continue
		}
		out := cart
		out.Items = make([]models.CartItem, len(cart.Items))
		copy(out.Items, cart.Items)
		for i := range out.Items {
			out.Items[i].Product = m.products[out.Items[i].ProductID]
		}
		return &out, nil
	}
	return nil, ErrCartNotFound
}

func (m *memStore) VoucherByCode(_ context.Context, code string) (*models.Voucher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.vouchers {
		if v.DiscountCode == code {
			out := v
			return &out, nil
		}
	}
	return nil, ErrInvalidVoucherCode
}

func (m *memStore) DecrementStock(_ context.Context, productID uint, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[productID]
	if !ok || p.QuantityAvailable < qty {
		return ErrStockConflict
	}
	p.QuantityAvailable -= qty
	if p.QuantityAvailable == 0 {
		p.Status = models.ProductStatusSold
	}
	m.products[productID] = p
	return nil
}

func (m *memStore) RedeemVoucher(_ context.Context, voucherID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vouchers[voucherID]
	if !ok {
		return ErrVoucherConflict
	}
	if v.UsageLimit != nil && v.UsageCount >= *v.UsageLimit {
		return ErrVoucherConflict
	}
	v.UsageCount++
	m.vouchers[voucherID] = v
	return nil
}

func (m *memStore) CreateOrder(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order.ID = m.nextOrderID
	m.nextOrderID++
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	m.orders[order.ID] = *order
	return nil
}

func (m *memStore) RemoveCartItems(_ context.Context, cartID uint, itemIDs []uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart, ok := m.carts[cartID]
	if !ok {
		return ErrCartNotFound
	}
	drop := make(map[uint]bool, len(itemIDs))
	for _, id := range itemIDs {
		drop[id] = true
	}
	kept := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if !drop[item.ID] {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
	m.carts[cartID] = cart
	return nil
}

func (m *memStore) ClearCart(_ context.Context, cartID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cart, ok := m.carts[cartID]
	if !ok {
		return ErrCartNotFound
	}
	cart.Items = nil
	m.carts[cartID] = cart
	return nil
}

func (m *memStore) OrderByID(_ context.Context, id uint) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	out := order
	out.Items = make([]models.OrderItem, len(order.Items))
	copy(out.Items, order.Items)
	for i := range out.Items {
		out.Items[i].Product = m.products[out.Items[i].ProductID]
	}
	if buyer, ok := m.users[order.BuyerID]; ok {
		out.Buyer = &buyer
	}
	return &out, nil
}

func (m *memStore) OrdersByBuyer(ctx context.Context, buyerID uint) ([]models.Order, error) {
	m.mu.Lock()
	ids := make([]uint, 0, len(m.orders))
	for id, order := range m.orders {
		if order.BuyerID == buyerID {
			ids = append(ids, id)
		}
	}
	m.mu.Unlock()

	orders := make([]models.Order, 0, len(ids))
	for _, id := range ids {
		order, err := m.OrderByID(ctx, id)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (m *memStore) OrdersBySeller(ctx context.Context, sellerID uint) ([]models.Order, error) {
	m.mu.Lock()
	ids := make([]uint, 0, len(m.orders))
	for id, order := range m.orders {
		for _, item := range order.Items {
			if p, ok := m.products[item.ProductID]; ok && p.SellerID == sellerID {
				ids = append(ids, id)
				break
			}
		}
	}
	m.mu.Unlock()

	orders := make([]models.Order, 0, len(ids))
	for _, id := range ids {
		order, err := m.OrderByID(ctx, id)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

func (m *memStore) UpdateOrderStatus(_ context.Context, orderID uint, from, to models.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok || order.OrderStatus != from {
		return ErrInvalidStatusTransition
	}
	order.OrderStatus = to
	order.UpdatedAt = time.Now()
	m.orders[orderID] = order
	return nil
}

func (m *memStore) MarkDelivered(_ context.Context, orderID uint, image string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}
	order.OrderStatus = models.OrderStatusDelivered
	if image != "" {
		order.DeliveryConfirmationImage = image
	}
	order.UpdatedAt = time.Now()
	m.orders[orderID] = order
	return nil
}

// InTransaction snapshots the maps and restores them when fn fails, matching
// the rollback semantics of the real database transaction.
func (m *memStore) InTransaction(_ context.Context, fn func(Store) error) error {
	m.mu.Lock()
	users := cloneMap(m.users)
	products := cloneMap(m.products)
	carts := cloneMap(m.carts)
	vouchers := cloneMap(m.vouchers)
	orders := cloneMap(m.orders)
	m.mu.Unlock()

	if err := fn(m); err != nil {
		m.mu.Lock()
		m.users = users
		m.products = products
		m.carts = carts
		m.vouchers = vouchers
		m.orders = orders
		m.mu.Unlock()
		return err
	}
	return nil
}

func cloneMap[K comparable, V any](src map[K]V) map[K]V {
	dst := make(map[K]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// dec parses a decimal literal for tests.
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func intPtr(n int) *int {
	return &n
}
