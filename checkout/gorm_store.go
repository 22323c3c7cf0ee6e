package checkout

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Etherealite769/WildMartBeta0.0.0/models"
)

// GormStore implements Store on top of GORM/Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ Store = (*GormStore)(nil)

func (s *GormStore) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) CartForCheckout(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id") }).
		Where("user_id = ?", userID).
		First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	// Lock each product row for the rest of the transaction so the stock
	// check in resolution and the decrement below observe the same value.
	for i := range cart.Items {
		var product models.Product
		if err := s.db.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "id = ?", cart.Items[i].ProductID).Error; err != nil {
			return nil, err
		}
		cart.Items[i].Product = product
	}
	return &cart, nil
}

func (s *GormStore) VoucherByCode(ctx context.Context, code string) (*models.Voucher, error) {
	var voucher models.Voucher
	if err := s.db.WithContext(ctx).Where("discount_code = ?", code).First(&voucher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidVoucherCode
		}
		return nil, err
	}
	return &voucher, nil
}

func (s *GormStore) DecrementStock(ctx context.Context, productID uint, qty int) error {
	res := s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND quantity_available >= ?", productID, qty).
		UpdateColumn("quantity_available", gorm.Expr("quantity_available - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStockConflict
	}
	return s.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND quantity_available = 0", productID).
		UpdateColumn("status", models.ProductStatusSold).Error
}

func (s *GormStore) RedeemVoucher(ctx context.Context, voucherID uint) error {
	res := s.db.WithContext(ctx).Model(&models.Voucher{}).
		Where("id = ? AND (usage_limit IS NULL OR usage_count < usage_limit)", voucherID).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVoucherConflict
	}
	return nil
}

func (s *GormStore) CreateOrder(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *GormStore) RemoveCartItems(ctx context.Context, cartID uint, itemIDs []uint) error {
	if len(itemIDs) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("cart_id = ? AND id IN ?", cartID, itemIDs).
		Delete(&models.CartItem{}).Error
}

func (s *GormStore) ClearCart(ctx context.Context, cartID uint) error {
	return s.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).Error
}

func (s *GormStore) OrderByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.WithContext(ctx).
		Preload("Buyer").
		Preload("Items").
		Preload("Items.Product").
		Preload("Voucher").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (s *GormStore) OrdersByBuyer(ctx context.Context, buyerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Preload("Buyer").
		Preload("Items").
		Preload("Items.Product").
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (s *GormStore) OrdersBySeller(ctx context.Context, sellerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Distinct("orders.*").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.seller_id = ?", sellerID).
		Preload("Buyer").
		Preload("Items").
		Preload("Items.Product").
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (s *GormStore) UpdateOrderStatus(ctx context.Context, orderID uint, from, to models.OrderStatus) error {
	res := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND order_status = ?", orderID, from).
		Update("order_status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidStatusTransition
	}
	return nil
}

func (s *GormStore) MarkDelivered(ctx context.Context, orderID uint, image string) error {
	updates := map[string]interface{}{"order_status": models.OrderStatusDelivered}
	if image != "" {
		updates["delivery_confirmation_image"] = image
	}
	res := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *GormStore) InTransaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
