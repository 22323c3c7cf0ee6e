package checkout

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Etherealite769/WildMartBeta0.0.0/models"
)

// Flat shipping policy: 5% of the order subtotal.
var shippingRate = decimal.NewFromFloat(0.05)

// Subtotal accumulates quantity x unit price over the resolved lines.
func Subtotal(lines []ResolvedLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// ComputeShippingFee returns the 5% shipping fee, rounded to 2 fraction digits.
func ComputeShippingFee(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(shippingRate).Round(2)
}

// NewOrderNumber generates a human-readable order code. Uniqueness is enforced
// by the database index on order_number; collisions at 8 random hex chars are
// negligible.
func NewOrderNumber() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// AssembleOrder builds the immutable order graph from resolved cart lines.
// The shipping address falls back to the buyer's stored default when the
// caller-supplied one is blank. Payment processing does not exist, so orders
// are created with payment already completed.
func AssembleOrder(
	buyer *models.User,
	lines []ResolvedLine,
	shippingAddress, paymentMethod string,
	voucher *models.Voucher,
	subtotal, shippingFee, discount decimal.Decimal,
	now time.Time,
) *models.Order {
	if strings.TrimSpace(shippingAddress) == "" {
		shippingAddress = buyer.ShippingAddress
	}
	if paymentMethod == "" {
		paymentMethod = "Cash on Delivery"
	}

	order := &models.Order{
		BuyerID:         buyer.ID,
		OrderNumber:     NewOrderNumber(),
		Subtotal:        subtotal,
		ShippingFee:     shippingFee,
		DiscountAmount:  discount,
		TotalAmount:     subtotal.Add(shippingFee).Sub(discount),
		OrderStatus:     models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusCompleted,
		PaymentMethod:   paymentMethod,
		ShippingAddress: shippingAddress,
		OrderDate:       now,
		UpdatedAt:       now,
	}
	if voucher != nil {
		order.VoucherID = &voucher.ID
	}

	order.Items = make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}
	return order
}
