package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/Etherealite769/WildMartBeta0.0.0/models"
)

// ResolvedLine is a cart line that passed selection filtering and stock
// validation, ready to become an order item.
type ResolvedLine struct {
	CartItemID uint
	Product    models.Product
	Quantity   int
	UnitPrice  decimal.Decimal
}

// CheckoutInput carries the buyer-supplied checkout parameters.
type CheckoutInput struct {
	SelectedItemIDs []uint // empty means "check out the whole cart"
	ShippingAddress string
	PaymentMethod   string
	VoucherCode     string
}

// OrderSummary is the checkout response payload.
type OrderSummary struct {
	OrderID         uint                 `json:"orderId"`
	OrderNumber     string               `json:"orderNumber"`
	Subtotal        decimal.Decimal      `json:"subtotal"`
	ShippingFee     decimal.Decimal      `json:"shippingFee"`
	DiscountAmount  decimal.Decimal      `json:"discountAmount"`
	TotalAmount     decimal.Decimal      `json:"totalAmount"`
	OrderStatus     models.OrderStatus   `json:"orderStatus"`
	PaymentStatus   models.PaymentStatus `json:"paymentStatus"`
	ShippingAddress string               `json:"shippingAddress"`
	Message         string               `json:"message"`
}
