package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Etherealite769/WildMartBeta0.0.0/models"
)

// OrderView is the read-side representation of an order for buyer and seller
// screens.
type OrderView struct {
	OrderID                   uint                 `json:"orderId"`
	OrderNumber               string               `json:"orderNumber"`
	Subtotal                  decimal.Decimal      `json:"subtotal"`
	ShippingFee               decimal.Decimal      `json:"shippingFee"`
	DiscountAmount            decimal.Decimal      `json:"discountAmount"`
	TotalAmount               decimal.Decimal      `json:"totalAmount"`
	OrderStatus               models.OrderStatus   `json:"orderStatus"`
	PaymentStatus             models.PaymentStatus `json:"paymentStatus"`
	ShippingAddress           string               `json:"shippingAddress"`
	DeliveryConfirmationImage string               `json:"deliveryConfirmationImage,omitempty"`
	OrderDate                 time.Time            `json:"orderDate"`
	UpdatedAt                 time.Time            `json:"updatedAt"`
	Items                     []OrderItemView      `json:"items"`
	Buyer                     *BuyerView           `json:"buyer,omitempty"`
}

type OrderItemView struct {
	ProductID   uint            `json:"productId"`
	ProductName string          `json:"productName"`
	ImageURL    string          `json:"imageUrl"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// BuyerView carries the contact fields a seller needs to fulfil an order.
type BuyerView struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// BuyerOrderView projects an order for its buyer. Requesters other than the
// buyer get ErrForbidden, never a silently filtered view.
func BuyerOrderView(order *models.Order, requesterID uint) (*OrderView, error) {
	if order.BuyerID != requesterID {
		return nil, ErrForbidden
	}
	view := projectOrder(order, order.Items)
	return view, nil
}

// SellerOrderView projects an order for a seller, keeping only that seller's
// lines and attaching the buyer's contact details. A requester who sells
// nothing in the order gets ErrForbidden.
func SellerOrderView(order *models.Order, requesterID uint) (*OrderView, error) {
	var items []models.OrderItem
	for _, item := range order.Items {
		if item.Product.SellerID == requesterID {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, ErrForbidden
	}
	view := projectOrder(order, items)
	if order.Buyer != nil {
		view.Buyer = &BuyerView{
			UserID:   order.Buyer.ID,
			Username: order.Buyer.Username,
			FullName: order.Buyer.FullName,
			Email:    order.Buyer.Email,
			Phone:    order.Buyer.Phone,
		}
	}
	return view, nil
}

func projectOrder(order *models.Order, items []models.OrderItem) *OrderView {
	view := &OrderView{
		OrderID:                   order.ID,
		OrderNumber:               order.OrderNumber,
		Subtotal:                  order.Subtotal,
		ShippingFee:               order.ShippingFee,
		DiscountAmount:            order.DiscountAmount,
		TotalAmount:               order.TotalAmount,
		OrderStatus:               order.OrderStatus,
		PaymentStatus:             order.PaymentStatus,
		ShippingAddress:           order.ShippingAddress,
		DeliveryConfirmationImage: order.DeliveryConfirmationImage,
		OrderDate:                 order.OrderDate,
		UpdatedAt:                 order.UpdatedAt,
		Items:                     make([]OrderItemView, 0, len(items)),
	}
	for _, item := range items {
		view.Items = append(view.Items, OrderItemView{
			ProductID:   item.ProductID,
			ProductName: item.Product.ProductName,
			ImageURL:    item.Product.ImageURL,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}
	return view
}
