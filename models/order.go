package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"   // placed, awaiting cancellation or delivery
	OrderStatusCancelled OrderStatus = "Cancelled" // buyer cancelled while still pending
	OrderStatusDelivered OrderStatus = "Delivered" // seller confirmed delivery

	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
)

type Order struct {
	ID                        uint            `gorm:"primaryKey;autoIncrement" json:"orderId"`
	BuyerID                   uint            `gorm:"not null;index" json:"buyerId"`
	Buyer                     *User           `gorm:"foreignKey:BuyerID" json:"buyer,omitempty"`
	Items                     []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	VoucherID                 *uint           `json:"voucherId,omitempty"`
	Voucher                   *Voucher        `gorm:"foreignKey:VoucherID" json:"voucher,omitempty"`
	OrderNumber               string          `gorm:"uniqueIndex;not null" json:"orderNumber"`
	Subtotal                  decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"subtotal"`
	ShippingFee               decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"shippingFee"`
	DiscountAmount            decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"discountAmount"`
	TotalAmount               decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"totalAmount"`
	OrderStatus               OrderStatus     `gorm:"type:varchar(20);not null;default:'Pending'" json:"orderStatus"`
	PaymentStatus             PaymentStatus   `gorm:"type:varchar(20);not null;default:'Pending'" json:"paymentStatus"`
	PaymentMethod             string          `json:"paymentMethod"`
	ShippingAddress           string          `json:"shippingAddress"`
	DeliveryConfirmationImage string          `json:"deliveryConfirmationImage,omitempty"`
	OrderDate                 time.Time       `json:"orderDate"`
	UpdatedAt                 time.Time       `json:"updatedAt"`
}

// OrderItem freezes a purchased line at checkout time. Never mutated.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"-"`
	ProductID uint            `gorm:"not null" json:"productId"`
	Product   Product         `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"unitPrice"`
	Subtotal  decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"subtotal"`
}
