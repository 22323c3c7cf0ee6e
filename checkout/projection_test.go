package checkout

import (
	"errors"
	"testing"

	"github.com/Etherealite769/WildMartBeta0.0.0/models"
)

func projectionOrder() *models.Order {
	buyer := models.User{ID: 1, Username: "buyer", FullName: "Buyer One", Email: "buyer@example.com", Phone: "0912"}
	return &models.Order{
		ID:          5,
		OrderNumber: "ORD-ABCD1234",
		BuyerID:     1,
		Buyer:       &buyer,
		Subtotal:    dec("130.00"),
		ShippingFee: dec("6.50"),
		TotalAmount: dec("136.50"),
		OrderStatus: models.OrderStatusPending,
		Items: []models.OrderItem{
			{ProductID: 10, Product: models.Product{ID: 10, SellerID: 2, ProductName: "Headphones"}, Quantity: 1, UnitPrice: dec("100.00"), Subtotal: dec("100.00")},
			{ProductID: 11, Product: models.Product{ID: 11, SellerID: 3, ProductName: "Mouse"}, Quantity: 1, UnitPrice: dec("30.00"), Subtotal: dec("30.00")},
		},
	}
}

func TestBuyerOrderView(t *testing.T) {
	order := projectionOrder()
	view, err := BuyerOrderView(order, 1)
	if err != nil {
		t.Fatalf("buyer view: %v", err)
	}
	if len(view.Items) != 2 {
		t.Fatalf("buyer sees every line, got %d", len(view.Items))
	}
	if view.Buyer != nil {
		t.Fatalf("buyer view must not echo the buyer contact block")
	}
	if view.TotalAmount.StringFixed(2) != "136.50" {
		t.Fatalf("total expected 136.50, got %s", view.TotalAmount.StringFixed(2))
	}
}

func TestBuyerOrderView_WrongRequester(t *testing.T) {
	if _, err := BuyerOrderView(projectionOrder(), 9); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestSellerOrderView_FiltersToOwnLines(t *testing.T) {
	view, err := SellerOrderView(projectionOrder(), 2)
	if err != nil {
		t.Fatalf("seller view: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].ProductName != "Headphones" {
		t.Fatalf("seller 2 sees only its line, got %+v", view.Items)
	}
	if view.Buyer == nil || view.Buyer.Email != "buyer@example.com" {
		t.Fatalf("seller view must carry the buyer contact, got %+v", view.Buyer)
	}
}

func TestSellerOrderView_NonSellerForbidden(t *testing.T) {
	if _, err := SellerOrderView(projectionOrder(), 9); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
