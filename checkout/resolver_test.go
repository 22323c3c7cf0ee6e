package checkout

import (
	"errors"
	"testing"

	"github.com/Etherealite769/WildMartBeta0.0.0/models"
)

func cartWith(items ...models.CartItem) *models.Cart {
	return &models.Cart{CartID: 1, UserID: 1, Status: "active", Items: items}
}

func TestResolveLines_EmptyCart(t *testing.T) {
	if _, err := ResolveLines(cartWith(), nil); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if _, err := ResolveLines(nil, nil); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("nil cart: expected ErrEmptyCart, got %v", err)
	}
}

func TestResolveLines_NoMatchingItems(t *testing.T) {
	cart := cartWith(models.CartItem{
		ID:        1,
		ProductID: 10,
		Product:   models.Product{ID: 10, ProductName: "Mug", Price: dec("50.00"), QuantityAvailable: 5},
		Quantity:  1,
	})
	_, err := ResolveLines(cart, []uint{99})
	// distinct failure from an empty cart
	if !errors.Is(err, ErrNoMatchingItems) {
		t.Fatalf("expected ErrNoMatchingItems, got %v", err)
	}
}

func TestResolveLines_SelectionSubset(t *testing.T) {
	cart := cartWith(
		models.CartItem{ID: 1, ProductID: 10, Product: models.Product{ID: 10, Price: dec("50.00"), QuantityAvailable: 5}, Quantity: 1},
		models.CartItem{ID: 2, ProductID: 11, Product: models.Product{ID: 11, Price: dec("30.00"), QuantityAvailable: 5}, Quantity: 2},
	)
	lines, err := ResolveLines(cart, []uint{2})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(lines) != 1 || lines[0].CartItemID != 2 || lines[0].Quantity != 2 {
		t.Fatalf("expected only item 2, got %+v", lines)
	}
}

func TestResolveLines_InsufficientStock(t *testing.T) {
	cart := cartWith(
		models.CartItem{ID: 1, ProductID: 10, Product: models.Product{ID: 10, ProductName: "Lamp", Price: dec("80.00"), QuantityAvailable: 1}, Quantity: 3},
		models.CartItem{ID: 2, ProductID: 11, Product: models.Product{ID: 11, ProductName: "Desk", Price: dec("200.00"), QuantityAvailable: 0}, Quantity: 1},
	)
	_, err := ResolveLines(cart, nil)
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	// resolution stops at the first failing line
	if stockErr.ProductName != "Lamp" || stockErr.Available != 1 || stockErr.Requested != 3 {
		t.Fatalf("unexpected fields: %+v", stockErr)
	}
}

func TestResolveLines_PriceSnapshot(t *testing.T) {
	snapshot := dec("90.00")
	cart := cartWith(
		models.CartItem{ID: 1, ProductID: 10, Product: models.Product{ID: 10, Price: dec("100.00"), QuantityAvailable: 5}, Quantity: 1, PriceAtAddition: &snapshot},
		// pre-snapshot row: falls back to the current product price
		models.CartItem{ID: 2, ProductID: 11, Product: models.Product{ID: 11, Price: dec("40.00"), QuantityAvailable: 5}, Quantity: 1},
	)
	lines, err := ResolveLines(cart, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !lines[0].UnitPrice.Equal(dec("90.00")) {
		t.Fatalf("line 0 expected snapshot price 90.00, got %s", lines[0].UnitPrice)
	}
	if !lines[1].UnitPrice.Equal(dec("40.00")) {
		t.Fatalf("line 1 expected current price 40.00, got %s", lines[1].UnitPrice)
	}
}

func TestResolveLines_ExactStockPasses(t *testing.T) {
	cart := cartWith(models.CartItem{
		ID: 1, ProductID: 10,
		Product:  models.Product{ID: 10, Price: dec("10.00"), QuantityAvailable: 2},
		Quantity: 2,
	})
	lines, err := ResolveLines(cart, nil)
	if err != nil {
		t.Fatalf("requesting exactly the available stock should pass: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
}
