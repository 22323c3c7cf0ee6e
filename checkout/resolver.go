package checkout

import "github.com/Etherealite769/WildMartBeta0.0.0/models"

// ResolveLines converts the cart's items into the definitive list of lines to
// purchase. When selected is non-empty only matching item ids are kept; an
// empty selection means the whole cart.
//
// Stock is validated per line and resolution stops at the first shortage. The
// unit price is the snapshot taken when the item was added, falling back to
// the current product price for pre-snapshot rows.
func ResolveLines(cart *models.Cart, selected []uint) ([]ResolvedLine, error) {
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items := cart.Items
	if len(selected) > 0 {
		keep := make(map[uint]bool, len(selected))
		for _, id := range selected {
			keep[id] = true
		}
		filtered := make([]models.CartItem, 0, len(items))
		for _, item := range items {
			if keep[item.ID] {
				filtered = append(filtered, item)
			}
		}
		if len(filtered) == 0 {
			// Distinct from an empty cart: the cart has items, the
			// selection just doesn't name any of them.
			return nil, ErrNoMatchingItems
		}
		items = filtered
	}

	lines := make([]ResolvedLine, 0, len(items))
	for _, item := range items {
		product := item.Product
		if product.QuantityAvailable < item.Quantity {
			return nil, &InsufficientStockError{
				ProductName: product.ProductName,
				Available:   product.QuantityAvailable,
				Requested:   item.Quantity,
			}
		}
		unitPrice := product.Price
		if item.PriceAtAddition != nil {
			unitPrice = *item.PriceAtAddition
		}
		lines = append(lines, ResolvedLine{
			CartItemID: item.ID,
			Product:    product,
			Quantity:   item.Quantity,
			UnitPrice:  unitPrice,
		})
	}
	return lines, nil
}
