package cart

import "devbady/models"

// Pure cart operations. Every function returns a new slice and leaves its
// input untouched; callers persist the result. Operations on ids not in
// the cart are silent no-ops, never errors.

// Add merges product into items: an existing line gains quantity+1, a new
// product is appended with quantity 1. Order of untouched lines is kept.
func Add(items []models.CartItem, product models.Product) []models.CartItem {
	out := make([]models.CartItem, 0, len(items)+1)
	merged := false
	for _, it := range items {
		if it.ProductID == product.ProductID {
			it.Quantity++
			merged = true
		}
		out = append(out, it)
	}
	if !merged {
		out = append(out, models.CartItem{
			ProductID:   product.ProductID,
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			Category:    product.Category,
			Image:       product.Image,
			Quantity:    1,
		})
	}
	return out
}

// Remove drops the line with the given product id.
func Remove(items []models.CartItem, id string) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if it.ProductID != id {
			out = append(out, it)
		}
	}
	return out
}

// UpdateQuantity sets the matching line's quantity to max(1, n). A request
// below 1 clamps rather than removing the line; removal is only ever
// explicit via Remove.
func UpdateQuantity(items []models.CartItem, id string, n int) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if it.ProductID == id {
			if n < 1 {
				n = 1
			}
			it.Quantity = n
		}
		out = append(out, it)
	}
	return out
}

// Clear returns an empty, non-nil cart.
func Clear(items []models.CartItem) []models.CartItem {
	return []models.CartItem{}
}

// Total is the sum of price times quantity across all lines.
func Total(items []models.CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// Count is the total number of units, the number the navbar badge shows.
func Count(items []models.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
