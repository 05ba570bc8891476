package checkout

import "storefront/internal/models"

// Cart holds the session's line items in insertion order. All quantity
// mutations re-check the stock snapshot, so a line never exceeds the last
// known stock and is never below 1.
type Cart struct {
	items []models.LineItem
	stock *StockSnapshot
}

func NewCart(stock *StockSnapshot) *Cart {
	return &Cart{stock: stock}
}

// AddItem inserts the item, or raises the quantity of an existing line by
// item.Quantity. The resulting quantity is clamped to available stock; an
// out-of-stock product is rejected entirely.
func (c *Cart) AddItem(item models.LineItem) bool {
	available := c.stock.Available(item.ProductID)
	if available <= 0 || item.Quantity <= 0 {
		return false
	}

	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			next := c.items[i].Quantity + item.Quantity
			if next > available {
				next = available
			}
			c.items[i].Quantity = next
			return true
		}
	}

	if item.Quantity > available {
		item.Quantity = available
	}
	c.items = append(c.items, item)
	return true
}

// SetQuantity mutates the line to requested only when the bound
// 0 < requested <= available holds; otherwise the prior quantity is kept and
// the call reports false. This is a silent clamp, not a surfaced validation
// failure. Increment and decrement are independent SetQuantity calls, each
// re-checked, so rapid repeats cannot exceed the bound.
func (c *Cart) SetQuantity(productID string, requested int) bool {
	if requested <= 0 || requested > c.stock.Available(productID) {
		return false
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = requested
			return true
		}
	}
	return false
}

// RemoveItem deletes the line. Always succeeds.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Items() []models.LineItem {
	items := make([]models.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Subtotal() float64 {
	var subtotal float64
	for _, item := range c.items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	return subtotal
}

func (c *Cart) Clear() {
	c.items = nil
}
