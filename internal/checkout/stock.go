// Package checkout owns the cart, billing form and order submission state
// for one storefront session, plus post-purchase order tracking.
package checkout

import "storefront/internal/models"

// StockSnapshot is the per-session view of available stock, fetched once at
// session start. It is a bound check, not a reservation: real enforcement
// happens at the fulfillment service on submission.
type StockSnapshot struct {
	stocks map[string]int
}

func NewStockSnapshot(list []models.ProductStock) *StockSnapshot {
	stocks := make(map[string]int, len(list))
	for _, p := range list {
		if p.StockQuantity > 0 {
			stocks[p.ProductID] = p.StockQuantity
		}
	}
	return &StockSnapshot{stocks: stocks}
}

// Available returns the last known stock for a product. Unknown products
// report 0: unknown means unavailable, never unlimited.
func (s *StockSnapshot) Available(productID string) int {
	return s.stocks[productID]
}
