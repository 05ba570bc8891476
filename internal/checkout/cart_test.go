package checkout

import (
	"testing"

	"storefront/internal/models"
)

func snapshot(stocks map[string]int) *StockSnapshot {
	list := make([]models.ProductStock, 0, len(stocks))
	for id, qty := range stocks {
		list = append(list, models.ProductStock{ProductID: id, StockQuantity: qty})
	}
	return NewStockSnapshot(list)
}

func TestAvailableDefaultsToZeroForUnknownProduct(t *testing.T) {
	s := snapshot(map[string]int{"p1": 3})
	if got := s.Available("p1"); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if got := s.Available("ghost"); got != 0 {
		t.Fatalf("unknown product must report 0 stock, got %d", got)
	}
}

func TestSetQuantityEnforcesBounds(t *testing.T) {
	cart := NewCart(snapshot(map[string]int{"p1": 5}))
	cart.AddItem(models.LineItem{ProductID: "p1", Name: "Mango", UnitPrice: 100, Quantity: 2})

	tests := []struct {
		requested int
		applied   bool
		want      int
	}{
		{3, true, 3},
		{0, false, 3},
		{-1, false, 3},
		{6, false, 3},
		{5, true, 5},
		{1, true, 1},
	}
	for _, tt := range tests {
		if got := cart.SetQuantity("p1", tt.requested); got != tt.applied {
			t.Fatalf("SetQuantity(%d) applied=%v, want %v", tt.requested, got, tt.applied)
		}
		if qty := cart.Items()[0].Quantity; qty != tt.want {
			t.Fatalf("after SetQuantity(%d) quantity=%d, want %d", tt.requested, qty, tt.want)
		}
	}
}

func TestRapidIncrementsCannotExceedStock(t *testing.T) {
	cart := NewCart(snapshot(map[string]int{"p1": 3}))
	cart.AddItem(models.LineItem{ProductID: "p1", UnitPrice: 10, Quantity: 1})

	for i := 0; i < 10; i++ {
		current := cart.Items()[0].Quantity
		cart.SetQuantity("p1", current+1)
	}

	if qty := cart.Items()[0].Quantity; qty != 3 {
		t.Fatalf("expected quantity capped at 3, got %d", qty)
	}
}

func TestQuantityInvariantUnderArbitrarySequence(t *testing.T) {
	stocks := map[string]int{"p1": 4, "p2": 1}
	cart := NewCart(snapshot(stocks))
	cart.AddItem(models.LineItem{ProductID: "p1", UnitPrice: 10, Quantity: 2})
	cart.AddItem(models.LineItem{ProductID: "p2", UnitPrice: 20, Quantity: 1})

	requests := []struct {
		id  string
		qty int
	}{
		{"p1", 7}, {"p1", -2}, {"p2", 2}, {"p1", 4}, {"p2", 0}, {"p1", 1}, {"p2", 1},
	}
	for _, r := range requests {
		cart.SetQuantity(r.id, r.qty)
		for _, item := range cart.Items() {
			if item.Quantity < 1 || item.Quantity > stocks[item.ProductID] {
				t.Fatalf("invariant broken for %s: quantity=%d stock=%d", item.ProductID, item.Quantity, stocks[item.ProductID])
			}
		}
	}
}

func TestSetQuantityOnMissingItem(t *testing.T) {
	cart := NewCart(snapshot(map[string]int{"p1": 5}))
	if cart.SetQuantity("p1", 2) {
		t.Fatal("expected SetQuantity to fail for an item not in the cart")
	}
	if cart.Len() != 0 {
		t.Fatal("SetQuantity must not create lines")
	}
}

func TestAddItemClampsAndRejects(t *testing.T) {
	cart := NewCart(snapshot(map[string]int{"p1": 2, "gone": 0}))

	if cart.AddItem(models.LineItem{ProductID: "gone", UnitPrice: 5, Quantity: 1}) {
		t.Fatal("expected out-of-stock add to be rejected")
	}

	if !cart.AddItem(models.LineItem{ProductID: "p1", UnitPrice: 5, Quantity: 9}) {
		t.Fatal("expected add to succeed")
	}
	if qty := cart.Items()[0].Quantity; qty != 2 {
		t.Fatalf("expected quantity clamped to 2, got %d", qty)
	}

	cart.AddItem(models.LineItem{ProductID: "p1", UnitPrice: 5, Quantity: 1})
	if qty := cart.Items()[0].Quantity; qty != 2 {
		t.Fatalf("repeat add must stay clamped at 2, got %d", qty)
	}
	if cart.Len() != 1 {
		t.Fatalf("repeat add must not create a second line, got %d lines", cart.Len())
	}
}

func TestRemoveItemAlwaysSucceeds(t *testing.T) {
	cart := NewCart(snapshot(map[string]int{"p1": 5}))
	cart.AddItem(models.LineItem{ProductID: "p1", UnitPrice: 10, Quantity: 2})

	cart.RemoveItem("p1")
	if cart.Len() != 0 {
		t.Fatal("expected item removed")
	}
	// Removing an absent item is a no-op, not an error.
	cart.RemoveItem("p1")
}

func TestSubtotal(t *testing.T) {
	cart := NewCart(snapshot(map[string]int{"p1": 10, "p2": 10}))
	cart.AddItem(models.LineItem{ProductID: "p1", UnitPrice: 100, Quantity: 2})
	cart.AddItem(models.LineItem{ProductID: "p2", UnitPrice: 50, Quantity: 1})

	if got := cart.Subtotal(); got != 250 {
		t.Fatalf("expected subtotal 250, got %v", got)
	}
}
