package models

// LineItem represents a single product entry in the cart.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

// ProductStock is one entry of the catalog stock feed.
type ProductStock struct {
	ProductID     string `json:"productId"`
	StockQuantity int    `json:"stockQuantity"`
}
