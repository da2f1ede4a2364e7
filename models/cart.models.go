package models

// CartItem represents one product-and-quantity pairing in the active cart
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the derived snapshot of the active cart: the line items in
// insertion order plus the recomputed totals. It is never stored on its
// own; it is always a pure function of the line list.
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
}
