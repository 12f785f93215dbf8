package models

// CartItem holds a snapshot of the artwork taken at add time, not a live
// reference into the catalog. At most one item exists per artwork id.
type CartItem struct {
	Artwork  Artwork `json:"artwork"`
	Quantity int     `json:"quantity"`
}

// CartView is the HTTP response shape for cart reads and mutations.
// Total and ItemCount are derived from the items on every request.
type CartView struct {
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}
