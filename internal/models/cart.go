package models

// CartItem and Cart mirror the server's cart representation. Subtotals,
// the item count and the grand total are computed server-side and are
// rendered as received, never recomputed locally.
type CartItem struct {
	ID       int     `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
	AddedAt  string  `json:"added_at,omitempty"`
}

type Cart struct {
	ID        int        `json:"id,omitempty"`
	UserID    int        `json:"user_id,omitempty"`
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"item_count"`
	Total     float64    `json:"total"`
}

// Empty reports whether the cart holds no items.
func (c *Cart) Empty() bool {
	return c == nil || len(c.Items) == 0
}

type AddToCartRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}
