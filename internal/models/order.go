package models

type OrderItem struct {
	ID              int     `json:"id,omitempty"`
	ProductID       int     `json:"product_id,omitempty"`
	ProductName     string  `json:"product_name"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase,omitempty"`
	Subtotal        float64 `json:"subtotal"`
}

// Order is immutable from the client's perspective once placed.
type Order struct {
	ID              int         `json:"id"`
	OrderNumber     string      `json:"order_number"`
	UserID          int         `json:"user_id"`
	Status          string      `json:"status"`
	TotalAmount     float64     `json:"total_amount"`
	ShippingAddress string      `json:"shipping_address"`
	PaymentMethod   string      `json:"payment_method,omitempty"`
	PaymentStatus   string      `json:"payment_status,omitempty"`
	Items           []OrderItem `json:"items"`
	CreatedAt       string      `json:"created_at"`
	UpdatedAt       string      `json:"updated_at,omitempty"`
}

type PlaceOrderRequest struct {
	UserID          int    `json:"user_id"`
	ShippingAddress string `json:"shipping_address"`
	PaymentMethod   string `json:"payment_method"`
}
