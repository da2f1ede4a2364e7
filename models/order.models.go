package models

// Order statuses as reported by the backend API
const (
	OrderStatusPending    = "PENDING"
	OrderStatusConfirmed  = "CONFIRMED"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCancelled  = "CANCELLED"
)

// OrderItemRequest is one line of a PlaceOrderRequest
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrderRequest is the payload for placing a new order
type PlaceOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// OrderItem is one line of a placed order
type OrderItem struct {
	ID              string  `json:"id"`
	ProductID       string  `json:"productId"`
	ProductName     string  `json:"productName"`
	ProductSKU      string  `json:"productSku"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
	Subtotal        float64 `json:"subtotal"`
}

// Order represents a user's order
type Order struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	OrderNumber string      `json:"orderNumber"`
	Status      string      `json:"status"`
	TotalAmount float64     `json:"totalAmount"`
	Items       []OrderItem `json:"items"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
}

// OrdersPage is the paginated order history response
type OrdersPage struct {
	Content       []Order `json:"content"`
	Page          int     `json:"page"`
	Size          int     `json:"size"`
	TotalElements int64   `json:"totalElements"`
	TotalPages    int     `json:"totalPages"`
}
