package services

import (
	"context"
	"net/http"

	"go-storefront/models"
)

// OrderService calls the backend order endpoints. These return their
// payloads without the APIResponse envelope and require the bearer token
// plus the X-User-Id header, both attached from the request context.
type OrderService struct {
	client *Client
}

// NewOrderService creates a new OrderService
func NewOrderService(client *Client) *OrderService {
	return &OrderService{client: client}
}

// PlaceOrder places a new order
func (s *OrderService) PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (models.Order, error) {
	var order models.Order
	err := s.client.do(ctx, http.MethodPost, "/orders", nil, req, &order)
	return order, err
}

// GetMyOrders retrieves a page of the user's order history
func (s *OrderService) GetMyOrders(ctx context.Context, page, size int) (models.OrdersPage, error) {
	var result models.OrdersPage
	err := s.client.do(ctx, http.MethodGet, "/orders/my-orders", pageQuery(page, size), nil, &result)
	return result, err
}

// GetByID retrieves a single order
func (s *OrderService) GetByID(ctx context.Context, orderID string) (models.Order, error) {
	var order models.Order
	err := s.client.do(ctx, http.MethodGet, "/orders/"+orderID, nil, nil, &order)
	return order, err
}

// Cancel cancels an order
func (s *OrderService) Cancel(ctx context.Context, orderID string) (models.Order, error) {
	var order models.Order
	err := s.client.do(ctx, http.MethodPost, "/orders/"+orderID+"/cancel", nil, nil, &order)
	return order, err
}
