package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/models"
)

func TestOrderServicePlaceOrderAttachesCredentials(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "user-1", r.Header.Get("X-User-Id"))

		var req models.PlaceOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Items, 1)
		assert.Equal(t, "p1", req.Items[0].ProductID)
		assert.Equal(t, 2, req.Items[0].Quantity)

		json.NewEncoder(w).Encode(models.Order{
			ID:          "o1",
			OrderNumber: "ORD-001",
			Status:      models.OrderStatusPending,
			TotalAmount: 20.00,
		})
	}))
	defer backend.Close()

	orders := NewOrderService(NewClient(backend.URL, testLogger()))
	ctx := WithUserID(WithToken(context.Background(), "token-123"), "user-1")

	order, err := orders.PlaceOrder(ctx, models.PlaceOrderRequest{
		Items: []models.OrderItemRequest{{ProductID: "p1", Quantity: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, "ORD-001", order.OrderNumber)
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestOrderServiceGetMyOrders(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/my-orders", r.URL.Path)
		assert.Equal(t, "0", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("size"))

		json.NewEncoder(w).Encode(models.OrdersPage{
			Content:       []models.Order{{ID: "o1"}, {ID: "o2"}},
			TotalElements: 2,
			TotalPages:    1,
		})
	}))
	defer backend.Close()

	orders := NewOrderService(NewClient(backend.URL, testLogger()))
	page, err := orders.GetMyOrders(context.Background(), 0, 10)

	require.NoError(t, err)
	require.Len(t, page.Content, 2)
	assert.Equal(t, int64(2), page.TotalElements)
}

func TestOrderServiceCancel(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders/o1/cancel", r.URL.Path)
		json.NewEncoder(w).Encode(models.Order{ID: "o1", Status: models.OrderStatusCancelled})
	}))
	defer backend.Close()

	orders := NewOrderService(NewClient(backend.URL, testLogger()))
	order, err := orders.Cancel(context.Background(), "o1")

	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, order.Status)
}

func TestAuthServiceLogin(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "jane@example.com", req.Email)

		json.NewEncoder(w).Encode(models.AuthResponse{
			Token:  "token-123",
			UserID: "user-1",
			Email:  req.Email,
			Role:   models.RoleCustomer,
		})
	}))
	defer backend.Close()

	auth := NewAuthService(NewClient(backend.URL, testLogger()))
	resp, err := auth.Login(context.Background(), models.LoginRequest{Email: "jane@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "token-123", resp.Token)
	assert.Equal(t, models.RoleCustomer, resp.Role)
}
