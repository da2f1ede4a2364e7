package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-storefront/cart"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/services"
	"go-storefront/session"
	"go-storefront/storage"
	"go-storefront/utils"
)

type recordingNotifier struct {
	events []cart.Event
}

func (n *recordingNotifier) Notify(event cart.Event) {
	n.events = append(n.events, event)
}

type orderTestEnv struct {
	controller *OrderController
	carts      *cart.Manager
	notifier   *recordingNotifier
	placed     []models.PlaceOrderRequest
}

func newOrderTestEnv(t *testing.T, products map[string]models.Product) *orderTestEnv {
	t.Helper()
	env := &orderTestEnv{notifier: &recordingNotifier{}}

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/orders":
			var req models.PlaceOrderRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			env.placed = append(env.placed, req)
			json.NewEncoder(w).Encode(models.Order{ID: "o1", OrderNumber: "ORD-001", Status: models.OrderStatusPending})
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/products/"):
			product, ok := products[strings.TrimPrefix(r.URL.Path, "/products/")]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			data, err := json.Marshal(product)
			require.NoError(t, err)
			json.NewEncoder(w).Encode(models.APIResponse{Success: true, Data: data})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(backend.Close)

	client := services.NewClient(backend.URL, testLogger())
	env.carts = cart.NewManager(storage.NewMemoryStore(), nil, testLogger())
	env.controller = NewOrderController(
		services.NewOrderService(client),
		services.NewProductService(client),
		env.carts,
		env.notifier,
		utils.NewEmailService("", ""),
		testLogger(),
	)
	return env
}

func checkoutRequest(sessionID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	ctx := context.WithValue(req.Context(), middleware.SessionContextKey, session.Session{ID: sessionID})
	ctx = context.WithValue(ctx, middleware.UserContextKey, &utils.Claims{Email: "jane@example.com"})
	return req.WithContext(ctx)
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("places the order and clears the cart", func(t *testing.T) {
		env := newOrderTestEnv(t, map[string]models.Product{
			"p1": {ID: "p1", Name: "Mug", Price: 10.00, StockQuantity: 5, InStock: true},
		})
		store := env.carts.Store(ctx, "s1")
		store.AddToCart(ctx, models.Product{ID: "p1", Name: "Mug", Price: 10.00, StockQuantity: 5, InStock: true}, 2)

		rec := httptest.NewRecorder()
		env.controller.Checkout(rec, checkoutRequest("s1"))

		require.Equal(t, http.StatusCreated, rec.Code)
		var order models.Order
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&order))
		assert.Equal(t, "ORD-001", order.OrderNumber)

		require.Len(t, env.placed, 1)
		assert.Equal(t, []models.OrderItemRequest{{ProductID: "p1", Quantity: 2}}, env.placed[0].Items)
		assert.Equal(t, 0, store.Cart().TotalItems)
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		env := newOrderTestEnv(t, nil)

		rec := httptest.NewRecorder()
		env.controller.Checkout(rec, checkoutRequest("s1"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, env.placed)
	})

	t.Run("aborts when live stock dropped below the cart quantity", func(t *testing.T) {
		// Cart snapshot was captured when five were in stock; only one is left now
		env := newOrderTestEnv(t, map[string]models.Product{
			"p1": {ID: "p1", Name: "Mug", Price: 10.00, StockQuantity: 1, InStock: true},
		})
		store := env.carts.Store(ctx, "s1")
		store.AddToCart(ctx, models.Product{ID: "p1", Name: "Mug", Price: 10.00, StockQuantity: 5, InStock: true}, 3)

		rec := httptest.NewRecorder()
		env.controller.Checkout(rec, checkoutRequest("s1"))

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Empty(t, env.placed)
		assert.Equal(t, 3, store.Cart().TotalItems)

		require.NotEmpty(t, env.notifier.events)
		event := env.notifier.events[len(env.notifier.events)-1]
		assert.Equal(t, cart.InsufficientStock, event.Kind)
		assert.Equal(t, 1, event.Available)
	})

	t.Run("tolerates a nil notifier on stock rejection", func(t *testing.T) {
		env := newOrderTestEnv(t, map[string]models.Product{
			"p1": {ID: "p1", Name: "Mug", Price: 10.00, StockQuantity: 0, InStock: false},
		})
		env.controller.Notifier = nil
		store := env.carts.Store(ctx, "s1")
		store.AddToCart(ctx, models.Product{ID: "p1", Name: "Mug", Price: 10.00, StockQuantity: 5, InStock: true}, 2)

		rec := httptest.NewRecorder()
		env.controller.Checkout(rec, checkoutRequest("s1"))

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Empty(t, env.placed)
	})

	t.Run("aborts when the product went out of stock", func(t *testing.T) {
		env := newOrderTestEnv(t, map[string]models.Product{
			"p1": {ID: "p1", Name: "Mug", Price: 10.00, StockQuantity: 0, InStock: false},
		})
		store := env.carts.Store(ctx, "s1")
		store.AddToCart(ctx, models.Product{ID: "p1", Name: "Mug", Price: 10.00, StockQuantity: 5, InStock: true}, 2)

		rec := httptest.NewRecorder()
		env.controller.Checkout(rec, checkoutRequest("s1"))

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Empty(t, env.placed)

		require.NotEmpty(t, env.notifier.events)
		assert.Equal(t, cart.OutOfStock, env.notifier.events[len(env.notifier.events)-1].Kind)
	})
}
