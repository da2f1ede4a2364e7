package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"go-storefront/cart"
	"go-storefront/middleware"
	"go-storefront/services"
)

// CartController handles the session cart endpoints
type CartController struct {
	Carts    *cart.Manager
	Products *services.ProductService
}

// NewCartController creates a new CartController
func NewCartController(carts *cart.Manager, products *services.ProductService) *CartController {
	return &CartController{
		Carts:    carts,
		Products: products,
	}
}

// cartResponse pairs the emitted event (if any) with the fresh snapshot
type cartResponse struct {
	Event *cart.Event `json:"event,omitempty"`
	Cart  interface{} `json:"cart"`
}

func (cc *CartController) respond(w http.ResponseWriter, store *cart.Store, event *cart.Event) {
	status := http.StatusOK
	if event != nil && event.Rejected() {
		status = http.StatusConflict
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(cartResponse{
		Event: event,
		Cart:  store.Cart(),
	})
}

// GetCart returns the current cart snapshot
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	store := cc.Carts.Store(r.Context(), middleware.SessionID(r.Context()))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(store.Cart())
}

// AddToCart adds a product to the session cart. The live product record
// is fetched from the catalog so the stock check runs against current
// stock, then the add is applied to the cart store.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.ProductID == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if req.Quantity < 0 {
		http.Error(w, "Invalid quantity", http.StatusBadRequest)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	product, err := cc.Products.GetByID(r.Context(), req.ProductID)
	if err != nil {
		if apiErr, ok := services.AsAPIError(err); ok && apiErr.Status == http.StatusNotFound {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error fetching product", http.StatusBadGateway)
		return
	}

	store := cc.Carts.Store(r.Context(), middleware.SessionID(r.Context()))
	event := store.AddToCart(r.Context(), product, req.Quantity)
	cc.respond(w, store, event)
}

// UpdateQuantity sets the quantity of a cart line. A quantity of zero or
// less removes the line.
func (cc *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	productID := params["product_id"]

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	store := cc.Carts.Store(r.Context(), middleware.SessionID(r.Context()))
	event := store.UpdateQuantity(r.Context(), productID, req.Quantity)
	cc.respond(w, store, event)
}

// RemoveFromCart removes a product from the session cart
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	productID := params["product_id"]

	store := cc.Carts.Store(r.Context(), middleware.SessionID(r.Context()))
	event := store.RemoveFromCart(r.Context(), productID)
	cc.respond(w, store, event)
}

// ClearCart empties the session cart
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	store := cc.Carts.Store(r.Context(), middleware.SessionID(r.Context()))
	event := store.ClearCart(r.Context())
	cc.respond(w, store, event)
}
