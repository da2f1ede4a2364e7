// controllers/order.go
package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"go-storefront/cart"
	"go-storefront/middleware"
	"go-storefront/models"
	"go-storefront/services"
	"go-storefront/utils"
)

// OrderController handles checkout and the order history endpoints
type OrderController struct {
	Orders       *services.OrderService
	Products     *services.ProductService
	Carts        *cart.Manager
	Notifier     cart.Notifier
	EmailService *utils.EmailService
	Log          logrus.FieldLogger
}

// NewOrderController creates a new OrderController with EmailService
func NewOrderController(orders *services.OrderService, products *services.ProductService, carts *cart.Manager, notifier cart.Notifier, emailService *utils.EmailService, log logrus.FieldLogger) *OrderController {
	return &OrderController{
		Orders:       orders,
		Products:     products,
		Carts:        carts,
		Notifier:     notifier,
		EmailService: emailService,
		Log:          log,
	}
}

func (oc *OrderController) notify(event cart.Event) {
	if oc.Notifier != nil {
		oc.Notifier.Notify(event)
	}
}

// Checkout places an order for the current session cart. The cart holds
// product snapshots captured at add-time, so each line is revalidated
// against live catalog stock before the order is placed; a stale line
// aborts the whole checkout with a stock event and leaves the cart
// untouched.
func (oc *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	store := oc.Carts.Store(r.Context(), middleware.SessionID(r.Context()))
	snapshot := store.Cart()
	if len(snapshot.Items) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	var request models.PlaceOrderRequest
	for _, item := range snapshot.Items {
		product, err := oc.Products.GetByID(r.Context(), item.Product.ID)
		if err != nil {
			relayError(w, err)
			return
		}

		if !product.InStock {
			event := cart.OutOfStockEvent(product.Name)
			oc.notify(event)
			writeJSON(w, http.StatusConflict, cartResponse{Event: &event, Cart: snapshot})
			return
		}
		if item.Quantity > product.StockQuantity {
			event := cart.InsufficientStockEvent(product.Name, product.StockQuantity)
			oc.notify(event)
			writeJSON(w, http.StatusConflict, cartResponse{Event: &event, Cart: snapshot})
			return
		}

		request.Items = append(request.Items, models.OrderItemRequest{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		})
	}

	order, err := oc.Orders.PlaceOrder(r.Context(), request)
	if err != nil {
		relayError(w, err)
		return
	}

	store.ClearCart(r.Context())

	// Send confirmation email to user
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		go func(email string) {
			if err := oc.EmailService.SendOrderConfirmationEmail(email, order); err != nil {
				oc.Log.WithError(err).WithField("email", email).Error("Failed to send confirmation email")
			}
		}(claims.Email)
	}

	writeJSON(w, http.StatusCreated, order)
}

// GetOrders retrieves a page of the authenticated user's orders
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", 10)

	orders, err := oc.Orders.GetMyOrders(r.Context(), page, size)
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrderByID retrieves a single order
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	order, err := oc.Orders.GetByID(r.Context(), params["id"])
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// CancelOrder cancels an order
func (oc *OrderController) CancelOrder(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	order, err := oc.Orders.Cancel(r.Context(), params["id"])
	if err != nil {
		relayError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
