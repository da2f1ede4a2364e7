package cart

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// EventKind names a cart status event
type EventKind string

const (
	AddedToCart       EventKind = "AddedToCart"
	CartUpdated       EventKind = "CartUpdated"
	RemovedFromCart   EventKind = "RemovedFromCart"
	CartCleared       EventKind = "CartCleared"
	OutOfStock        EventKind = "OutOfStock"
	InsufficientStock EventKind = "InsufficientStock"
)

// Event is a fire-and-forget status notification emitted by the cart
// store. Stock rejections are communicated this way rather than as
// errors; callers branch on the resulting (unchanged) state.
type Event struct {
	Kind      EventKind `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Product   string    `json:"product,omitempty"`
	Available int       `json:"available,omitempty"`
}

// Rejected reports whether the event signals a refused mutation
func (e Event) Rejected() bool {
	return e.Kind == OutOfStock || e.Kind == InsufficientStock
}

// Notifier is the sink cart events are emitted into
type Notifier interface {
	Notify(event Event)
}

// AddedEvent signals that a new line was appended to the cart
func AddedEvent(productName string) Event {
	return Event{
		Kind:    AddedToCart,
		Title:   "Added to Cart",
		Message: fmt.Sprintf("%s added to cart", productName),
		Product: productName,
	}
}

// UpdatedEvent signals that an existing line's quantity changed
func UpdatedEvent(productName string) Event {
	return Event{
		Kind:    CartUpdated,
		Title:   "Cart Updated",
		Message: fmt.Sprintf("%s quantity updated", productName),
		Product: productName,
	}
}

// RemovedEvent signals that a line was deleted from the cart
func RemovedEvent(productName string) Event {
	return Event{
		Kind:    RemovedFromCart,
		Title:   "Removed from Cart",
		Message: fmt.Sprintf("%s removed from cart", productName),
		Product: productName,
	}
}

// ClearedEvent signals that the whole cart was emptied
func ClearedEvent() Event {
	return Event{
		Kind:    CartCleared,
		Title:   "Cart Cleared",
		Message: "All items removed from cart",
	}
}

// OutOfStockEvent signals a rejected add for a product with no stock
func OutOfStockEvent(productName string) Event {
	return Event{
		Kind:    OutOfStock,
		Title:   "Out of Stock",
		Message: fmt.Sprintf("%s is currently out of stock", productName),
		Product: productName,
	}
}

// InsufficientStockEvent signals a rejected mutation that would exceed
// the product's available stock.
func InsufficientStockEvent(productName string, available int) Event {
	return Event{
		Kind:      InsufficientStock,
		Title:     "Insufficient Stock",
		Message:   fmt.Sprintf("Only %d items available", available),
		Product:   productName,
		Available: available,
	}
}

// LogNotifier writes cart events to the structured log
type LogNotifier struct {
	log logrus.FieldLogger
}

// NewLogNotifier creates a Notifier backed by the given logger
func NewLogNotifier(log logrus.FieldLogger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify logs the event
func (n *LogNotifier) Notify(event Event) {
	n.log.WithFields(logrus.Fields{
		"kind":    event.Kind,
		"product": event.Product,
	}).Info(event.Message)
}
