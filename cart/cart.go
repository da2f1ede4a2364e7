package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"go-storefront/models"
	"go-storefront/storage"
)

// Store owns the list of cart lines for one browser session. It enforces
// the stock ceiling on every mutation, keeps at most one line per product
// id, and mirrors its state into the storage backend after each change.
// The mirror is best effort: a failed write is logged and the in-memory
// state stays authoritative for the session.
//
// Mutations report their outcome through emitted events. A stock
// violation is not an error; the operation is rejected as a whole (no
// partial fill) and the store emits OutOfStock or InsufficientStock.
type Store struct {
	mu       sync.RWMutex
	key      string
	backend  storage.Store
	notifier Notifier
	log      logrus.FieldLogger
	items    []models.CartItem
}

// NewStore creates a cart store bound to a storage key and loads any
// previously persisted lines. A missing key starts an empty cart; a read
// or parse failure is logged and also starts an empty cart, never
// surfaced to the caller.
func NewStore(ctx context.Context, key string, backend storage.Store, notifier Notifier, log logrus.FieldLogger) *Store {
	s := &Store{
		key:      key,
		backend:  backend,
		notifier: notifier,
		log:      log.WithField("cart", key),
	}
	s.items = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) []models.CartItem {
	raw, err := s.backend.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.WithError(err).Error("Failed to load cart from storage")
		}
		return nil
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.WithError(err).Error("Discarding malformed cart payload")
		return nil
	}

	// A tampered or hand-edited mirror may hold lines no mutation could
	// have produced. Drop them so every loaded line has quantity >= 1.
	kept := items[:0]
	for _, item := range items {
		if item.Quantity < 1 {
			s.log.WithField("product", item.Product.ID).Warn("Discarding stored cart line with invalid quantity")
			continue
		}
		kept = append(kept, item)
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// persist mirrors the line list into storage. Callers must hold the lock.
func (s *Store) persist(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []models.CartItem{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		s.log.WithError(err).Error("Failed to serialize cart")
		return
	}
	if err := s.backend.Set(ctx, s.key, string(raw)); err != nil {
		s.log.WithError(err).Error("Failed to save cart to storage")
	}
}

func (s *Store) emit(event Event) *Event {
	if s.notifier != nil {
		s.notifier.Notify(event)
	}
	return &event
}

// AddToCart adds quantity units of product to the cart, merging into an
// existing line for the same product id. The whole operation is rejected
// when the product is out of stock or the resulting quantity would exceed
// its stock quantity. A non-positive quantity is treated as 1.
func (s *Store) AddToCart(ctx context.Context, product models.Product, quantity int) *Event {
	if quantity < 1 {
		quantity = 1
	}
	if !product.InStock {
		return s.emit(OutOfStockEvent(product.Name))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.Product.ID != product.ID {
			continue
		}

		newQuantity := item.Quantity + quantity
		if newQuantity > product.StockQuantity {
			return s.emit(InsufficientStockEvent(product.Name, product.StockQuantity))
		}

		s.items[i].Quantity = newQuantity
		s.persist(ctx)
		return s.emit(UpdatedEvent(product.Name))
	}

	if quantity > product.StockQuantity {
		return s.emit(InsufficientStockEvent(product.Name, product.StockQuantity))
	}

	s.items = append(s.items, models.CartItem{Product: product, Quantity: quantity})
	s.persist(ctx)
	return s.emit(AddedEvent(product.Name))
}

// RemoveFromCart deletes the line for productID. Removing an absent
// product is a no-op and emits nothing.
func (s *Store) RemoveFromCart(ctx context.Context, productID string) *Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.Product.ID != productID {
			continue
		}

		s.items = append(s.items[:i], s.items[i+1:]...)
		s.persist(ctx)
		return s.emit(RemovedEvent(item.Product.Name))
	}
	return nil
}

// UpdateQuantity sets the line for productID to the given quantity. A
// quantity of zero or less removes the line. A quantity above the
// product's stock is rejected and leaves the line unchanged. Unknown
// product ids are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) *Event {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.Product.ID != productID {
			continue
		}

		if quantity > item.Product.StockQuantity {
			return s.emit(InsufficientStockEvent(item.Product.Name, item.Product.StockQuantity))
		}

		s.items[i].Quantity = quantity
		s.persist(ctx)
		return nil
	}
	return nil
}

// ClearCart empties the cart unconditionally and persists the empty state
func (s *Store) ClearCart(ctx context.Context) *Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
	return s.emit(ClearedEvent())
}

// Cart returns the derived snapshot: line items in insertion order with
// the recomputed totals.
func (s *Store) Cart() models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart := models.Cart{
		Items: make([]models.CartItem, len(s.items)),
	}
	copy(cart.Items, s.items)

	for _, item := range s.items {
		cart.TotalItems += item.Quantity
		cart.TotalPrice += item.Product.Price * float64(item.Quantity)
	}
	return cart
}

// IsInCart reports whether a line for productID exists
func (s *Store) IsInCart(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

// ItemQuantity returns the quantity of the line for productID, or 0 when
// the product is not in the cart.
func (s *Store) ItemQuantity(productID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.Product.ID == productID {
			return item.Quantity
		}
	}
	return 0
}
