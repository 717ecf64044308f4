// Package cart owns the full set of cart line items across the marketplace
// and every store context. The ledger is the only mutable shared cart state.
package cart

import (
	"errors"
	"sync"

	"github.com/pocketangadi/storefront/internal/domain"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidQuantity = errors.New("cart: quantity must be at least 1")
	ErrInvalidPrice    = errors.New("cart: unit price cannot be negative")
)

// Ledger holds every cart line across all purchase contexts. All exported
// operations are atomic; the mutex is the single point of serialization the
// run-to-completion model requires.
type Ledger struct {
	mu    sync.Mutex
	lines []domain.CartItem
	log   *logrus.Logger
}

func NewLedger(log *logrus.Logger) *Ledger {
	return &Ledger{log: log}
}

// AddItem appends a new line or, when a line with the same identity key
// already exists, merges quantities into it. There is no upper bound on
// quantity.
func (l *Ledger) AddItem(item domain.CartItem) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if item.UnitPrice < 0 {
		return ErrInvalidPrice
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	key := item.Key()
	for i := range l.lines {
		if l.lines[i].Key() == key {
			l.lines[i].Quantity += item.Quantity
			l.log.WithFields(logrus.Fields{
				"product_id": item.ProductID,
				"context":    item.Context,
				"store_id":   item.StoreID,
				"quantity":   l.lines[i].Quantity,
			}).Debug("cart line merged")
			return nil
		}
	}

	l.lines = append(l.lines, item)
	l.log.WithFields(logrus.Fields{
		"product_id": item.ProductID,
		"context":    item.Context,
		"store_id":   item.StoreID,
		"quantity":   item.Quantity,
	}).Debug("cart line added")
	return nil
}

// RemoveItem deletes the matching line. Removing an absent key is a no-op.
func (l *Ledger) RemoveItem(productID string, ctx domain.PurchaseContext, storeID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.removeLocked(domain.LineKey{ProductID: productID, Context: ctx, StoreID: storeID})
}

// UpdateQuantity overwrites a line's quantity. A quantity of zero or less is
// equivalent to RemoveItem. Updating an absent key is a no-op.
func (l *Ledger) UpdateQuantity(productID string, quantity int, ctx domain.PurchaseContext, storeID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := domain.LineKey{ProductID: productID, Context: ctx, StoreID: storeID}
	if quantity <= 0 {
		l.removeLocked(key)
		return
	}
	for i := range l.lines {
		if l.lines[i].Key() == key {
			l.lines[i].Quantity = quantity
			return
		}
	}
}

// Items returns the lines for one context, in insertion order. For the store
// context an empty storeID returns lines from every store; that aggregate
// view is for display only, checkout always passes a concrete store id.
func (l *Ledger) Items(ctx domain.PurchaseContext, storeID string) []domain.CartItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []domain.CartItem
	for _, line := range l.lines {
		if l.matches(line, ctx, storeID) {
			out = append(out, line)
		}
	}
	return out
}

// TotalPrice sums unit price times quantity over the same view Items returns.
func (l *Ledger) TotalPrice(ctx domain.PurchaseContext, storeID string) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	var total float64
	for _, line := range l.lines {
		if l.matches(line, ctx, storeID) {
			total += line.LineTotal()
		}
	}
	return total
}

// Clear drops every line in the given view. Clearing the marketplace never
// touches store lines and vice versa.
func (l *Ledger) Clear(ctx domain.PurchaseContext, storeID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.lines[:0]
	for _, line := range l.lines {
		if !l.matches(line, ctx, storeID) {
			kept = append(kept, line)
		}
	}
	l.lines = kept
}

// Len reports the number of lines across all contexts.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}

func (l *Ledger) matches(line domain.CartItem, ctx domain.PurchaseContext, storeID string) bool {
	if line.Context != ctx {
		return false
	}
	if ctx == domain.ContextStore && storeID != "" && line.StoreID != storeID {
		return false
	}
	return true
}

func (l *Ledger) removeLocked(key domain.LineKey) {
	for i := range l.lines {
		if l.lines[i].Key() == key {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return
		}
	}
}
