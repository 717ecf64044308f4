// Package orders materializes checkouts into permanent order records.
package orders

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pocketangadi/storefront/internal/domain"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyOrder    = errors.New("orders: cannot place an order with no items")
	ErrOrderNotFound = errors.New("orders: order not found")
	ErrInvalidStatus = errors.New("orders: unknown order status")
)

// StockDecrementer is the slice of the product catalog the order ledger
// needs: stock goes down by the ordered quantity when an order is placed.
type StockDecrementer interface {
	DecrementStock(productID string, quantity int)
}

// PlaceOptions carries the pricing knobs and optional metadata for one
// placement. Shipping is a flat value, not derived from the items.
type PlaceOptions struct {
	ShippingRate  float64
	TaxRate       float64
	PaymentMethod string
}

// Ledger is the append-only order history. Orders are never deleted; status
// is overwritten in place.
type Ledger struct {
	mu     sync.Mutex
	orders []domain.Order
	lastID int64
	stock  StockDecrementer
	log    *logrus.Logger
	now    func() time.Time
}

func NewLedger(stock StockDecrementer, log *logrus.Logger) *Ledger {
	return &Ledger{stock: stock, log: log, now: time.Now}
}

// PlaceOrder turns a cart snapshot plus customer form data into an order.
// Items are deep-copied so later cart mutations never reach a placed order.
// The caller clears the relevant cart after a successful placement; the
// ledger does not reach into the cart.
func (l *Ledger) PlaceOrder(customer domain.Customer, items []domain.CartItem, opts PlaceOptions) (domain.Order, error) {
	if len(items) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var subtotal float64
	for _, item := range items {
		subtotal += item.LineTotal()
	}
	shipping := opts.ShippingRate
	tax := subtotal * opts.TaxRate

	now := l.now()
	order := domain.Order{
		ID:            l.nextIDLocked(now),
		Date:          now.Format("2006-01-02"),
		CreatedAt:     now,
		Customer:      customer,
		Items:         append([]domain.CartItem(nil), items...),
		Subtotal:      subtotal,
		Shipping:      shipping,
		Tax:           tax,
		Total:         subtotal + shipping + tax,
		Status:        domain.OrderStatusPending,
		PaymentMethod: opts.PaymentMethod,
	}

	// Most-recent-first is the listing contract.
	l.orders = append([]domain.Order{order}, l.orders...)

	for _, item := range items {
		l.stock.DecrementStock(item.ProductID, item.Quantity)
	}

	l.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"items":    len(order.Items),
		"total":    order.Total,
	}).Info("order placed")

	return order, nil
}

// UpdateStatus overwrites an order's status. Any status may follow any
// status; there is deliberately no transition table.
func (l *Ledger) UpdateStatus(orderID string, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.orders {
		if l.orders[i].ID == orderID {
			l.orders[i].Status = status
			l.log.WithFields(logrus.Fields{
				"order_id": orderID,
				"status":   status,
			}).Info("order status updated")
			return nil
		}
	}
	return ErrOrderNotFound
}

// Orders lists the history, most recent first. The returned orders carry
// copied item slices.
func (l *Ledger) Orders() []domain.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Order, len(l.orders))
	for i, o := range l.orders {
		out[i] = o
		out[i].Items = o.CloneItems()
	}
	return out
}

// Order fetches a single order by id.
func (l *Ledger) Order(orderID string) (domain.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, o := range l.orders {
		if o.ID == orderID {
			o.Items = o.CloneItems()
			return o, nil
		}
	}
	return domain.Order{}, ErrOrderNotFound
}

// nextIDLocked mints a time-based order id. Two placements in the same
// millisecond still get distinct, increasing ids.
func (l *Ledger) nextIDLocked(now time.Time) string {
	ms := now.UnixMilli()
	if ms <= l.lastID {
		ms = l.lastID + 1
	}
	l.lastID = ms
	return fmt.Sprintf("ORD-%d", ms)
}
