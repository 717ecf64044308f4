package orders

import (
	"io"
	"testing"
	"time"

	"github.com/pocketangadi/storefront/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stockRecorder struct {
	decrements map[string]int
}

func (r *stockRecorder) DecrementStock(productID string, quantity int) {
	if r.decrements == nil {
		r.decrements = make(map[string]int)
	}
	r.decrements[productID] += quantity
}

func newTestLedger() (*Ledger, *stockRecorder) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	stock := &stockRecorder{}
	return NewLedger(stock, log), stock
}

func sampleItems() []domain.CartItem {
	return []domain.CartItem{
		{ProductID: "p1", Name: "Headphones", UnitPrice: 100, Quantity: 5, Context: domain.ContextMarketplace},
	}
}

func sampleCustomer() domain.Customer {
	return domain.Customer{Name: "Asha Rao", Email: "asha@example.com"}
}

func TestPlaceOrderTotals(t *testing.T) {
	ledger, stock := newTestLedger()

	order, err := ledger.PlaceOrder(sampleCustomer(), sampleItems(), PlaceOptions{
		ShippingRate:  10,
		TaxRate:       0.1,
		PaymentMethod: "Credit Card",
	})
	require.NoError(t, err)

	assert.Equal(t, 500.0, order.Subtotal)
	assert.Equal(t, 10.0, order.Shipping)
	assert.Equal(t, 50.0, order.Tax)
	assert.Equal(t, 560.0, order.Total)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "Credit Card", order.PaymentMethod)
	assert.Equal(t, 5, stock.decrements["p1"])
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	ledger, stock := newTestLedger()

	_, err := ledger.PlaceOrder(sampleCustomer(), nil, PlaceOptions{})
	assert.ErrorIs(t, err, ErrEmptyOrder)
	assert.Empty(t, stock.decrements)
	assert.Empty(t, ledger.Orders())
}

func TestPlaceOrderSnapshotsItems(t *testing.T) {
	ledger, _ := newTestLedger()

	items := sampleItems()
	order, err := ledger.PlaceOrder(sampleCustomer(), items, PlaceOptions{})
	require.NoError(t, err)

	// Mutating the caller's slice after placement must not reach the order.
	items[0].Quantity = 1
	items[0].UnitPrice = 0

	stored, err := ledger.Order(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Items[0].Quantity)
	assert.Equal(t, 100.0, stored.Items[0].UnitPrice)
}

func TestOrderIDsAreUniqueAndIncreasing(t *testing.T) {
	ledger, _ := newTestLedger()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ledger.now = func() time.Time { return fixed }

	a, err := ledger.PlaceOrder(sampleCustomer(), sampleItems(), PlaceOptions{})
	require.NoError(t, err)
	b, err := ledger.PlaceOrder(sampleCustomer(), sampleItems(), PlaceOptions{})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Greater(t, b.ID, a.ID)
	assert.Equal(t, "2026-03-01", a.Date)
}

func TestOrdersListsMostRecentFirst(t *testing.T) {
	ledger, _ := newTestLedger()

	first, err := ledger.PlaceOrder(sampleCustomer(), sampleItems(), PlaceOptions{})
	require.NoError(t, err)
	second, err := ledger.PlaceOrder(sampleCustomer(), sampleItems(), PlaceOptions{})
	require.NoError(t, err)

	list := ledger.Orders()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestUpdateStatus(t *testing.T) {
	ledger, _ := newTestLedger()
	order, err := ledger.PlaceOrder(sampleCustomer(), sampleItems(), PlaceOptions{})
	require.NoError(t, err)

	t.Run("overwrites without transition checks", func(t *testing.T) {
		require.NoError(t, ledger.UpdateStatus(order.ID, domain.OrderStatusDelivered))
		require.NoError(t, ledger.UpdateStatus(order.ID, domain.OrderStatusPending))

		stored, err := ledger.Order(order.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPending, stored.Status)
	})

	t.Run("unknown order", func(t *testing.T) {
		err := ledger.UpdateStatus("ORD-0", domain.OrderStatusShipped)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("unknown status", func(t *testing.T) {
		err := ledger.UpdateStatus(order.ID, domain.OrderStatus("lost"))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestOrdersReturnsCopies(t *testing.T) {
	ledger, _ := newTestLedger()
	_, err := ledger.PlaceOrder(sampleCustomer(), sampleItems(), PlaceOptions{})
	require.NoError(t, err)

	list := ledger.Orders()
	list[0].Items[0].Quantity = 99
	list[0].Status = domain.OrderStatusShipped

	fresh := ledger.Orders()
	assert.Equal(t, 5, fresh[0].Items[0].Quantity)
	assert.Equal(t, domain.OrderStatusPending, fresh[0].Status)
}
