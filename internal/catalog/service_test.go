package catalog

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/pocketangadi/storefront/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu      sync.Mutex
	initial []domain.Product
	saved   [][]domain.Product
	saveErr error
}

func (m *memStore) Load(context.Context) ([]domain.Product, error) {
	return m.initial, nil
}

func (m *memStore) Save(_ context.Context, products []domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	snapshot := make([]domain.Product, len(products))
	copy(snapshot, products)
	m.saved = append(m.saved, snapshot)
	return nil
}

func (m *memStore) lastSaved() []domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.saved) == 0 {
		return nil
	}
	return m.saved[len(m.saved)-1]
}

func newTestService(t *testing.T, store *memStore) *Service {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc, err := NewService(store, log)
	require.NoError(t, err)
	return svc
}

func TestNewServiceSeedsWhenStoreEmpty(t *testing.T) {
	store := &memStore{}
	svc := newTestService(t, store)
	defer svc.Close()

	products := svc.List()
	require.Len(t, products, len(SeedProducts()))
	assert.Equal(t, "Premium Wireless Headphones", products[0].Name)
}

func TestNewServiceKeepsStoredProducts(t *testing.T) {
	store := &memStore{initial: []domain.Product{
		{ID: "x", Name: "Custom", Price: 5, Stock: 1, Status: domain.ProductStatusActive},
	}}
	svc := newTestService(t, store)
	defer svc.Close()

	products := svc.List()
	require.Len(t, products, 1)
	assert.Equal(t, "Custom", products[0].Name)
}

func TestGet(t *testing.T) {
	svc := newTestService(t, &memStore{})
	defer svc.Close()

	product, err := svc.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Premium Wireless Headphones", product.Name)

	_, err = svc.Get("missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpsertReplacesWholeRecord(t *testing.T) {
	svc := newTestService(t, &memStore{})
	defer svc.Close()

	svc.Upsert(domain.Product{ID: "1", Name: "Replaced", Price: 1, Stock: 1, Status: domain.ProductStatusActive})

	product, err := svc.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Replaced", product.Name)
	// Full replace: fields absent from the new record are gone.
	assert.Empty(t, product.Category)
	assert.Empty(t, product.Features)
}

func TestRemoveIsIdempotent(t *testing.T) {
	svc := newTestService(t, &memStore{})
	defer svc.Close()

	before := len(svc.List())
	svc.Remove("missing")
	assert.Len(t, svc.List(), before)

	svc.Remove("1")
	svc.Remove("1")
	assert.Len(t, svc.List(), before-1)
}

func TestDecrementStock(t *testing.T) {
	store := &memStore{initial: []domain.Product{
		{ID: "p1", Name: "Thing", Price: 10, Stock: 5, Status: domain.ProductStatusActive},
	}}
	svc := newTestService(t, store)
	defer svc.Close()

	t.Run("floors at zero and flips status", func(t *testing.T) {
		svc.DecrementStock("p1", 8)
		product, err := svc.Get("p1")
		require.NoError(t, err)
		assert.Equal(t, 0, product.Stock)
		assert.Equal(t, domain.ProductStatusOutOfStock, product.Status)
	})

	t.Run("unknown id is ignored", func(t *testing.T) {
		svc.DecrementStock("missing", 1)
	})

	t.Run("non-positive quantity is ignored", func(t *testing.T) {
		svc.DecrementStock("p1", 0)
		svc.DecrementStock("p1", -3)
		product, err := svc.Get("p1")
		require.NoError(t, err)
		assert.Equal(t, 0, product.Stock)
	})
}

func TestDecrementStockReactivationBoundary(t *testing.T) {
	store := &memStore{initial: []domain.Product{
		{ID: "p1", Name: "Thing", Price: 10, Stock: 5, Status: domain.ProductStatusActive},
	}}
	svc := newTestService(t, store)
	defer svc.Close()

	svc.DecrementStock("p1", 4)
	product, err := svc.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, 1, product.Stock)
	assert.Equal(t, domain.ProductStatusActive, product.Status)
}

func TestCategories(t *testing.T) {
	store := &memStore{initial: []domain.Product{
		{ID: "a", Name: "A", Category: "Electronics"},
		{ID: "b", Name: "B", Category: "Fashion"},
		{ID: "c", Name: "C", Category: "Electronics"},
		{ID: "d", Name: "D"},
	}}
	svc := newTestService(t, store)
	defer svc.Close()

	assert.Equal(t, []string{"Electronics", "Fashion"}, svc.Categories())
}

func TestMutationsReachTheStore(t *testing.T) {
	store := &memStore{}
	svc := newTestService(t, store)

	svc.Upsert(domain.Product{ID: "new", Name: "New Thing", Price: 1, Stock: 3, Status: domain.ProductStatusActive})
	svc.DecrementStock("new", 1)

	// Close flushes the write-behind worker.
	svc.Close()

	saved := store.lastSaved()
	require.NotNil(t, saved)
	var found *domain.Product
	for i := range saved {
		if saved[i].ID == "new" {
			found = &saved[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, 2, found.Stock)
}

func TestListReturnsCopies(t *testing.T) {
	svc := newTestService(t, &memStore{})
	defer svc.Close()

	products := svc.List()
	products[0].Name = "clobbered"
	if len(products[0].Features) > 0 {
		products[0].Features[0] = "clobbered"
	}

	fresh := svc.List()
	assert.Equal(t, "Premium Wireless Headphones", fresh[0].Name)
	assert.Equal(t, "Noise cancellation", fresh[0].Features[0])
}
