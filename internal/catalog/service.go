// Package catalog is the authoritative store of product records.
package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/pocketangadi/storefront/internal/domain"
	"github.com/sirupsen/logrus"
)

var ErrProductNotFound = errors.New("catalog: product not found")

// ProductStore persists the whole catalog as one blob: loaded once at
// startup, written back after every mutation. Backends live in
// internal/repository.
type ProductStore interface {
	Load(ctx context.Context) ([]domain.Product, error)
	Save(ctx context.Context, products []domain.Product) error
}

// Service owns the in-memory product list. Reads and mutations are
// serialized by the mutex; persistence is write-behind so no mutation ever
// waits on IO.
type Service struct {
	mu       sync.Mutex
	products []domain.Product
	store    ProductStore
	log      *logrus.Logger

	saveCh chan []domain.Product
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewService loads the catalog from the store, seeding the default product
// set when the store is empty, and starts the persistence worker.
func NewService(store ProductStore, log *logrus.Logger) (*Service, error) {
	products, err := store.Load(context.Background())
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		products = SeedProducts()
		log.WithField("count", len(products)).Info("catalog seeded with default products")
	}

	s := &Service{
		products: products,
		store:    store,
		log:      log,
		saveCh:   make(chan []domain.Product, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go s.persistLoop()
	return s, nil
}

// Close stops the persistence worker after flushing any pending snapshot.
func (s *Service) Close() {
	close(s.stopCh)
	<-s.doneCh
}

// List returns every product. Order is insertion order; callers do not rely
// on it.
func (s *Service) List() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

// Get fetches one product by id.
func (s *Service) Get(id string) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return domain.Product{}, ErrProductNotFound
}

// Upsert inserts a new product or fully replaces an existing one with the
// same id. Replacement is whole-record, not a field merge.
func (s *Service) Upsert(p domain.Product) {
	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			s.mu.Unlock()
			s.enqueueSave()
			return
		}
	}
	s.products = append(s.products, p)
	s.mu.Unlock()
	s.enqueueSave()
}

// Remove deletes a product by id. Removing an absent id is a no-op and does
// not trigger a save.
func (s *Service) Remove(id string) {
	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.mu.Unlock()
			s.enqueueSave()
			return
		}
	}
	s.mu.Unlock()
}

// DecrementStock lowers a product's stock by the ordered quantity, floored
// at zero, and recomputes its status. Unknown ids are ignored: the cart line
// may outlive the product.
func (s *Service) DecrementStock(id string, quantity int) {
	if quantity <= 0 {
		return
	}

	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		stock := s.products[i].Stock - quantity
		if stock < 0 {
			stock = 0
		}
		s.products[i].Stock = stock
		s.products[i].Status = domain.StatusForStock(stock)
		s.log.WithFields(logrus.Fields{
			"product_id": id,
			"stock":      stock,
			"status":     s.products[i].Status,
		}).Info("stock decremented")
		s.mu.Unlock()
		s.enqueueSave()
		return
	}
	s.mu.Unlock()
}

// Categories lists the distinct non-empty categories across the catalog, in
// first-seen order.
func (s *Service) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	var out []string
	for _, p := range s.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// enqueueSave hands the current snapshot to the persistence worker. The
// channel holds one pending snapshot; a newer one replaces it, so the worker
// always writes the latest state.
func (s *Service) enqueueSave() {
	s.mu.Lock()
	snapshot := make([]domain.Product, len(s.products))
	copy(snapshot, s.products)
	s.mu.Unlock()

	for {
		select {
		case s.saveCh <- snapshot:
			return
		default:
			select {
			case <-s.saveCh:
			default:
			}
		}
	}
}

func (s *Service) persistLoop() {
	defer close(s.doneCh)
	for {
		select {
		case snapshot := <-s.saveCh:
			s.persist(snapshot)
		case <-s.stopCh:
			// Flush the last pending snapshot, if any.
			select {
			case snapshot := <-s.saveCh:
				s.persist(snapshot)
			default:
			}
			return
		}
	}
}

func (s *Service) persist(snapshot []domain.Product) {
	if err := s.store.Save(context.Background(), snapshot); err != nil {
		s.log.WithError(err).Error("catalog save failed")
		return
	}
	s.log.WithField("count", len(snapshot)).Debug("catalog saved")
}
