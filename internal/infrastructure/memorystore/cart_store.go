package memorystore

import (
	"context"
	"sync"

	"github.com/clubtenis/tienda-api/internal/application/cart"
)

var _ cart.Store = (*CartStore)(nil)

// CartStore persistencia del carrito en memoria, para desarrollo y tests
// cuando no hay Redis configurado. Los carritos se pierden al reiniciar.
type CartStore struct {
	mu    sync.RWMutex
	carts map[string][]cart.Item
}

// NewCartStore construye un store de carrito en memoria vacío.
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string][]cart.Item)}
}

func (s *CartStore) Get(_ context.Context, userID string) ([]cart.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.carts[userID]
	out := make([]cart.Item, len(items))
	copy(out, items)
	return out, nil
}

func (s *CartStore) Save(_ context.Context, userID string, items []cart.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(items) == 0 {
		delete(s.carts, userID)
		return nil
	}
	stored := make([]cart.Item, len(items))
	copy(stored, items)
	s.carts[userID] = stored
	return nil
}

func (s *CartStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	return nil
}
