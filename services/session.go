package services

import (
	"sync"

	"github.com/Irex777/bolt-popcorn-pos/models"
)

// SessionStore hands out the per-terminal cart. Each operator gets exactly
// one cart, created lazily and held in memory only; carts are never
// persisted. The mutex guards the map, not the carts: a cart is mutated
// sequentially by its own terminal's request stream.
type SessionStore struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{carts: make(map[string]*models.Cart)}
}

// Cart returns the operator's cart, creating an empty one on first use.
func (s *SessionStore) Cart(operatorID string) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[operatorID]
	if !ok {
		cart = models.NewCart()
		s.carts[operatorID] = cart
	}
	return cart
}

// Drop forgets the operator's cart, e.g. when the session ends.
func (s *SessionStore) Drop(operatorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, operatorID)
}
