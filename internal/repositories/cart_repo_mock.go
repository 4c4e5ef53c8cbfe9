package repositories

import (
	"fmt"
	"sync"

	"storefront/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	carts map[string]models.Cart // keyed by session ID
	mu    sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		carts: make(map[string]models.Cart),
	}
}

// GetBySessionID returns a copy of the cart for the given session.
func (r *MockCartRepository) GetBySessionID(sessionID string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[sessionID]
	if !ok {
		return nil, fmt.Errorf("cart for session %s: %w", sessionID, ErrNotFound)
	}
	copied := cart
	copied.Items = append([]models.CartItem(nil), cart.Items...)
	return &copied, nil
}

// Create adds a new cart.
func (r *MockCartRepository) Create(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	stored := *cart
	stored.Items = append([]models.CartItem(nil), cart.Items...)
	r.carts[cart.SessionID] = stored
	return nil
}

// Save overwrites the stored cart with the given state.
func (r *MockCartRepository) Save(cart *models.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.carts[cart.SessionID]; !ok {
		return fmt.Errorf("cart for session %s: %w", cart.SessionID, ErrNotFound)
	}
	stored := *cart
	stored.Items = append([]models.CartItem(nil), cart.Items...)
	r.carts[cart.SessionID] = stored
	return nil
}
