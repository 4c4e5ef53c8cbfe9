package repositories

import (
	"storefront/internal/models"
)

// CartRepository defines the interface for cart data access. Carts are keyed
// by their session ID; Save persists the cart and its full item list as one
// document-style replace (last write wins, matching the store's semantics).
type CartRepository interface {
	GetBySessionID(sessionID string) (*models.Cart, error)
	Create(cart *models.Cart) error
	Save(cart *models.Cart) error
}
