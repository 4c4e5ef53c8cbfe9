package repositories

import (
	"storefront/internal/models"
)

// WishlistRepository defines the interface for wishlist data access. Entries
// are scoped to a session and unique per (session, product).
type WishlistRepository interface {
	GetBySessionID(sessionID string) ([]models.WishlistItem, error)
	GetBySessionAndProduct(sessionID, productID string) (*models.WishlistItem, error)
	Create(item *models.WishlistItem) error
	Delete(sessionID, productID string) error
}
