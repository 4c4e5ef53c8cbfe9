package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

// GetBySessionID retrieves all wishlist entries for a session, newest first.
func (r *GORMWishlistRepository) GetBySessionID(sessionID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Where("session_id = ?", sessionID).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get wishlist for session %s: %w", sessionID, err)
	}
	return items, nil
}

// GetBySessionAndProduct retrieves one wishlist entry.
func (r *GORMWishlistRepository) GetBySessionAndProduct(sessionID, productID string) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := r.db.First(&item, "session_id = ? AND product_id = ?", sessionID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("wishlist entry for product %s: %w", productID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get wishlist entry for product %s: %w", productID, err)
	}
	return &item, nil
}

// Create adds a new wishlist entry.
func (r *GORMWishlistRepository) Create(item *models.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create wishlist entry: %w", err)
	}
	return nil
}

// Delete removes one wishlist entry.
func (r *GORMWishlistRepository) Delete(sessionID, productID string) error {
	res := r.db.Delete(&models.WishlistItem{}, "session_id = ? AND product_id = ?", sessionID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete wishlist entry: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("wishlist entry for product %s: %w", productID, ErrNotFound)
	}
	return nil
}
