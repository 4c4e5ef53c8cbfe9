package repositories

import (
	"errors"
	"fmt"

	"storefront/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetBySessionID retrieves a cart with its items by session ID.
func (r *GORMCartRepository) GetBySessionID(sessionID string) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Preload("Items").First(&cart, "session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart for session %s: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cart for session %s: %w", sessionID, err)
	}
	return &cart, nil
}

// Create creates a new cart in the database.
func (r *GORMCartRepository) Create(cart *models.Cart) error {
	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	for i := range cart.Items {
		cart.Items[i].CartID = cart.ID
	}
	if err := r.db.Create(cart).Error; err != nil {
		return fmt.Errorf("failed to create cart for session %s: %w", cart.SessionID, err)
	}
	return nil
}

// Save replaces the cart row and its item list in one transaction. Items are
// deleted and reinserted rather than diffed, which keeps the persisted state
// exactly equal to the in-memory cart.
func (r *GORMCartRepository) Save(cart *models.Cart) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CartItem{}, "cart_id = ?", cart.ID).Error; err != nil {
			return err
		}
		for i := range cart.Items {
			cart.Items[i].CartID = cart.ID
		}
		if len(cart.Items) > 0 {
			if err := tx.Create(&cart.Items).Error; err != nil {
				return err
			}
		}
		// Omit Items so GORM doesn't upsert the association a second time.
		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Updates(map[string]interface{}{"updated_at": cart.UpdatedAt}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save cart for session %s: %w", cart.SessionID, err)
	}
	return nil
}
