package services

import (
	"errors"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/repositories"
)

// ErrAlreadyWishlisted signals the session already saved this product.
var ErrAlreadyWishlisted = errors.New("product already in wishlist")

// WishlistService handles per-session saved products. Earlier incarnations
// of this feature kept one process-global list; entries are now persisted
// and scoped to the session like carts are.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlistRepo repositories.WishlistRepository, productRepo repositories.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// GetWishlist returns all products the session has saved.
func (s *WishlistService) GetWishlist(sessionID string) ([]models.WishlistItem, error) {
	return s.wishlistRepo.GetBySessionID(sessionID)
}

// AddToWishlist saves a product for the session. The entry snapshots the
// product the same way cart lines do. Each product can be saved once per
// session.
func (s *WishlistService) AddToWishlist(sessionID, productID string) (*models.WishlistItem, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to resolve product %s: %w", productID, err)
	}

	if existing, err := s.wishlistRepo.GetBySessionAndProduct(sessionID, productID); err == nil && existing != nil {
		return nil, ErrAlreadyWishlisted
	}

	item := &models.WishlistItem{
		SessionID: sessionID,
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
	}
	if err := s.wishlistRepo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to save wishlist entry: %w", err)
	}
	return item, nil
}

// RemoveFromWishlist deletes one saved product for the session.
func (s *WishlistService) RemoveFromWishlist(sessionID, productID string) error {
	if err := s.wishlistRepo.Delete(sessionID, productID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to remove wishlist entry: %w", err)
	}
	return nil
}

// IsWishlisted reports whether the session has saved the product.
func (s *WishlistService) IsWishlisted(sessionID, productID string) (bool, error) {
	_, err := s.wishlistRepo.GetBySessionAndProduct(sessionID, productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
