package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"

	"github.com/google/uuid"
)

// Limits on cart growth. The upstream store left both unbounded; 99 per line
// and 100 distinct lines comfortably cover real shopping sessions while
// keeping a single cart document small.
const (
	MaxItemQuantity = 99
	MaxCartItems    = 100
)

// CartService owns the rules for session-scoped carts: lazy creation,
// merge-on-add, absolute quantity updates, removal and clearing. Item
// snapshots (name, price, image) are captured from the catalog at add time
// and never re-synced.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client // RabbitMQ client, may be nil
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		mqClient:    mqClient,
	}
}

// ComputeTotals sums up the derived cart fields: subtotal is the sum of
// price times quantity over all items, totalItems the sum of quantities.
// Both are 0 for an empty list.
func ComputeTotals(items []models.CartItem) (subtotal float64, totalItems int) {
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
		totalItems += item.Quantity
	}
	return subtotal, totalItems
}

// GetOrCreateCart looks up the cart for a session, creating an empty one the
// first time the session is seen.
func (s *CartService) GetOrCreateCart(sessionID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetBySessionID(sessionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			cart = &models.Cart{
				ID:        uuid.New().String(),
				SessionID: sessionID,
				Items:     []models.CartItem{},
			}
			if createErr := s.cartRepo.Create(cart); createErr != nil {
				return nil, fmt.Errorf("failed to create cart for session %s: %w", sessionID, createErr)
			}
			return cart, nil
		}
		return nil, err
	}
	return cart, nil
}

// AddItem resolves the product and merges it into the session's cart: an
// existing line for the same product has its quantity incremented, otherwise
// a new line with a product snapshot is appended. The cart is created lazily
// if the session has none, but only after the product resolves.
func (s *CartService) AddItem(sessionID, productID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if quantity > MaxItemQuantity {
		return nil, ErrQuantityLimit
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to resolve product %s: %w", productID, err)
	}

	cart, err := s.GetOrCreateCart(sessionID)
	if err != nil {
		return nil, err
	}

	if item := cart.FindItemByProduct(productID); item != nil {
		if item.Quantity+quantity > MaxItemQuantity {
			return nil, ErrQuantityLimit
		}
		item.Quantity += quantity
	} else {
		if len(cart.Items) >= MaxCartItems {
			return nil, ErrCartLimit
		}
		cart.Items = append(cart.Items, models.CartItem{
			ID:        uuid.New().String(),
			CartID:    cart.ID,
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  quantity,
		})
	}

	cart.UpdatedAt = time.Now()
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to save cart for session %s: %w", sessionID, err)
	}

	s.publishEvent("cart.item_added", cart, map[string]interface{}{
		"product_id": productID,
		"quantity":   quantity,
	})
	return cart, nil
}

// UpdateItemQuantity sets an item's quantity to an absolute value. Unlike
// AddItem this is a set, not an increment.
func (s *CartService) UpdateItemQuantity(sessionID, itemID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if quantity > MaxItemQuantity {
		return nil, ErrQuantityLimit
	}

	cart, err := s.cartRepo.GetBySessionID(sessionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	item := cart.FindItem(itemID)
	if item == nil {
		return nil, ErrItemNotFound
	}
	item.Quantity = quantity

	cart.UpdatedAt = time.Now()
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to save cart for session %s: %w", sessionID, err)
	}

	s.publishEvent("cart.item_updated", cart, map[string]interface{}{
		"item_id":  itemID,
		"quantity": quantity,
	})
	return cart, nil
}

// RemoveItem drops the given item from the cart.
func (s *CartService) RemoveItem(sessionID, itemID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetBySessionID(sessionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}

	remaining := make([]models.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ID != itemID {
			remaining = append(remaining, item)
		}
	}
	if len(remaining) == len(cart.Items) {
		return nil, ErrItemNotFound
	}
	cart.Items = remaining

	cart.UpdatedAt = time.Now()
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to save cart for session %s: %w", sessionID, err)
	}

	s.publishEvent("cart.item_removed", cart, map[string]interface{}{
		"item_id": itemID,
	})
	return cart, nil
}

// ClearCart empties the session's cart unconditionally, creating the cart
// first if the session never had one. The cart record itself survives.
func (s *CartService) ClearCart(sessionID string) (*models.Cart, error) {
	cart, err := s.GetOrCreateCart(sessionID)
	if err != nil {
		return nil, err
	}

	cart.Items = []models.CartItem{}
	cart.UpdatedAt = time.Now()
	if err := s.cartRepo.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to save cart for session %s: %w", sessionID, err)
	}

	s.publishEvent("cart.cleared", cart, nil)
	return cart, nil
}

// publishEvent emits a cart mutation event. Publishing is best-effort: a nil
// client is skipped and failures are logged, never surfaced to the caller.
func (s *CartService) publishEvent(routingKey string, cart *models.Cart, extra map[string]interface{}) {
	if s.mqClient == nil {
		return
	}

	subtotal, totalItems := ComputeTotals(cart.Items)
	event := map[string]interface{}{
		"session_id":  cart.SessionID,
		"cart_id":     cart.ID,
		"subtotal":    subtotal,
		"total_items": totalItems,
	}
	for k, v := range extra {
		event[k] = v
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal cart event to JSON: %v", err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for session %s: %v", routingKey, cart.SessionID, err)
	}
}
