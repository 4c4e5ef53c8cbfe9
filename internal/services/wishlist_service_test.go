package services_test

import (
	"fmt"
	"testing"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockWishlistRepository is a mock implementation of repositories.WishlistRepository
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) GetBySessionID(sessionID string) ([]models.WishlistItem, error) {
	args := m.Called(sessionID)
	return args.Get(0).([]models.WishlistItem), args.Error(1)
}

func (m *MockWishlistRepository) GetBySessionAndProduct(sessionID, productID string) (*models.WishlistItem, error) {
	args := m.Called(sessionID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WishlistItem), args.Error(1)
}

func (m *MockWishlistRepository) Create(item *models.WishlistItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockWishlistRepository) Delete(sessionID, productID string) error {
	args := m.Called(sessionID, productID)
	return args.Error(0)
}

func TestWishlistService_AddToWishlist(t *testing.T) {
	mockWishlist := new(MockWishlistRepository)
	productRepo := repositories.NewMockProductRepository()
	service := services.NewWishlistService(mockWishlist, productRepo)

	product := models.Product{ID: "p1", Name: "Laptop", Price: 1200.00, Image: "/images/laptop.jpg", Stock: 10}
	assert.NoError(t, productRepo.Create(&product))

	notFound := fmt.Errorf("wishlist entry: %w", repositories.ErrNotFound)

	// Successful save snapshots the product
	mockWishlist.On("GetBySessionAndProduct", "sess-1", "p1").Return(nil, notFound).Once()
	mockWishlist.On("Create", mock.AnythingOfType("*models.WishlistItem")).Return(nil).Once()

	item, err := service.AddToWishlist("sess-1", "p1")
	assert.NoError(t, err)
	assert.Equal(t, "Laptop", item.Name)
	assert.Equal(t, 1200.00, item.Price)
	assert.Equal(t, "sess-1", item.SessionID)
	mockWishlist.AssertExpectations(t)

	// Saving the same product twice for one session is rejected
	mockWishlist.On("GetBySessionAndProduct", "sess-1", "p1").Return(&models.WishlistItem{ID: "w1"}, nil).Once()
	item, err = service.AddToWishlist("sess-1", "p1")
	assert.Nil(t, item)
	assert.ErrorIs(t, err, services.ErrAlreadyWishlisted)
	mockWishlist.AssertExpectations(t)

	// Unknown products are rejected before the wishlist is consulted
	item, err = service.AddToWishlist("sess-1", "nope")
	assert.Nil(t, item)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
	mockWishlist.AssertExpectations(t)
}

func TestWishlistService_RemoveFromWishlist(t *testing.T) {
	mockWishlist := new(MockWishlistRepository)
	productRepo := repositories.NewMockProductRepository()
	service := services.NewWishlistService(mockWishlist, productRepo)

	mockWishlist.On("Delete", "sess-1", "p1").Return(nil).Once()
	assert.NoError(t, service.RemoveFromWishlist("sess-1", "p1"))
	mockWishlist.AssertExpectations(t)

	mockWishlist.On("Delete", "sess-1", "p2").Return(fmt.Errorf("wishlist entry: %w", repositories.ErrNotFound)).Once()
	err := service.RemoveFromWishlist("sess-1", "p2")
	assert.ErrorIs(t, err, services.ErrItemNotFound)
	mockWishlist.AssertExpectations(t)
}

func TestWishlistService_IsWishlisted(t *testing.T) {
	mockWishlist := new(MockWishlistRepository)
	productRepo := repositories.NewMockProductRepository()
	service := services.NewWishlistService(mockWishlist, productRepo)

	mockWishlist.On("GetBySessionAndProduct", "sess-1", "p1").Return(&models.WishlistItem{ID: "w1"}, nil).Once()
	ok, err := service.IsWishlisted("sess-1", "p1")
	assert.NoError(t, err)
	assert.True(t, ok)

	mockWishlist.On("GetBySessionAndProduct", "sess-1", "p2").Return(nil, fmt.Errorf("wishlist entry: %w", repositories.ErrNotFound)).Once()
	ok, err = service.IsWishlisted("sess-1", "p2")
	assert.NoError(t, err)
	assert.False(t, ok)
	mockWishlist.AssertExpectations(t)
}
