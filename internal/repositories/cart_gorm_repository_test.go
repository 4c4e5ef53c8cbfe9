package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCartRepo(t *testing.T) *repositories.GORMCartRepository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Cart{}, &models.CartItem{}))

	return repositories.NewGORMCartRepository(db)
}

func TestGORMCartRepository_GetBySessionID_NotFound(t *testing.T) {
	repo := setupCartRepo(t)

	cart, err := repo.GetBySessionID("never-seen")
	assert.Nil(t, cart)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMCartRepository_CreateAndGet(t *testing.T) {
	repo := setupCartRepo(t)

	cart := &models.Cart{
		SessionID: "sess-repo-1",
		Items: []models.CartItem{
			{ID: uuid.New().String(), ProductID: "p1", Name: "Laptop", Price: 1200.00, Quantity: 2},
		},
	}
	assert.NoError(t, repo.Create(cart))
	assert.NotEmpty(t, cart.ID)

	loaded, err := repo.GetBySessionID("sess-repo-1")
	assert.NoError(t, err)
	assert.Equal(t, cart.ID, loaded.ID)
	assert.Len(t, loaded.Items, 1)
	assert.Equal(t, "p1", loaded.Items[0].ProductID)
	assert.Equal(t, cart.ID, loaded.Items[0].CartID)
}

// Save is a whole-document replace: whatever is in memory becomes the
// persisted item list, dropped lines included.
func TestGORMCartRepository_SaveReplacesItems(t *testing.T) {
	repo := setupCartRepo(t)

	cart := &models.Cart{
		SessionID: "sess-repo-2",
		Items: []models.CartItem{
			{ID: uuid.New().String(), ProductID: "p1", Name: "Laptop", Price: 1200.00, Quantity: 2},
			{ID: uuid.New().String(), ProductID: "p2", Name: "Mouse", Price: 25.00, Quantity: 1},
		},
	}
	assert.NoError(t, repo.Create(cart))

	// Drop one line, change the other, save
	cart.Items = cart.Items[:1]
	cart.Items[0].Quantity = 9
	cart.UpdatedAt = time.Now()
	assert.NoError(t, repo.Save(cart))

	loaded, err := repo.GetBySessionID("sess-repo-2")
	assert.NoError(t, err)
	assert.Len(t, loaded.Items, 1)
	assert.Equal(t, "p1", loaded.Items[0].ProductID)
	assert.Equal(t, 9, loaded.Items[0].Quantity)

	// Saving an empty list empties the table but keeps the cart row
	cart.Items = []models.CartItem{}
	assert.NoError(t, repo.Save(cart))

	loaded, err = repo.GetBySessionID("sess-repo-2")
	assert.NoError(t, err)
	assert.Empty(t, loaded.Items)
}
