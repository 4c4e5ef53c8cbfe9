package models

import "time"

// CartItem is a single line in a cart. Name, price and image are a snapshot
// of the product taken when the item was added; they are not re-synced if
// the product changes later.
type CartItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CartID    string  `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)" validate:"required"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
}

// Cart holds the line items for one shopping session. Items are unique by
// ProductID; adding the same product again merges quantities instead of
// appending a second line. A cart is never hard-deleted, clearing it only
// empties the item list.
type Cart struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SessionID string     `json:"session_id" gorm:"uniqueIndex;type:varchar(100)"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// FindItem returns the cart item with the given ID, or nil.
func (c *Cart) FindItem(itemID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return &c.Items[i]
		}
	}
	return nil
}

// FindItemByProduct returns the cart item holding the given product, or nil.
func (c *Cart) FindItemByProduct(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}
