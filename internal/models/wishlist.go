package models

import "time"

// WishlistItem is a product a session has saved for later. Like cart items
// it carries a snapshot of the product at save time. A session may hold each
// product at most once.
type WishlistItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	SessionID string    `json:"session_id" gorm:"uniqueIndex:idx_wishlist_session_product;type:varchar(100)"`
	ProductID string    `json:"product_id" gorm:"uniqueIndex:idx_wishlist_session_product;type:varchar(36)"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}
