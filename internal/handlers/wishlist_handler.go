package handlers

import (
	"errors"
	"log"

	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles HTTP requests for session wishlists.
type WishlistHandler struct {
	service  *services.WishlistService
	validate *validator.Validate
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the wishlist routes with the Fiber app.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.HandleGetWishlist)
	wishlistRoutes.Post("/", h.HandleAddToWishlist)
	wishlistRoutes.Delete("/:productId", h.HandleRemoveFromWishlist)
	wishlistRoutes.Get("/check/:productId", h.HandleCheckWishlist)
}

// AddWishlistRequest is the body for saving a product to a wishlist.
type AddWishlistRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
}

// HandleGetWishlist returns all saved products for a session. The session is
// identified by the sessionId query parameter.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "sessionId query parameter is required",
		})
	}

	items, err := h.service.GetWishlist(sessionID)
	if err != nil {
		log.Printf("Error getting wishlist for session %s: %v", sessionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error while fetching wishlist",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"items":   items,
	})
}

// HandleAddToWishlist saves a product for the session.
func (h *WishlistHandler) HandleAddToWishlist(c *fiber.Ctx) error {
	var req AddWishlistRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing wishlist request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Missing required fields: sessionId, productId",
		})
	}

	item, err := h.service.AddToWishlist(req.SessionID, req.ProductID)
	if err != nil {
		log.Printf("Error adding to wishlist for session %s: %v", req.SessionID, err)
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		case errors.Is(err, services.ErrAlreadyWishlisted):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error while adding to wishlist",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"item":    item,
	})
}

// HandleRemoveFromWishlist deletes one saved product for the session.
func (h *WishlistHandler) HandleRemoveFromWishlist(c *fiber.Ctx) error {
	sessionID := c.Query("sessionId")
	productID := c.Params("productId")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "sessionId query parameter is required",
		})
	}

	if err := h.service.RemoveFromWishlist(sessionID, productID); err != nil {
		log.Printf("Error removing wishlist entry for session %s: %v", sessionID, err)
		if errors.Is(err, services.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Product not found in wishlist",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error while removing from wishlist",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product removed from wishlist",
	})
}

// HandleCheckWishlist reports whether the session has saved the product.
func (h *WishlistHandler) HandleCheckWishlist(c *fiber.Ctx) error {
	sessionID := c.Query("sessionId")
	productID := c.Params("productId")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "sessionId query parameter is required",
		})
	}

	wishlisted, err := h.service.IsWishlisted(sessionID, productID)
	if err != nil {
		log.Printf("Error checking wishlist for session %s: %v", sessionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server error while checking wishlist",
		})
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"isInWishlist": wishlisted,
	})
}
