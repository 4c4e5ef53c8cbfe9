package handlers

import (
	"errors"
	"log"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for session carts. Every response uses
// the {success, cart, message} envelope, with subtotal and total_items
// attached to each cart payload.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Post("/", h.HandleGetCart)
	cartRoutes.Post("/add", h.HandleAddItem)
	cartRoutes.Post("/update", h.HandleUpdateItem)
	cartRoutes.Post("/remove", h.HandleRemoveItem)
	cartRoutes.Post("/clear", h.HandleClearCart)
}

// GetCartRequest is the body for fetching (or lazily creating) a cart.
type GetCartRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// AddItemRequest is the body for adding a product to a cart. Quantity is
// optional and defaults to 1.
type AddItemRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Quantity  *int   `json:"quantity"`
}

// UpdateItemRequest is the body for setting an item's quantity.
type UpdateItemRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	ItemID    string `json:"itemId" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"required"`
}

// RemoveItemRequest is the body for removing an item from a cart.
type RemoveItemRequest struct {
	SessionID string `json:"sessionId" validate:"required"`
	ItemID    string `json:"itemId" validate:"required"`
}

// HandleGetCart returns the session's cart, creating it on first sight.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	var req GetCartRequest
	if ok, err := h.parseAndValidate(c, &req); !ok {
		return err
	}

	cart, err := h.service.GetOrCreateCart(req.SessionID)
	if err != nil {
		return h.respondError(c, err, "Error getting cart")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"cart":    cartPayload(cart),
	})
}

// HandleAddItem adds a product to the session's cart, merging quantities
// when the product is already present.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if ok, err := h.parseAndValidate(c, &req); !ok {
		return err
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	cart, err := h.service.AddItem(req.SessionID, req.ProductID, quantity)
	if err != nil {
		return h.respondError(c, err, "Error adding to cart")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"cart":    cartPayload(cart),
	})
}

// HandleUpdateItem sets the absolute quantity of one cart item.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req UpdateItemRequest
	if ok, err := h.parseAndValidate(c, &req); !ok {
		return err
	}

	cart, err := h.service.UpdateItemQuantity(req.SessionID, req.ItemID, *req.Quantity)
	if err != nil {
		return h.respondError(c, err, "Error updating cart item")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"cart":    cartPayload(cart),
	})
}

// HandleRemoveItem removes one item from the session's cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	var req RemoveItemRequest
	if ok, err := h.parseAndValidate(c, &req); !ok {
		return err
	}

	cart, err := h.service.RemoveItem(req.SessionID, req.ItemID)
	if err != nil {
		return h.respondError(c, err, "Error removing cart item")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"cart":    cartPayload(cart),
	})
}

// HandleClearCart empties the session's cart. Always succeeds, whether or
// not the cart existed before.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	var req GetCartRequest
	if ok, err := h.parseAndValidate(c, &req); !ok {
		return err
	}

	cart, err := h.service.ClearCart(req.SessionID)
	if err != nil {
		return h.respondError(c, err, "Error clearing cart")
	}
	return c.JSON(fiber.Map{
		"success": true,
		"cart":    cartPayload(cart),
	})
}

// parseAndValidate binds the JSON body into dst and runs the validator,
// writing the 400 response itself when either step fails. The bool reports
// whether the handler may proceed.
func (h *CartHandler) parseAndValidate(c *fiber.Ctx, dst interface{}) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		log.Printf("Error parsing cart request body: %v", err)
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Missing or invalid required fields",
		})
	}
	return true, nil
}

// respondError maps a service error onto the envelope: not-found errors are
// 404, invalid input is 400, everything else is a storage failure (500).
func (h *CartHandler) respondError(c *fiber.Ctx, err error, logContext string) error {
	log.Printf("%s: %v", logContext, err)

	status := fiber.StatusInternalServerError
	message := "Server error while processing cart"
	switch {
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCartNotFound),
		errors.Is(err, services.ErrItemNotFound):
		status = fiber.StatusNotFound
		message = err.Error()
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrQuantityLimit),
		errors.Is(err, services.ErrCartLimit):
		status = fiber.StatusBadRequest
		message = err.Error()
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// cartPayload shapes a cart for the response envelope, attaching the derived
// subtotal and total_items fields.
func cartPayload(cart *models.Cart) fiber.Map {
	subtotal, totalItems := services.ComputeTotals(cart.Items)
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return fiber.Map{
		"id":          cart.ID,
		"session_id":  cart.SessionID,
		"items":       items,
		"created_at":  cart.CreatedAt,
		"updated_at":  cart.UpdatedAt,
		"subtotal":    subtotal,
		"total_items": totalItems,
	}
}
