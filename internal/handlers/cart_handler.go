package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pocketangadi/storefront/internal/cart"
	"github.com/pocketangadi/storefront/internal/catalog"
	"github.com/pocketangadi/storefront/internal/domain"
	"github.com/pocketangadi/storefront/internal/httpx"
	"github.com/pocketangadi/storefront/internal/purchase"
	"github.com/pocketangadi/storefront/internal/website"
)

type CartHandler struct {
	ledger   *cart.Ledger
	catalog  *catalog.Service
	websites *website.Registry
}

func NewCartHandler(ledger *cart.Ledger, cat *catalog.Service, websites *website.Registry) *CartHandler {
	return &CartHandler{ledger: ledger, catalog: cat, websites: websites}
}

// ResolveContext exposes the purchase-context policy table: the UI posts the
// path it is on and gets back the context the action would land in.
func (h *CartHandler) ResolveContext(c *fiber.Ctx) error {
	var req ResolveContextRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "Invalid request body", map[string]interface{}{
			"parse_error": err.Error(),
		})
	}

	res := purchase.ResolvePath(req.Path, h.websites.CurrentStoreRef())
	return httpx.OK(c, "Purchase context resolved", res)
}

// AddItem resolves the purchase context from the caller's path, copies the
// product's name, price and image into a cart line, and merges it into the
// ledger.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "Invalid request body", map[string]interface{}{
			"parse_error": err.Error(),
		})
	}
	if req.ProductID == "" {
		return httpx.BadRequest(c, "Product ID is required", nil)
	}
	if req.Quantity < 1 {
		return httpx.BadRequest(c, "Quantity must be at least 1", map[string]interface{}{
			"quantity": req.Quantity,
		})
	}

	product, err := h.catalog.Get(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return httpx.NotFound(c, "Product not found")
		}
		return httpx.Internal(c, "Product lookup failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	res := purchase.ResolvePath(req.Path, h.websites.CurrentStoreRef())
	item := domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Image:     product.Image,
		Quantity:  req.Quantity,
		Context:   res.Context,
		StoreID:   res.StoreID,
	}
	if err := h.ledger.AddItem(item); err != nil {
		return httpx.BadRequest(c, "Could not add item to cart", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return httpx.OK(c, "Item added to cart", fiber.Map{
		"resolution": res,
		"cart":       h.view(res.Context, res.StoreID),
	})
}

// ViewCart returns one context's lines and total. An empty cart is an empty
// view, never an error.
func (h *CartHandler) ViewCart(c *fiber.Ctx) error {
	ctx, ok := contextFromQuery(c)
	if !ok {
		return httpx.BadRequest(c, "Unknown purchase context", map[string]interface{}{
			"context": c.Query("context"),
		})
	}
	return httpx.OK(c, "Cart retrieved", h.view(ctx, c.Query("store_id")))
}

// UpdateItem overwrites a line's quantity; zero or less removes the line.
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	var req UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "Invalid request body", map[string]interface{}{
			"parse_error": err.Error(),
		})
	}
	ctx := req.Context
	if ctx == "" {
		ctx = domain.ContextMarketplace
	}
	if !ctx.Valid() {
		return httpx.BadRequest(c, "Unknown purchase context", map[string]interface{}{
			"context": req.Context,
		})
	}

	h.ledger.UpdateQuantity(c.Params("product_id"), req.Quantity, ctx, req.StoreID)
	return httpx.OK(c, "Cart updated", h.view(ctx, req.StoreID))
}

// RemoveItem deletes a line. Removing an absent line is still a success.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	ctx, ok := contextFromQuery(c)
	if !ok {
		return httpx.BadRequest(c, "Unknown purchase context", map[string]interface{}{
			"context": c.Query("context"),
		})
	}
	storeID := c.Query("store_id")
	h.ledger.RemoveItem(c.Params("product_id"), ctx, storeID)
	return httpx.OK(c, "Item removed from cart", h.view(ctx, storeID))
}

// ClearCart drops every line in one context's view.
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	ctx, ok := contextFromQuery(c)
	if !ok {
		return httpx.BadRequest(c, "Unknown purchase context", map[string]interface{}{
			"context": c.Query("context"),
		})
	}
	storeID := c.Query("store_id")
	h.ledger.Clear(ctx, storeID)
	return httpx.OK(c, "Cart cleared", h.view(ctx, storeID))
}

func (h *CartHandler) view(ctx domain.PurchaseContext, storeID string) CartView {
	items := h.ledger.Items(ctx, storeID)
	if items == nil {
		items = []domain.CartItem{}
	}
	return CartView{
		Context: ctx,
		StoreID: storeID,
		Items:   items,
		Total:   h.ledger.TotalPrice(ctx, storeID),
	}
}

func contextFromQuery(c *fiber.Ctx) (domain.PurchaseContext, bool) {
	raw := c.Query("context", string(domain.ContextMarketplace))
	ctx := domain.PurchaseContext(raw)
	return ctx, ctx.Valid()
}
