package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/pocketangadi/storefront/internal/cart"
	"github.com/pocketangadi/storefront/internal/httpx"
	"github.com/pocketangadi/storefront/internal/orders"
	"github.com/pocketangadi/storefront/internal/purchase"
	"github.com/pocketangadi/storefront/internal/website"
)

type OrderHandler struct {
	orders       *orders.Ledger
	cart         *cart.Ledger
	websites     *website.Registry
	shippingRate float64
	taxRate      float64
}

func NewOrderHandler(ledger *orders.Ledger, cartLedger *cart.Ledger, websites *website.Registry, shippingRate, taxRate float64) *OrderHandler {
	return &OrderHandler{
		orders:       ledger,
		cart:         cartLedger,
		websites:     websites,
		shippingRate: shippingRate,
		taxRate:      taxRate,
	}
}

// Checkout resolves the purchase context, snapshots that context's cart,
// places the order, and only then clears the cart. Stock decrement happens
// inside the order ledger.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "Invalid request body", map[string]interface{}{
			"parse_error": err.Error(),
		})
	}
	if req.Customer.Name == "" {
		return httpx.BadRequest(c, "Customer name is required", nil)
	}
	if req.Customer.Email == "" {
		return httpx.BadRequest(c, "Customer email is required", nil)
	}

	res := purchase.ResolvePath(req.Path, h.websites.CurrentStoreRef())
	items := h.cart.Items(res.Context, res.StoreID)

	order, err := h.orders.PlaceOrder(req.Customer, items, orders.PlaceOptions{
		ShippingRate:  h.shippingRate,
		TaxRate:       h.taxRate,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		if errors.Is(err, orders.ErrEmptyOrder) {
			return httpx.BadRequest(c, "Cart is empty", map[string]interface{}{
				"context":  res.Context,
				"store_id": res.StoreID,
			})
		}
		return httpx.Internal(c, "Order placement failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// The cart clears only after a successful placement.
	h.cart.Clear(res.Context, res.StoreID)

	return httpx.Created(c, "Order placed", fiber.Map{
		"resolution": res,
		"order":      order,
	})
}

// ListOrders returns the history, most recent first.
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	return httpx.OK(c, "Orders retrieved", h.orders.Orders())
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.orders.Order(c.Params("id"))
	if err != nil {
		return httpx.NotFound(c, "Order not found")
	}
	return httpx.OK(c, "Order retrieved", order)
}

// UpdateStatus overwrites an order's status. Any status may follow any
// status.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return httpx.BadRequest(c, "Invalid request body", map[string]interface{}{
			"parse_error": err.Error(),
		})
	}

	err := h.orders.UpdateStatus(c.Params("id"), req.Status)
	switch {
	case errors.Is(err, orders.ErrInvalidStatus):
		return httpx.BadRequest(c, "Unknown order status", map[string]interface{}{
			"status": req.Status,
		})
	case errors.Is(err, orders.ErrOrderNotFound):
		return httpx.NotFound(c, "Order not found")
	case err != nil:
		return httpx.Internal(c, "Order status update failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	order, err := h.orders.Order(c.Params("id"))
	if err != nil {
		return httpx.NotFound(c, "Order not found")
	}
	return httpx.OK(c, "Order status updated", order)
}
