package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pocketangadi/storefront/internal/catalog"
	"github.com/pocketangadi/storefront/internal/domain"
	"github.com/pocketangadi/storefront/internal/httpx"
)

type ProductHandler struct {
	catalog *catalog.Service
}

func NewProductHandler(cat *catalog.Service) *ProductHandler {
	return &ProductHandler{catalog: cat}
}

func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	return httpx.OK(c, "Products retrieved", h.catalog.List())
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.catalog.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			return httpx.NotFound(c, "Product not found")
		}
		return httpx.Internal(c, "Product lookup failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return httpx.OK(c, "Product retrieved", product)
}

// CreateProduct inserts a dashboard-authored product. An omitted id gets a
// generated one; an omitted status is derived from stock.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product domain.Product
	if err := c.BodyParser(&product); err != nil {
		return httpx.BadRequest(c, "Invalid request body", map[string]interface{}{
			"parse_error": err.Error(),
		})
	}
	if msg, details, ok := validateProduct(product); !ok {
		return httpx.BadRequest(c, msg, details)
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if product.Status == "" {
		product.Status = domain.StatusForStock(product.Stock)
	}

	h.catalog.Upsert(product)
	return httpx.Created(c, "Product created", product)
}

// UpdateProduct fully replaces the record under the path id.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	var product domain.Product
	if err := c.BodyParser(&product); err != nil {
		return httpx.BadRequest(c, "Invalid request body", map[string]interface{}{
			"parse_error": err.Error(),
		})
	}
	if msg, details, ok := validateProduct(product); !ok {
		return httpx.BadRequest(c, msg, details)
	}

	product.ID = c.Params("id")
	if product.Status == "" {
		product.Status = domain.StatusForStock(product.Stock)
	}

	h.catalog.Upsert(product)
	return httpx.OK(c, "Product updated", product)
}

// DeleteProduct removes by id; removing an absent id is still a success.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	h.catalog.Remove(c.Params("id"))
	return httpx.OK(c, "Product removed", nil)
}

func (h *ProductHandler) ListCategories(c *fiber.Ctx) error {
	categories := h.catalog.Categories()
	if categories == nil {
		categories = []string{}
	}
	return httpx.OK(c, "Categories retrieved", categories)
}

func validateProduct(p domain.Product) (string, map[string]interface{}, bool) {
	if p.Name == "" {
		return "Product name is required", nil, false
	}
	if p.Price < 0 {
		return "Price cannot be negative", map[string]interface{}{"price": p.Price}, false
	}
	if p.Stock < 0 {
		return "Stock cannot be negative", map[string]interface{}{"stock": p.Stock}, false
	}
	return "", nil, true
}
