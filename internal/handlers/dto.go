package handlers

import "github.com/pocketangadi/storefront/internal/domain"

// ResolveContextRequest carries the navigation path the UI is on when an
// action fires.
type ResolveContextRequest struct {
	Path string `json:"path"`
}

type AddCartItemRequest struct {
	Path      string `json:"path"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int                    `json:"quantity"`
	Context  domain.PurchaseContext `json:"context"`
	StoreID  string                 `json:"store_id"`
}

type CheckoutRequest struct {
	Path          string          `json:"path"`
	Customer      domain.Customer `json:"customer"`
	PaymentMethod string          `json:"payment_method"`
}

type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

type CreateWebsiteRequest struct {
	Name     string                `json:"name"`
	URL      string                `json:"url"`
	Template domain.Template       `json:"template"`
	Content  domain.WebsiteContent `json:"content"`
}

// CartView is the context-scoped slice of the ledger the UI renders.
type CartView struct {
	Context domain.PurchaseContext `json:"context"`
	StoreID string                 `json:"store_id,omitempty"`
	Items   []domain.CartItem      `json:"items"`
	Total   float64                `json:"total"`
}
