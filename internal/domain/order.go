package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
}

// Order is an immutable record of one checkout. Items are snapshots taken at
// placement; totals are computed once and stored, never recomputed on read.
type Order struct {
	ID             string      `json:"id"`
	Date           string      `json:"date"`
	CreatedAt      time.Time   `json:"created_at"`
	Customer       Customer    `json:"customer"`
	Items          []CartItem  `json:"items"`
	Subtotal       float64     `json:"subtotal"`
	Shipping       float64     `json:"shipping"`
	Tax            float64     `json:"tax"`
	Total          float64     `json:"total"`
	Status         OrderStatus `json:"status"`
	PaymentMethod  string      `json:"payment_method,omitempty"`
	TrackingNumber string      `json:"tracking_number,omitempty"`
}

// CloneItems deep-copies the item snapshots so callers can hand out order
// records without exposing the stored slice.
func (o Order) CloneItems() []CartItem {
	items := make([]CartItem, len(o.Items))
	copy(items, o.Items)
	return items
}
