package domain

// CartItem is one row in the cart ledger. Name, price and image are copied
// from the product at add time; later catalog edits do not touch existing
// lines.
type CartItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice float64         `json:"unit_price"`
	Image     string          `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
	Context   PurchaseContext `json:"context"`
	StoreID   string          `json:"store_id,omitempty"`
}

// LineKey is the identity of a cart line. The ledger holds at most one line
// per key; adding on an existing key merges quantities.
type LineKey struct {
	ProductID string
	Context   PurchaseContext
	StoreID   string
}

func (i CartItem) Key() LineKey {
	return LineKey{ProductID: i.ProductID, Context: i.Context, StoreID: i.StoreID}
}

func (i CartItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
