package domain

// PurchaseContext tells which cart a shopper action belongs to: the shared
// marketplace or one seller's standalone storefront.
type PurchaseContext string

const (
	ContextMarketplace PurchaseContext = "marketplace"
	ContextStore       PurchaseContext = "store"
)

func (c PurchaseContext) Valid() bool {
	return c == ContextMarketplace || c == ContextStore
}

// Sentinel identity used when a store-context action arrives without a
// resolvable active website.
const (
	DefaultStoreID   = "live-store"
	DefaultStoreName = "Live Store"
)

// MarketplaceName is the display name attached to marketplace-context
// resolutions.
const MarketplaceName = "PocketAngadi Marketplace"

// Resolution is the outcome of classifying a shopper action.
type Resolution struct {
	Context   PurchaseContext `json:"context"`
	StoreID   string          `json:"store_id,omitempty"`
	StoreName string          `json:"store_name"`
}

func (r Resolution) IsMarketplace() bool { return r.Context == ContextMarketplace }
func (r Resolution) IsStore() bool       { return r.Context == ContextStore }
