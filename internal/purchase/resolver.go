// Package purchase decides whether a shopper action belongs to the shared
// marketplace or to one seller's live storefront.
package purchase

import (
	"strings"

	"github.com/pocketangadi/storefront/internal/domain"
)

// RouteClass is the coarse category of a navigation path. Classification is
// kept separate from resolution so the policy table never sees literal paths.
type RouteClass int

const (
	RouteOther RouteClass = iota
	RouteLiveStorefront
	RouteMarketplace
	RouteCart
	RouteCheckout
	RouteProductDetail
)

// ClassifyPath maps a navigation path onto its route class.
func ClassifyPath(path string) RouteClass {
	switch {
	case strings.HasPrefix(path, "/live/"):
		return RouteLiveStorefront
	case strings.HasPrefix(path, "/marketplace"):
		return RouteMarketplace
	case path == "/cart" || strings.HasPrefix(path, "/cart/"):
		return RouteCart
	case path == "/checkout" || strings.HasPrefix(path, "/checkout/"):
		return RouteCheckout
	case strings.HasPrefix(path, "/product/"):
		return RouteProductDetail
	}
	return RouteOther
}

// Resolve applies the purchase-context policy table: first matching rule
// wins. activeStore is the currently active website's store reference, nil when
// no site is active. Resolve is pure; callers re-run it on every navigation
// change.
func Resolve(route RouteClass, activeStore *domain.StoreRef) domain.Resolution {
	switch {
	case route == RouteLiveStorefront:
		return storeResolution(activeStore)
	case route == RouteMarketplace:
		return marketplaceResolution()
	case (route == RouteCart || route == RouteCheckout) && activeStore != nil:
		return storeResolution(activeStore)
	case route == RouteProductDetail:
		if activeStore != nil {
			return storeResolution(activeStore)
		}
		return marketplaceResolution()
	case activeStore != nil:
		return storeResolution(activeStore)
	}
	return marketplaceResolution()
}

// ResolvePath is Resolve with classification folded in.
func ResolvePath(path string, activeStore *domain.StoreRef) domain.Resolution {
	return Resolve(ClassifyPath(path), activeStore)
}

func marketplaceResolution() domain.Resolution {
	return domain.Resolution{
		Context:   domain.ContextMarketplace,
		StoreName: domain.MarketplaceName,
	}
}

func storeResolution(ref *domain.StoreRef) domain.Resolution {
	if ref == nil {
		return domain.Resolution{
			Context:   domain.ContextStore,
			StoreID:   domain.DefaultStoreID,
			StoreName: domain.DefaultStoreName,
		}
	}
	return domain.Resolution{
		Context:   domain.ContextStore,
		StoreID:   ref.ID,
		StoreName: ref.Name,
	}
}
