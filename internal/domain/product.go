package domain

type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "active"
	ProductStatusOutOfStock ProductStatus = "out_of_stock"
)

// Product is the catalog's authoritative record. OriginalPrice is a
// display-only strikethrough value; nothing enforces it against Price.
type Product struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Price         float64       `json:"price"`
	OriginalPrice float64       `json:"original_price,omitempty"`
	Rating        float64       `json:"rating,omitempty"`
	Reviews       int           `json:"reviews,omitempty"`
	Image         string        `json:"image,omitempty"`
	Images        []string      `json:"images,omitempty"`
	Category      string        `json:"category,omitempty"`
	Store         string        `json:"store,omitempty"`
	FreeShipping  bool          `json:"free_shipping,omitempty"`
	Stock         int           `json:"stock"`
	Status        ProductStatus `json:"status"`
	Description   string        `json:"description,omitempty"`
	Features      []string      `json:"features,omitempty"`
}

// StatusForStock is the stock/status coupling applied after every stock
// mutation.
func StatusForStock(stock int) ProductStatus {
	if stock <= 0 {
		return ProductStatusOutOfStock
	}
	return ProductStatusActive
}

func (p Product) Clone() Product {
	out := p
	if p.Images != nil {
		out.Images = append([]string(nil), p.Images...)
	}
	if p.Features != nil {
		out.Features = append([]string(nil), p.Features...)
	}
	return out
}
