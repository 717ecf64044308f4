package domain

import "time"

type Template string

const (
	TemplateFashion Template = "fashion"
	TemplateDefault Template = "default"
)

// WebsiteContent is the editable copy on a seller's live site.
type WebsiteContent struct {
	HeroTitle    string `json:"hero_title,omitempty"`
	HeroSubtitle string `json:"hero_subtitle,omitempty"`
	LogoText     string `json:"logo_text,omitempty"`
}

// Website is one seller's published storefront. URL is the slug under the
// live namespace and doubles as the store id on cart lines and orders.
type Website struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	URL       string         `json:"url"`
	Template  Template       `json:"template"`
	Content   WebsiteContent `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	IsActive  bool           `json:"is_active"`
}

// StoreRef is the slice of a website the purchase resolver needs.
type StoreRef struct {
	ID   string
	Name string
}

func (w Website) StoreRef() StoreRef {
	return StoreRef{ID: w.URL, Name: w.Name}
}
