// Package website tracks the seller storefronts built from the dashboard.
// The registry's current site is what ties cart and checkout actions to a
// store context.
package website

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pocketangadi/storefront/internal/domain"
	"github.com/sirupsen/logrus"
)

var ErrWebsiteNotFound = errors.New("website: site not found")

// CreateRequest carries the fields the dashboard supplies when publishing a
// site. Content defaults are filled in for anything left blank.
type CreateRequest struct {
	Name     string
	URL      string
	Template domain.Template
	Content  domain.WebsiteContent
}

// Registry holds every published site and tracks which one is active. At
// most one site is active at a time; creating or activating a site
// deactivates the rest.
type Registry struct {
	mu        sync.Mutex
	sites     []domain.Website
	currentID string
	log       *logrus.Logger
	now       func() time.Time
}

func NewRegistry(log *logrus.Logger) *Registry {
	return &Registry{log: log, now: time.Now}
}

// Create publishes a new site, activates it, and makes it current.
func (r *Registry) Create(req CreateRequest) domain.Website {
	site := domain.Website{
		ID:        "website-" + uuid.NewString(),
		Name:      req.Name,
		URL:       req.URL,
		Template:  req.Template,
		Content:   contentWithDefaults(req.Content),
		CreatedAt: r.now(),
		IsActive:  true,
	}
	if site.Template == "" {
		site.Template = domain.TemplateDefault
	}

	r.mu.Lock()
	for i := range r.sites {
		r.sites[i].IsActive = false
	}
	r.sites = append(r.sites, site)
	r.currentID = site.ID
	r.mu.Unlock()

	r.log.WithFields(logrus.Fields{
		"website_id": site.ID,
		"url":        site.URL,
	}).Info("website published")
	return site
}

// List returns every site in creation order.
func (r *Registry) List() []domain.Website {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Website, len(r.sites))
	copy(out, r.sites)
	return out
}

// Get fetches one site by id.
func (r *Registry) Get(id string) (domain.Website, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sites {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Website{}, ErrWebsiteNotFound
}

// Current returns the site the dashboard is working on, or false when none
// is selected.
func (r *Registry) Current() (domain.Website, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sites {
		if s.ID == r.currentID {
			return s, true
		}
	}
	return domain.Website{}, false
}

// CurrentStoreRef is the resolver's view of the current site: nil when no
// site is selected.
func (r *Registry) CurrentStoreRef() *domain.StoreRef {
	site, ok := r.Current()
	if !ok {
		return nil
	}
	ref := site.StoreRef()
	return &ref
}

// UpdateContent merges the non-empty fields of content into a site's
// editable copy.
func (r *Registry) UpdateContent(id string, content domain.WebsiteContent) (domain.Website, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.sites {
		if r.sites[i].ID != id {
			continue
		}
		if content.HeroTitle != "" {
			r.sites[i].Content.HeroTitle = content.HeroTitle
		}
		if content.HeroSubtitle != "" {
			r.sites[i].Content.HeroSubtitle = content.HeroSubtitle
		}
		if content.LogoText != "" {
			r.sites[i].Content.LogoText = content.LogoText
		}
		return r.sites[i], nil
	}
	return domain.Website{}, ErrWebsiteNotFound
}

// Activate makes one site the active, current site and deactivates the rest.
func (r *Registry) Activate(id string) (domain.Website, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var activated *domain.Website
	for i := range r.sites {
		if r.sites[i].ID == id {
			r.sites[i].IsActive = true
			activated = &r.sites[i]
		} else {
			r.sites[i].IsActive = false
		}
	}
	if activated == nil {
		return domain.Website{}, ErrWebsiteNotFound
	}
	r.currentID = id
	return *activated, nil
}

// Delete removes a site. Deleting the current site leaves no site selected.
// Deleting an absent id is a no-op.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.sites {
		if r.sites[i].ID == id {
			r.sites = append(r.sites[:i], r.sites[i+1:]...)
			if r.currentID == id {
				r.currentID = ""
			}
			return
		}
	}
}

func contentWithDefaults(c domain.WebsiteContent) domain.WebsiteContent {
	if c.HeroTitle == "" {
		c.HeroTitle = "Welcome to Our Store"
	}
	if c.HeroSubtitle == "" {
		c.HeroSubtitle = "Discover amazing products"
	}
	if c.LogoText == "" {
		c.LogoText = "FASHION"
	}
	return c
}
