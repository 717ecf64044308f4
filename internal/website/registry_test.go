package website

import (
	"io"
	"testing"

	"github.com/pocketangadi/storefront/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewRegistry(log)
}

func TestCreateActivatesAndFillsDefaults(t *testing.T) {
	reg := newTestRegistry()

	site := reg.Create(CreateRequest{Name: "Acme", URL: "acme-store", Template: domain.TemplateFashion})

	assert.True(t, site.IsActive)
	assert.Equal(t, "Welcome to Our Store", site.Content.HeroTitle)
	assert.Equal(t, "Discover amazing products", site.Content.HeroSubtitle)
	assert.Equal(t, "FASHION", site.Content.LogoText)

	current, ok := reg.Current()
	require.True(t, ok)
	assert.Equal(t, site.ID, current.ID)
}

func TestCreateDeactivatesOlderSites(t *testing.T) {
	reg := newTestRegistry()

	first := reg.Create(CreateRequest{Name: "First", URL: "first"})
	second := reg.Create(CreateRequest{Name: "Second", URL: "second"})

	sites := reg.List()
	require.Len(t, sites, 2)
	for _, s := range sites {
		if s.ID == first.ID {
			assert.False(t, s.IsActive)
		}
		if s.ID == second.ID {
			assert.True(t, s.IsActive)
		}
	}
}

func TestCurrentStoreRefUsesURLAsStoreID(t *testing.T) {
	reg := newTestRegistry()
	assert.Nil(t, reg.CurrentStoreRef())

	reg.Create(CreateRequest{Name: "Acme", URL: "acme-store"})

	ref := reg.CurrentStoreRef()
	require.NotNil(t, ref)
	assert.Equal(t, "acme-store", ref.ID)
	assert.Equal(t, "Acme", ref.Name)
}

func TestUpdateContentMergesNonEmptyFields(t *testing.T) {
	reg := newTestRegistry()
	site := reg.Create(CreateRequest{Name: "Acme", URL: "acme-store"})

	updated, err := reg.UpdateContent(site.ID, domain.WebsiteContent{HeroTitle: "Big Sale"})
	require.NoError(t, err)
	assert.Equal(t, "Big Sale", updated.Content.HeroTitle)
	assert.Equal(t, "Discover amazing products", updated.Content.HeroSubtitle)

	_, err = reg.UpdateContent("missing", domain.WebsiteContent{})
	assert.ErrorIs(t, err, ErrWebsiteNotFound)
}

func TestActivate(t *testing.T) {
	reg := newTestRegistry()
	first := reg.Create(CreateRequest{Name: "First", URL: "first"})
	reg.Create(CreateRequest{Name: "Second", URL: "second"})

	activated, err := reg.Activate(first.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	current, ok := reg.Current()
	require.True(t, ok)
	assert.Equal(t, first.ID, current.ID)

	_, err = reg.Activate("missing")
	assert.ErrorIs(t, err, ErrWebsiteNotFound)
}

func TestDelete(t *testing.T) {
	reg := newTestRegistry()
	site := reg.Create(CreateRequest{Name: "Acme", URL: "acme-store"})

	reg.Delete(site.ID)
	assert.Empty(t, reg.List())

	_, ok := reg.Current()
	assert.False(t, ok)

	// Absent id is a no-op.
	reg.Delete("missing")
}
