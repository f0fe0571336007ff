package catalog_cache

import (
	"testing"
	"time"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCacheExpires(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	c := New(time.Minute)
	c.now = func() time.Time { return now }

	c.SetProducts("Smart-Watches", []models.Product{{Name: "Pulse"}})

	got, ok := c.GetProducts("smart watches")
	require.True(t, ok)
	assert.Len(t, got, 1)

	now = now.Add(2 * time.Minute)
	_, ok = c.GetProducts("smart watches")
	assert.False(t, ok)
}

func TestCatalogCacheDerivesFacetsOnce(t *testing.T) {
	c := New(time.Minute)

	_, ok := c.GetFacets("mobiles")
	assert.False(t, ok)

	c.SetProducts("mobiles", []models.Product{
		{Name: "A", Category: "Mobiles", Variant: models.ProductVariant{Colors: []string{"Black"}}},
	})

	facets, ok := c.GetFacets("mobiles")
	require.True(t, ok)
	require.Len(t, facets.Colors, 1)
	assert.Equal(t, "Black", facets.Colors[0].Label)

	again, ok := c.GetFacets("Mobiles")
	require.True(t, ok)
	assert.Equal(t, facets, again)
}

func TestCatalogCacheInvalidate(t *testing.T) {
	c := New(0)
	c.SetProducts("", []models.Product{{Name: "A"}})
	c.Invalidate()

	_, ok := c.GetProducts("")
	assert.False(t, ok)
}
