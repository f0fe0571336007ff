package catalog_cache

import (
	"strings"
	"sync"
	"time"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/filtering"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
)

const DefaultTTL = 5 * time.Minute

// ── Catalog cache ────────────────────────────────────────────────────────────
// Stores the category-scoped product list and the facets derived from it.
// Facets are computed lazily on first read and kept with the products they
// came from so the two never drift apart.

type entry struct {
	products  []models.Product
	facets    *filtering.FacetSet
	fetchedAt time.Time
}

type Catalog struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]*entry
}

func New(ttl time.Duration) *Catalog {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Catalog{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

func key(category string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(category), "-", " "))
}

func (c *Catalog) fresh(e *entry) bool {
	return e != nil && c.now().Sub(e.fetchedAt) < c.ttl
}

// GetProducts returns the cached products for category.
func (c *Catalog) GetProducts(category string) ([]models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e := c.entries[key(category)]
	if !c.fresh(e) {
		return nil, false
	}
	return e.products, true
}

func (c *Catalog) SetProducts(category string, products []models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key(category)] = &entry{products: products, fetchedAt: c.now()}
}

// GetFacets returns the facets for category, deriving them from the cached
// products on first use. ok is false when no fresh product list is cached.
func (c *Catalog) GetFacets(category string) (filtering.FacetSet, bool) {
	k := key(category)

	c.mu.RLock()
	e := c.entries[k]
	if !c.fresh(e) {
		c.mu.RUnlock()
		return filtering.FacetSet{}, false
	}
	if e.facets != nil {
		facets := *e.facets
		c.mu.RUnlock()
		return facets, true
	}
	c.mu.RUnlock()

	// The cached list is already category scoped.
	facets := filtering.ExtractFacets(e.products, "")

	c.mu.Lock()
	if current := c.entries[k]; current == e {
		e.facets = &facets
	}
	c.mu.Unlock()
	return facets, true
}

// ── Invalidate everything (call after the catalog is reseeded) ──────────────

func (c *Catalog) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]*entry)
	c.mu.Unlock()
}
