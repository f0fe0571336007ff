// Package filtering derives storefront facets from a heterogeneous product
// collection and applies a shopper's filter selections to it. Everything here
// is a pure function of its inputs.
package filtering

import (
	"sort"
	"strings"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
)

// FacetOption is one selectable value of a facet with the number of products
// in the working set that carry it.
type FacetOption struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FacetSet is everything the filter sidebar needs to render its checkboxes.
type FacetSet struct {
	Storage         []FacetOption            `json:"storage_options"`
	RAM             []FacetOption            `json:"ram_options"`
	Colors          []FacetOption            `json:"color_options"`
	Categories      []FacetOption            `json:"category_options"`
	Brands          []FacetOption            `json:"brand_options"`
	Attributes      map[string][]FacetOption `json:"attribute_options"`
	ValidOptionKeys []string                 `json:"valid_option_keys"`
}

// PriceRange is an inclusive price window.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AvailabilityCounts splits a collection by stock state.
type AvailabilityCounts struct {
	InStock    int `json:"in_stock"`
	OutOfStock int `json:"out_of_stock"`
}

// CategoryMatches reports whether a product category matches a route
// category. Route categories use hyphens where the stored name has spaces
// ("smart-watches" matches "Smart Watches").
func CategoryMatches(productCategory, routeCategory string) bool {
	want := strings.ReplaceAll(strings.TrimSpace(routeCategory), "-", " ")
	return strings.EqualFold(strings.TrimSpace(productCategory), want)
}

// ScopeToCategory returns the products that belong to category. An empty
// category keeps everything.
func ScopeToCategory(products []models.Product, category string) []models.Product {
	if strings.TrimSpace(category) == "" {
		return products
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if CategoryMatches(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

type counter map[string]int

func (c counter) addAll(set valueSet) {
	for v := range set {
		c[v]++
	}
}

// options turns counts into a list ordered by count descending, ties by label
// ascending so the output never depends on input order.
func (c counter) options() []FacetOption {
	out := make([]FacetOption, 0, len(c))
	for label, count := range c {
		out = append(out, FacetOption{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// ExtractFacets scans products, optionally scoped to category, and returns
// every discoverable facet with per-value product counts. A product counts
// once per value no matter how many of its SKUs carry that value.
func ExtractFacets(products []models.Product, category string) FacetSet {
	working := NormalizeAll(ScopeToCategory(products, category))

	storage, ram, colors := counter{}, counter{}, counter{}
	categories, brands := counter{}, counter{}
	attributes := map[string]counter{}

	for _, n := range working {
		storage.addAll(n.Storage)
		ram.addAll(n.RAM)
		colors.addAll(n.Colors)
		for key, set := range n.Attributes {
			c, ok := attributes[key]
			if !ok {
				c = counter{}
				attributes[key] = c
			}
			c.addAll(set)
		}
		if n.Category != "" {
			categories[n.Category]++
		}
		if n.Brand != "" {
			brands[n.Brand]++
		}
	}

	set := FacetSet{
		Storage:         storage.options(),
		RAM:             ram.options(),
		Colors:          colors.options(),
		Categories:      categories.options(),
		Brands:          brands.options(),
		Attributes:      make(map[string][]FacetOption, len(attributes)),
		ValidOptionKeys: []string{},
	}
	for key, c := range attributes {
		set.Attributes[key] = c.options()
		if _, hidden := hiddenOptionKeys[key]; !hidden {
			set.ValidOptionKeys = append(set.ValidOptionKeys, key)
		}
	}
	sort.Strings(set.ValidOptionKeys)

	return set
}

// PriceBounds returns the lowest and highest effective price in products.
func PriceBounds(products []models.Product) PriceRange {
	if len(products) == 0 {
		return PriceRange{}
	}
	bounds := PriceRange{Min: products[0].EffectivePrice(), Max: products[0].EffectivePrice()}
	for _, p := range products[1:] {
		price := p.EffectivePrice()
		if price < bounds.Min {
			bounds.Min = price
		}
		if price > bounds.Max {
			bounds.Max = price
		}
	}
	return bounds
}

// Availability counts products in and out of stock.
func Availability(products []models.Product) AvailabilityCounts {
	var counts AvailabilityCounts
	for _, p := range products {
		if p.InStock() {
			counts.InStock++
		} else {
			counts.OutOfStock++
		}
	}
	return counts
}

// Summary is the filter sidebar payload for one category scope.
type Summary struct {
	FacetSet
	PriceRange   PriceRange         `json:"price_range"`
	Availability AvailabilityCounts `json:"availability"`
	Total        int                `json:"total"`
}

// Summarize derives the sidebar for products already scoped to a category.
func Summarize(products []models.Product) Summary {
	return SummarizeWith(ExtractFacets(products, ""), products)
}

// SummarizeWith completes precomputed facets with the bounds and counts of
// the products they came from.
func SummarizeWith(facets FacetSet, products []models.Product) Summary {
	return Summary{
		FacetSet:     facets,
		PriceRange:   PriceBounds(products),
		Availability: Availability(products),
		Total:        len(products),
	}
}
