package filtering

import (
	"math"
	"sort"
	"strings"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
)

// SortBy selects the order of a filtered listing.
type SortBy string

const (
	SortPopularity SortBy = "popularity"
	SortPriceLow   SortBy = "price-low"
	SortPriceHigh  SortBy = "price-high"
	SortRating     SortBy = "rating"
)

// ParseSortBy maps a query value onto a known order, defaulting to
// popularity (the order the backend returned).
func ParseSortBy(raw string) SortBy {
	switch SortBy(strings.ToLower(strings.TrimSpace(raw))) {
	case SortPriceLow:
		return SortPriceLow
	case SortPriceHigh:
		return SortPriceHigh
	case SortRating:
		return SortRating
	default:
		return SortPopularity
	}
}

// Query carries the listing inputs that are not part of the filter state.
type Query struct {
	Search string
	SortBy SortBy
	// FixedCategory is set when the page route already pins a category; the
	// category selection is then ignored.
	FixedCategory string
}

// Apply returns the products that pass every active filter in state, sorted
// by q.SortBy. The input slice is left untouched.
func Apply(products []models.Product, state State, q Query) []models.Product {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	ignoreCategory := strings.TrimSpace(q.FixedCategory) != ""

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(Normalize(p), state, search, ignoreCategory) {
			out = append(out, p)
		}
	}

	sortProducts(out, q.SortBy)
	return out
}

func matches(n Normalized, s State, search string, ignoreCategory bool) bool {
	p := n.Product

	if search != "" &&
		!strings.Contains(strings.ToLower(p.Name), search) &&
		!strings.Contains(strings.ToLower(p.Description), search) &&
		!strings.Contains(strings.ToLower(p.Brand), search) {
		return false
	}

	if len(s.Brands) > 0 && !contains(s.Brands, n.Brand) {
		return false
	}

	if !ignoreCategory && len(s.Categories) > 0 && !contains(s.Categories, n.Category) {
		return false
	}

	if s.PriceRange != nil {
		price := p.EffectivePrice()
		if price < s.PriceRange.Min || price > s.PriceRange.Max {
			return false
		}
	}

	if s.MinRating > 0 && roundHalfUp(p.Rating) < float64(s.MinRating) {
		return false
	}

	// Stock only narrows when exactly one toggle is on; both or neither
	// leave the listing untouched.
	if s.InStock != s.OutOfStock {
		if s.InStock && !p.InStock() {
			return false
		}
		if s.OutOfStock && p.InStock() {
			return false
		}
	}

	if len(s.Storage) > 0 && !n.Storage.intersects(s.Storage) {
		return false
	}
	if len(s.RAM) > 0 && !n.RAM.intersects(s.RAM) {
		return false
	}
	if len(s.Colors) > 0 && !n.Colors.intersects(s.Colors) {
		return false
	}

	for key, selected := range s.Attributes {
		if len(selected) == 0 {
			continue
		}
		if !n.Attributes[key].intersects(selected) {
			return false
		}
	}

	if s.MinDiscount != nil {
		pct, ok := DiscountPercent(p)
		if !ok || pct < *s.MinDiscount {
			return false
		}
	}

	return true
}

// DiscountPercent is the whole-number markdown of p. ok is false when the
// product carries no real discount.
func DiscountPercent(p models.Product) (pct int, ok bool) {
	if p.DiscountPrice == nil || p.Price <= 0 || p.Price <= *p.DiscountPrice {
		return 0, false
	}
	return int(roundHalfUp((p.Price - *p.DiscountPrice) / p.Price * 100)), true
}

func sortProducts(products []models.Product, by SortBy) {
	switch by {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
