package filtering

import (
	"testing"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

// scenarioProducts is the two-phone catalog used by the listing scenarios.
func scenarioProducts() []models.Product {
	return []models.Product{
		{Name: "Acme", Brand: "Acme", Price: 100, DiscountPrice: price(80), Category: "phones", Rating: 4.2, Stock: 3},
		{Name: "Zeta", Brand: "Zeta", Price: 200, Category: "phones", Rating: 3.9, Stock: 0},
	}
}

func TestApplyPriceRangeScenario(t *testing.T) {
	state := NewState()
	state.SetPriceRange(0, 150)

	got := Apply(scenarioProducts(), state, Query{})
	assert.Equal(t, []string{"Acme"}, names(got))
}

func TestApplyPriceRangeIsInclusive(t *testing.T) {
	products := scenarioProducts()

	state := NewState()
	state.SetPriceRange(80, 200)
	assert.Equal(t, []string{"Acme", "Zeta"}, names(Apply(products, state, Query{})))

	state.SetPriceRange(200, 200)
	assert.Equal(t, []string{"Zeta"}, names(Apply(products, state, Query{})))
}

func TestApplyDiscountFloor(t *testing.T) {
	products := append(scenarioProducts(), models.Product{
		Name: "Flat", Price: 50, DiscountPrice: price(50), Stock: 1,
	})

	state := NewState()
	state.SetMinDiscount(intPtr(20))
	assert.Equal(t, []string{"Acme"}, names(Apply(products, state, Query{})))

	state.SetMinDiscount(intPtr(21))
	assert.Empty(t, Apply(products, state, Query{}))

	state.SetMinDiscount(intPtr(0))
	assert.Equal(t, []string{"Acme"}, names(Apply(products, state, Query{})),
		"products without a real discount never pass a set discount floor")
}

func TestDiscountPercent(t *testing.T) {
	pct, ok := DiscountPercent(models.Product{Price: 100, DiscountPrice: price(80)})
	require.True(t, ok)
	assert.Equal(t, 20, pct)

	pct, ok = DiscountPercent(models.Product{Price: 3, DiscountPrice: price(2)})
	require.True(t, ok)
	assert.Equal(t, 33, pct)

	_, ok = DiscountPercent(models.Product{Price: 100, DiscountPrice: price(100)})
	assert.False(t, ok)
	_, ok = DiscountPercent(models.Product{Price: 100})
	assert.False(t, ok)
	_, ok = DiscountPercent(models.Product{Price: 0, DiscountPrice: price(0)})
	assert.False(t, ok)
}

func TestApplyEmptySelectionsPassEverything(t *testing.T) {
	products := catalog()

	got := Apply(products, NewState(), Query{})
	assert.Equal(t, names(products), names(got))

	var zero State
	assert.Equal(t, names(products), names(Apply(products, zero, Query{})))
}

func TestApplyIsIdempotent(t *testing.T) {
	state := NewState()
	state.ToggleColor("Black")
	state.SetMinRating(4)
	q := Query{SortBy: SortPriceHigh}

	once := Apply(catalog(), state, q)
	twice := Apply(once, state, q)
	assert.Equal(t, names(once), names(twice))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := catalog()
	before := names(products)

	Apply(products, NewState(), Query{SortBy: SortPriceLow})
	assert.Equal(t, before, names(products))
}

func TestApplyTextSearchMatchesAnyField(t *testing.T) {
	products := catalog()

	assert.Equal(t, []string{"Nova Watch"}, names(Apply(products, NewState(), Query{Search: "WATCH"})))
	assert.Equal(t, []string{"Acme One", "Plain Cable"}, names(Apply(products, NewState(), Query{Search: "acme"})))
	assert.Len(t, Apply(products, NewState(), Query{Search: "   "}), len(products))
}

func TestApplyBrandAndCategory(t *testing.T) {
	state := NewState()
	state.ToggleBrand("Acme")
	assert.Equal(t, []string{"Acme One", "Plain Cable"}, names(Apply(catalog(), state, Query{})))

	state.ToggleCategory("Accessories")
	assert.Equal(t, []string{"Plain Cable"}, names(Apply(catalog(), state, Query{})))

	// A route-fixed category disables the category selection.
	assert.Equal(t, []string{"Acme One", "Plain Cable"},
		names(Apply(catalog(), state, Query{FixedCategory: "mobiles"})))
}

func TestApplyRatingRoundsHalfUp(t *testing.T) {
	state := NewState()
	state.SetMinRating(3)

	// 2.5 rounds to 3, 3.9 to 4, 4.2 to 4, unrated to 0.
	assert.Equal(t, []string{"Acme One", "Zeta Max", "Nova Watch"}, names(Apply(catalog(), state, Query{})))

	state.SetMinRating(4)
	assert.Equal(t, []string{"Acme One", "Zeta Max"}, names(Apply(catalog(), state, Query{})))
}

func TestApplyStockToggles(t *testing.T) {
	products := catalog()
	state := NewState()

	state.SetStock(true, false)
	assert.Equal(t, []string{"Acme One", "Nova Watch", "Plain Cable"}, names(Apply(products, state, Query{})))

	state.SetStock(false, true)
	assert.Equal(t, []string{"Zeta Max"}, names(Apply(products, state, Query{})))

	state.SetStock(true, true)
	assert.Len(t, Apply(products, state, Query{}), len(products), "both toggles on is a pass-through")
}

func TestApplyVariantAndOptionSelections(t *testing.T) {
	products := catalog()

	state := NewState()
	state.ToggleStorage("256GB")
	assert.Equal(t, []string{"Acme One", "Zeta Max"}, names(Apply(products, state, Query{})))

	state = NewState()
	state.ToggleRAM("12GB")
	assert.Equal(t, []string{"Zeta Max"}, names(Apply(products, state, Query{})))

	state = NewState()
	state.ToggleColor("Blue")
	state.ToggleColor("Black")
	assert.Equal(t, []string{"Acme One", "Zeta Max"}, names(Apply(products, state, Query{})))

	state = NewState()
	state.ToggleAttribute("strap", "Silicone")
	assert.Equal(t, []string{"Nova Watch"}, names(Apply(products, state, Query{})))

	state.ToggleAttribute("display_size", "6.7 inch")
	assert.Empty(t, Apply(products, state, Query{}))
}

func TestApplySorting(t *testing.T) {
	products := catalog()

	assert.Equal(t, []string{"Plain Cable", "Nova Watch", "Acme One", "Zeta Max"},
		names(Apply(products, NewState(), Query{SortBy: SortPriceLow})))
	assert.Equal(t, []string{"Zeta Max", "Acme One", "Nova Watch", "Plain Cable"},
		names(Apply(products, NewState(), Query{SortBy: SortPriceHigh})))
	assert.Equal(t, []string{"Acme One", "Zeta Max", "Nova Watch", "Plain Cable"},
		names(Apply(products, NewState(), Query{SortBy: SortRating})))
	assert.Equal(t, names(products),
		names(Apply(products, NewState(), Query{SortBy: SortPopularity})))
}

func TestParseSortBy(t *testing.T) {
	assert.Equal(t, SortPriceLow, ParseSortBy("price-low"))
	assert.Equal(t, SortPriceHigh, ParseSortBy(" PRICE-HIGH "))
	assert.Equal(t, SortRating, ParseSortBy("rating"))
	assert.Equal(t, SortPopularity, ParseSortBy("newest"))
	assert.Equal(t, SortPopularity, ParseSortBy(""))
}

func TestApplyMatchesPaddedBrandAndCategoryFacets(t *testing.T) {
	products := []models.Product{
		{Name: "Padded", Brand: "Acme ", Category: " Phones", Price: 100, Stock: 1},
		{Name: "Plain", Brand: "Zeta", Category: "Laptops", Price: 200, Stock: 1},
	}
	facets := ExtractFacets(products, "")

	for _, opt := range facets.Brands {
		state := NewState()
		state.ToggleBrand(opt.Label)
		assert.Len(t, Apply(products, state, Query{}), opt.Count, "brand %q", opt.Label)
	}
	for _, opt := range facets.Categories {
		state := NewState()
		state.ToggleCategory(opt.Label)
		assert.Len(t, Apply(products, state, Query{}), opt.Count, "category %q", opt.Label)
	}

	state := NewState()
	state.ToggleBrand("Acme")
	state.ToggleCategory("Phones")
	assert.Equal(t, []string{"Padded"}, names(Apply(products, state, Query{})))
}
