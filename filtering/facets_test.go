package filtering

import (
	"testing"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(options []FacetOption) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.Label
	}
	return out
}

func countOf(options []FacetOption, label string) int {
	for _, o := range options {
		if o.Label == label {
			return o.Count
		}
	}
	return 0
}

func TestExtractFacetsEmptyCollection(t *testing.T) {
	set := ExtractFacets(nil, "")

	assert.Empty(t, set.Storage)
	assert.Empty(t, set.RAM)
	assert.Empty(t, set.Colors)
	assert.Empty(t, set.Categories)
	assert.Empty(t, set.Attributes)
	assert.NotNil(t, set.ValidOptionKeys)
	assert.Empty(t, set.ValidOptionKeys)
}

func TestExtractFacetsRoutesEveryShape(t *testing.T) {
	set := ExtractFacets(catalog(), "")

	want := []FacetOption{
		{Label: "256GB", Count: 2},
		{Label: "128GB", Count: 1},
		{Label: "512GB", Count: 1},
	}
	if diff := cmp.Diff(want, set.Storage); diff != "" {
		t.Fatalf("storage facets mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{"12GB", "8GB"}, labels(set.RAM))
	assert.Equal(t, 2, countOf(set.Colors, "Black"))
	assert.Equal(t, 1, countOf(set.Colors, "Blue"))

	require.Contains(t, set.Attributes, "display_size")
	require.Contains(t, set.Attributes, "strap")
	assert.Equal(t, 1, countOf(set.Attributes["strap"], "Silicone"))
	assert.NotContains(t, set.Attributes, "empty")
	assert.NotContains(t, set.Attributes, "weight")

	assert.Equal(t, []string{"display_size", "strap"}, set.ValidOptionKeys)
}

func TestExtractFacetsNeverDiscoversReservedFields(t *testing.T) {
	set := ExtractFacets(catalog(), "")

	for _, key := range []string{"id", "stock", "price", "discounted_price", "product_id"} {
		assert.NotContains(t, set.Attributes, key)
		assert.NotContains(t, set.ValidOptionKeys, key)
	}
	// custom_keys is a real attribute key but never an option group.
	assert.Contains(t, set.Attributes, "custom_keys")
	assert.NotContains(t, set.ValidOptionKeys, "custom_keys")
}

func TestExtractFacetsCountsAProductOncePerValue(t *testing.T) {
	// Zeta carries Black on two SKUs; Acme carries it on its variant.
	set := ExtractFacets(catalog(), "")
	assert.Equal(t, 2, countOf(set.Colors, "Black"))

	products := []models.Product{{
		Name: "Multi",
		Variant: models.ProductVariant{Colors: []string{"Red", "Green"}},
		ValidOptions: models.ValidOptionList{
			{"colors": "Red"},
			{"colors": "Green"},
		},
	}}
	set = ExtractFacets(products, "")
	total := 0
	for _, o := range set.Colors {
		total += o.Count
	}
	assert.Equal(t, 2, total, "one product with two colours contributes one count per colour")
}

func TestExtractFacetsCategoryScoping(t *testing.T) {
	all := ExtractFacets(catalog(), "")
	phones := ExtractFacets(catalog(), "mobiles")

	assert.Equal(t, []FacetOption{{Label: "Mobiles", Count: 1}, {Label: "mobiles", Count: 1}}, phones.Categories)
	assert.NotContains(t, labels(phones.Brands), "Nova")

	subset := func(scoped, full []FacetOption) {
		for _, o := range scoped {
			assert.Positive(t, o.Count, "scoped facet %q has no matching product", o.Label)
			assert.Contains(t, labels(full), o.Label)
		}
	}
	subset(phones.Storage, all.Storage)
	subset(phones.RAM, all.RAM)
	subset(phones.Colors, all.Colors)
	subset(phones.Categories, all.Categories)
	for key, options := range phones.Attributes {
		subset(options, all.Attributes[key])
	}
}

func TestExtractFacetsHyphenatedCategory(t *testing.T) {
	set := ExtractFacets(catalog(), "smart-watches")

	assert.Equal(t, []string{"Smart Watches"}, labels(set.Categories))
	assert.Equal(t, []string{"strap"}, set.ValidOptionKeys)
}

func TestExtractFacetsProductWithoutAttributes(t *testing.T) {
	products := []models.Product{{Name: "Bare", Category: " Books "}}
	set := ExtractFacets(products, "")

	assert.Equal(t, []FacetOption{{Label: "Books", Count: 1}}, set.Categories)
	assert.Empty(t, set.Storage)
	assert.Empty(t, set.Colors)
	assert.Empty(t, set.Attributes)
}

func TestExtractFacetsTieBreakIsInputOrderIndependent(t *testing.T) {
	products := catalog()
	reversed := make([]models.Product, len(products))
	for i, p := range products {
		reversed[len(products)-1-i] = p
	}

	a := ExtractFacets(products, "")
	b := ExtractFacets(reversed, "")
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("facets depend on input order (-a +b):\n%s", diff)
	}
}

func TestExtractFacetsIsDeterministicAcrossCalls(t *testing.T) {
	first := ExtractFacets(catalog(), "")
	_ = ExtractFacets(catalog()[:1], "")
	second := ExtractFacets(catalog(), "")

	assert.Equal(t, first, second)
}

func TestPriceBoundsAndAvailability(t *testing.T) {
	assert.Equal(t, PriceRange{}, PriceBounds(nil))
	assert.Equal(t, PriceRange{Min: 10, Max: 200}, PriceBounds(catalog()))
	assert.Equal(t, AvailabilityCounts{InStock: 3, OutOfStock: 1}, Availability(catalog()))
}

func TestCategoryMatches(t *testing.T) {
	assert.True(t, CategoryMatches("Smart Watches", "smart-watches"))
	assert.True(t, CategoryMatches("MOBILES", "mobiles"))
	assert.False(t, CategoryMatches("Mobiles", "mobile"))
}

func TestSummarizeScopedCatalog(t *testing.T) {
	mobiles := ScopeToCategory(catalog(), "mobiles")
	s := Summarize(mobiles)

	assert.Equal(t, ExtractFacets(mobiles, ""), s.FacetSet)
	assert.Equal(t, PriceRange{Min: 80, Max: 200}, s.PriceRange)
	assert.Equal(t, AvailabilityCounts{InStock: 1, OutOfStock: 1}, s.Availability)
	assert.Equal(t, 2, s.Total)
}
