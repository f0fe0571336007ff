package main

import (
	"bytes"
	"testing"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/filtering"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingFlagsMatchAPIParameters(t *testing.T) {
	flags := listingFlags{
		category: "mobiles",
		sortBy:   "price-high",
		brands:   []string{"Zeta", "Acme"},
		attrs:    []string{"ram:8GB"},
		minPrice: "10000",
		inStock:  true,
		discount: 20,
	}

	state, query, err := filtering.ParseValues(flags.values())
	require.NoError(t, err)

	assert.Equal(t, "mobiles", query.FixedCategory)
	assert.Equal(t, filtering.SortPriceHigh, query.SortBy)
	assert.Equal(t, []string{"Acme", "Zeta"}, state.Brands)
	assert.Equal(t, []string{"8GB"}, state.Attributes["ram"])
	require.NotNil(t, state.PriceRange)
	assert.Equal(t, 10000.0, state.PriceRange.Min)
	assert.True(t, state.InStock)
	require.NotNil(t, state.MinDiscount)
	assert.Equal(t, 20, *state.MinDiscount)
}

func TestListingFlagsRejectBadAttribute(t *testing.T) {
	_, _, err := filtering.ParseValues(listingFlags{attrs: []string{"ram"}}.values())
	assert.Error(t, err)
}

func TestParsePosition(t *testing.T) {
	idx, err := parsePosition("3")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	_, err = parsePosition("0")
	assert.Error(t, err)
	_, err = parsePosition("first")
	assert.Error(t, err)
}

type dismissed map[string]bool

func (d dismissed) IsDismissed(id string) bool { return d[id] }

func TestRenderHomeHidesDismissedPromotions(t *testing.T) {
	home := models.HomepageResponse{
		Sections: []models.HomepageSection{{Title: "Deals of the Day", Type: models.SectionTypeProductCarousel, Order: 1}},
		Promotions: []models.Promotion{
			{Title: "Welcome offer", Code: "WELCOME10", DiscountPercent: 10},
			{Title: "Audio week", Code: "AUDIO15", DiscountPercent: 15},
		},
	}

	var out bytes.Buffer
	require.NoError(t, renderHome(&out, home, dismissed{"AUDIO15": true}, false))

	assert.Contains(t, out.String(), "WELCOME10")
	assert.NotContains(t, out.String(), "AUDIO15")
	assert.Contains(t, out.String(), "Deals of the Day")
}
