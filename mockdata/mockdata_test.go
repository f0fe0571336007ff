package mockdata

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsDecode(t *testing.T) {
	products, err := Products()
	require.NoError(t, err)
	require.Len(t, products, 7)

	phone := products[0]
	assert.Equal(t, uuid.MustParse("0190a5c2-0001-7000-8000-000000000001"), phone.ID)
	require.NotNil(t, phone.DiscountPrice)
	assert.Equal(t, 19999.0, *phone.DiscountPrice)
	assert.Equal(t, []string{"128GB", "256GB"}, phone.Variant.Storage)

	zeta := products[1]
	require.Len(t, zeta.ValidOptions, 2)
	assert.Equal(t, "12GB", zeta.ValidOptions[1]["ram"])

	watch := products[4]
	assert.Equal(t, "Silicone", watch.Attributes["strap"])
}

func TestProductsReturnsFreshCopies(t *testing.T) {
	first := Must(Products())
	first[0].Name = "mutated"

	second := Must(Products())
	assert.Equal(t, "Acme Phone X", second[0].Name)
}

func TestSectionsAreOrdered(t *testing.T) {
	sections := Must(Sections())
	require.Len(t, sections, 5)
	for i, s := range sections {
		assert.Equal(t, i+1, s.Order)
	}
	assert.Len(t, sections[1].ProductIDs, 3)
	assert.False(t, sections[4].Enabled)
}

func TestBannersAndPromotions(t *testing.T) {
	banners := Must(Banners())
	assert.Len(t, banners, 3)

	promotions := Must(Promotions())
	require.Len(t, promotions, 2)
	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, promotions[0].LiveAt(now))
	assert.False(t, promotions[1].LiveAt(now))
}
