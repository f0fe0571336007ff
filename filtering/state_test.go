package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	s := NewState()
	s.ToggleBrand("Acme")
	s.ToggleBrand("Zeta")
	assert.Equal(t, []string{"Acme", "Zeta"}, s.Brands)

	s.ToggleBrand("Acme")
	assert.Equal(t, []string{"Zeta"}, s.Brands)

	s.ToggleBrand("  ")
	assert.Equal(t, []string{"Zeta"}, s.Brands)
}

func TestToggleAttributeDropsEmptyKeys(t *testing.T) {
	var s State
	s.ToggleAttribute("strap", "Leather")
	assert.Equal(t, map[string][]string{"strap": {"Leather"}}, s.Attributes)

	s.ToggleAttribute("strap", "Leather")
	assert.Empty(t, s.Attributes)

	s.ToggleAttribute("", "x")
	assert.Empty(t, s.Attributes)
}

func TestSetPriceRangeSwapsReversedBounds(t *testing.T) {
	s := NewState()
	s.SetPriceRange(500, 100)
	assert.Equal(t, &PriceRange{Min: 100, Max: 500}, s.PriceRange)

	s.ClearPriceRange()
	assert.Nil(t, s.PriceRange)
}

func TestClampedSetters(t *testing.T) {
	s := NewState()
	s.SetMinRating(9)
	assert.Equal(t, 5, s.MinRating)
	s.SetMinRating(-1)
	assert.Equal(t, 0, s.MinRating)

	s.SetMinDiscount(intPtr(150))
	assert.Equal(t, 100, *s.MinDiscount)
	s.SetMinDiscount(nil)
	assert.Nil(t, s.MinDiscount)
}

func TestActiveCountAndReset(t *testing.T) {
	s := NewState()
	assert.Zero(t, s.ActiveCount())

	s.ToggleColor("Black")
	s.ToggleAttribute("strap", "Leather")
	s.SetPriceRange(0, 10)
	s.SetStock(true, true)
	assert.Equal(t, 3, s.ActiveCount(), "both stock toggles do not restrict anything")

	s.SetStock(true, false)
	s.SetMinDiscount(intPtr(10))
	assert.Equal(t, 5, s.ActiveCount())

	s.Reset()
	assert.Equal(t, NewState(), s)
}

func TestCloneSharesNothing(t *testing.T) {
	s := NewState()
	s.ToggleBrand("Acme")
	s.ToggleAttribute("strap", "Leather")
	s.SetPriceRange(1, 2)
	s.SetMinDiscount(intPtr(5))

	c := s.Clone()
	c.Brands[0] = "changed"
	c.Attributes["strap"][0] = "changed"
	c.PriceRange.Max = 99
	*c.MinDiscount = 50

	assert.Equal(t, []string{"Acme"}, s.Brands)
	assert.Equal(t, []string{"Leather"}, s.Attributes["strap"])
	assert.Equal(t, 2.0, s.PriceRange.Max)
	assert.Equal(t, 5, *s.MinDiscount)
}
