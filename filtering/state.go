package filtering

import "strings"

// State is the set of a shopper's current filter selections. The zero value
// (or NewState) selects nothing and lets every product through.
type State struct {
	Brands     []string            `json:"brands,omitempty"`
	Categories []string            `json:"categories,omitempty"`
	Storage    []string            `json:"storage,omitempty"`
	RAM        []string            `json:"ram,omitempty"`
	Colors     []string            `json:"colors,omitempty"`
	Attributes map[string][]string `json:"attributes,omitempty"`

	// PriceRange nil means the full price range.
	PriceRange *PriceRange `json:"price_range,omitempty"`
	// MinRating 0 disables the rating filter.
	MinRating int `json:"min_rating,omitempty"`

	InStock    bool `json:"in_stock,omitempty"`
	OutOfStock bool `json:"out_of_stock,omitempty"`

	// MinDiscount nil disables the discount filter.
	MinDiscount *int `json:"min_discount,omitempty"`
}

// NewState returns the defaults a listing page mounts with.
func NewState() State {
	return State{Attributes: map[string][]string{}}
}

func (s *State) ToggleBrand(v string)    { s.Brands = toggle(s.Brands, v) }
func (s *State) ToggleCategory(v string) { s.Categories = toggle(s.Categories, v) }
func (s *State) ToggleStorage(v string)  { s.Storage = toggle(s.Storage, v) }
func (s *State) ToggleRAM(v string)      { s.RAM = toggle(s.RAM, v) }
func (s *State) ToggleColor(v string)    { s.Colors = toggle(s.Colors, v) }

// ToggleAttribute flips value under a dynamic option key such as
// "display_size". Keys with no selected value left are dropped.
func (s *State) ToggleAttribute(key, v string) {
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	if s.Attributes == nil {
		s.Attributes = map[string][]string{}
	}
	next := toggle(s.Attributes[key], v)
	if len(next) == 0 {
		delete(s.Attributes, key)
		return
	}
	s.Attributes[key] = next
}

// SetPriceRange stores an inclusive window, swapping reversed bounds.
func (s *State) SetPriceRange(min, max float64) {
	if min > max {
		min, max = max, min
	}
	s.PriceRange = &PriceRange{Min: min, Max: max}
}

func (s *State) ClearPriceRange() { s.PriceRange = nil }

// SetMinRating clamps to the 0–5 star scale.
func (s *State) SetMinRating(stars int) {
	switch {
	case stars < 0:
		stars = 0
	case stars > 5:
		stars = 5
	}
	s.MinRating = stars
}

func (s *State) SetStock(inStock, outOfStock bool) {
	s.InStock = inStock
	s.OutOfStock = outOfStock
}

// SetMinDiscount sets the discount floor in percent. Nil clears it.
func (s *State) SetMinDiscount(percent *int) {
	if percent == nil {
		s.MinDiscount = nil
		return
	}
	p := *percent
	switch {
	case p < 0:
		p = 0
	case p > 100:
		p = 100
	}
	s.MinDiscount = &p
}

// Reset returns the state to its page-mount defaults.
func (s *State) Reset() { *s = NewState() }

// ActiveCount is the number of filter dimensions currently restricting the
// result, used for the "Filters (n)" badge.
func (s State) ActiveCount() int {
	n := 0
	for _, sel := range [][]string{s.Brands, s.Categories, s.Storage, s.RAM, s.Colors} {
		if len(sel) > 0 {
			n++
		}
	}
	for _, sel := range s.Attributes {
		if len(sel) > 0 {
			n++
		}
	}
	if s.PriceRange != nil {
		n++
	}
	if s.MinRating > 0 {
		n++
	}
	if s.InStock != s.OutOfStock {
		n++
	}
	if s.MinDiscount != nil {
		n++
	}
	return n
}

// Clone returns a deep copy that shares no slices or maps with s.
func (s State) Clone() State {
	out := s
	out.Brands = cloneStrings(s.Brands)
	out.Categories = cloneStrings(s.Categories)
	out.Storage = cloneStrings(s.Storage)
	out.RAM = cloneStrings(s.RAM)
	out.Colors = cloneStrings(s.Colors)
	out.Attributes = make(map[string][]string, len(s.Attributes))
	for k, v := range s.Attributes {
		out.Attributes[k] = cloneStrings(v)
	}
	if s.PriceRange != nil {
		pr := *s.PriceRange
		out.PriceRange = &pr
	}
	if s.MinDiscount != nil {
		d := *s.MinDiscount
		out.MinDiscount = &d
	}
	return out
}

// toggle removes v from list when present and appends it otherwise. The
// input slice is never modified.
func toggle(list []string, v string) []string {
	v = strings.TrimSpace(v)
	if v == "" {
		return list
	}
	out := make([]string, 0, len(list)+1)
	found := false
	for _, item := range list {
		if item == v {
			found = true
			continue
		}
		out = append(out, item)
	}
	if !found {
		out = append(out, v)
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
