package filtering

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Listing query parameter names shared by the HTTP API and its client.
const (
	ParamCategory   = "category"
	ParamSearch     = "q"
	ParamBrand      = "brand"
	ParamCategories = "categories"
	ParamStorage    = "storage"
	ParamRAM        = "ram"
	ParamColor      = "color"
	ParamAttribute  = "attr"
	ParamMinPrice   = "minPrice"
	ParamMaxPrice   = "maxPrice"
	ParamRating     = "rating"
	ParamInStock    = "inStock"
	ParamOutOfStock = "outOfStock"
	ParamDiscount   = "discount"
	ParamSortBy     = "sortBy"
)

// ParseValues reads a filter state and listing query from URL parameters.
// List parameters may be repeated or comma separated; attribute selections
// use attr=key:value.
func ParseValues(v url.Values) (State, Query, error) {
	state := NewState()
	q := Query{
		Search:        strings.TrimSpace(v.Get(ParamSearch)),
		SortBy:        ParseSortBy(v.Get(ParamSortBy)),
		FixedCategory: strings.TrimSpace(v.Get(ParamCategory)),
	}

	for _, b := range list(v, ParamBrand) {
		state.ToggleBrand(b)
	}
	for _, c := range list(v, ParamCategories) {
		state.ToggleCategory(c)
	}
	for _, s := range list(v, ParamStorage) {
		state.ToggleStorage(s)
	}
	for _, r := range list(v, ParamRAM) {
		state.ToggleRAM(r)
	}
	for _, c := range list(v, ParamColor) {
		state.ToggleColor(c)
	}
	for _, raw := range list(v, ParamAttribute) {
		key, value, ok := strings.Cut(raw, ":")
		if !ok || strings.TrimSpace(key) == "" || strings.TrimSpace(value) == "" {
			return State{}, Query{}, fmt.Errorf("invalid %s %q, want key:value", ParamAttribute, raw)
		}
		state.ToggleAttribute(key, strings.TrimSpace(value))
	}

	minPrice, hasMin, err := floatParam(v, ParamMinPrice)
	if err != nil {
		return State{}, Query{}, err
	}
	maxPrice, hasMax, err := floatParam(v, ParamMaxPrice)
	if err != nil {
		return State{}, Query{}, err
	}
	if hasMin || hasMax {
		if !hasMax {
			maxPrice = math.MaxFloat64
		}
		state.SetPriceRange(minPrice, maxPrice)
	}

	if raw := v.Get(ParamRating); raw != "" {
		stars, err := strconv.Atoi(raw)
		if err != nil {
			return State{}, Query{}, fmt.Errorf("invalid %s %q", ParamRating, raw)
		}
		state.SetMinRating(stars)
	}

	inStock, err := boolParam(v, ParamInStock)
	if err != nil {
		return State{}, Query{}, err
	}
	outOfStock, err := boolParam(v, ParamOutOfStock)
	if err != nil {
		return State{}, Query{}, err
	}
	state.SetStock(inStock, outOfStock)

	if raw := v.Get(ParamDiscount); raw != "" {
		pct, err := strconv.Atoi(raw)
		if err != nil {
			return State{}, Query{}, fmt.Errorf("invalid %s %q", ParamDiscount, raw)
		}
		state.SetMinDiscount(&pct)
	}

	return state, q, nil
}

// Values is the inverse of ParseValues.
func Values(state State, q Query) url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set(ParamSearch, q.Search)
	}
	if q.SortBy != "" && q.SortBy != SortPopularity {
		v.Set(ParamSortBy, string(q.SortBy))
	}
	if q.FixedCategory != "" {
		v.Set(ParamCategory, q.FixedCategory)
	}

	v[ParamBrand] = append(v[ParamBrand], state.Brands...)
	v[ParamCategories] = append(v[ParamCategories], state.Categories...)
	v[ParamStorage] = append(v[ParamStorage], state.Storage...)
	v[ParamRAM] = append(v[ParamRAM], state.RAM...)
	v[ParamColor] = append(v[ParamColor], state.Colors...)
	for _, key := range sortedKeys(state.Attributes) {
		for _, value := range state.Attributes[key] {
			v.Add(ParamAttribute, key+":"+value)
		}
	}

	if pr := state.PriceRange; pr != nil {
		v.Set(ParamMinPrice, strconv.FormatFloat(pr.Min, 'f', -1, 64))
		if pr.Max != math.MaxFloat64 {
			v.Set(ParamMaxPrice, strconv.FormatFloat(pr.Max, 'f', -1, 64))
		}
	}
	if state.MinRating > 0 {
		v.Set(ParamRating, strconv.Itoa(state.MinRating))
	}
	if state.InStock {
		v.Set(ParamInStock, "true")
	}
	if state.OutOfStock {
		v.Set(ParamOutOfStock, "true")
	}
	if state.MinDiscount != nil {
		v.Set(ParamDiscount, strconv.Itoa(*state.MinDiscount))
	}

	for key, values := range v {
		if len(values) == 0 {
			delete(v, key)
		}
	}
	return v
}

func list(v url.Values, key string) []string {
	var out []string
	for _, raw := range v[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	sort.Strings(out)
	return dedupe(out)
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}

func floatParam(v url.Values, key string) (float64, bool, error) {
	raw := strings.TrimSpace(v.Get(key))
	if raw == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || f < 0 {
		return 0, false, fmt.Errorf("invalid %s %q", key, raw)
	}
	return f, true, nil
}

func boolParam(v url.Values, key string) (bool, error) {
	raw := strings.TrimSpace(v.Get(key))
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q", key, raw)
	}
	return b, nil
}
