package filtering

import (
	"sort"
	"strings"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
)

// Dedicated facet keys. Values found under these keys in valid_options are
// routed to their own facet list instead of the generic attribute map.
const (
	KeyStorage = "storage"
	KeyRAM     = "ram"
	KeyColors  = "colors"
)

// reservedFields are system fields carried by valid_options entries and
// attribute maps that are never facet keys.
var reservedFields = map[string]struct{}{
	"id":               {},
	"stock":            {},
	"price":            {},
	"discounted_price": {},
	"product_id":       {},
}

// hiddenOptionKeys are discovered attribute keys that are not offered as
// selectable option groups.
var hiddenOptionKeys = map[string]struct{}{
	KeyStorage:      {},
	KeyRAM:          {},
	KeyColors:       {},
	"product_id":    {},
	"custom_keys":   {},
	"custom_values": {},
}

type valueSet map[string]struct{}

func (s valueSet) add(raw any) {
	if v, ok := facetValue(raw); ok {
		s[v] = struct{}{}
	}
}

func (s valueSet) intersects(values []string) bool {
	for _, v := range values {
		if _, ok := s[v]; ok {
			return true
		}
	}
	return false
}

// Normalized is the single internal shape a product's facet-bearing fields
// are folded into: variant arrays, valid_options entries and the attributes
// map all end up as value sets per key.
type Normalized struct {
	Product    models.Product
	Category   string
	Brand      string
	Storage    valueSet
	RAM        valueSet
	Colors     valueSet
	Attributes map[string]valueSet
}

// Normalize folds the three raw attribute shapes of p into one
// representation. Missing or malformed fields are treated as absent.
func Normalize(p models.Product) Normalized {
	n := Normalized{
		Product:    p,
		Category:   strings.TrimSpace(p.Category),
		Brand:      strings.TrimSpace(p.Brand),
		Storage:    valueSet{},
		RAM:        valueSet{},
		Colors:     valueSet{},
		Attributes: map[string]valueSet{},
	}

	for _, v := range p.Variant.Storage {
		n.Storage.add(v)
	}
	for _, v := range p.Variant.Colors {
		n.Colors.add(v)
	}

	for _, option := range p.ValidOptions {
		for _, key := range sortedKeys(option) {
			if _, reserved := reservedFields[key]; reserved {
				continue
			}
			switch key {
			case KeyStorage:
				n.Storage.add(option[key])
			case KeyRAM:
				n.RAM.add(option[key])
			case KeyColors:
				n.Colors.add(option[key])
			default:
				n.addAttribute(key, option[key])
			}
		}
	}

	for _, key := range sortedKeys(p.Attributes) {
		if _, reserved := reservedFields[key]; reserved {
			continue
		}
		n.addAttribute(key, p.Attributes[key])
	}

	return n
}

func (n Normalized) addAttribute(key string, raw any) {
	if _, ok := facetValue(raw); !ok {
		return
	}
	set, ok := n.Attributes[key]
	if !ok {
		set = valueSet{}
		n.Attributes[key] = set
	}
	set.add(raw)
}

// NormalizeAll normalizes every product, preserving order.
func NormalizeAll(products []models.Product) []Normalized {
	out := make([]Normalized, len(products))
	for i, p := range products {
		out[i] = Normalize(p)
	}
	return out
}

// facetValue accepts only strings that are non-empty after trimming.
func facetValue(raw any) (string, bool) {
	s, ok := raw.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
