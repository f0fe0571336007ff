// Package layout holds the pure ordering rules of the homepage layout,
// shared by the API services and the admin client.
package layout

import (
	"errors"
	"fmt"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
)

// ErrInvalidSectionIndex is returned for a move outside the section list.
var ErrInvalidSectionIndex = errors.New("section index out of range")

// MoveSection removes the section at from and reinserts it at to, then
// renumbers every section so Order equals position+1. The input slice is
// not modified.
func MoveSection(sections []models.HomepageSection, from, to int) ([]models.HomepageSection, error) {
	n := len(sections)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, fmt.Errorf("%w: move %d -> %d in %d sections", ErrInvalidSectionIndex, from, to, n)
	}

	rest := make([]models.HomepageSection, 0, n-1)
	rest = append(rest, sections[:from]...)
	rest = append(rest, sections[from+1:]...)

	out := make([]models.HomepageSection, 0, n)
	out = append(out, rest[:to]...)
	out = append(out, sections[from])
	out = append(out, rest[to:]...)

	Renumber(out)
	return out, nil
}

// Renumber assigns Order = position+1 in place.
func Renumber(sections []models.HomepageSection) {
	for i := range sections {
		sections[i].Order = i + 1
	}
}

// OrderOf extracts the id/order pairs the reorder endpoint accepts.
func OrderOf(sections []models.HomepageSection) []models.SectionOrder {
	out := make([]models.SectionOrder, len(sections))
	for i, s := range sections {
		out[i] = models.SectionOrder{ID: s.ID, Order: s.Order}
	}
	return out
}
