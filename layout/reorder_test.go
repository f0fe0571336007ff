package layout

import (
	"fmt"
	"testing"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fiveSections() []models.HomepageSection {
	sections := make([]models.HomepageSection, 5)
	for i := range sections {
		sections[i] = models.HomepageSection{
			ID:    uuid.Must(uuid.NewV7()),
			Title: fmt.Sprintf("S%d", i+1),
			Order: i + 1,
		}
	}
	return sections
}

func titles(sections []models.HomepageSection) []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.Title
	}
	return out
}

func TestMoveSectionToFront(t *testing.T) {
	sections := fiveSections()

	moved, err := MoveSection(sections, 2, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"S3", "S1", "S2", "S4", "S5"}, titles(moved))
	for i, s := range moved {
		assert.Equal(t, i+1, s.Order)
	}
	assert.Equal(t, []string{"S1", "S2", "S3", "S4", "S5"}, titles(sections), "input must not be modified")
	assert.Equal(t, 3, sections[2].Order)
}

func TestMoveSectionToBack(t *testing.T) {
	moved, err := MoveSection(fiveSections(), 0, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"S2", "S3", "S4", "S5", "S1"}, titles(moved))
}

func TestMoveSectionSamePosition(t *testing.T) {
	moved, err := MoveSection(fiveSections(), 3, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "S2", "S3", "S4", "S5"}, titles(moved))
}

func TestMoveSectionRejectsOutOfRange(t *testing.T) {
	for _, tc := range []struct{ from, to int }{{-1, 0}, {0, 5}, {5, 0}, {0, -1}} {
		_, err := MoveSection(fiveSections(), tc.from, tc.to)
		assert.ErrorIs(t, err, ErrInvalidSectionIndex, "from=%d to=%d", tc.from, tc.to)
	}
	_, err := MoveSection(nil, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidSectionIndex)
}

func TestOrderOf(t *testing.T) {
	sections := fiveSections()
	orders := OrderOf(sections)
	require.Len(t, orders, 5)
	assert.Equal(t, sections[4].ID, orders[4].ID)
	assert.Equal(t, 5, orders[4].Order)
}
