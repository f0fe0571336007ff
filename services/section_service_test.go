package services

import (
	"context"
	"testing"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/layout"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemorySections(t *testing.T) *SectionService {
	t.Helper()
	s, err := NewSectionService(nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, ModeMemory, s.Mode())
	return s
}

func requireContiguous(t *testing.T, sections []models.HomepageSection) {
	t.Helper()
	for i, s := range sections {
		require.Equal(t, i+1, s.Order, "section %q", s.Title)
	}
}

func TestSectionServiceListAndEnabled(t *testing.T) {
	ctx := context.Background()
	s := newMemorySections(t)

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	requireContiguous(t, all)

	enabled, err := s.ListEnabled(ctx)
	require.NoError(t, err)
	assert.Len(t, enabled, 4)
	for _, section := range enabled {
		assert.True(t, section.Enabled)
	}
}

func TestSectionServiceCreateAppends(t *testing.T) {
	ctx := context.Background()
	s := newMemorySections(t)

	created, err := s.Create(ctx, models.HomepageSectionRequest{
		Title:  "New Arrivals",
		Type:   models.SectionTypeProductCarousel,
		Config: map[string]any{"limit": 8},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, 6, created.Order)
	assert.True(t, created.Enabled)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Arrivals", got.Title)
}

func TestSectionServiceUpdateAndToggle(t *testing.T) {
	ctx := context.Background()
	s := newMemorySections(t)
	all, _ := s.List(ctx)
	id := all[0].ID

	title := "Hero"
	ids := []string{"a", "b"}
	updated, err := s.Update(ctx, id, models.UpdateHomepageSectionRequest{Title: &title, ProductIDs: &ids})
	require.NoError(t, err)
	assert.Equal(t, "Hero", updated.Title)
	assert.Equal(t, []string{"a", "b"}, []string(updated.ProductIDs))
	assert.Equal(t, 1, updated.Order)

	toggled, err := s.Toggle(ctx, id)
	require.NoError(t, err)
	assert.False(t, toggled.Enabled)

	_, err = s.Toggle(ctx, uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestSectionServiceListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := newMemorySections(t)

	all, _ := s.List(ctx)
	all[0].Title = "mutated"
	all[0].Config["autoplay"] = false

	again, _ := s.List(ctx)
	assert.Equal(t, "Hero Carousel", again[0].Title)
	assert.Equal(t, true, again[0].Config["autoplay"])
}

func TestSectionServiceDeleteRenumbers(t *testing.T) {
	ctx := context.Background()
	s := newMemorySections(t)
	all, _ := s.List(ctx)

	require.NoError(t, s.Delete(ctx, all[1].ID))

	remaining, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 4)
	requireContiguous(t, remaining)
	assert.Equal(t, all[2].ID, remaining[1].ID)

	assert.ErrorIs(t, s.Delete(ctx, all[1].ID), ErrSectionNotFound)
}

func TestSectionServiceReorder(t *testing.T) {
	ctx := context.Background()
	s := newMemorySections(t)
	all, _ := s.List(ctx)

	moved, err := layout.MoveSection(all, 2, 0)
	require.NoError(t, err)

	saved, err := s.Reorder(ctx, layout.OrderOf(moved))
	require.NoError(t, err)
	requireContiguous(t, saved)
	assert.Equal(t, all[2].ID, saved[0].ID)
	assert.Equal(t, all[0].ID, saved[1].ID)
}

func TestSectionServiceReorderRejectsBadRequests(t *testing.T) {
	ctx := context.Background()
	s := newMemorySections(t)
	all, _ := s.List(ctx)
	orders := layout.OrderOf(all)

	unknown := append([]models.SectionOrder(nil), orders...)
	unknown[0].ID = uuid.Must(uuid.NewV7())
	_, err := s.Reorder(ctx, unknown)
	assert.ErrorIs(t, err, ErrSectionNotFound)

	duplicateOrder := append([]models.SectionOrder(nil), orders...)
	duplicateOrder[1].Order = 1
	_, err = s.Reorder(ctx, duplicateOrder)
	assert.ErrorIs(t, err, ErrInvalidSectionOrder)

	_, err = s.Reorder(ctx, orders[:3])
	assert.ErrorIs(t, err, ErrInvalidSectionOrder)

	_, err = s.Reorder(ctx, nil)
	assert.ErrorIs(t, err, ErrInvalidSectionOrder)

	after, _ := s.List(ctx)
	assert.Equal(t, sectionTitles(all), sectionTitles(after), "failed reorders must not write anything")
}

func sectionTitles(sections []models.HomepageSection) []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.Title
	}
	return out
}
