package store

import (
	"context"
	"testing"
	"time"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/client"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/filtering"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/mockdata"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog filters the demo products in-process. hook, when set, runs
// before each Products answer and may block.
type fakeCatalog struct {
	products []models.Product
	hook     func(ctx context.Context, state filtering.State) error
}

func newFakeCatalog(t *testing.T) *fakeCatalog {
	t.Helper()
	products, err := mockdata.Products()
	require.NoError(t, err)
	return &fakeCatalog{products: products}
}

func (f *fakeCatalog) Products(ctx context.Context, state filtering.State, q filtering.Query, page, limit int) (client.Result[[]models.StorefrontProductResponse], error) {
	if f.hook != nil {
		if err := f.hook(ctx, state); err != nil {
			return client.Result[[]models.StorefrontProductResponse]{}, err
		}
	}
	matched := filtering.Apply(filtering.ScopeToCategory(f.products, q.FixedCategory), state, q)
	out := make([]models.StorefrontProductResponse, 0, len(matched))
	for _, p := range matched {
		out = append(out, models.NewStorefrontProductResponse(p))
	}
	return client.Result[[]models.StorefrontProductResponse]{
		Data: out,
		Meta: models.NewPagination(page, limit, len(matched)),
	}, nil
}

func (f *fakeCatalog) Facets(ctx context.Context, category string) (client.Result[filtering.Summary], error) {
	return client.Result[filtering.Summary]{
		Data: filtering.Summarize(filtering.ScopeToCategory(f.products, category)),
	}, nil
}

func names(products []models.StorefrontProductResponse) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Name)
	}
	return out
}

func TestFilterStoreRefresh(t *testing.T) {
	s := NewFilterStore(newFakeCatalog(t), "mobiles", nil)
	defer s.Close()

	s.SetSort(filtering.SortPriceLow)
	require.NoError(t, s.Refresh(context.Background()))

	listing := s.Listing()
	assert.Equal(t, []string{"Nova Lite", "Acme Phone X", "Zeta Max 5G"}, names(listing.Products))
	assert.Equal(t, 3, listing.Facets.Total)
	assert.Equal(t, 3, listing.Meta.Total)
	assert.False(t, listing.Fallback)
}

func TestFilterStoreUpdateGoesBackToFirstPage(t *testing.T) {
	s := NewFilterStore(newFakeCatalog(t), "", nil)
	defer s.Close()

	s.SetPage(3, 2)
	s.Update(func(st *filtering.State) { st.ToggleBrand("Acme") })
	require.NoError(t, s.Refresh(context.Background()))

	listing := s.Listing()
	assert.Equal(t, 1, listing.Meta.Page)
	assert.Equal(t, 2, listing.Meta.Limit)
	assert.Equal(t, []string{"Acme"}, s.State().Brands)
}

func TestFilterStoreStateIsACopy(t *testing.T) {
	s := NewFilterStore(newFakeCatalog(t), "", nil)
	defer s.Close()

	st := s.State()
	st.ToggleBrand("Zeta")
	assert.Empty(t, s.State().Brands)
}

func TestFilterStoreDiscardsStaleResponse(t *testing.T) {
	api := newFakeCatalog(t)
	release := make(chan struct{})
	started := make(chan struct{})
	api.hook = func(ctx context.Context, state filtering.State) error {
		if len(state.Brands) == 1 && state.Brands[0] == "Zeta" {
			close(started)
			<-release
		}
		return nil
	}

	s := NewFilterStore(api, "", nil)
	defer s.Close()

	s.Update(func(st *filtering.State) { st.ToggleBrand("Zeta") })
	slow := make(chan error, 1)
	go func() { slow <- s.Refresh(context.Background()) }()
	<-started

	s.Update(func(st *filtering.State) {
		st.ToggleBrand("Zeta")
		st.ToggleBrand("Acme")
	})
	require.NoError(t, s.Refresh(context.Background()))
	close(release)
	require.NoError(t, <-slow)

	assert.ElementsMatch(t,
		[]string{"Acme Phone X", "Acme Book Air", "Acme Fast Charger 65W"},
		names(s.Listing().Products))
}

func TestFilterStoreResetDropsInFlight(t *testing.T) {
	api := newFakeCatalog(t)
	release := make(chan struct{})
	started := make(chan struct{})
	api.hook = func(ctx context.Context, state filtering.State) error {
		close(started)
		<-release
		return nil
	}

	s := NewFilterStore(api, "", nil)
	defer s.Close()

	s.Update(func(st *filtering.State) { st.ToggleBrand("Zeta") })
	done := make(chan error, 1)
	go func() { done <- s.Refresh(context.Background()) }()
	<-started

	s.Reset()
	close(release)
	require.NoError(t, <-done)

	assert.Empty(t, s.Listing().Products)
	assert.Equal(t, 0, s.State().ActiveCount())
}

func TestFilterStoreCloseCancelsRequest(t *testing.T) {
	api := newFakeCatalog(t)
	started := make(chan struct{})
	api.hook = func(ctx context.Context, _ filtering.State) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}

	s := NewFilterStore(api, "", nil)
	done := make(chan error, 1)
	go func() { done <- s.Refresh(context.Background()) }()
	<-started

	s.Close()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("refresh did not return after Close")
	}
	assert.ErrorIs(t, s.Refresh(context.Background()), ErrClosed)
}

func TestFilterStoreCallerCancellation(t *testing.T) {
	api := newFakeCatalog(t)
	api.hook = func(ctx context.Context, _ filtering.State) error {
		<-ctx.Done()
		return ctx.Err()
	}

	s := NewFilterStore(api, "", nil)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Refresh(ctx), context.Canceled)
}
