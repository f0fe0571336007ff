package store

import (
	"context"
	"errors"
	"sync"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/client"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/filtering"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"go.uber.org/zap"
)

// ErrClosed is returned by containers used after Close.
var ErrClosed = errors.New("store: closed")

// Catalog is the part of the API a listing page reads.
type Catalog interface {
	Products(ctx context.Context, state filtering.State, q filtering.Query, page, limit int) (client.Result[[]models.StorefrontProductResponse], error)
	Facets(ctx context.Context, category string) (client.Result[filtering.Summary], error)
}

// Listing is one loaded page of a category listing.
type Listing struct {
	Products []models.StorefrontProductResponse
	Meta     *models.Pagination
	Facets   filtering.Summary
	Fallback bool
}

// FilterStore owns the filter selections of one listing page. It is created
// when the page mounts and closed when it unmounts.
type FilterStore struct {
	api    Catalog
	logger *zap.Logger
	scope  *scope

	mu      sync.RWMutex
	state   filtering.State
	query   filtering.Query
	page    int
	limit   int
	listing Listing
}

// NewFilterStore starts a listing for category ("" for every product).
func NewFilterStore(api Catalog, category string, logger *zap.Logger) *FilterStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FilterStore{
		api:    api,
		logger: logger,
		scope:  newScope(),
		state:  filtering.NewState(),
		query:  filtering.Query{SortBy: filtering.SortPopularity, FixedCategory: category},
		page:   1,
		limit:  12,
	}
}

// State returns a copy of the current selections.
func (s *FilterStore) State() filtering.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *FilterStore) Query() filtering.Query {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Update applies a transition to the selections and goes back to page 1.
// The change takes effect on the next Refresh.
func (s *FilterStore) Update(transition func(*filtering.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.Clone()
	transition(&next)
	s.state = next
	s.page = 1
}

func (s *FilterStore) SetSearch(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Search = q
	s.page = 1
}

func (s *FilterStore) SetSort(by filtering.SortBy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.SortBy = by
}

func (s *FilterStore) SetPage(page, limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page > 0 {
		s.page = page
	}
	if limit > 0 {
		s.limit = limit
	}
}

// Reset clears every selection and the search, and drops any response still
// in flight.
func (s *FilterStore) Reset() {
	s.scope.invalidate()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = filtering.NewState()
	s.query.Search = ""
	s.query.SortBy = filtering.SortPopularity
	s.page = 1
}

// Listing returns the last loaded page.
func (s *FilterStore) Listing() Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listing
}

// Refresh loads products and facets for the current selections. When a
// newer Refresh or Reset started meanwhile, or the store was closed, the
// response is discarded and Refresh returns nil (or ErrClosed).
func (s *FilterStore) Refresh(ctx context.Context) error {
	if s.scope.closed() {
		return ErrClosed
	}

	s.mu.RLock()
	state, query, page, limit := s.state.Clone(), s.query, s.page, s.limit
	s.mu.RUnlock()

	reqCtx, done, gen := s.scope.begin(ctx)
	defer done()

	products, err := s.api.Products(reqCtx, state, query, page, limit)
	if err != nil {
		return s.stale(gen, err)
	}
	facets, err := s.api.Facets(reqCtx, query.FixedCategory)
	if err != nil {
		return s.stale(gen, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.scope.current(gen) {
		s.logger.Debug("discarding stale listing", zap.Uint64("generation", gen))
		if s.scope.closed() {
			return ErrClosed
		}
		return nil
	}
	s.listing = Listing{
		Products: products.Data,
		Meta:     products.Meta,
		Facets:   facets.Data,
		Fallback: products.Fallback || facets.Fallback,
	}
	return nil
}

func (s *FilterStore) stale(gen uint64, err error) error {
	if s.scope.closed() {
		return ErrClosed
	}
	if !s.scope.current(gen) {
		return nil
	}
	return err
}

// Close cancels in-flight requests. The store keeps its last listing but
// can no longer refresh.
func (s *FilterStore) Close() {
	s.scope.close()
}
