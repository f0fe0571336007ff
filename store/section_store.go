package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/client"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/layout"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SectionAPI is the part of the admin API the layout editor uses.
type SectionAPI interface {
	Sections(ctx context.Context) (client.Result[[]models.HomepageSection], error)
	ReorderSections(ctx context.Context, orders []models.SectionOrder) ([]models.HomepageSection, error)
	ToggleSection(ctx context.Context, id uuid.UUID) (models.HomepageSection, error)
}

// SectionStore is the admin layout editor's copy of the homepage sections.
// Moves are applied locally first and then saved; a failed save is reported
// once (no retry) and the list is rolled back to what the server holds.
type SectionStore struct {
	api     SectionAPI
	logger  *zap.Logger
	scope   *scope
	onError func(error)

	mu       sync.RWMutex
	sections []models.HomepageSection
	fallback bool
}

type SectionStoreOption func(*SectionStore)

// OnError registers a callback for failed saves, e.g. to show a toast.
func OnError(fn func(error)) SectionStoreOption {
	return func(s *SectionStore) { s.onError = fn }
}

func NewSectionStore(api SectionAPI, logger *zap.Logger, opts ...SectionStoreOption) *SectionStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SectionStore{api: api, logger: logger, scope: newScope()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sections returns a copy of the current list.
func (s *SectionStore) Sections() []models.HomepageSection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.HomepageSection(nil), s.sections...)
}

// Fallback reports whether the list came from demo data.
func (s *SectionStore) Fallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback
}

// Load replaces the list with the server's.
func (s *SectionStore) Load(ctx context.Context) error {
	if s.scope.closed() {
		return ErrClosed
	}
	reqCtx, done, gen := s.scope.begin(ctx)
	defer done()

	res, err := s.api.Sections(reqCtx)
	if err != nil {
		if s.scope.closed() {
			return ErrClosed
		}
		return fmt.Errorf("load homepage sections: %w", err)
	}
	s.adopt(gen, res.Data, res.Fallback)
	return nil
}

// Move drags the section at from to position to. The local list changes
// immediately; the returned error is the save failure, if any. Rapid moves
// are not coalesced: each one sends its own request and the latest response
// wins.
func (s *SectionStore) Move(ctx context.Context, from, to int) error {
	if s.scope.closed() {
		return ErrClosed
	}

	s.mu.Lock()
	snapshot := s.sections
	moved, err := layout.MoveSection(snapshot, from, to)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.sections = moved
	s.mu.Unlock()

	reqCtx, done, gen := s.scope.begin(ctx)
	defer done()

	saved, err := s.api.ReorderSections(reqCtx, layout.OrderOf(moved))
	if err == nil {
		s.adopt(gen, saved, false)
		return nil
	}
	if s.scope.closed() {
		return ErrClosed
	}

	s.logger.Warn("failed to save section order", zap.Int("from", from), zap.Int("to", to), zap.Error(err))
	saveErr := fmt.Errorf("save section order: %w", err)
	if s.onError != nil {
		s.onError(saveErr)
	}
	s.rollback(ctx, gen, snapshot)
	return saveErr
}

// Toggle flips a section's enabled flag on the server and mirrors the result.
func (s *SectionStore) Toggle(ctx context.Context, id uuid.UUID) error {
	if s.scope.closed() {
		return ErrClosed
	}
	reqCtx, done := s.scope.bind(ctx)
	defer done()

	updated, err := s.api.ToggleSection(reqCtx, id)
	if err != nil {
		if s.scope.closed() {
			return ErrClosed
		}
		return fmt.Errorf("toggle section %s: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sections {
		if s.sections[i].ID == id {
			s.sections[i] = updated
		}
	}
	return nil
}

// rollback re-fetches the server's order; if that fails too, the list
// before the move is restored.
func (s *SectionStore) rollback(ctx context.Context, gen uint64, snapshot []models.HomepageSection) {
	reqCtx, done := s.scope.bind(ctx)
	defer done()

	res, err := s.api.Sections(reqCtx)
	if err == nil {
		s.adopt(gen, res.Data, res.Fallback)
		return
	}

	s.logger.Warn("failed to re-fetch sections, restoring previous order", zap.Error(err))
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scope.current(gen) {
		s.sections = snapshot
	}
}

func (s *SectionStore) adopt(gen uint64, sections []models.HomepageSection, fallback bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.scope.current(gen) {
		s.logger.Debug("discarding stale section list", zap.Uint64("generation", gen))
		return
	}
	s.sections = sections
	s.fallback = fallback
}

func (s *SectionStore) Close() {
	s.scope.close()
}
