package services

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/layout"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/mockdata"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SectionService manages the homepage layout. Section orders are always
// 1..n with no gaps; every mutation keeps them that way.
type SectionService struct {
	db     *gorm.DB
	pool   *pgxpool.Pool
	logger *zap.Logger

	mu     sync.RWMutex
	memory []models.HomepageSection
}

// NewSectionService uses db for CRUD and pool for the batched reorder. A nil
// db puts the service in memory mode over the demo layout; a nil pool makes
// Reorder fall back to a GORM transaction.
func NewSectionService(db *gorm.DB, pool *pgxpool.Pool, logger *zap.Logger) (*SectionService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &SectionService{db: db, pool: pool, logger: logger}
	if db == nil {
		sections, err := mockdata.Sections()
		if err != nil {
			return nil, fmt.Errorf("load demo sections: %w", err)
		}
		layout.Renumber(sections)
		s.memory = sections
	}
	return s, nil
}

func (s *SectionService) Mode() string {
	if s.db == nil {
		return ModeMemory
	}
	return ModePostgres
}

// List returns every section in display order.
func (s *SectionService) List(ctx context.Context) ([]models.HomepageSection, error) {
	if s.db == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return cloneSections(s.memory), nil
	}

	var sections []models.HomepageSection
	if err := s.db.WithContext(ctx).Order("sort_order ASC").Find(&sections).Error; err != nil {
		return nil, fmt.Errorf("list homepage sections: %w", err)
	}
	return sections, nil
}

// ListEnabled returns the sections the storefront renders, in order.
func (s *SectionService) ListEnabled(ctx context.Context) ([]models.HomepageSection, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	enabled := make([]models.HomepageSection, 0, len(all))
	for _, section := range all {
		if section.Enabled {
			enabled = append(enabled, section)
		}
	}
	return enabled, nil
}

func (s *SectionService) Get(ctx context.Context, id uuid.UUID) (models.HomepageSection, error) {
	if s.db == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		i := s.indexOf(id)
		if i < 0 {
			return models.HomepageSection{}, ErrSectionNotFound
		}
		return cloneSection(s.memory[i]), nil
	}

	var section models.HomepageSection
	if err := s.db.WithContext(ctx).First(&section, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.HomepageSection{}, ErrSectionNotFound
		}
		return models.HomepageSection{}, fmt.Errorf("get homepage section %s: %w", id, err)
	}
	return section, nil
}

// Create appends a new section at the end of the layout.
func (s *SectionService) Create(ctx context.Context, req models.HomepageSectionRequest) (models.HomepageSection, error) {
	section := models.HomepageSection{
		Title:      req.Title,
		Type:       req.Type,
		Enabled:    true,
		Config:     datatypes.JSONMap(maps.Clone(req.Config)),
		ProductIDs: pq.StringArray(append([]string(nil), req.ProductIDs...)),
	}
	if req.Enabled != nil {
		section.Enabled = *req.Enabled
	}

	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		section.ID = uuid.Must(uuid.NewV7())
		section.Order = len(s.memory) + 1
		section.CreatedAt = time.Now().UTC()
		section.UpdatedAt = section.CreatedAt
		s.memory = append(s.memory, section)
		return cloneSection(section), nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		if err := tx.Model(&models.HomepageSection{}).
			Select("COALESCE(MAX(sort_order), 0)").
			Scan(&maxOrder).Error; err != nil {
			return err
		}
		section.Order = maxOrder + 1
		return tx.Create(&section).Error
	})
	if err != nil {
		return models.HomepageSection{}, fmt.Errorf("create homepage section: %w", err)
	}
	s.logger.Info("✅ Homepage section created", zap.String("id", section.ID.String()), zap.Int("order", section.Order))
	return section, nil
}

// Update applies the non-nil fields of req. Order is only changed by Reorder.
func (s *SectionService) Update(ctx context.Context, id uuid.UUID, req models.UpdateHomepageSectionRequest) (models.HomepageSection, error) {
	return s.mutate(ctx, id, func(section *models.HomepageSection) {
		if req.Title != nil {
			section.Title = *req.Title
		}
		if req.Type != nil {
			section.Type = *req.Type
		}
		if req.Enabled != nil {
			section.Enabled = *req.Enabled
		}
		if req.Config != nil {
			section.Config = datatypes.JSONMap(maps.Clone(*req.Config))
		}
		if req.ProductIDs != nil {
			section.ProductIDs = pq.StringArray(append([]string(nil), (*req.ProductIDs)...))
		}
	})
}

// Toggle flips the enabled flag.
func (s *SectionService) Toggle(ctx context.Context, id uuid.UUID) (models.HomepageSection, error) {
	return s.mutate(ctx, id, func(section *models.HomepageSection) {
		section.Enabled = !section.Enabled
	})
}

func (s *SectionService) mutate(ctx context.Context, id uuid.UUID, apply func(*models.HomepageSection)) (models.HomepageSection, error) {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := s.indexOf(id)
		if i < 0 {
			return models.HomepageSection{}, ErrSectionNotFound
		}
		apply(&s.memory[i])
		s.memory[i].UpdatedAt = time.Now().UTC()
		return cloneSection(s.memory[i]), nil
	}

	var section models.HomepageSection
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&section, "id = ?", id).Error; err != nil {
			return err
		}
		apply(&section)
		return tx.Save(&section).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.HomepageSection{}, ErrSectionNotFound
		}
		return models.HomepageSection{}, fmt.Errorf("update homepage section %s: %w", id, err)
	}
	return section, nil
}

// Delete removes a section and closes the gap it leaves in the order.
func (s *SectionService) Delete(ctx context.Context, id uuid.UUID) error {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := s.indexOf(id)
		if i < 0 {
			return ErrSectionNotFound
		}
		s.memory = append(s.memory[:i], s.memory[i+1:]...)
		layout.Renumber(s.memory)
		return nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var section models.HomepageSection
		if err := tx.First(&section, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&section).Error; err != nil {
			return err
		}
		return tx.Model(&models.HomepageSection{}).
			Where("sort_order > ?", section.Order).
			Update("sort_order", gorm.Expr("sort_order - 1")).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSectionNotFound
		}
		return fmt.Errorf("delete homepage section %s: %w", id, err)
	}
	s.logger.Info("🗑️ Homepage section deleted", zap.String("id", id.String()))
	return nil
}

// Reorder persists the authoritative order sent by the admin console. The
// request must name every section exactly once with orders 1..n; an unknown
// id fails the whole request and nothing is written.
func (s *SectionService) Reorder(ctx context.Context, orders []models.SectionOrder) ([]models.HomepageSection, error) {
	if err := validateOrders(orders); err != nil {
		return nil, err
	}

	switch {
	case s.db == nil:
		if err := s.reorderMemory(orders); err != nil {
			return nil, err
		}
	case s.pool != nil:
		if err := s.reorderBatch(ctx, orders); err != nil {
			return nil, err
		}
	default:
		if err := s.reorderGorm(ctx, orders); err != nil {
			return nil, err
		}
	}

	s.logger.Info("✅ Homepage sections reordered", zap.Int("count", len(orders)), zap.String("mode", s.Mode()))
	return s.List(ctx)
}

func validateOrders(orders []models.SectionOrder) error {
	if len(orders) == 0 {
		return fmt.Errorf("%w: no sections given", ErrInvalidSectionOrder)
	}
	seenIDs := make(map[uuid.UUID]bool, len(orders))
	seenOrders := make(map[int]bool, len(orders))
	for _, o := range orders {
		if o.ID == uuid.Nil {
			return fmt.Errorf("%w: missing section id", ErrInvalidSectionOrder)
		}
		if seenIDs[o.ID] {
			return fmt.Errorf("%w: section %s listed twice", ErrInvalidSectionOrder, o.ID)
		}
		if o.Order < 1 || o.Order > len(orders) || seenOrders[o.Order] {
			return fmt.Errorf("%w: order %d is not a free position in 1..%d", ErrInvalidSectionOrder, o.Order, len(orders))
		}
		seenIDs[o.ID] = true
		seenOrders[o.Order] = true
	}
	return nil
}

func (s *SectionService) reorderMemory(orders []models.SectionOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(orders) != len(s.memory) {
		return fmt.Errorf("%w: got %d sections, layout has %d", ErrInvalidSectionOrder, len(orders), len(s.memory))
	}
	positions := make(map[uuid.UUID]int, len(orders))
	for _, o := range orders {
		if s.indexOf(o.ID) < 0 {
			return fmt.Errorf("%w: %s", ErrSectionNotFound, o.ID)
		}
		positions[o.ID] = o.Order
	}

	for i := range s.memory {
		s.memory[i].Order = positions[s.memory[i].ID]
	}
	sort.SliceStable(s.memory, func(i, j int) bool { return s.memory[i].Order < s.memory[j].Order })
	return nil
}

func (s *SectionService) reorderBatch(ctx context.Context, orders []models.SectionOrder) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin reorder: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var total int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM homepage_sections`).Scan(&total); err != nil {
		return fmt.Errorf("count homepage sections: %w", err)
	}
	if total != len(orders) {
		return fmt.Errorf("%w: got %d sections, layout has %d", ErrInvalidSectionOrder, len(orders), total)
	}

	batch := &pgx.Batch{}
	for _, o := range orders {
		batch.Queue(
			`UPDATE homepage_sections SET sort_order = $1, updated_at = NOW() WHERE id = $2`,
			o.Order, o.ID.String(),
		)
	}

	results := tx.SendBatch(ctx, batch)
	for _, o := range orders {
		tag, err := results.Exec()
		if err != nil {
			results.Close()
			return fmt.Errorf("reorder section %s: %w", o.ID, err)
		}
		if tag.RowsAffected() == 0 {
			results.Close()
			return fmt.Errorf("%w: %s", ErrSectionNotFound, o.ID)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("close reorder batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit reorder: %w", err)
	}
	return nil
}

func (s *SectionService) reorderGorm(ctx context.Context, orders []models.SectionOrder) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total int64
		if err := tx.Model(&models.HomepageSection{}).Count(&total).Error; err != nil {
			return fmt.Errorf("count homepage sections: %w", err)
		}
		if int(total) != len(orders) {
			return fmt.Errorf("%w: got %d sections, layout has %d", ErrInvalidSectionOrder, len(orders), total)
		}
		for _, o := range orders {
			res := tx.Model(&models.HomepageSection{}).Where("id = ?", o.ID).Update("sort_order", o.Order)
			if res.Error != nil {
				return fmt.Errorf("reorder section %s: %w", o.ID, res.Error)
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", ErrSectionNotFound, o.ID)
			}
		}
		return nil
	})
}

func (s *SectionService) indexOf(id uuid.UUID) int {
	for i, section := range s.memory {
		if section.ID == id {
			return i
		}
	}
	return -1
}

func cloneSection(section models.HomepageSection) models.HomepageSection {
	section.Config = datatypes.JSONMap(maps.Clone(map[string]any(section.Config)))
	if section.ProductIDs != nil {
		section.ProductIDs = append(pq.StringArray(nil), section.ProductIDs...)
	}
	return section
}

func cloneSections(sections []models.HomepageSection) []models.HomepageSection {
	out := make([]models.HomepageSection, len(sections))
	for i, section := range sections {
		out[i] = cloneSection(section)
	}
	return out
}
