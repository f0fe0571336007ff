package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/mockdata"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PromotionService struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time

	mu     sync.RWMutex
	memory []models.Promotion
}

func NewPromotionService(db *gorm.DB, logger *zap.Logger) (*PromotionService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &PromotionService{db: db, logger: logger, now: time.Now}
	if db == nil {
		promotions, err := mockdata.Promotions()
		if err != nil {
			return nil, fmt.Errorf("load demo promotions: %w", err)
		}
		s.memory = promotions
	}
	return s, nil
}

// List returns every promotion, newest start first.
func (s *PromotionService) List(ctx context.Context) ([]models.Promotion, error) {
	if s.db == nil {
		s.mu.RLock()
		promotions := append([]models.Promotion{}, s.memory...)
		s.mu.RUnlock()
		sort.SliceStable(promotions, func(i, j int) bool {
			return promotions[i].StartsAt.After(promotions[j].StartsAt)
		})
		return promotions, nil
	}

	var promotions []models.Promotion
	if err := s.db.WithContext(ctx).Order("starts_at DESC").Find(&promotions).Error; err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	return promotions, nil
}

// ListLive returns the promotions shoppers can use right now.
func (s *PromotionService) ListLive(ctx context.Context) ([]models.Promotion, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	live := make([]models.Promotion, 0, len(all))
	for _, p := range all {
		if p.LiveAt(now) {
			live = append(live, p)
		}
	}
	return live, nil
}

func (s *PromotionService) Create(ctx context.Context, req models.PromotionRequest) (models.Promotion, error) {
	promotion := models.Promotion{
		Title:           req.Title,
		Description:     req.Description,
		Code:            normalizeCode(req.Code),
		DiscountPercent: req.DiscountPercent,
		StartsAt:        s.now().UTC(),
		EndsAt:          req.EndsAt,
		Active:          true,
	}
	if req.StartsAt != nil {
		promotion.StartsAt = req.StartsAt.UTC()
	}
	if req.Active != nil {
		promotion.Active = *req.Active
	}
	if err := validateWindow(promotion); err != nil {
		return models.Promotion{}, err
	}

	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.codeTaken(promotion.Code, uuid.Nil) {
			return models.Promotion{}, ErrDuplicatePromotion
		}
		promotion.ID = uuid.Must(uuid.NewV7())
		promotion.CreatedAt = s.now().UTC()
		promotion.UpdatedAt = promotion.CreatedAt
		s.memory = append(s.memory, promotion)
		return promotion, nil
	}

	if err := s.db.WithContext(ctx).Create(&promotion).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Promotion{}, ErrDuplicatePromotion
		}
		return models.Promotion{}, fmt.Errorf("create promotion: %w", err)
	}
	s.logger.Info("✅ Promotion created", zap.String("code", promotion.Code))
	return promotion, nil
}

func (s *PromotionService) Update(ctx context.Context, id uuid.UUID, req models.UpdatePromotionRequest) (models.Promotion, error) {
	apply := func(p *models.Promotion) {
		if req.Title != nil {
			p.Title = *req.Title
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Code != nil {
			p.Code = normalizeCode(*req.Code)
		}
		if req.DiscountPercent != nil {
			p.DiscountPercent = *req.DiscountPercent
		}
		if req.StartsAt != nil {
			p.StartsAt = req.StartsAt.UTC()
		}
		if req.EndsAt != nil {
			p.EndsAt = req.EndsAt
		}
		if req.Active != nil {
			p.Active = *req.Active
		}
	}

	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.memory {
			if s.memory[i].ID != id {
				continue
			}
			updated := s.memory[i]
			apply(&updated)
			if err := validateWindow(updated); err != nil {
				return models.Promotion{}, err
			}
			if s.codeTaken(updated.Code, id) {
				return models.Promotion{}, ErrDuplicatePromotion
			}
			updated.UpdatedAt = s.now().UTC()
			s.memory[i] = updated
			return updated, nil
		}
		return models.Promotion{}, ErrPromotionNotFound
	}

	var promotion models.Promotion
	if err := s.db.WithContext(ctx).First(&promotion, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Promotion{}, ErrPromotionNotFound
		}
		return models.Promotion{}, fmt.Errorf("get promotion %s: %w", id, err)
	}
	apply(&promotion)
	if err := validateWindow(promotion); err != nil {
		return models.Promotion{}, err
	}
	if err := s.db.WithContext(ctx).Save(&promotion).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Promotion{}, ErrDuplicatePromotion
		}
		return models.Promotion{}, fmt.Errorf("update promotion %s: %w", id, err)
	}
	return promotion, nil
}

func (s *PromotionService) Delete(ctx context.Context, id uuid.UUID) error {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.memory {
			if s.memory[i].ID == id {
				s.memory = append(s.memory[:i], s.memory[i+1:]...)
				return nil
			}
		}
		return ErrPromotionNotFound
	}

	res := s.db.WithContext(ctx).Delete(&models.Promotion{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete promotion %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPromotionNotFound
	}
	return nil
}

func (s *PromotionService) codeTaken(code string, except uuid.UUID) bool {
	for _, p := range s.memory {
		if p.ID != except && p.Code == code {
			return true
		}
	}
	return false
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func validateWindow(p models.Promotion) error {
	if p.EndsAt != nil && !p.EndsAt.After(p.StartsAt) {
		return ErrInvalidPromotionRange
	}
	return nil
}
