package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/mockdata"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BannerService struct {
	db     *gorm.DB
	logger *zap.Logger

	mu     sync.RWMutex
	memory []models.Banner
}

func NewBannerService(db *gorm.DB, logger *zap.Logger) (*BannerService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &BannerService{db: db, logger: logger}
	if db == nil {
		banners, err := mockdata.Banners()
		if err != nil {
			return nil, fmt.Errorf("load demo banners: %w", err)
		}
		s.memory = banners
	}
	return s, nil
}

// List returns banners by position. activeOnly hides inactive ones.
func (s *BannerService) List(ctx context.Context, activeOnly bool) ([]models.Banner, error) {
	var banners []models.Banner
	if s.db == nil {
		s.mu.RLock()
		for _, b := range s.memory {
			if !activeOnly || b.Active {
				banners = append(banners, b)
			}
		}
		s.mu.RUnlock()
		sort.SliceStable(banners, func(i, j int) bool { return banners[i].Position < banners[j].Position })
		if banners == nil {
			banners = []models.Banner{}
		}
		return banners, nil
	}

	query := s.db.WithContext(ctx).Order("position ASC, created_at ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	return banners, nil
}

func (s *BannerService) Create(ctx context.Context, req models.BannerRequest) (models.Banner, error) {
	banner := models.Banner{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Position: req.Position,
		Active:   true,
	}
	if req.Active != nil {
		banner.Active = *req.Active
	}

	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		banner.ID = uuid.Must(uuid.NewV7())
		banner.CreatedAt = time.Now().UTC()
		banner.UpdatedAt = banner.CreatedAt
		s.memory = append(s.memory, banner)
		return banner, nil
	}

	if err := s.db.WithContext(ctx).Create(&banner).Error; err != nil {
		return models.Banner{}, fmt.Errorf("create banner: %w", err)
	}
	s.logger.Info("✅ Banner created", zap.String("id", banner.ID.String()))
	return banner, nil
}

func (s *BannerService) Update(ctx context.Context, id uuid.UUID, req models.UpdateBannerRequest) (models.Banner, error) {
	apply := func(b *models.Banner) {
		if req.Title != nil {
			b.Title = *req.Title
		}
		if req.Subtitle != nil {
			b.Subtitle = *req.Subtitle
		}
		if req.ImageURL != nil {
			b.ImageURL = *req.ImageURL
		}
		if req.LinkURL != nil {
			b.LinkURL = *req.LinkURL
		}
		if req.Position != nil {
			b.Position = *req.Position
		}
		if req.Active != nil {
			b.Active = *req.Active
		}
	}

	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.memory {
			if s.memory[i].ID == id {
				apply(&s.memory[i])
				s.memory[i].UpdatedAt = time.Now().UTC()
				return s.memory[i], nil
			}
		}
		return models.Banner{}, ErrBannerNotFound
	}

	var banner models.Banner
	if err := s.db.WithContext(ctx).First(&banner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Banner{}, ErrBannerNotFound
		}
		return models.Banner{}, fmt.Errorf("get banner %s: %w", id, err)
	}
	apply(&banner)
	if err := s.db.WithContext(ctx).Save(&banner).Error; err != nil {
		return models.Banner{}, fmt.Errorf("update banner %s: %w", id, err)
	}
	return banner, nil
}

func (s *BannerService) Delete(ctx context.Context, id uuid.UUID) error {
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.memory {
			if s.memory[i].ID == id {
				s.memory = append(s.memory[:i], s.memory[i+1:]...)
				return nil
			}
		}
		return ErrBannerNotFound
	}

	res := s.db.WithContext(ctx).Delete(&models.Banner{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete banner %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBannerNotFound
	}
	return nil
}
