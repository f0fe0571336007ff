package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	catalog_cache "github.com/abbu1809/Ecommerce-FL-React-sub003/cache"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/filtering"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/mockdata"
	"github.com/abbu1809/Ecommerce-FL-React-sub003/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CatalogService is the read path of the product catalog. Without a
// database it serves the embedded demo catalog.
type CatalogService struct {
	db     *gorm.DB
	cache  *catalog_cache.Catalog
	logger *zap.Logger

	mu     sync.RWMutex
	memory []models.Product
}

func NewCatalogService(db *gorm.DB, cache *catalog_cache.Catalog, logger *zap.Logger) (*CatalogService, error) {
	if cache == nil {
		cache = catalog_cache.New(catalog_cache.DefaultTTL)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &CatalogService{db: db, cache: cache, logger: logger}
	if db == nil {
		products, err := mockdata.Products()
		if err != nil {
			return nil, fmt.Errorf("load demo catalog: %w", err)
		}
		s.memory = products
	}
	return s, nil
}

func (s *CatalogService) Mode() string {
	if s.db == nil {
		return ModeMemory
	}
	return ModePostgres
}

// ListProducts returns the catalog scoped to category ("" for all), in
// backend order (newest first).
func (s *CatalogService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	if products, ok := s.cache.GetProducts(category); ok {
		return products, nil
	}

	var products []models.Product
	if s.db == nil {
		s.mu.RLock()
		products = append([]models.Product(nil), filtering.ScopeToCategory(s.memory, category)...)
		s.mu.RUnlock()
	} else {
		query := s.db.WithContext(ctx).Order("created_at DESC")
		if route := strings.TrimSpace(category); route != "" {
			query = query.Where("LOWER(TRIM(category)) = ?", strings.ToLower(strings.ReplaceAll(route, "-", " ")))
		}
		if err := query.Find(&products).Error; err != nil {
			s.logger.Error("failed to list products", zap.String("category", category), zap.Error(err))
			return nil, fmt.Errorf("list products: %w", err)
		}
	}

	s.cache.SetProducts(category, products)
	return products, nil
}

// Facets derives the filter sidebar for category.
func (s *CatalogService) Facets(ctx context.Context, category string) (filtering.Summary, error) {
	products, err := s.ListProducts(ctx, category)
	if err != nil {
		return filtering.Summary{}, err
	}
	facets, ok := s.cache.GetFacets(category)
	if !ok {
		facets = filtering.ExtractFacets(products, "")
	}
	return filtering.SummarizeWith(facets, products), nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (models.Product, error) {
	if s.db == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		for _, p := range s.memory {
			if p.ID == id {
				return p, nil
			}
		}
		return models.Product{}, ErrProductNotFound
	}

	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return product, nil
}

// Categories lists the distinct categories with product counts.
func (s *CatalogService) Categories(ctx context.Context) ([]models.StorefrontCategory, error) {
	summary, err := s.Facets(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make([]models.StorefrontCategory, len(summary.Categories))
	for i, o := range summary.Categories {
		out[i] = models.StorefrontCategory{
			Name:         o.Label,
			Slug:         strings.ToLower(strings.ReplaceAll(o.Label, " ", "-")),
			ProductCount: o.Count,
		}
	}
	return out, nil
}

// Brands lists the distinct brands with product counts.
func (s *CatalogService) Brands(ctx context.Context) ([]models.StorefrontBrand, error) {
	summary, err := s.Facets(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make([]models.StorefrontBrand, len(summary.Brands))
	for i, o := range summary.Brands {
		out[i] = models.StorefrontBrand{Name: o.Label, ProductCount: o.Count}
	}
	return out, nil
}

// InvalidateCache drops cached listings, e.g. after a reseed.
func (s *CatalogService) InvalidateCache() {
	s.cache.Invalidate()
}
