package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Section types understood by the storefront renderer.
const (
	SectionTypeHero            = "hero"
	SectionTypeProductCarousel = "product_carousel"
	SectionTypeCategoryGrid    = "category_grid"
	SectionTypeBannerStrip     = "banner_strip"
	SectionTypePromotionGrid   = "promotion_grid"
)

// HomepageSection is an admin-configurable, orderable block of the storefront
// homepage. Order is 1-based and contiguous across all sections.
type HomepageSection struct {
	ID         uuid.UUID         `json:"id" yaml:"id" gorm:"type:uuid;primaryKey"`
	Title      string            `json:"title" yaml:"title" gorm:"not null"`
	Type       string            `json:"type" yaml:"type" gorm:"type:varchar(32);not null;index"`
	Order      int               `json:"order" yaml:"order" gorm:"column:sort_order;not null;index"`
	Enabled    bool              `json:"enabled" yaml:"enabled" gorm:"not null;default:true"`
	Config     datatypes.JSONMap `json:"config,omitempty" yaml:"config" gorm:"type:jsonb"`
	ProductIDs pq.StringArray    `json:"product_ids,omitempty" yaml:"product_ids" gorm:"type:text[]"`
	CreatedAt  time.Time         `json:"created_at" yaml:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time         `json:"updated_at" yaml:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (s *HomepageSection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (HomepageSection) TableName() string {
	return "homepage_sections"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type HomepageSectionRequest struct {
	Title      string         `json:"title" binding:"required" example:"Trending Phones"`
	Type       string         `json:"type" binding:"required,oneof=hero product_carousel category_grid banner_strip promotion_grid" example:"product_carousel"`
	Enabled    *bool          `json:"enabled" example:"true"`
	Config     map[string]any `json:"config"`
	ProductIDs []string       `json:"product_ids"`
}

type UpdateHomepageSectionRequest struct {
	Title      *string         `json:"title"`
	Type       *string         `json:"type" binding:"omitempty,oneof=hero product_carousel category_grid banner_strip promotion_grid"`
	Enabled    *bool           `json:"enabled"`
	Config     *map[string]any `json:"config"`
	ProductIDs *[]string       `json:"product_ids"`
}

// SectionOrder is one entry of the authoritative order sent by the admin
// console after a drag-reorder.
type SectionOrder struct {
	ID    uuid.UUID `json:"id" binding:"required" example:"018d1234-5678-7abc-def0-123456789abc"`
	Order int       `json:"order" binding:"required,min=1" example:"1"`
}

type ReorderSectionsRequest struct {
	Sections []SectionOrder `json:"sections" binding:"required,min=1,dive"`
}
