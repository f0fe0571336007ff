package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// ProductVariant holds the predefined attribute groupings of a product.
type ProductVariant struct {
	Storage []string `json:"storage,omitempty" yaml:"storage" example:"['128GB', '256GB']"`
	Colors  []string `json:"colors,omitempty" yaml:"colors" example:"['Black', 'Blue']"`
}

// ValidOption is one purchasable SKU combination. Besides attribute keys it
// carries the reserved numeric fields price, discounted_price and stock.
type ValidOption map[string]any

type ValidOptionList []ValidOption

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

// Product is read-only to the storefront: it is written by the seeder and
// served to the catalog endpoints.
type Product struct {
	ID            uuid.UUID         `json:"id" yaml:"id" gorm:"type:uuid;primaryKey"`
	Name          string            `json:"name" yaml:"name" gorm:"not null;index"`
	Description   string            `json:"description" yaml:"description" gorm:"not null;default:''"`
	Category      string            `json:"category" yaml:"category" gorm:"index"`
	Brand         string            `json:"brand" yaml:"brand" gorm:"index"`
	Price         float64           `json:"price" yaml:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	DiscountPrice *float64          `json:"discount_price,omitempty" yaml:"discount_price" gorm:"type:numeric(12,2)"`
	Variant       ProductVariant    `json:"variant" yaml:"variant" gorm:"type:jsonb;not null;default:'{}'"`
	ValidOptions  ValidOptionList   `json:"valid_options,omitempty" yaml:"valid_options" gorm:"type:jsonb;not null;default:'[]'"`
	Attributes    datatypes.JSONMap `json:"attributes,omitempty" yaml:"attributes" gorm:"type:jsonb"`
	Rating        float64           `json:"rating" yaml:"rating" gorm:"type:numeric(2,1);default:0"`
	Stock         int               `json:"stock" yaml:"stock" gorm:"default:0"`
	ImageURL      string            `json:"image_url,omitempty" yaml:"image_url"`
	CreatedAt     time.Time         `json:"created_at" yaml:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time         `json:"updated_at" yaml:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// EffectivePrice is the price a shopper pays: the discount price when set,
// otherwise the list price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// InStock reports whether any stock is left.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// StorefrontProductResponse is the thin card shown in product grids.
type StorefrontProductResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Brand         string    `json:"brand"`
	Category      string    `json:"category"`
	Image         string    `json:"image"`
	Price         float64   `json:"price"`
	DiscountPrice *float64  `json:"discount_price,omitempty"`
	Rating        float64   `json:"rating"`
	InStock       bool      `json:"in_stock"`
}

func NewStorefrontProductResponse(p Product) StorefrontProductResponse {
	return StorefrontProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Category:      p.Category,
		Image:         p.ImageURL,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Rating:        p.Rating,
		InStock:       p.InStock(),
	}
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom types)
// ═══════════════════════════════════════════════════════════

// ProductVariant methods
func (v *ProductVariant) Scan(value interface{}) error {
	if value == nil {
		*v = ProductVariant{}
		return nil
	}
	bytes, ok := jsonBytes(value)
	if !ok {
		return errors.New("failed to scan ProductVariant")
	}
	return json.Unmarshal(bytes, v)
}

func (v ProductVariant) Value() (driver.Value, error) {
	return json.Marshal(v)
}

// ValidOptionList methods
func (l *ValidOptionList) Scan(value interface{}) error {
	if value == nil {
		*l = make(ValidOptionList, 0)
		return nil
	}
	bytes, ok := jsonBytes(value)
	if !ok {
		return errors.New("failed to scan ValidOptionList")
	}
	return json.Unmarshal(bytes, l)
}

func (l ValidOptionList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]ValidOption{})
	}
	return json.Marshal(l)
}

// jsonBytes accepts both []byte and string, pgx hands back either depending
// on the column type.
func jsonBytes(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}
