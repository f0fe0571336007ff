package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Promotion struct {
	ID              uuid.UUID  `json:"id" yaml:"id" gorm:"type:uuid;primaryKey"`
	Title           string     `json:"title" yaml:"title" gorm:"not null"`
	Description     string     `json:"description" yaml:"description"`
	Code            string     `json:"code" yaml:"code" gorm:"type:varchar(40);uniqueIndex"`
	DiscountPercent int        `json:"discount_percent" yaml:"discount_percent" gorm:"not null;check:discount_percent BETWEEN 1 AND 100"`
	StartsAt        time.Time  `json:"starts_at" yaml:"starts_at" gorm:"not null"`
	EndsAt          *time.Time `json:"ends_at,omitempty" yaml:"ends_at"`
	Active          bool       `json:"active" yaml:"active" gorm:"not null;default:true;index"`
	CreatedAt       time.Time  `json:"created_at" yaml:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `json:"updated_at" yaml:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Promotion) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Promotion) TableName() string {
	return "promotions"
}

// LiveAt reports whether the promotion is active and inside its window.
func (p Promotion) LiveAt(now time.Time) bool {
	if !p.Active || now.Before(p.StartsAt) {
		return false
	}
	return p.EndsAt == nil || now.Before(*p.EndsAt)
}

type PromotionRequest struct {
	Title           string     `json:"title" binding:"required" example:"Festive Offer"`
	Description     string     `json:"description" example:"Flat 10% on all mobiles"`
	Code            string     `json:"code" binding:"required,max=40" example:"FESTIVE10"`
	DiscountPercent int        `json:"discount_percent" binding:"required,min=1,max=100" example:"10"`
	StartsAt        *time.Time `json:"starts_at" example:"2026-10-01T00:00:00Z"`
	EndsAt          *time.Time `json:"ends_at" example:"2026-10-31T23:59:59Z"`
	Active          *bool      `json:"active" example:"true"`
}

type UpdatePromotionRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Code            *string    `json:"code" binding:"omitempty,max=40"`
	DiscountPercent *int       `json:"discount_percent" binding:"omitempty,min=1,max=100"`
	StartsAt        *time.Time `json:"starts_at"`
	EndsAt          *time.Time `json:"ends_at"`
	Active          *bool      `json:"active"`
}
