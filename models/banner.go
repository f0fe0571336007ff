package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Banner struct {
	ID        uuid.UUID `json:"id" yaml:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" yaml:"title" gorm:"not null"`
	Subtitle  string    `json:"subtitle" yaml:"subtitle"`
	ImageURL  string    `json:"image_url" yaml:"image_url" gorm:"not null"`
	LinkURL   string    `json:"link_url" yaml:"link_url"`
	Position  int       `json:"position" yaml:"position" gorm:"not null;default:0;index"`
	Active    bool      `json:"active" yaml:"active" gorm:"not null;default:true;index"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (b *Banner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Banner) TableName() string {
	return "banners"
}

type BannerRequest struct {
	Title    string `json:"title" binding:"required" example:"Summer Sale"`
	Subtitle string `json:"subtitle" example:"Up to 40% off"`
	ImageURL string `json:"image_url" binding:"required,url" example:"https://cdn.example.com/banners/summer.jpg"`
	LinkURL  string `json:"link_url" example:"/category/mobiles"`
	Position int    `json:"position" binding:"min=0" example:"1"`
	Active   *bool  `json:"active" example:"true"`
}

type UpdateBannerRequest struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	ImageURL *string `json:"image_url" binding:"omitempty,url"`
	LinkURL  *string `json:"link_url"`
	Position *int    `json:"position" binding:"omitempty,min=0"`
	Active   *bool   `json:"active"`
}
