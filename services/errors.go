package services

import (
	"errors"

	"github.com/abbu1809/Ecommerce-FL-React-sub003/layout"
)

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrSectionNotFound       = errors.New("homepage section not found")
	ErrBannerNotFound        = errors.New("banner not found")
	ErrPromotionNotFound     = errors.New("promotion not found")
	ErrDuplicatePromotion    = errors.New("promotion code already exists")
	ErrInvalidSectionIndex   = layout.ErrInvalidSectionIndex
	ErrInvalidSectionOrder   = errors.New("invalid section order")
	ErrInvalidPromotionRange = errors.New("promotion must end after it starts")
)

// Data source names reported by the services and echoed in API responses.
const (
	ModePostgres = "postgres"
	ModeMemory   = "memory"
)
