package models

import (
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every storefront table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Product{},
		&HomepageSection{},
		&Banner{},
		&Promotion{},
	); err != nil {
		return fmt.Errorf("auto-migrate storefront schema: %w", err)
	}
	return nil
}
