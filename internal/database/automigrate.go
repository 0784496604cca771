package database

import (
	"fmt"

	"gorm.io/gorm"

	"field-track-api/internal/domain"
)

// AutoMigrate creates or updates the schema for all domain models
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.Project{},
		&domain.Table{},
		&domain.WorkLog{},
		&domain.Worker{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}
