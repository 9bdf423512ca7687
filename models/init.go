package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate runs the schema migration for all entities.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Company{},
		&Prospect{},
	); err != nil {
		return err
	}

	// Case-insensitive uniqueness of prospect company names lives in the
	// database so concurrent writers cannot both slip past the application
	// pre-check. The insert/update paths translate the resulting conflict
	// into the API's duplicate error.
	if err := db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_prospects_company_name_lower
		 ON prospects (LOWER(company_name))`,
	).Error; err != nil {
		return fmt.Errorf("failed to create prospect name index: %w", err)
	}

	return nil
}
