package database

import (
	"fmt"

	"gorm.io/gorm"

	"pantrychef/internal/models"
)

// Migrate creates or updates the pantry schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Pantry{}, &models.Ingredient{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Seed ensures a current pantry exists on a fresh store. It creates
// "Default Pantry" with a starter ingredient set and marks it current,
// but only when no pantry exists at all, so restarts never clobber user
// data.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Pantry{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count pantries: %w", err)
	}
	if count > 0 {
		return nil
	}

	pantry := models.Pantry{
		Name:      "Default Pantry",
		IsCurrent: true,
		Ingredients: []models.Ingredient{
			{Name: "Salt", Category: "Spices"},
			{Name: "Sugar", Category: "Condiments"},
			{Name: "Rice", Category: "Grains"},
		},
	}
	if err := db.Create(&pantry).Error; err != nil {
		return fmt.Errorf("failed to seed default pantry: %w", err)
	}
	return nil
}
