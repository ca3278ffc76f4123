package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pantrychef/internal/apperr"
	"pantrychef/internal/models"
)

// GormStore implements PantryStore on top of a gorm-managed database.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a PantryStore backed by the given database.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func preloadIngredients(db *gorm.DB) *gorm.DB {
	return db.Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
		return db.Order("ingredients.id ASC")
	})
}

func (s *GormStore) FindByName(ctx context.Context, name string) (*models.Pantry, error) {
	var pantry models.Pantry
	err := preloadIngredients(s.db.WithContext(ctx)).
		Where("name = ?", name).
		First(&pantry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("pantry %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load pantry: %w", err)
	}
	return &pantry, nil
}

func (s *GormStore) FindCurrent(ctx context.Context) (*models.Pantry, error) {
	var pantry models.Pantry
	err := preloadIngredients(s.db.WithContext(ctx)).
		Where("is_current = ?", true).
		First(&pantry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("no current pantry set")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load current pantry: %w", err)
	}
	return &pantry, nil
}

func (s *GormStore) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&models.Pantry{}).
		Order("id ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pantry names: %w", err)
	}
	return names, nil
}

func (s *GormStore) ListAll(ctx context.Context) ([]models.Pantry, error) {
	var pantries []models.Pantry
	err := preloadIngredients(s.db.WithContext(ctx)).
		Order("id ASC").
		Find(&pantries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pantries: %w", err)
	}
	return pantries, nil
}

func (s *GormStore) Create(ctx context.Context, name string) (*models.Pantry, error) {
	pantry := models.Pantry{Name: name, Ingredients: []models.Ingredient{}}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Pantry
		err := tx.Where("name = ?", name).First(&existing).Error
		if err == nil {
			return apperr.Conflictf("pantry %q already exists", name)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check pantry name: %w", err)
		}
		return tx.Create(&pantry).Error
	})
	if err != nil {
		return nil, err
	}
	return &pantry, nil
}

// Save replaces the stored ingredient list with the pantry's in-memory
// list and updates the current flag. Rewriting the list keeps document
// semantics: the pantry row owns its ingredients outright.
func (s *GormStore) Save(ctx context.Context, pantry *models.Pantry) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pantry_id = ?", pantry.ID).Delete(&models.Ingredient{}).Error; err != nil {
			return fmt.Errorf("failed to clear ingredients: %w", err)
		}
		for i := range pantry.Ingredients {
			pantry.Ingredients[i].ID = 0
			pantry.Ingredients[i].PantryID = pantry.ID
		}
		if len(pantry.Ingredients) > 0 {
			if err := tx.Create(&pantry.Ingredients).Error; err != nil {
				return fmt.Errorf("failed to store ingredients: %w", err)
			}
		}
		err := tx.Model(&models.Pantry{}).
			Where("id = ?", pantry.ID).
			Update("is_current", pantry.IsCurrent).Error
		if err != nil {
			return fmt.Errorf("failed to update pantry: %w", err)
		}
		return nil
	})
}

func (s *GormStore) DeleteByName(ctx context.Context, name string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pantry models.Pantry
		err := tx.Where("name = ?", name).First(&pantry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("pantry %q", name)
		}
		if err != nil {
			return fmt.Errorf("failed to load pantry: %w", err)
		}
		if err := tx.Where("pantry_id = ?", pantry.ID).Delete(&models.Ingredient{}).Error; err != nil {
			return fmt.Errorf("failed to delete ingredients: %w", err)
		}
		return tx.Delete(&pantry).Error
	})
}

// SetCurrent verifies the target exists before touching any flag, so a
// failed update can never leave the store without a current pantry.
func (s *GormStore) SetCurrent(ctx context.Context, name string) (*models.Pantry, error) {
	var pantry models.Pantry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("name = ?", name).First(&pantry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("pantry %q", name)
		}
		if err != nil {
			return fmt.Errorf("failed to load pantry: %w", err)
		}
		err = tx.Model(&models.Pantry{}).
			Where("is_current = ?", true).
			Update("is_current", false).Error
		if err != nil {
			return fmt.Errorf("failed to clear current flag: %w", err)
		}
		err = tx.Model(&models.Pantry{}).
			Where("id = ?", pantry.ID).
			Update("is_current", true).Error
		if err != nil {
			return fmt.Errorf("failed to set current flag: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.FindByName(ctx, name)
}
