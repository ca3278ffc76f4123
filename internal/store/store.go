// Package store provides durable storage and lookup of pantry documents.
// It performs no business validation beyond uniqueness of the pantry
// name; everything else is the command layer's job.
package store

import (
	"context"

	"pantrychef/internal/models"
)

// PantryStore is the persistence contract for pantry documents.
type PantryStore interface {
	// FindByName returns the pantry with the given name, including its
	// ingredients in insertion order. apperr.ErrNotFound when absent.
	FindByName(ctx context.Context, name string) (*models.Pantry, error)

	// FindCurrent returns the pantry marked current.
	// apperr.ErrNotFound when no pantry carries the flag.
	FindCurrent(ctx context.Context) (*models.Pantry, error)

	// ListNames returns every pantry name in creation order.
	ListNames(ctx context.Context) ([]string, error)

	// ListAll returns every pantry with ingredients, in creation order.
	ListAll(ctx context.Context) ([]models.Pantry, error)

	// Create stores a new empty pantry. apperr.ErrConflict when the name
	// is already taken (case-sensitive exact match).
	Create(ctx context.Context, name string) (*models.Pantry, error)

	// Save persists an in-place mutation of the pantry: its ingredient
	// list is replaced wholesale and its flags updated, in one
	// transaction.
	Save(ctx context.Context, pantry *models.Pantry) error

	// DeleteByName removes the pantry and its ingredients.
	// apperr.ErrNotFound when absent.
	DeleteByName(ctx context.Context, name string) error

	// SetCurrent marks the named pantry current and clears the flag on
	// every other pantry as a single transaction. When the target does
	// not exist it fails with apperr.ErrNotFound and leaves the
	// previously current pantry untouched.
	SetCurrent(ctx context.Context, name string) (*models.Pantry, error)
}
