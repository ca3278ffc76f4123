package command

import (
	"context"
	"strings"

	"pantrychef/internal/apperr"
	"pantrychef/internal/models"
	"pantrychef/internal/store"
)

// CreatePantry creates a new, empty pantry.
type CreatePantry struct {
	store      store.PantryStore
	pantryName string
}

func NewCreatePantry(s store.PantryStore, pantryName string) *CreatePantry {
	return &CreatePantry{store: s, pantryName: pantryName}
}

func (c *CreatePantry) Execute(ctx context.Context) (*models.Pantry, error) {
	if strings.TrimSpace(c.pantryName) == "" {
		return nil, apperr.InvalidArgumentf("pantry name is required")
	}
	return c.store.Create(ctx, c.pantryName)
}
