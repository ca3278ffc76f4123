package command

import (
	"context"

	"pantrychef/internal/models"
	"pantrychef/internal/store"
)

// GetAllPantries returns every pantry with its ingredients.
type GetAllPantries struct {
	store store.PantryStore
}

func NewGetAllPantries(s store.PantryStore) *GetAllPantries {
	return &GetAllPantries{store: s}
}

func (c *GetAllPantries) Execute(ctx context.Context) ([]models.Pantry, error) {
	return c.store.ListAll(ctx)
}
