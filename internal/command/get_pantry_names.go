package command

import (
	"context"

	"pantrychef/internal/store"
)

// GetPantryNames returns every pantry name in creation order.
type GetPantryNames struct {
	store store.PantryStore
}

func NewGetPantryNames(s store.PantryStore) *GetPantryNames {
	return &GetPantryNames{store: s}
}

func (c *GetPantryNames) Execute(ctx context.Context) ([]string, error) {
	return c.store.ListNames(ctx)
}
