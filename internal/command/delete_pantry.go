package command

import (
	"context"
	"strings"

	"pantrychef/internal/apperr"
	"pantrychef/internal/store"
)

// DeletePantry removes a pantry and every ingredient it owns.
type DeletePantry struct {
	store      store.PantryStore
	pantryName string
}

func NewDeletePantry(s store.PantryStore, pantryName string) *DeletePantry {
	return &DeletePantry{store: s, pantryName: pantryName}
}

func (c *DeletePantry) Execute(ctx context.Context) (string, error) {
	if strings.TrimSpace(c.pantryName) == "" {
		return "", apperr.InvalidArgumentf("pantry name is required")
	}
	if err := c.store.DeleteByName(ctx, c.pantryName); err != nil {
		return "", err
	}
	return c.pantryName, nil
}
