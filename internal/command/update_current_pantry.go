package command

import (
	"context"
	"strings"

	"pantrychef/internal/apperr"
	"pantrychef/internal/models"
	"pantrychef/internal/store"
)

// UpdateCurrentPantry makes the named pantry the current one. The store
// performs the flag swap transactionally, so pointing at a pantry that
// does not exist leaves the previously current pantry in place.
type UpdateCurrentPantry struct {
	store      store.PantryStore
	pantryName string
}

func NewUpdateCurrentPantry(s store.PantryStore, pantryName string) *UpdateCurrentPantry {
	return &UpdateCurrentPantry{store: s, pantryName: pantryName}
}

func (c *UpdateCurrentPantry) Execute(ctx context.Context) (*models.Pantry, error) {
	if strings.TrimSpace(c.pantryName) == "" {
		return nil, apperr.InvalidArgumentf("pantry name is required")
	}
	return c.store.SetCurrent(ctx, c.pantryName)
}
