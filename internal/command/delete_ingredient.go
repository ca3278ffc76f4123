package command

import (
	"context"

	"pantrychef/internal/apperr"
	"pantrychef/internal/store"
)

// DeleteIngredient removes an ingredient from a pantry by its
// case-insensitive name and returns the name that was removed.
type DeleteIngredient struct {
	store          store.PantryStore
	pantryName     string
	ingredientName string
}

func NewDeleteIngredient(s store.PantryStore, pantryName, ingredientName string) *DeleteIngredient {
	return &DeleteIngredient{store: s, pantryName: pantryName, ingredientName: ingredientName}
}

func (c *DeleteIngredient) Execute(ctx context.Context) (string, error) {
	pantry, err := c.store.FindByName(ctx, c.pantryName)
	if err != nil {
		return "", err
	}

	if !pantry.RemoveIngredient(c.ingredientName) {
		return "", apperr.NotFoundf("ingredient %q not found in the pantry", c.ingredientName)
	}

	if err := c.store.Save(ctx, pantry); err != nil {
		return "", err
	}
	return c.ingredientName, nil
}
