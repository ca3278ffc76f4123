package command

import (
	"context"
	"strings"

	"pantrychef/internal/apperr"
	"pantrychef/internal/models"
	"pantrychef/internal/store"
)

// AddIngredient appends an ingredient to a pantry. Ingredient names are
// unique within a pantry under case-insensitive comparison.
type AddIngredient struct {
	store      store.PantryStore
	pantryName string
	ingredient models.Ingredient
}

func NewAddIngredient(s store.PantryStore, pantryName string, ingredient models.Ingredient) *AddIngredient {
	return &AddIngredient{store: s, pantryName: pantryName, ingredient: ingredient}
}

func (c *AddIngredient) Execute(ctx context.Context) (*models.Pantry, error) {
	if strings.TrimSpace(c.ingredient.Name) == "" {
		return nil, apperr.InvalidArgumentf("ingredient name is required")
	}

	pantry, err := c.store.FindByName(ctx, c.pantryName)
	if err != nil {
		return nil, err
	}

	if pantry.HasIngredient(c.ingredient.Name) {
		return nil, apperr.Conflictf("ingredient %q already exists in the pantry", c.ingredient.Name)
	}

	pantry.Ingredients = append(pantry.Ingredients, c.ingredient)
	if err := c.store.Save(ctx, pantry); err != nil {
		return nil, err
	}
	return pantry, nil
}
