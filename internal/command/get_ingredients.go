package command

import (
	"context"
	"strings"

	"pantrychef/internal/apperr"
	"pantrychef/internal/models"
	"pantrychef/internal/store"
)

// GetIngredients returns a pantry's ingredients in insertion order.
type GetIngredients struct {
	store      store.PantryStore
	pantryName string
}

func NewGetIngredients(s store.PantryStore, pantryName string) *GetIngredients {
	return &GetIngredients{store: s, pantryName: pantryName}
}

func (c *GetIngredients) Execute(ctx context.Context) ([]models.Ingredient, error) {
	if strings.TrimSpace(c.pantryName) == "" {
		return nil, apperr.InvalidArgumentf("pantry name is required")
	}

	pantry, err := c.store.FindByName(ctx, c.pantryName)
	if err != nil {
		return nil, err
	}
	return pantry.Ingredients, nil
}
