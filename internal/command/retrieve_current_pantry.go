package command

import (
	"context"

	"pantrychef/internal/models"
	"pantrychef/internal/store"
)

// CurrentPantry is the view returned for the pantry marked current.
type CurrentPantry struct {
	PantryName  string              `json:"pantryName"`
	Ingredients []models.Ingredient `json:"ingredients"`
}

// RetrieveCurrentPantry returns the pantry carrying the current flag.
type RetrieveCurrentPantry struct {
	store store.PantryStore
}

func NewRetrieveCurrentPantry(s store.PantryStore) *RetrieveCurrentPantry {
	return &RetrieveCurrentPantry{store: s}
}

func (c *RetrieveCurrentPantry) Execute(ctx context.Context) (*CurrentPantry, error) {
	pantry, err := c.store.FindCurrent(ctx)
	if err != nil {
		return nil, err
	}

	ingredients := pantry.Ingredients
	if ingredients == nil {
		ingredients = []models.Ingredient{}
	}
	return &CurrentPantry{PantryName: pantry.Name, Ingredients: ingredients}, nil
}
