package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"pantrychef/internal/apperr"
)

const recipeModel = "gpt-4-turbo-preview"

const recipeSystemPrompt = `You are a helpful chef that generates recipes based on available ingredients.
Generate a recipe that:
1. Uses as many of the provided ingredients as possible
2. Clearly indicates which ingredients are available and which need to be purchased: every referenced ingredient that appears in the provided list goes in availableIngredients, every other referenced ingredient goes in missingIngredients
3. Matches the specified dietary restrictions, style, meal type and difficulty level

Format your response as JSON with the following structure:
{
  "name": "Recipe Name",
  "availableIngredients": ["ingredient1", "ingredient2"],
  "missingIngredients": ["ingredient3", "ingredient4"],
  "instructions": ["step1", "step2"],
  "prepTime": "X minutes",
  "cookingTime": "Y minutes",
  "style": "cooking style",
  "types": "meal type",
  "difficulty": "easy/medium/hard",
  "servings": "Z"
}`

// Defaults applied when the caller leaves a preference empty.
const (
	defaultDietary    = "none"
	defaultStyle      = "any"
	defaultMealType   = "any"
	defaultDifficulty = "medium"
)

// Recipe is the structured result of recipe generation. Ingredients are
// partitioned into those present in the caller's list and those that
// need to be purchased.
type Recipe struct {
	Name                 string   `json:"name"`
	AvailableIngredients []string `json:"availableIngredients"`
	MissingIngredients   []string `json:"missingIngredients"`
	Instructions         []string `json:"instructions"`
	PrepTime             string   `json:"prepTime"`
	CookingTime          string   `json:"cookingTime"`
	Style                string   `json:"style"`
	Types                string   `json:"types"`
	Difficulty           string   `json:"difficulty"`
	Servings             string   `json:"servings"`
}

// RecipeGenerationService produces a structured recipe from an
// ingredient list and preference parameters.
type RecipeGenerationService struct {
	client ChatCaller
	params ServiceParams
}

func (s *RecipeGenerationService) Validate() error {
	if len(s.params.Ingredients) == 0 {
		return apperr.InvalidArgumentf("ingredients must be a non-empty array")
	}
	for _, ing := range s.params.Ingredients {
		if strings.TrimSpace(ing) == "" {
			return apperr.InvalidArgumentf("ingredients must not contain empty entries")
		}
	}
	return nil
}

func (s *RecipeGenerationService) BuildPrompt() (string, string) {
	dietary := defaultDietary
	if len(s.params.DietaryRestrictions) > 0 {
		dietary = strings.Join(s.params.DietaryRestrictions, ", ")
	}
	style := s.params.Style
	if style == "" {
		style = defaultStyle
	}
	mealType := s.params.MealType
	if mealType == "" {
		mealType = defaultMealType
	}
	difficulty := s.params.Difficulty
	if difficulty == "" {
		difficulty = defaultDifficulty
	}

	user := fmt.Sprintf(`Generate a recipe with these parameters:
Available ingredients: %s
Dietary restrictions: %s
Style: %s
Meal type: %s
Difficulty level: %s`,
		strings.Join(s.params.Ingredients, ", "), dietary, style, mealType, difficulty)

	return recipeSystemPrompt, user
}

func (s *RecipeGenerationService) Execute(ctx context.Context) (any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	system, user := s.BuildPrompt()
	content, err := s.client.ChatJSON(ctx, recipeModel, system, user, 0.7, 800)
	if err != nil {
		return nil, err
	}

	return ParseRecipe(content)
}

// ParseRecipe parses and validates the raw API reply against the recipe
// schema. Every field must be present and well-typed; nothing is
// silently defaulted.
func ParseRecipe(raw string) (*Recipe, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, apperr.BadUpstreamResponsef("recipe is not valid JSON: %v", err)
	}

	result := &Recipe{}
	var err error
	if result.Name, err = stringField(obj, "name"); err != nil {
		return nil, err
	}
	if result.AvailableIngredients, err = stringSliceField(obj, "availableIngredients"); err != nil {
		return nil, err
	}
	if result.MissingIngredients, err = stringSliceField(obj, "missingIngredients"); err != nil {
		return nil, err
	}
	if result.Instructions, err = stringSliceField(obj, "instructions"); err != nil {
		return nil, err
	}
	if result.PrepTime, err = stringField(obj, "prepTime"); err != nil {
		return nil, err
	}
	if result.CookingTime, err = stringField(obj, "cookingTime"); err != nil {
		return nil, err
	}
	if result.Style, err = stringField(obj, "style"); err != nil {
		return nil, err
	}
	if result.Types, err = stringField(obj, "types"); err != nil {
		return nil, err
	}
	if result.Difficulty, err = stringField(obj, "difficulty"); err != nil {
		return nil, err
	}
	if result.Servings, err = stringField(obj, "servings"); err != nil {
		return nil, err
	}
	return result, nil
}

func stringField(obj map[string]any, key string) (string, error) {
	v, ok := obj[key]
	if !ok {
		return "", apperr.BadUpstreamResponsef("missing field %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", apperr.BadUpstreamResponsef("field %q must be a string", key)
	}
	if strings.TrimSpace(s) == "" {
		return "", apperr.BadUpstreamResponsef("field %q must not be empty", key)
	}
	return s, nil
}

func stringSliceField(obj map[string]any, key string) ([]string, error) {
	v, ok := obj[key]
	if !ok {
		return nil, apperr.BadUpstreamResponsef("missing field %q", key)
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, apperr.BadUpstreamResponsef("field %q must be an array", key)
	}
	out := make([]string, 0, len(arr))
	for i, el := range arr {
		s, ok := el.(string)
		if !ok {
			return nil, apperr.BadUpstreamResponsef("field %q element %d must be a string", key, i)
		}
		out = append(out, s)
	}
	return out, nil
}
