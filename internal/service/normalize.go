package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"pantrychef/internal/apperr"
)

const normalizeModel = "gpt-4o-mini"

const normalizeSystemPrompt = `You are a helpful assistant that normalizes ingredient names and provides category information.
For the given ingredient, provide:
1. The normalized ingredient name
2. Its category (e.g., Vegetables, Fruits, Proteins, Dairy, etc.)
3. 2-3 similar ingredients

Format your response as JSON with the following structure:
{
  "normalizedName": "standard ingredient name",
  "category": "ingredient category",
  "similarIngredients": ["similar1", "similar2", "similar3"]
}

Keep responses concise and focused on common cooking ingredients.`

// Normalization is the structured result of an ingredient-name lookup.
type Normalization struct {
	NormalizedName     string   `json:"normalizedName"`
	Category           string   `json:"category"`
	SimilarIngredients []string `json:"similarIngredients"`
}

// NormalizationService maps a free-text ingredient query to a canonical
// name, category and related-ingredient suggestions. Results are cached
// in Redis keyed on the lowercased query; the cache is best-effort and
// a miss or Redis failure falls through to the API call.
type NormalizationService struct {
	client ChatCaller
	cache  *redis.Client
	query  string
}

func (s *NormalizationService) Validate() error {
	if strings.TrimSpace(s.query) == "" {
		return apperr.InvalidArgumentf("must query a real ingredient")
	}
	return nil
}

func (s *NormalizationService) BuildPrompt() (string, string) {
	return normalizeSystemPrompt, fmt.Sprintf("Normalize this ingredient: %q", strings.TrimSpace(s.query))
}

func (s *NormalizationService) Execute(ctx context.Context) (any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	cacheKey := "normalize:" + strings.ToLower(strings.TrimSpace(s.query))
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached Normalization
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	system, user := s.BuildPrompt()
	content, err := s.client.ChatJSON(ctx, normalizeModel, system, user, 0.3, 150)
	if err != nil {
		return nil, err
	}

	result, err := ParseNormalization(content)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(result); err == nil {
			s.cache.Set(ctx, cacheKey, data, 24*time.Hour)
		}
	}

	return result, nil
}

// ParseNormalization parses and validates the raw API reply against the
// normalization schema. It never defaults missing fields.
func ParseNormalization(raw string) (*Normalization, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, apperr.BadUpstreamResponsef("normalization is not valid JSON: %v", err)
	}

	result := &Normalization{}
	var err error
	if result.NormalizedName, err = stringField(obj, "normalizedName"); err != nil {
		return nil, err
	}
	if result.Category, err = stringField(obj, "category"); err != nil {
		return nil, err
	}
	if result.SimilarIngredients, err = stringSliceField(obj, "similarIngredients"); err != nil {
		return nil, err
	}
	if n := len(result.SimilarIngredients); n < 2 || n > 3 {
		return nil, apperr.BadUpstreamResponsef("similarIngredients must contain 2-3 entries, got %d", n)
	}
	return result, nil
}
