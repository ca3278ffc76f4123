package service

import (
	"context"

	"github.com/redis/go-redis/v9"

	"pantrychef/internal/apperr"
)

// Service type tags accepted by the factory.
const (
	TypeNormalize = "normalize"
	TypeRecipe    = "recipe"
)

// GenerativeService is a single prompt-driven call to the external
// text-generation API with a strict response-shape contract.
type GenerativeService interface {
	// Validate checks the caller-supplied parameters.
	Validate() error
	// BuildPrompt returns the deterministic system and user prompts.
	BuildPrompt() (system, user string)
	// Execute validates, prompts the external API and returns the parsed
	// structured result (*Normalization or *Recipe).
	Execute(ctx context.Context) (any, error)
}

// ServiceParams carries the inputs for either service variant; only the
// fields relevant to the requested type are read.
type ServiceParams struct {
	// Normalization
	IngredientName string

	// Recipe generation. Ingredients are plain name strings.
	Ingredients         []string
	DietaryRestrictions []string
	Style               string
	MealType            string
	Difficulty          string
}

// ServiceFactory builds generative services around a shared LLM client
// and an optional Redis cache.
type ServiceFactory struct {
	client ChatCaller
	cache  *redis.Client
}

// NewServiceFactory creates the factory. cache may be nil, in which case
// normalization results are simply not cached.
func NewServiceFactory(client ChatCaller, cache *redis.Client) *ServiceFactory {
	return &ServiceFactory{client: client, cache: cache}
}

// CreateService maps a type tag to a service instance. The parameters
// are validated immediately, so an invalid request never reaches the
// external API.
func (f *ServiceFactory) CreateService(serviceType string, params ServiceParams) (GenerativeService, error) {
	var svc GenerativeService
	switch serviceType {
	case TypeNormalize:
		svc = &NormalizationService{client: f.client, cache: f.cache, query: params.IngredientName}
	case TypeRecipe:
		svc = &RecipeGenerationService{client: f.client, params: params}
	default:
		return nil, apperr.InvalidArgumentf("unknown service type: %s", serviceType)
	}
	if err := svc.Validate(); err != nil {
		return nil, err
	}
	return svc, nil
}
