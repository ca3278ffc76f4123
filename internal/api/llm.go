package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pantrychef/internal/apperr"
	"pantrychef/internal/service"
)

// LLMHandler translates generative HTTP requests into factory-built
// service calls.
type LLMHandler struct {
	factory *service.ServiceFactory
	logger  *zap.Logger
}

// NewLLMHandler creates a new LLMHandler.
func NewLLMHandler(factory *service.ServiceFactory, logger *zap.Logger) *LLMHandler {
	return &LLMHandler{factory: factory, logger: logger}
}

// RegisterRoutes registers the generative routes.
func (h *LLMHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/normalizeIngredient/:ingredientName", h.NormalizeIngredient)
	router.POST("/generate-recipe", h.GenerateRecipe)
}

// NormalizeIngredient handles GET /api/normalizeIngredient/:ingredientName.
func (h *LLMHandler) NormalizeIngredient(c *gin.Context) {
	svc, err := h.factory.CreateService(service.TypeNormalize, service.ServiceParams{
		IngredientName: c.Param("ingredientName"),
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	result, err := svc.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GenerateRecipe handles POST /api/generate-recipe.
func (h *LLMHandler) GenerateRecipe(c *gin.Context) {
	var req struct {
		Ingredients         []string `json:"ingredients"`
		DietaryRestrictions []string `json:"dietaryRestrictions"`
		Style               string   `json:"style"`
		Types               string   `json:"types"`
		Difficulty          string   `json:"difficulty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperr.InvalidArgumentf("ingredients must be an array of strings"))
		return
	}

	svc, err := h.factory.CreateService(service.TypeRecipe, service.ServiceParams{
		Ingredients:         req.Ingredients,
		DietaryRestrictions: req.DietaryRestrictions,
		Style:               req.Style,
		MealType:            req.Types,
		Difficulty:          req.Difficulty,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	result, err := svc.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
