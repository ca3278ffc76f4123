package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pantrychef/internal/apperr"
	"pantrychef/internal/command"
	"pantrychef/internal/models"
	"pantrychef/internal/store"
)

// PantryHandler translates pantry HTTP requests into commands.
type PantryHandler struct {
	store  store.PantryStore
	logger *zap.Logger
}

// NewPantryHandler creates a new PantryHandler.
func NewPantryHandler(s store.PantryStore, logger *zap.Logger) *PantryHandler {
	return &PantryHandler{store: s, logger: logger}
}

// RegisterRoutes registers the pantry routes.
func (h *PantryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/pantryNames", h.GetPantryNames)
	router.GET("/pantries", h.GetAllPantries)
	router.GET("/pantries/:pantryName", h.GetIngredients)
	router.DELETE("/pantries/:pantryName", h.DeletePantry)
	router.DELETE("/pantries/:pantryName/ingredients/:ingredientName", h.DeleteIngredient)
	router.POST("/create_pantry", h.CreatePantry)
	router.POST("/store_ingredient", h.StoreIngredient)
	router.GET("/current_pantry", h.GetCurrentPantry)
	router.POST("/current_pantry", h.SetCurrentPantry)
}

// GetPantryNames handles GET /api/pantryNames.
func (h *PantryHandler) GetPantryNames(c *gin.Context) {
	names, err := command.NewGetPantryNames(h.store).Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, names)
}

// GetAllPantries handles GET /api/pantries.
func (h *PantryHandler) GetAllPantries(c *gin.Context) {
	pantries, err := command.NewGetAllPantries(h.store).Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if pantries == nil {
		pantries = []models.Pantry{}
	}
	c.JSON(http.StatusOK, pantries)
}

// GetIngredients handles GET /api/pantries/:pantryName.
func (h *PantryHandler) GetIngredients(c *gin.Context) {
	cmd := command.NewGetIngredients(h.store, c.Param("pantryName"))
	ingredients, err := cmd.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if ingredients == nil {
		ingredients = []models.Ingredient{}
	}
	c.JSON(http.StatusOK, ingredients)
}

// DeletePantry handles DELETE /api/pantries/:pantryName.
func (h *PantryHandler) DeletePantry(c *gin.Context) {
	cmd := command.NewDeletePantry(h.store, c.Param("pantryName"))
	name, err := cmd.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Pantry '%s' deleted successfully.", name)})
}

// DeleteIngredient handles DELETE /api/pantries/:pantryName/ingredients/:ingredientName.
func (h *PantryHandler) DeleteIngredient(c *gin.Context) {
	cmd := command.NewDeleteIngredient(h.store, c.Param("pantryName"), c.Param("ingredientName"))
	name, err := cmd.Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Ingredient '%s' deleted successfully.", name)})
}

// CreatePantry handles POST /api/create_pantry.
func (h *PantryHandler) CreatePantry(c *gin.Context) {
	var req struct {
		PantryName string `json:"pantryName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperr.InvalidArgumentf("pantry name is required"))
		return
	}

	if _, err := command.NewCreatePantry(h.store, req.PantryName).Execute(c.Request.Context()); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pantry created successfully."})
}

// StoreIngredient handles POST /api/store_ingredient.
func (h *PantryHandler) StoreIngredient(c *gin.Context) {
	var req struct {
		PantryName string `json:"pantryName"`
		Name       string `json:"name"`
		Category   string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperr.InvalidArgumentf("pantryName, name and category are required"))
		return
	}
	if req.PantryName == "" || req.Name == "" || req.Category == "" {
		respondError(c, h.logger, apperr.InvalidArgumentf("pantryName, name and category are required"))
		return
	}

	ingredient := models.Ingredient{Name: req.Name, Category: req.Category}
	cmd := command.NewAddIngredient(h.store, req.PantryName, ingredient)
	if _, err := cmd.Execute(c.Request.Context()); err != nil {
		// The external contract reports a missing pantry on this route as
		// invalid input, not as 404.
		if errors.Is(err, apperr.ErrNotFound) {
			respondError(c, h.logger, apperr.InvalidArgumentf("%s", err.Error()))
			return
		}
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ingredient stored successfully."})
}

// GetCurrentPantry handles GET /api/current_pantry.
func (h *PantryHandler) GetCurrentPantry(c *gin.Context) {
	current, err := command.NewRetrieveCurrentPantry(h.store).Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, current)
}

// SetCurrentPantry handles POST /api/current_pantry.
func (h *PantryHandler) SetCurrentPantry(c *gin.Context) {
	var req struct {
		PantryName string `json:"pantryName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, apperr.InvalidArgumentf("pantry name is required"))
		return
	}

	pantry, err := command.NewUpdateCurrentPantry(h.store, req.PantryName).Execute(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("'%s' is now the current pantry.", pantry.Name)})
}
