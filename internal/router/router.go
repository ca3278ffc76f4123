package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pantrychef/internal/api"
	"pantrychef/internal/middleware"
)

// Setup configures the application routes.
func Setup(pantryHandler *api.PantryHandler, llmHandler *api.LLMHandler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.EnforceJSON())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")
	pantryHandler.RegisterRoutes(apiGroup)
	llmHandler.RegisterRoutes(apiGroup)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
	})

	return router
}
