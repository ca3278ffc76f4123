package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pantrychef/config"
	"pantrychef/internal/api"
	"pantrychef/internal/database"
	"pantrychef/internal/router"
	"pantrychef/internal/service"
	"pantrychef/internal/store"
)

// newUpstream serves a canned chat-completions reply whose message
// content is the given payload.
func newUpstream(t *testing.T, payload string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := json.Marshal(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": payload}},
			},
		})
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setupRouter(t *testing.T, upstreamURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))

	logger := zap.NewNop()
	pantryHandler := api.NewPantryHandler(store.NewGormStore(db), logger)

	llm, err := service.NewLLMClient(&config.Config{
		OpenAIAPIKey: "test-api-key",
		OpenAIAPIURL: upstreamURL,
	})
	require.NoError(t, err)
	llmHandler := api.NewLLMHandler(service.NewServiceFactory(llm, nil), logger)

	return router.Setup(pantryHandler, llmHandler, logger)
}

func performRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCurrentPantrySeeded(t *testing.T) {
	r := setupRouter(t, "http://unused")

	w := performRequest(r, "GET", "/api/current_pantry", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		PantryName  string `json:"pantryName"`
		Ingredients []struct {
			Name     string `json:"name"`
			Category string `json:"category"`
		} `json:"ingredients"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Default Pantry", resp.PantryName)
	require.Len(t, resp.Ingredients, 3)
	assert.Equal(t, "Salt", resp.Ingredients[0].Name)
	assert.Equal(t, "Spices", resp.Ingredients[0].Category)
}

func TestCreatePantry(t *testing.T) {
	r := setupRouter(t, "http://unused")

	w := performRequest(r, "POST", "/api/create_pantry", map[string]any{"pantryName": "New Pantry"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, "GET", "/api/pantries/New%20Pantry", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	w = performRequest(r, "GET", "/api/pantryNames", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var names []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &names))
	assert.Equal(t, []string{"Default Pantry", "New Pantry"}, names)

	t.Run("duplicate name", func(t *testing.T) {
		w := performRequest(r, "POST", "/api/create_pantry", map[string]any{"pantryName": "New Pantry"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		w := performRequest(r, "POST", "/api/create_pantry", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetIngredientsUnknownPantry(t *testing.T) {
	r := setupRouter(t, "http://unused")

	w := performRequest(r, "GET", "/api/pantries/Nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStoreIngredient(t *testing.T) {
	r := setupRouter(t, "http://unused")

	w := performRequest(r, "POST", "/api/store_ingredient", map[string]any{
		"pantryName": "Default Pantry", "name": "Spaghetti", "category": "Pasta",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, "GET", "/api/pantries/Default%20Pantry", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ingredients []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ingredients))
	require.Len(t, ingredients, 4)
	assert.Equal(t, "Spaghetti", ingredients[3]["name"])

	t.Run("duplicate is rejected, not inserted", func(t *testing.T) {
		w := performRequest(r, "POST", "/api/store_ingredient", map[string]any{
			"pantryName": "Default Pantry", "name": "spaghetti", "category": "Pasta",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = performRequest(r, "GET", "/api/pantries/Default%20Pantry", nil)
		var after []map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
		assert.Len(t, after, 4)
	})

	t.Run("missing field", func(t *testing.T) {
		w := performRequest(r, "POST", "/api/store_ingredient", map[string]any{
			"pantryName": "Default Pantry", "name": "Oats",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown pantry", func(t *testing.T) {
		w := performRequest(r, "POST", "/api/store_ingredient", map[string]any{
			"pantryName": "Nope", "name": "Oats", "category": "Grains",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteIngredient(t *testing.T) {
	r := setupRouter(t, "http://unused")

	w := performRequest(r, "DELETE", "/api/pantries/Default%20Pantry/ingredients/salt", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, "GET", "/api/pantries/Default%20Pantry", nil)
	var ingredients []map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ingredients))
	assert.Len(t, ingredients, 2)

	t.Run("unknown ingredient", func(t *testing.T) {
		w := performRequest(r, "DELETE", "/api/pantries/Default%20Pantry/ingredients/salt", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown pantry", func(t *testing.T) {
		w := performRequest(r, "DELETE", "/api/pantries/Nope/ingredients/salt", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeletePantry(t *testing.T) {
	r := setupRouter(t, "http://unused")

	w := performRequest(r, "DELETE", "/api/pantries/Default%20Pantry", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, "GET", "/api/pantries", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	w = performRequest(r, "DELETE", "/api/pantries/Default%20Pantry", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetCurrentPantry(t *testing.T) {
	r := setupRouter(t, "http://unused")
	performRequest(r, "POST", "/api/create_pantry", map[string]any{"pantryName": "New Pantry"})

	w := performRequest(r, "POST", "/api/current_pantry", map[string]any{"pantryName": "New Pantry"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, "GET", "/api/current_pantry", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "New Pantry", resp["pantryName"])

	t.Run("unknown pantry keeps the previous current", func(t *testing.T) {
		w := performRequest(r, "POST", "/api/current_pantry", map[string]any{"pantryName": "Nope"})
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = performRequest(r, "GET", "/api/current_pantry", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "New Pantry", resp["pantryName"])
	})

	t.Run("missing name", func(t *testing.T) {
		w := performRequest(r, "POST", "/api/current_pantry", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("exactly one pantry is current", func(t *testing.T) {
		w := performRequest(r, "GET", "/api/pantries", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var pantries []struct {
			PantryName string `json:"pantryName"`
			IsCurrent  bool   `json:"isCurrent"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pantries))
		flagged := 0
		for _, p := range pantries {
			if p.IsCurrent {
				flagged++
				assert.Equal(t, "New Pantry", p.PantryName)
			}
		}
		assert.Equal(t, 1, flagged)
	})
}

func TestNormalizeIngredient(t *testing.T) {
	upstream := newUpstream(t, `{
		"normalizedName": "Tomato",
		"category": "Vegetables",
		"similarIngredients": ["Cherry Tomato", "Tomatillo"]
	}`)
	r := setupRouter(t, upstream.URL)

	w := performRequest(r, "GET", "/api/normalizeIngredient/tomato", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		NormalizedName     string   `json:"normalizedName"`
		Category           string   `json:"category"`
		SimilarIngredients []string `json:"similarIngredients"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.NormalizedName)
	assert.NotEmpty(t, resp.Category)
	assert.GreaterOrEqual(t, len(resp.SimilarIngredients), 2)
	assert.LessOrEqual(t, len(resp.SimilarIngredients), 3)

	t.Run("blank name", func(t *testing.T) {
		w := performRequest(r, "GET", "/api/normalizeIngredient/%20", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNormalizeIngredientUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	t.Cleanup(upstream.Close)
	r := setupRouter(t, upstream.URL)

	w := performRequest(r, "GET", "/api/normalizeIngredient/tomato", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateRecipe(t *testing.T) {
	input := []string{"tomato", "pasta"}
	upstream := newUpstream(t, `{
		"name": "Tomato Pasta",
		"availableIngredients": ["tomato", "pasta"],
		"missingIngredients": ["basil", "parmesan"],
		"instructions": ["Boil", "Simmer", "Combine"],
		"prepTime": "10 minutes",
		"cookingTime": "20 minutes",
		"style": "Italian",
		"types": "dinner",
		"difficulty": "easy",
		"servings": "2"
	}`)
	r := setupRouter(t, upstream.URL)

	w := performRequest(r, "POST", "/api/generate-recipe", map[string]any{
		"ingredients": input,
		"difficulty":  "easy",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var recipe struct {
		Name                 string   `json:"name"`
		AvailableIngredients []string `json:"availableIngredients"`
		MissingIngredients   []string `json:"missingIngredients"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.NotEmpty(t, recipe.Name)

	// Every input ingredient referenced by the recipe must land in
	// availableIngredients, never in missingIngredients.
	inputSet := map[string]bool{}
	for _, ing := range input {
		inputSet[ing] = true
	}
	for _, ing := range recipe.AvailableIngredients {
		assert.True(t, inputSet[ing], fmt.Sprintf("%q not part of the input list", ing))
	}
	for _, ing := range recipe.MissingIngredients {
		assert.False(t, inputSet[ing], fmt.Sprintf("%q should not be missing", ing))
	}
}

func TestGenerateRecipeInvalidInput(t *testing.T) {
	r := setupRouter(t, "http://unused")

	t.Run("empty body", func(t *testing.T) {
		w := performRequest(r, "POST", "/api/generate-recipe", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ingredients as string", func(t *testing.T) {
		w := performRequest(r, "POST", "/api/generate-recipe", map[string]any{"ingredients": "not an array"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestContentTypeEnforcement(t *testing.T) {
	r := setupRouter(t, "http://unused")

	t.Run("non-JSON content type", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/generate-recipe", bytes.NewBufferString("plain text"))
		req.Header.Set("Content-Type", "text/plain")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		w := performRequest(r, "POST", "/api/generate-recipe", `{"invalid json`)
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})
}

func TestErrorRoutes(t *testing.T) {
	r := setupRouter(t, "http://unused")

	t.Run("unknown path", func(t *testing.T) {
		w := performRequest(r, "GET", "/undefined-route", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Not Found", resp["error"])
	})

	t.Run("disallowed method", func(t *testing.T) {
		w := performRequest(r, "PUT", "/api/generate-recipe", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Method Not Allowed", resp["error"])
	})
}

func TestHealthz(t *testing.T) {
	r := setupRouter(t, "http://unused")

	w := performRequest(r, "GET", "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
