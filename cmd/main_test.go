package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/config"
	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	db := setupDatabase(&config.Config{DatabaseURL: "sqlite://:memory:"})
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return setupRouter(db)
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestIndexPage(t *testing.T) {
	router := setupTestRouter(t)

	w := get(router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, indexPage, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestHealthCheck(t *testing.T) {
	router := setupTestRouter(t)

	w := get(router, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestSeededRestaurants(t *testing.T) {
	router := setupTestRouter(t)

	w := get(router, "/restaurants")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Karen's Pizza Shack")
	assert.Contains(t, w.Body.String(), "Kiki's Pizza")
}

func TestSwaggerDocs(t *testing.T) {
	router := setupTestRouter(t)

	w := get(router, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/restaurant_pizzas")
	assert.Contains(t, w.Body.String(), "models.CreateRestaurantRequest")
	assert.Contains(t, w.Body.String(), "models.CreatePizzaRequest")
}

func TestLoadConfigLogsOnce(t *testing.T) {
	t.Setenv("DB_URI", "sqlite://:memory:")
	hook := test.NewGlobal()
	defer hook.Reset()

	conf := loadConfig()
	require.NotNil(t, conf)

	for _, entry := range hook.AllEntries() {
		assert.NotContains(t, entry.Message, "Configuration loaded")
	}
}
