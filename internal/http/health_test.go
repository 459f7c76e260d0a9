package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/lending/internal/database"
	"github.com/mrlokans/lending/internal/demo"
	"github.com/mrlokans/lending/internal/lending"
)

func getHealth(t *testing.T, controller *HealthController) (*httptest.ResponseRecorder, HealthResponse) {
	t.Helper()
	router := gin.New()
	router.GET("/health", controller.Status)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	var response HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

func TestHealthController_Status(t *testing.T) {
	t.Run("healthy with library counters", func(t *testing.T) {
		db, err := database.NewQuietDatabase(database.InMemoryPath)
		require.NoError(t, err)
		defer db.Close()

		lib := lending.NewLibrary(nil)
		book, err := lending.NewBook("Solaris", "Stanisław Lem", 1961, 2, "")
		require.NoError(t, err)
		patron := lending.NewPatron("Ada", "Lovelace", "ada@example.com")
		lib.AddBook(book)
		lib.RegisterPatron(patron)
		_, err = lib.Lend(patron.ID, book.ID)
		require.NoError(t, err)

		w, response := getHealth(t, NewHealthController(db, lib, "1.0.0"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "1.0.0", response.Version)
		assert.Equal(t, "ok", response.Checks["database"])
		assert.NotEmpty(t, response.Time)
		require.NotNil(t, response.Library)
		assert.Equal(t, LibraryStats{Books: 1, Copies: 1, Patrons: 1, ActiveLoans: 1}, *response.Library)
	})

	t.Run("unhealthy when database is closed", func(t *testing.T) {
		db, err := database.NewQuietDatabase(database.InMemoryPath)
		require.NoError(t, err)
		require.NoError(t, db.Close())

		w, response := getHealth(t, NewHealthController(db, nil, "1.0.0"))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Contains(t, response.Checks["database"], "error")
		assert.Nil(t, response.Library)
	})

	t.Run("reports missing database", func(t *testing.T) {
		w, response := getHealth(t, NewHealthController(nil, nil, ""))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "not configured", response.Checks["database"])
		assert.False(t, response.DemoMode)
	})

	t.Run("reports demo mode from context", func(t *testing.T) {
		controller := NewHealthController(nil, nil, "")
		router := gin.New()
		router.Use(demo.NewMiddleware(true).InjectContext())
		router.GET("/health", controller.Status)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/health", nil)
		router.ServeHTTP(w, req)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.DemoMode)
	})
}
