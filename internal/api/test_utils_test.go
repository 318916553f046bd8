package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/recipe-finder/backend/internal/mocks"
	"github.com/pageza/recipe-finder/backend/internal/testhelpers"
)

// SetupTestRouter creates a router backed by a mocked recipe service and an
// in-memory database.
func SetupTestRouter(t *testing.T) (*gin.Engine, *mocks.MockRecipeService, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupSQLiteDB(t)
	recipeService := new(mocks.MockRecipeService)

	router := gin.New()
	router.Use(gin.Recovery())
	RegisterRoutes(router, db, recipeService)

	return router, recipeService, db
}

// PerformRequest is a helper function to make HTTP requests in tests.
// A string body is sent verbatim as JSON.
func PerformRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	router.ServeHTTP(w, req)
	return w
}
