package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/pageza/recipe-finder/backend/internal/types"
)

// RecipeAPIStub is an in-process stand-in for the upstream recipe API.
// It serves complexSearch, informationBulk and summary over a fixed catalogue.
type RecipeAPIStub struct {
	*httptest.Server

	mu      sync.Mutex
	apiKey  string
	recipes []types.Recipe
	calls   map[string]int
}

// NewRecipeAPIStub starts a stub serving the given catalogue. The server is
// closed when the test ends.
func NewRecipeAPIStub(t *testing.T, apiKey string, recipes ...types.Recipe) *RecipeAPIStub {
	t.Helper()

	stub := &RecipeAPIStub{
		apiKey:  apiKey,
		recipes: recipes,
		calls:   map[string]int{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /recipes/complexSearch", stub.search)
	mux.HandleFunc("GET /recipes/informationBulk", stub.bulk)
	mux.HandleFunc("GET /recipes/{id}/summary", stub.summary)

	stub.Server = httptest.NewServer(stub.authorize(mux))
	t.Cleanup(stub.Close)
	return stub
}

// Calls reports how many requests reached the named operation:
// "search", "bulk" or "summary".
func (s *RecipeAPIStub) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// SetAPIKey changes the key the stub accepts.
func (s *RecipeAPIStub) SetAPIKey(key string) {
	s.mu.Lock()
	s.apiKey = key
	s.mu.Unlock()
}

func (s *RecipeAPIStub) record(op string) {
	s.mu.Lock()
	s.calls[op]++
	s.mu.Unlock()
}

func (s *RecipeAPIStub) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		key := s.apiKey
		s.mu.Unlock()

		if r.URL.Query().Get("apiKey") != key {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"status":  "failure",
				"code":    http.StatusUnauthorized,
				"message": "You are not authorized. Please read https://spoonacular.com/food-api/docs#Authentication",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *RecipeAPIStub) search(w http.ResponseWriter, r *http.Request) {
	s.record("search")

	q := r.URL.Query()
	query := strings.ToLower(q.Get("query"))
	number, _ := strconv.Atoi(q.Get("number"))
	offset, err := strconv.Atoi(q.Get("offset"))
	if q.Get("offset") == "" {
		offset, err = 0, nil
	}
	if err != nil || offset < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"status": "failure", "code": 400, "message": "offset must be a non-negative integer"})
		return
	}
	if number <= 0 {
		number = 10
	}

	var matches []types.Recipe
	for _, recipe := range s.recipes {
		if strings.Contains(strings.ToLower(recipe.Title), query) {
			matches = append(matches, recipe)
		}
	}

	page := []types.Recipe{}
	if offset < len(matches) {
		end := min(number, len(matches)-offset) + offset
		page = matches[offset:end]
	}

	writeJSON(w, http.StatusOK, types.SearchResponse{
		Results:      page,
		Offset:       offset,
		Number:       number,
		TotalResults: len(matches),
	})
}

func (s *RecipeAPIStub) bulk(w http.ResponseWriter, r *http.Request) {
	s.record("bulk")

	out := []types.Recipe{}
	for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
		if recipe, ok := s.find(id); ok {
			out = append(out, recipe)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *RecipeAPIStub) summary(w http.ResponseWriter, r *http.Request) {
	s.record("summary")

	recipe, ok := s.find(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"status":  "failure",
			"code":    http.StatusNotFound,
			"message": "A recipe with the id " + r.PathValue("id") + " does not exist.",
		})
		return
	}

	writeJSON(w, http.StatusOK, types.RecipeSummary{
		ID:      recipe.ID,
		Title:   recipe.Title,
		Summary: "<b>" + recipe.Title + "</b> is a tasty dish.",
	})
}

func (s *RecipeAPIStub) find(id string) (types.Recipe, bool) {
	id = strings.TrimSpace(id)
	for _, recipe := range s.recipes {
		if recipe.ID.String() == id {
			return recipe, true
		}
	}
	return types.Recipe{}, false
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// SampleRecipes is a small catalogue shared by tests.
func SampleRecipes() []types.Recipe {
	return []types.Recipe{
		{ID: "52772", Title: "Teriyaki Chicken Casserole", Image: "https://img.example/52772.jpg", ImageType: "jpg"},
		{ID: "716429", Title: "Pasta with Garlic, Scallions, Cauliflower", Image: "https://img.example/716429.jpg", ImageType: "jpg"},
		{ID: "715538", Title: "Bruschetta Style Pork and Pasta", Image: "https://img.example/715538.jpg", ImageType: "jpg"},
		{ID: "782585", Title: "Cannellini Bean and Asparagus Salad", Image: "https://img.example/782585.jpg", ImageType: "jpg"},
		{ID: "716426", Title: "Cauliflower, Brown Rice, and Vegetable Fried Rice", Image: "https://img.example/716426.jpg", ImageType: "jpg"},
		{ID: "715594", Title: "Homemade Garlic and Basil French Fries", Image: "https://img.example/715594.jpg", ImageType: "jpg"},
		{ID: "715497", Title: "Berry Banana Breakfast Smoothie", Image: "https://img.example/715497.jpg", ImageType: "jpg"},
		{ID: "644387", Title: "Garlic Pasta Primavera", Image: "https://img.example/644387.jpg", ImageType: "jpg"},
	}
}
