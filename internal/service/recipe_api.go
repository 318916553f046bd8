package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pageza/recipe-finder/backend/internal/logging"
	"github.com/pageza/recipe-finder/backend/internal/types"
)

const maxErrorBody = 512

var (
	recipeAPIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_api_requests_total",
			Help: "Total number of calls made to the upstream recipe API",
		},
		[]string{"operation", "status"},
	)

	recipeAPIDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipe_api_request_duration_seconds",
			Help:    "Upstream recipe API latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// RecipeAPIClient talks to a Spoonacular-compatible recipe API
type RecipeAPIClient struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
}

// NewRecipeAPIClient creates a new RecipeAPIClient instance
func NewRecipeAPIClient(baseURL, apiKey string, pageSize int, timeout time.Duration) *RecipeAPIClient {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &RecipeAPIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SearchRecipes runs a keyword search. Pages start at 1 and never overlap.
// Pages whose offset would not fit in an int fail with ErrPageOutOfRange.
func (c *RecipeAPIClient) SearchRecipes(ctx context.Context, query string, page int) (*types.SearchResponse, error) {
	if page < 1 {
		page = 1
	}
	if page-1 > math.MaxInt/c.pageSize {
		return nil, ErrPageOutOfRange
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("number", strconv.Itoa(c.pageSize))
	params.Set("offset", strconv.Itoa((page-1)*c.pageSize))

	var resp types.SearchResponse
	if err := c.get(ctx, "search", "/recipes/complexSearch", params, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		resp.Results = []types.Recipe{}
	}
	return &resp, nil
}

// GetRecipeSummary fetches the HTML summary of a single recipe
func (c *RecipeAPIClient) GetRecipeSummary(ctx context.Context, recipeID string) (*types.RecipeSummary, error) {
	recipeID, err := normalizeRecipeID(recipeID)
	if err != nil {
		return nil, err
	}
	// The id becomes a path segment; dot segments would escape /recipes.
	if strings.ContainsAny(recipeID, "./\\") {
		return nil, ErrInvalidRecipeID
	}

	var summary types.RecipeSummary
	path := "/recipes/" + url.PathEscape(recipeID) + "/summary"
	if err := c.get(ctx, "summary", path, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetRecipesBulk fetches full recipe objects for all ids in one call
func (c *RecipeAPIClient) GetRecipesBulk(ctx context.Context, recipeIDs []string) ([]types.Recipe, error) {
	if len(recipeIDs) == 0 {
		return []types.Recipe{}, nil
	}
	params := url.Values{}
	params.Set("ids", strings.Join(recipeIDs, ","))

	var recipes []types.Recipe
	if err := c.get(ctx, "bulk", "/recipes/informationBulk", params, &recipes); err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []types.Recipe{}
	}
	return recipes, nil
}

func (c *RecipeAPIClient) get(ctx context.Context, op, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return &UpstreamError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	recipeAPIDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		recipeAPIRequests.WithLabelValues(op, "error").Inc()
		return &UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	recipeAPIRequests.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		slog.WarnContext(ctx, "recipe api returned an error",
			"requestID", logging.RequestIDFromContext(ctx),
			"operation", op,
			"path", path,
			"status", resp.StatusCode)
		return &UpstreamError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
