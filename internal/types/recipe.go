package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RecipeID identifies a recipe at the upstream provider.
// The provider sends numeric ids; clients may send either form.
type RecipeID string

// UnmarshalJSON accepts a JSON string or an integer.
func (id *RecipeID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RecipeID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("recipe id must be a string or number: %w", err)
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return fmt.Errorf("recipe id must be an integer: %s", n)
	}
	*id = RecipeID(n.String())
	return nil
}

func (id RecipeID) String() string {
	return string(id)
}

// Recipe is a search hit or bulk-information entry from the upstream provider.
type Recipe struct {
	ID        RecipeID `json:"id"`
	Title     string   `json:"title"`
	Image     string   `json:"image"`
	ImageType string   `json:"imageType,omitempty"`
}

// SearchResponse is one page of upstream search results.
type SearchResponse struct {
	Results      []Recipe `json:"results"`
	Offset       int      `json:"offset"`
	Number       int      `json:"number"`
	TotalResults int      `json:"totalResults"`
}

// RecipeSummary holds the HTML summary of a recipe, rendered as-is by the client.
type RecipeSummary struct {
	ID      RecipeID `json:"id"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
}

// FavouritesResponse wraps the enriched favourite recipes.
type FavouritesResponse struct {
	Results []Recipe `json:"results"`
}
