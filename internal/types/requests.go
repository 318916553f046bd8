package types

// SearchRecipesRequest is bound from the search query string
type SearchRecipesRequest struct {
	SearchTerm string `form:"searchTerm" binding:"required"`
	Page       int    `form:"page" binding:"required,min=1"`
}

// FavouriteRecipeRequest is the body of the add and remove favourite calls
type FavouriteRecipeRequest struct {
	RecipeID RecipeID `json:"recipeId" binding:"required"`
}
