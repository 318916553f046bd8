package model

// FavouriteRecipe marks an upstream recipe as a favourite.
// The recipe id is the primary key, so each recipe appears at most once.
type FavouriteRecipe struct {
	RecipeID string `gorm:"column:recipe_id;primaryKey;size:64" json:"recipeId"`
}

func (FavouriteRecipe) TableName() string {
	return "favourite_recipes"
}
