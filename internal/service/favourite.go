package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/pageza/recipe-finder/backend/internal/model"
)

const maxRecipeIDLength = 64

// FavouriteService persists favourite recipe ids
type FavouriteService struct {
	db *gorm.DB
}

// NewFavouriteService creates a new FavouriteService instance
func NewFavouriteService(db *gorm.DB) *FavouriteService {
	return &FavouriteService{db: db}
}

// AddFavourite inserts a favourite row. A second insert of the same id fails
// with ErrFavouriteExists and leaves the table unchanged.
func (s *FavouriteService) AddFavourite(ctx context.Context, recipeID string) (*model.FavouriteRecipe, error) {
	recipeID, err := normalizeRecipeID(recipeID)
	if err != nil {
		return nil, err
	}

	fav := &model.FavouriteRecipe{RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(fav).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrFavouriteExists
		}
		return nil, err
	}
	return fav, nil
}

// ListFavourites returns every favourite row
func (s *FavouriteService) ListFavourites(ctx context.Context) ([]model.FavouriteRecipe, error) {
	var favourites []model.FavouriteRecipe
	if err := s.db.WithContext(ctx).Order("recipe_id").Find(&favourites).Error; err != nil {
		return nil, err
	}
	return favourites, nil
}

// RemoveFavourite deletes a favourite row, returning ErrFavouriteNotFound if none matched
func (s *FavouriteService) RemoveFavourite(ctx context.Context, recipeID string) error {
	recipeID, err := normalizeRecipeID(recipeID)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&model.FavouriteRecipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavouriteNotFound
	}
	return nil
}

func normalizeRecipeID(recipeID string) (string, error) {
	recipeID = strings.TrimSpace(recipeID)
	if recipeID == "" || len(recipeID) > maxRecipeIDLength {
		return "", ErrInvalidRecipeID
	}
	return recipeID, nil
}

// isDuplicateKey covers drivers opened without TranslateError as well.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "sqlstate 23505")
}
