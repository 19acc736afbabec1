package repository

import (
	"context"

	"github.com/windoze95/receitas-api/internal/models"
	"github.com/windoze95/receitas-api/internal/search"
)

// RecipeRepo is the interface for recipe repository operations.
type RecipeRepo interface {
	search.RecipeCorpusReader
	GetRecipeByID(recipeID uint) (*models.Recipe, error)
	GetRandomRecipe() (*models.Recipe, error)
	RecipeExists(recipeID uint) (bool, error)
	CountRecipes() (int64, error)
	CreateRecipes(ctx context.Context, recipes []models.Recipe) error
}

// UserRepo is the interface for user repository operations.
type UserRepo interface {
	CreateUser(user *models.User) (*models.User, error)
	GetUserByID(userID uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
}

// FavoriteRepo is the interface for favorite repository operations.
type FavoriteRepo interface {
	ToggleFavorite(userID, recipeID uint) (bool, error)
	GetFavorites(userID uint, offset, limit int) ([]models.FavoriteRecipe, int64, error)
	CountFavorites(userID uint) (int64, error)
}

// UserRecipeRepo is the interface for user-submitted recipe operations.
type UserRecipeRepo interface {
	CreateUserRecipe(recipe *models.UserRecipe) error
	GetUserRecipes(userID uint, offset, limit int) ([]models.UserRecipe, int64, error)
	GetUserRecipeByID(userID, recipeID uint) (*models.UserRecipe, error)
	CountUserRecipes(userID uint) (int64, error)
}
