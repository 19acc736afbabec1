package repository

import (
	"github.com/windoze95/receitas-api/internal/logger"
	"github.com/windoze95/receitas-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserRecipeRepository stores recipes submitted by users.
type UserRecipeRepository struct {
	DB *gorm.DB
}

// NewUserRecipeRepository creates a new UserRecipeRepository.
func NewUserRecipeRepository(db *gorm.DB) *UserRecipeRepository {
	return &UserRecipeRepository{DB: db}
}

// CreateUserRecipe inserts a user recipe and fills in its ID.
func (r *UserRecipeRepository) CreateUserRecipe(recipe *models.UserRecipe) error {
	if err := r.DB.Create(recipe).Error; err != nil {
		logger.Get().Error("failed to create user recipe", zap.Uint("user_id", recipe.UserID), zap.Error(err))
		return err
	}
	return nil
}

// GetUserRecipes returns one page of the user's recipes, newest first.
func (r *UserRecipeRepository) GetUserRecipes(userID uint, offset, limit int) ([]models.UserRecipe, int64, error) {
	total, err := r.CountUserRecipes(userID)
	if err != nil {
		return nil, 0, err
	}

	recipes := []models.UserRecipe{}
	err = r.DB.Where("user_id = ?", userID).
		Order("data_criacao DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, err
	}

	return recipes, total, nil
}

// GetUserRecipeByID retrieves a recipe only if it belongs to userID.
func (r *UserRecipeRepository) GetUserRecipeByID(userID, recipeID uint) (*models.UserRecipe, error) {
	var recipe models.UserRecipe
	err := r.DB.Where("id = ? AND user_id = ?", recipeID, userID).First(&recipe).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, NotFoundError{message: "user recipe not found"}
		}
		return nil, err
	}

	return &recipe, nil
}

// CountUserRecipes returns how many recipes the user has submitted.
func (r *UserRecipeRepository) CountUserRecipes(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.UserRecipe{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
