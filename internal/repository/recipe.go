package repository

import (
	"context"
	"fmt"

	"github.com/windoze95/receitas-api/internal/logger"
	"github.com/windoze95/receitas-api/internal/models"
	"github.com/windoze95/receitas-api/internal/search"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecipeRepository is a repository for interacting with recipes.
type RecipeRepository struct {
	DB *gorm.DB
}

// NewRecipeRepository creates a new RecipeRepository.
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{DB: db}
}

// ReadCorpus loads every recipe with its ingredient lines, recipes by id
// and ingredients in insertion order. Ingredients are fetched in a single
// ordered scan instead of a preload so large corpora do not hit driver
// bind-variable limits.
func (r *RecipeRepository) ReadCorpus(ctx context.Context) ([]search.Recipe, error) {
	db := r.DB.WithContext(ctx)

	var recipes []models.Recipe
	if err := db.Order("id ASC").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}

	var ingredients []models.Ingredient
	if err := db.Order("recipe_id ASC, id ASC").Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("load ingredients: %w", err)
	}

	byRecipe := make(map[uint][]string, len(recipes))
	for _, ing := range ingredients {
		byRecipe[ing.RecipeID] = append(byRecipe[ing.RecipeID], ing.Item)
	}

	corpus := make([]search.Recipe, 0, len(recipes))
	for _, rec := range recipes {
		corpus = append(corpus, search.Recipe{
			ID:          rec.ID,
			Title:       rec.Title,
			Rating:      rec.Rating,
			ReviewCount: rec.ReviewCount,
			Author:      rec.Author,
			PrepTime:    rec.PrepTime,
			Link:        rec.Link,
			Image:       rec.Image,
			Ingredients: byRecipe[rec.ID],
		})
	}

	return corpus, nil
}

// GetRecipeByID retrieves a recipe with its ingredients and steps.
func (r *RecipeRepository) GetRecipeByID(recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe

	err := r.withDetails().
		Where("id = ?", recipeID).
		First(&recipe).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, NotFoundError{message: "recipe not found"}
		}
		logger.Get().Error("failed to retrieve recipe", zap.Uint("recipe_id", recipeID), zap.Error(err))
		return nil, err
	}

	return &recipe, nil
}

// GetRandomRecipe picks one recipe uniformly at random.
func (r *RecipeRepository) GetRandomRecipe() (*models.Recipe, error) {
	var recipe models.Recipe

	// RANDOM() is understood by both SQLite and Postgres.
	err := r.withDetails().
		Order("RANDOM()").
		Limit(1).
		Take(&recipe).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, NotFoundError{message: "no recipes available"}
		}
		logger.Get().Error("failed to retrieve random recipe", zap.Error(err))
		return nil, err
	}

	return &recipe, nil
}

// RecipeExists reports whether a recipe with the given id exists.
func (r *RecipeRepository) RecipeExists(recipeID uint) (bool, error) {
	var count int64
	if err := r.DB.Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountRecipes returns the corpus size.
func (r *RecipeRepository) CountRecipes() (int64, error) {
	var count int64
	err := r.DB.Model(&models.Recipe{}).Count(&count).Error
	return count, err
}

// CreateRecipes inserts recipes with their ingredients and steps in one
// transaction. Nothing is written if any insert fails.
func (r *RecipeRepository) CreateRecipes(ctx context.Context, recipes []models.Recipe) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range recipes {
			if err := tx.Create(&recipes[i]).Error; err != nil {
				return fmt.Errorf("insert recipe %q: %w", recipes[i].Title, err)
			}
		}
		return nil
	})
}

func (r *RecipeRepository) withDetails() *gorm.DB {
	return r.DB.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		})
}
