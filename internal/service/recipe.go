package service

import (
	"github.com/windoze95/receitas-api/internal/config"
	"github.com/windoze95/receitas-api/internal/models"
	"github.com/windoze95/receitas-api/internal/repository"
)

// RecipeService is the business logic layer for reading scraped recipes.
type RecipeService struct {
	Cfg  *config.Config
	Repo repository.RecipeRepo
}

// RecipeDetail is the full recipe as returned to clients.
type RecipeDetail struct {
	ID             uint     `json:"id"`
	Title          string   `json:"titulo"`
	Rating         string   `json:"nota"`
	ReviewCount    string   `json:"avaliacoes"`
	Author         string   `json:"autor"`
	PrepTime       string   `json:"tempo_preparo"`
	Link           string   `json:"link"`
	Image          string   `json:"imagem"`
	Description    string   `json:"descricao"`
	AdditionalInfo string   `json:"informacoes_adicionais"`
	Ingredients    []string `json:"ingredientes"`
	Steps          []string `json:"modo_preparo"`
}

// NewRecipeService is the constructor function for initializing a new RecipeService.
func NewRecipeService(cfg *config.Config, repo repository.RecipeRepo) *RecipeService {
	return &RecipeService{
		Cfg:  cfg,
		Repo: repo,
	}
}

// ToRecipeDetail converts a Recipe with loaded associations to a RecipeDetail.
func ToRecipeDetail(recipe *models.Recipe) *RecipeDetail {
	return &RecipeDetail{
		ID:             recipe.ID,
		Title:          recipe.Title,
		Rating:         recipe.Rating,
		ReviewCount:    recipe.ReviewCount,
		Author:         recipe.Author,
		PrepTime:       recipe.PrepTime,
		Link:           recipe.Link,
		Image:          recipe.Image,
		Description:    recipe.Description,
		AdditionalInfo: recipe.AdditionalInfo,
		Ingredients:    recipe.IngredientItems(),
		Steps:          recipe.StepTexts(),
	}
}

// GetRecipeByID retrieves a recipe with its ingredients and steps.
func (s *RecipeService) GetRecipeByID(recipeID uint) (*RecipeDetail, error) {
	recipe, err := s.Repo.GetRecipeByID(recipeID)
	if err != nil {
		return nil, err
	}
	return ToRecipeDetail(recipe), nil
}

// GetSurpriseRecipe picks a random recipe. An empty corpus yields a
// repository.NotFoundError.
func (s *RecipeService) GetSurpriseRecipe() (*RecipeDetail, error) {
	recipe, err := s.Repo.GetRandomRecipe()
	if err != nil {
		return nil, err
	}
	return ToRecipeDetail(recipe), nil
}
