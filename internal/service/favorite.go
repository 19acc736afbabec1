package service

import (
	"github.com/windoze95/receitas-api/internal/config"
	"github.com/windoze95/receitas-api/internal/models"
	"github.com/windoze95/receitas-api/internal/repository"
	"github.com/windoze95/receitas-api/internal/search"
)

// FavoriteService manages a user's favorite recipes.
type FavoriteService struct {
	Cfg        *config.Config
	Repo       repository.FavoriteRepo
	RecipeRepo repository.RecipeRepo
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(cfg *config.Config, repo repository.FavoriteRepo, recipeRepo repository.RecipeRepo) *FavoriteService {
	return &FavoriteService{
		Cfg:        cfg,
		Repo:       repo,
		RecipeRepo: recipeRepo,
	}
}

// ToggleFavorite flips the favorite state of a recipe for userID and
// returns the new state.
func (s *FavoriteService) ToggleFavorite(userID, recipeID uint) (bool, error) {
	exists, err := s.RecipeRepo.RecipeExists(recipeID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, repository.NewNotFoundError("recipe not found")
	}

	return s.Repo.ToggleFavorite(userID, recipeID)
}

// ListFavorites returns one page of favorites, newest first. Pages use the
// same size and clamping as search results.
func (s *FavoriteService) ListFavorites(userID uint, page int) (*ListPage[models.FavoriteRecipe], error) {
	page = search.ClampPage(page)
	offset := search.Offset(page)

	items, total, err := s.Repo.GetFavorites(userID, offset, search.PageSize)
	if err != nil {
		return nil, err
	}

	return &ListPage[models.FavoriteRecipe]{
		Number:  page,
		Total:   int(total),
		HasMore: search.HasMore(offset, int(total)),
		Items:   items,
	}, nil
}
