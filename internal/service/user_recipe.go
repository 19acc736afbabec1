package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/windoze95/receitas-api/internal/config"
	"github.com/windoze95/receitas-api/internal/models"
	"github.com/windoze95/receitas-api/internal/repository"
	"github.com/windoze95/receitas-api/internal/search"
)

const minTitleLength = 3

// UserRecipeService handles recipes submitted by users.
type UserRecipeService struct {
	Cfg  *config.Config
	Repo repository.UserRecipeRepo
}

// UserRecipeInput is the client payload for a new recipe.
type UserRecipeInput struct {
	Title       string   `json:"titulo"`
	Description string   `json:"descricao"`
	PrepTime    string   `json:"tempo_preparo"`
	Ingredients []string `json:"ingredientes"`
	Steps       []string `json:"modo_preparo"`
	Image       string   `json:"imagem"`
}

// UserRecipeResponse is a user recipe as returned to its owner. Listings
// leave the ingredient and step lists out.
type UserRecipeResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descricao"`
	PrepTime    string    `json:"tempo_preparo"`
	Image       string    `json:"imagem"`
	CreatedAt   time.Time `json:"data_criacao"`
	Ingredients []string  `json:"ingredientes,omitempty"`
	Steps       []string  `json:"modo_preparo,omitempty"`
}

// NewUserRecipeService creates a new UserRecipeService.
func NewUserRecipeService(cfg *config.Config, repo repository.UserRecipeRepo) *UserRecipeService {
	return &UserRecipeService{
		Cfg:  cfg,
		Repo: repo,
	}
}

// CreateUserRecipe validates input and stores it for userID.
func (s *UserRecipeService) CreateUserRecipe(userID uint, input UserRecipeInput) (*models.UserRecipe, error) {
	title := strings.TrimSpace(input.Title)
	if err := s.ValidateTitle(title); err != nil {
		return nil, err
	}

	ingredients := models.JoinLines(input.Ingredients)
	if ingredients == "" {
		return nil, ValidationError{Message: "Adicione pelo menos 1 ingrediente"}
	}
	steps := models.JoinLines(input.Steps)
	if steps == "" {
		return nil, ValidationError{Message: "Adicione pelo menos 1 passo no modo de preparo"}
	}

	recipe := &models.UserRecipe{
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		PrepTime:    strings.TrimSpace(input.PrepTime),
		Ingredients: ingredients,
		Steps:       steps,
		Image:       strings.TrimSpace(input.Image),
	}
	if err := s.Repo.CreateUserRecipe(recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

// ValidateTitle checks the minimum length and screens for profanity.
func (s *UserRecipeService) ValidateTitle(title string) error {
	if utf8.RuneCountInString(title) < minTitleLength {
		return ValidationError{Message: "Título deve ter pelo menos 3 caracteres"}
	}
	if isProfane(title) {
		return ValidationError{Message: "Título contém linguagem inapropriada"}
	}
	return nil
}

// ListUserRecipes returns one page of the user's recipes, newest first.
func (s *UserRecipeService) ListUserRecipes(userID uint, page int) (*ListPage[UserRecipeResponse], error) {
	page = search.ClampPage(page)
	offset := search.Offset(page)

	recipes, total, err := s.Repo.GetUserRecipes(userID, offset, search.PageSize)
	if err != nil {
		return nil, err
	}

	items := make([]UserRecipeResponse, 0, len(recipes))
	for i := range recipes {
		items = append(items, *toUserRecipeResponse(&recipes[i], false))
	}

	return &ListPage[UserRecipeResponse]{
		Number:  page,
		Total:   int(total),
		HasMore: search.HasMore(offset, int(total)),
		Items:   items,
	}, nil
}

// GetUserRecipe returns one of the user's own recipes with its lists split.
func (s *UserRecipeService) GetUserRecipe(userID, recipeID uint) (*UserRecipeResponse, error) {
	recipe, err := s.Repo.GetUserRecipeByID(userID, recipeID)
	if err != nil {
		return nil, err
	}
	return toUserRecipeResponse(recipe, true), nil
}

func toUserRecipeResponse(r *models.UserRecipe, withLists bool) *UserRecipeResponse {
	resp := &UserRecipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		PrepTime:    r.PrepTime,
		Image:       r.Image,
		CreatedAt:   r.CreatedAt,
	}
	if withLists {
		resp.Ingredients = r.IngredientList()
		resp.Steps = r.StepList()
	}
	return resp
}
