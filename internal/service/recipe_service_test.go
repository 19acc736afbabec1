package service

import (
	"testing"

	"github.com/windoze95/receitas-api/internal/config"
	"github.com/windoze95/receitas-api/internal/repository"
	"github.com/windoze95/receitas-api/internal/testutil"
)

func newTestRecipeService(repo repository.RecipeRepo) *RecipeService {
	return &RecipeService{
		Cfg:  &config.Config{},
		Repo: repo,
	}
}

func TestGetRecipeByID_Detail(t *testing.T) {
	svc := newTestRecipeService(testutil.NewMockRecipeRepo(testutil.TestRecipes()...))

	detail, err := svc.GetRecipeByID(1)
	if err != nil {
		t.Fatalf("GetRecipeByID error: %v", err)
	}
	if detail.Title != "Bolo de cenoura" {
		t.Errorf("Title = %q", detail.Title)
	}
	if len(detail.Ingredients) != 3 {
		t.Errorf("Ingredients count = %d, want 3", len(detail.Ingredients))
	}
	if len(detail.Steps) != 2 || detail.Steps[0] != "Bata a cenoura com os ovos" {
		t.Errorf("Steps = %v", detail.Steps)
	}
}

func TestGetRecipeByID_NotFound(t *testing.T) {
	svc := newTestRecipeService(testutil.NewMockRecipeRepo())

	_, err := svc.GetRecipeByID(99)
	if _, ok := err.(repository.NotFoundError); !ok {
		t.Errorf("GetRecipeByID error type = %T, want NotFoundError", err)
	}
}

func TestGetSurpriseRecipe(t *testing.T) {
	svc := newTestRecipeService(testutil.NewMockRecipeRepo(testutil.TestRecipes()...))
	detail, err := svc.GetSurpriseRecipe()
	if err != nil {
		t.Fatalf("GetSurpriseRecipe error: %v", err)
	}
	if detail.ID == 0 {
		t.Error("GetSurpriseRecipe returned zero ID")
	}

	empty := newTestRecipeService(testutil.NewMockRecipeRepo())
	if _, err := empty.GetSurpriseRecipe(); err == nil {
		t.Error("GetSurpriseRecipe on empty corpus should fail")
	} else if _, ok := err.(repository.NotFoundError); !ok {
		t.Errorf("error type = %T, want NotFoundError", err)
	}
}
