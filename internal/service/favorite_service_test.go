package service

import (
	"testing"

	"github.com/windoze95/receitas-api/internal/config"
	"github.com/windoze95/receitas-api/internal/repository"
	"github.com/windoze95/receitas-api/internal/testutil"
)

func newTestFavoriteService() (*FavoriteService, *testutil.MockFavoriteRepo) {
	recipes := testutil.NewMockRecipeRepo(testutil.TestRecipes()...)
	favs := testutil.NewMockFavoriteRepo(recipes)
	return NewFavoriteService(&config.Config{}, favs, recipes), favs
}

func TestToggleFavorite_OnOff(t *testing.T) {
	svc, _ := newTestFavoriteService()

	on, err := svc.ToggleFavorite(1, 2)
	if err != nil || !on {
		t.Fatalf("first toggle = (%v, %v), want (true, nil)", on, err)
	}
	on, err = svc.ToggleFavorite(1, 2)
	if err != nil || on {
		t.Fatalf("second toggle = (%v, %v), want (false, nil)", on, err)
	}
}

func TestToggleFavorite_MissingRecipe(t *testing.T) {
	svc, favs := newTestFavoriteService()

	_, err := svc.ToggleFavorite(1, 999)
	if _, ok := err.(repository.NotFoundError); !ok {
		t.Fatalf("error type = %T, want NotFoundError", err)
	}
	if len(favs.Favorites[1]) != 0 {
		t.Error("missing recipe should not be favorited")
	}
}

func TestListFavorites_Pagination(t *testing.T) {
	svc, favs := newTestFavoriteService()
	ids := make([]uint, 12)
	for i := range ids {
		ids[i] = uint(i + 1)
	}
	favs.Favorites[5] = ids

	page, err := svc.ListFavorites(5, 0)
	if err != nil {
		t.Fatalf("ListFavorites error: %v", err)
	}
	if page.Number != 1 || page.Total != 12 || !page.HasMore || len(page.Items) != 10 {
		t.Errorf("page 1 = %+v", page)
	}
	if page.Items[0].ID != 12 {
		t.Errorf("newest first: got %d, want 12", page.Items[0].ID)
	}

	page, err = svc.ListFavorites(5, 2)
	if err != nil {
		t.Fatalf("ListFavorites error: %v", err)
	}
	if page.HasMore || len(page.Items) != 2 {
		t.Errorf("page 2 = %+v", page)
	}
}

func TestListFavorites_RepoError(t *testing.T) {
	svc, favs := newTestFavoriteService()
	favs.ListErr = errTest

	if _, err := svc.ListFavorites(1, 1); err != errTest {
		t.Errorf("error = %v, want errTest", err)
	}
}
