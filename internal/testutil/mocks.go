package testutil

import (
	"context"
	"sync"

	"github.com/windoze95/receitas-api/internal/models"
	"github.com/windoze95/receitas-api/internal/repository"
	"github.com/windoze95/receitas-api/internal/search"
)

// --- MockRecipeRepo ---

// MockRecipeRepo is an in-memory mock implementation of repository.RecipeRepo.
// Recipes are kept in insertion order, which is also corpus order.
type MockRecipeRepo struct {
	mu      sync.Mutex
	Recipes []*models.Recipe
	NextID  uint

	ReadCorpusCalls int

	ReadCorpusErr error
	GetRecipeErr  error
	RandomErr     error
	CreateErr     error
	CountErr      error
}

// NewMockRecipeRepo creates a new MockRecipeRepo holding recipes.
func NewMockRecipeRepo(recipes ...*models.Recipe) *MockRecipeRepo {
	m := &MockRecipeRepo{NextID: 1}
	for _, r := range recipes {
		m.add(r)
	}
	return m
}

func (m *MockRecipeRepo) add(r *models.Recipe) {
	if r.ID == 0 {
		r.ID = m.NextID
	}
	if r.ID >= m.NextID {
		m.NextID = r.ID + 1
	}
	m.Recipes = append(m.Recipes, r)
}

func (m *MockRecipeRepo) ReadCorpus(ctx context.Context) ([]search.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ReadCorpusCalls++
	if m.ReadCorpusErr != nil {
		return nil, m.ReadCorpusErr
	}
	corpus := make([]search.Recipe, 0, len(m.Recipes))
	for _, r := range m.Recipes {
		corpus = append(corpus, search.Recipe{
			ID:          r.ID,
			Title:       r.Title,
			Rating:      r.Rating,
			ReviewCount: r.ReviewCount,
			Author:      r.Author,
			PrepTime:    r.PrepTime,
			Link:        r.Link,
			Image:       r.Image,
			Ingredients: r.IngredientItems(),
		})
	}
	return corpus, nil
}

func (m *MockRecipeRepo) GetRecipeByID(recipeID uint) (*models.Recipe, error) {
	if m.GetRecipeErr != nil {
		return nil, m.GetRecipeErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.Recipes {
		if r.ID == recipeID {
			return r, nil
		}
	}
	return nil, repository.NewNotFoundError("recipe not found")
}

// GetRandomRecipe returns the first recipe so tests stay deterministic.
func (m *MockRecipeRepo) GetRandomRecipe() (*models.Recipe, error) {
	if m.RandomErr != nil {
		return nil, m.RandomErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Recipes) == 0 {
		return nil, repository.NewNotFoundError("no recipes available")
	}
	return m.Recipes[0], nil
}

func (m *MockRecipeRepo) RecipeExists(recipeID uint) (bool, error) {
	if m.GetRecipeErr != nil {
		return false, m.GetRecipeErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.Recipes {
		if r.ID == recipeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockRecipeRepo) CountRecipes() (int64, error) {
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.Recipes)), nil
}

func (m *MockRecipeRepo) CreateRecipes(ctx context.Context, recipes []models.Recipe) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range recipes {
		m.add(&recipes[i])
	}
	return nil
}

// --- MockUserRepo ---

// MockUserRepo is an in-memory mock implementation of repository.UserRepo.
type MockUserRepo struct {
	mu     sync.Mutex
	Users  map[uint]*models.User
	NextID uint

	CreateUserErr error
	GetUserErr    error
}

// NewMockUserRepo creates a new MockUserRepo with initialized maps.
func NewMockUserRepo() *MockUserRepo {
	return &MockUserRepo{
		Users:  make(map[uint]*models.User),
		NextID: 1,
	}
}

func (m *MockUserRepo) CreateUser(user *models.User) (*models.User, error) {
	if m.CreateUserErr != nil {
		return nil, m.CreateUserErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.Users {
		if u.Email == user.Email {
			return nil, repository.ErrEmailTaken
		}
	}
	user.ID = m.NextID
	m.NextID++
	m.Users[user.ID] = user
	return user, nil
}

func (m *MockUserRepo) GetUserByID(userID uint) (*models.User, error) {
	if m.GetUserErr != nil {
		return nil, m.GetUserErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.Users[userID]
	if !ok {
		return nil, repository.NewNotFoundError("user not found")
	}
	return u, nil
}

func (m *MockUserRepo) GetUserByEmail(email string) (*models.User, error) {
	if m.GetUserErr != nil {
		return nil, m.GetUserErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.NewNotFoundError("user not found")
}

// --- MockFavoriteRepo ---

// MockFavoriteRepo is an in-memory mock implementation of repository.FavoriteRepo.
// Favorites holds recipe IDs per user, oldest first.
type MockFavoriteRepo struct {
	mu        sync.Mutex
	Favorites map[uint][]uint
	Recipes   *MockRecipeRepo

	ToggleErr error
	ListErr   error
	CountErr  error
}

// NewMockFavoriteRepo creates a new MockFavoriteRepo resolving recipes from recipes.
func NewMockFavoriteRepo(recipes *MockRecipeRepo) *MockFavoriteRepo {
	return &MockFavoriteRepo{
		Favorites: make(map[uint][]uint),
		Recipes:   recipes,
	}
}

func (m *MockFavoriteRepo) ToggleFavorite(userID, recipeID uint) (bool, error) {
	if m.ToggleErr != nil {
		return false, m.ToggleErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.Favorites[userID]
	for i, id := range ids {
		if id == recipeID {
			m.Favorites[userID] = append(ids[:i:i], ids[i+1:]...)
			return false, nil
		}
	}
	m.Favorites[userID] = append(ids, recipeID)
	return true, nil
}

func (m *MockFavoriteRepo) GetFavorites(userID uint, offset, limit int) ([]models.FavoriteRecipe, int64, error) {
	if m.ListErr != nil {
		return nil, 0, m.ListErr
	}
	m.mu.Lock()
	ids := append([]uint(nil), m.Favorites[userID]...)
	m.mu.Unlock()

	// newest first
	for l, r := 0, len(ids)-1; l < r; l, r = l+1, r-1 {
		ids[l], ids[r] = ids[r], ids[l]
	}

	out := []models.FavoriteRecipe{}
	for i := offset; i < len(ids) && i < offset+limit; i++ {
		fav := models.FavoriteRecipe{ID: ids[i]}
		if m.Recipes != nil {
			if r, err := m.Recipes.GetRecipeByID(ids[i]); err == nil {
				fav.Title = r.Title
				fav.Rating = r.Rating
				fav.ReviewCount = r.ReviewCount
			}
		}
		out = append(out, fav)
	}
	return out, int64(len(ids)), nil
}

func (m *MockFavoriteRepo) CountFavorites(userID uint) (int64, error) {
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.Favorites[userID])), nil
}

// --- MockUserRecipeRepo ---

// MockUserRecipeRepo is an in-memory mock implementation of repository.UserRecipeRepo.
type MockUserRecipeRepo struct {
	mu      sync.Mutex
	Recipes []*models.UserRecipe
	NextID  uint

	CreateErr error
	ListErr   error
	CountErr  error
}

// NewMockUserRecipeRepo creates a new MockUserRecipeRepo.
func NewMockUserRecipeRepo() *MockUserRecipeRepo {
	return &MockUserRecipeRepo{NextID: 1}
}

func (m *MockUserRecipeRepo) CreateUserRecipe(recipe *models.UserRecipe) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	recipe.ID = m.NextID
	m.NextID++
	m.Recipes = append(m.Recipes, recipe)
	return nil
}

func (m *MockUserRecipeRepo) GetUserRecipes(userID uint, offset, limit int) ([]models.UserRecipe, int64, error) {
	if m.ListErr != nil {
		return nil, 0, m.ListErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var owned []models.UserRecipe
	for i := len(m.Recipes) - 1; i >= 0; i-- {
		if m.Recipes[i].UserID == userID {
			owned = append(owned, *m.Recipes[i])
		}
	}
	out := []models.UserRecipe{}
	for i := offset; i < len(owned) && i < offset+limit; i++ {
		out = append(out, owned[i])
	}
	return out, int64(len(owned)), nil
}

func (m *MockUserRecipeRepo) GetUserRecipeByID(userID, recipeID uint) (*models.UserRecipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.Recipes {
		if r.ID == recipeID && r.UserID == userID {
			return r, nil
		}
	}
	return nil, repository.NewNotFoundError("user recipe not found")
}

func (m *MockUserRecipeRepo) CountUserRecipes(userID uint) (int64, error) {
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for _, r := range m.Recipes {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}

var (
	_ repository.RecipeRepo     = (*MockRecipeRepo)(nil)
	_ repository.UserRepo       = (*MockUserRepo)(nil)
	_ repository.FavoriteRepo   = (*MockFavoriteRepo)(nil)
	_ repository.UserRecipeRepo = (*MockUserRecipeRepo)(nil)
)
