package testutil

import (
	"github.com/windoze95/receitas-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plain password behind TestUser's hash.
const TestPassword = "segredo123"

// TestUser creates a registered user whose password is TestPassword.
func TestUser() *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	return &models.User{
		ID:           1,
		Name:         "Maria",
		Email:        "maria@example.com",
		PasswordHash: string(hash),
	}
}

// TestRecipes returns a small corpus. Ranked by rating then votes the
// order is bolo, omelete, pão, panqueca.
func TestRecipes() []*models.Recipe {
	return []*models.Recipe{
		{
			ID: 1, Title: "Bolo de cenoura", Rating: "4.8", ReviewCount: "250 votos",
			Author: "Ana", PrepTime: "50 min",
			Ingredients: []models.Ingredient{
				{Item: "3 cenouras médias"},
				{Item: "4 ovos"},
				{Item: "2 xícaras de farinha de trigo"},
			},
			Steps: []models.RecipeStep{
				{Position: 1, Text: "Bata a cenoura com os ovos"},
				{Position: 2, Text: "Misture a farinha e asse"},
			},
		},
		{
			ID: 2, Title: "Panqueca", Rating: "N/A", ReviewCount: "",
			Ingredients: []models.Ingredient{{Item: "1 xícara de farinha de trigo"}, {Item: "1 ovo"}, {Item: "leite"}},
		},
		{
			ID: 3, Title: "Omelete", Rating: "4.8", ReviewCount: "1 voto",
			Ingredients: []models.Ingredient{{Item: "2 ovos"}, {Item: "sal"}},
		},
		{
			ID: 4, Title: "Pão caseiro", Rating: "4.1", ReviewCount: "90 votos",
			Ingredients: []models.Ingredient{{Item: "farinha"}, {Item: "fermento biológico"}},
		},
	}
}
