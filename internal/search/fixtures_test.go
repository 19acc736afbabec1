package search

import (
	"context"
	"fmt"
)

// scenarioCorpus is the three-recipe corpus used across the search tests.
func scenarioCorpus() []Recipe {
	return []Recipe{
		{ID: 1, Title: "Bolo simples", Rating: "4.5", ReviewCount: "120 votos", Ingredients: []string{"Farinha de Trigo", "Ovos"}},
		{ID: 2, Title: "Panqueca", Rating: "N/A", ReviewCount: "N/A", Ingredients: []string{"farinha", "leite"}},
		{ID: 3, Title: "Biscoito", Rating: "4.5", ReviewCount: "80 votos", Ingredients: []string{"farinha", "acucar"}},
	}
}

// rankedCorpus returns n recipes sharing the ingredient "farinha" with
// strictly decreasing ratings, so recipe i+1 ranks at position i.
func rankedCorpus(n int) []Recipe {
	recipes := make([]Recipe, n)
	for i := range recipes {
		recipes[i] = Recipe{
			ID:          uint(i + 1),
			Title:       fmt.Sprintf("Receita %d", i+1),
			Rating:      fmt.Sprintf("%.2f", 5.0-float64(i)*0.1),
			ReviewCount: "10 votos",
			Ingredients: []string{"Farinha de trigo", "sal"},
		}
	}
	return recipes
}

func ids(items []Summary) []uint {
	out := make([]uint, len(items))
	for i, s := range items {
		out[i] = s.ID
	}
	return out
}

// stubCorpus is a RecipeCorpusReader backed by a slice or a fixed error.
type stubCorpus struct {
	recipes []Recipe
	err     error
	calls   int
}

func (s *stubCorpus) ReadCorpus(ctx context.Context) ([]Recipe, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.recipes, nil
}
