// Package seed loads recipe corpora from YAML files into the database.
package seed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/windoze95/receitas-api/internal/models"
	"gopkg.in/yaml.v3"
)

// RecipeYAML is one recipe as written in a corpus file.
type RecipeYAML struct {
	Title          string   `yaml:"titulo"`
	Rating         string   `yaml:"nota"`
	ReviewCount    string   `yaml:"avaliacoes"`
	Author         string   `yaml:"autor"`
	PrepTime       string   `yaml:"tempo_preparo"`
	Link           string   `yaml:"link"`
	Image          string   `yaml:"imagem"`
	Description    string   `yaml:"descricao"`
	AdditionalInfo string   `yaml:"informacoes_adicionais"`
	Ingredients    []string `yaml:"ingredientes"`
	Steps          []string `yaml:"modo_preparo"`
}

// Corpus is the top-level document of a corpus file.
type Corpus struct {
	Recipes []RecipeYAML `yaml:"receitas"`
}

// RecipeWriter persists a batch of recipes atomically.
type RecipeWriter interface {
	CreateRecipes(ctx context.Context, recipes []models.Recipe) error
}

// LoadFile reads and parses a YAML corpus file.
func LoadFile(path string) ([]models.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML corpus. Blank ingredient and step lines are dropped,
// steps are numbered from 1 in file order, and every recipe needs a title.
func Parse(data []byte) ([]models.Recipe, error) {
	var corpus Corpus
	if err := yaml.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("failed to parse corpus YAML: %w", err)
	}

	recipes := make([]models.Recipe, 0, len(corpus.Recipes))
	for i, r := range corpus.Recipes {
		recipe, err := r.toModel()
		if err != nil {
			return nil, fmt.Errorf("recipe %d: %w", i+1, err)
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

// Seed loads path and writes every recipe in one transaction, returning how
// many were inserted.
func Seed(ctx context.Context, writer RecipeWriter, path string) (int, error) {
	recipes, err := LoadFile(path)
	if err != nil {
		return 0, err
	}
	if len(recipes) == 0 {
		return 0, nil
	}
	if err := writer.CreateRecipes(ctx, recipes); err != nil {
		return 0, fmt.Errorf("failed to store corpus: %w", err)
	}
	return len(recipes), nil
}

func (r RecipeYAML) toModel() (models.Recipe, error) {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return models.Recipe{}, fmt.Errorf("titulo is required")
	}

	recipe := models.Recipe{
		Title:          title,
		Rating:         strings.TrimSpace(r.Rating),
		ReviewCount:    strings.TrimSpace(r.ReviewCount),
		Author:         strings.TrimSpace(r.Author),
		PrepTime:       strings.TrimSpace(r.PrepTime),
		Link:           strings.TrimSpace(r.Link),
		Image:          strings.TrimSpace(r.Image),
		Description:    strings.TrimSpace(r.Description),
		AdditionalInfo: strings.TrimSpace(r.AdditionalInfo),
	}
	for _, item := range r.Ingredients {
		if item = strings.TrimSpace(item); item != "" {
			recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{Item: item})
		}
	}
	for _, text := range r.Steps {
		if text = strings.TrimSpace(text); text != "" {
			recipe.Steps = append(recipe.Steps, models.RecipeStep{
				Position: len(recipe.Steps) + 1,
				Text:     text,
			})
		}
	}
	return recipe, nil
}
