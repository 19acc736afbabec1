package service

import (
	"context"
	"time"

	"github.com/windoze95/receitas-api/internal/config"
	"github.com/windoze95/receitas-api/internal/logger"
	"github.com/windoze95/receitas-api/internal/search"
	"go.uber.org/zap"
)

// SearchService runs ingredient searches over the scraped recipe corpus.
type SearchService struct {
	Cfg    *config.Config
	Engine *search.Engine
}

// NewSearchService creates a new SearchService reading from corpus.
func NewSearchService(cfg *config.Config, corpus search.RecipeCorpusReader) *SearchService {
	return &SearchService{
		Cfg:    cfg,
		Engine: search.NewEngine(corpus),
	}
}

// SearchRecipes returns the requested page of recipes containing every
// ingredient. ingredients should already be trimmed and non-empty.
func (s *SearchService) SearchRecipes(ctx context.Context, ingredients []string, page int) (*search.Result, error) {
	start := time.Now()
	result, err := s.Engine.Search(ctx, ingredients, page)
	if err != nil {
		logger.Get().Error("recipe search failed",
			zap.Strings("ingredients", ingredients),
			zap.Error(err))
		return nil, err
	}

	logger.Get().Info("recipe search",
		zap.Int("query_size", len(ingredients)),
		zap.Int("corpus_size", result.CorpusSize),
		zap.Int("matches", result.Total),
		zap.Int("page", result.Number),
		zap.Duration("duration", time.Since(start)))

	return result, nil
}
