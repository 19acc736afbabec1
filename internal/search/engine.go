package search

import (
	"context"
	"fmt"
)

// RecipeCorpusReader supplies the full recipe corpus for a query. The engine
// scans whatever it returns, so an index-backed reader can replace a table
// scan without changing matching semantics.
type RecipeCorpusReader interface {
	ReadCorpus(ctx context.Context) ([]Recipe, error)
}

// Result is a page of ranked matches together with the query it answers.
type Result struct {
	Ingredients []string
	Page
	// CorpusSize is the number of recipes scanned.
	CorpusSize int
}

// Engine runs ingredient searches against a corpus reader. It holds no mutable
// state and may be shared between goroutines.
type Engine struct {
	corpus RecipeCorpusReader
}

// NewEngine creates a new Engine.
func NewEngine(corpus RecipeCorpusReader) *Engine {
	return &Engine{corpus: corpus}
}

// Search reads the corpus, keeps the recipes containing every ingredient,
// ranks them and returns the requested page. Corpus read failures are wrapped
// and returned as is.
func (e *Engine) Search(ctx context.Context, ingredients []string, page int) (*Result, error) {
	recipes, err := e.corpus.ReadCorpus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe corpus: %w", err)
	}

	matches := FindMatches(recipes, ingredients)
	Rank(matches)

	return &Result{
		Ingredients: ingredients,
		Page:        Paginate(matches, page),
		CorpusSize:  len(recipes),
	}, nil
}
