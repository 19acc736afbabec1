package search

import "strings"

// NormalizeQuery trims and normalizes each query ingredient, dropping the
// entries that end up blank. Order is preserved.
func NormalizeQuery(query []string) []string {
	normalized := make([]string, 0, len(query))
	for _, q := range query {
		n := Normalize(strings.TrimSpace(q))
		if n == "" {
			continue
		}
		normalized = append(normalized, n)
	}
	return normalized
}

// Match returns the summaries of the indexed recipes that satisfy every
// normalized query ingredient, in corpus order. An empty query matches nothing.
func (ix *IngredientIndex) Match(normalizedQuery []string) []Summary {
	if len(normalizedQuery) == 0 {
		return []Summary{}
	}

	matches := make([]Summary, 0)
	for _, entry := range ix.entries {
		if containsAll(entry.ingredients, normalizedQuery) {
			matches = append(matches, entry.recipe.Summary())
		}
	}
	return matches
}

// FindMatches is the one-shot form of NewIngredientIndex followed by Match.
func FindMatches(recipes []Recipe, query []string) []Summary {
	normalizedQuery := NormalizeQuery(query)
	if len(normalizedQuery) == 0 {
		return []Summary{}
	}
	return NewIngredientIndex(recipes).Match(normalizedQuery)
}

// containsAll reports whether each query term is a substring of at least one
// ingredient.
func containsAll(ingredients, query []string) bool {
	for _, q := range query {
		if !containsAny(ingredients, q) {
			return false
		}
	}
	return true
}

func containsAny(ingredients []string, q string) bool {
	for _, ing := range ingredients {
		if strings.Contains(ing, q) {
			return true
		}
	}
	return false
}
