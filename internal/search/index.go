package search

// indexedRecipe pairs a recipe with its individually normalized ingredients.
type indexedRecipe struct {
	recipe      *Recipe
	ingredients []string
}

// IngredientIndex holds the normalized ingredient lists of a corpus for the
// duration of a single query. It is never kept between queries.
type IngredientIndex struct {
	entries []indexedRecipe
}

// NewIngredientIndex normalizes every ingredient of every recipe. Each
// ingredient stays a separate string so a query can never match across two
// neighbouring ingredients. Recipes without ingredients are left out.
func NewIngredientIndex(recipes []Recipe) *IngredientIndex {
	ix := &IngredientIndex{entries: make([]indexedRecipe, 0, len(recipes))}
	for i := range recipes {
		if len(recipes[i].Ingredients) == 0 {
			continue
		}

		normalized := make([]string, len(recipes[i].Ingredients))
		for j, ing := range recipes[i].Ingredients {
			normalized[j] = Normalize(ing)
		}

		ix.entries = append(ix.entries, indexedRecipe{
			recipe:      &recipes[i],
			ingredients: normalized,
		})
	}
	return ix
}

// Len returns the number of recipes that can take part in a match.
func (ix *IngredientIndex) Len() int {
	return len(ix.entries)
}
