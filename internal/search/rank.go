package search

import (
	"cmp"
	"slices"
)

// rankKey is the parsed (rating, review count) pair a summary is sorted by.
type rankKey struct {
	rating  float64
	reviews int
}

func keyOf(s *Summary) rankKey {
	return rankKey{
		rating:  ratingOrZero(s.Rating),
		reviews: reviewCountOrZero(s.ReviewCount),
	}
}

// compareKeys orders higher ratings first, then higher review counts.
func compareKeys(a, b rankKey) int {
	if c := cmp.Compare(b.rating, a.rating); c != 0 {
		return c
	}
	return cmp.Compare(b.reviews, a.reviews)
}

// Compare returns a negative number when a ranks before b, a positive number
// when it ranks after, and 0 when rating and review count are both equal.
// Unparsable ratings and review counts rank as zero.
func Compare(a, b Summary) int {
	return compareKeys(keyOf(&a), keyOf(&b))
}

// rankedSummary caches the parsed key so each field is parsed once per sort.
type rankedSummary struct {
	key     rankKey
	summary Summary
}

// Rank sorts the full match set in place. The sort is stable, so summaries
// with equal rating and review count keep the order they were matched in.
// Callers must not rely on that order.
func Rank(items []Summary) {
	if len(items) < 2 {
		return
	}

	ranked := make([]rankedSummary, len(items))
	for i := range items {
		ranked[i] = rankedSummary{key: keyOf(&items[i]), summary: items[i]}
	}

	slices.SortStableFunc(ranked, func(a, b rankedSummary) int {
		return compareKeys(a.key, b.key)
	})

	for i := range ranked {
		items[i] = ranked[i].summary
	}
}
