package search

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// notAvailable is the placeholder the scraped corpus uses for missing values.
const notAvailable = "N/A"

// Review count unit suffixes, plural first so "votos" is not cut to "s".
const (
	votesSuffix = " votos"
	voteSuffix  = " voto"
)

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

// ParseRating reads a rating such as "4.5". A leading number followed by other
// text is accepted ("4.5 estrelas"). ok is false for "", "N/A" and anything
// that does not start with a finite number.
func ParseRating(s string) (rating float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == notAvailable {
		return 0, false
	}

	num := leadingFloat.FindString(s)
	if num == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseReviewCount reads a review count such as "120 votos" or "1 voto". ok is
// false for "", "N/A" and anything without a leading integer.
func ParseReviewCount(s string) (count int, ok bool) {
	if s == "" || strings.TrimSpace(s) == notAvailable {
		return 0, false
	}

	s = strings.Replace(s, votesSuffix, "", 1)
	s = strings.Replace(s, voteSuffix, "", 1)
	s = strings.TrimSpace(s)

	num := leadingInt.FindString(s)
	if num == "" {
		return 0, false
	}

	v, err := strconv.Atoi(num)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ratingOrZero applies the ranking fallback: invalid ratings count as 0.
func ratingOrZero(s string) float64 {
	v, ok := ParseRating(s)
	if !ok {
		return 0
	}
	return v
}

// reviewCountOrZero applies the ranking fallback: invalid counts count as 0.
func reviewCountOrZero(s string) int {
	v, ok := ParseReviewCount(s)
	if !ok {
		return 0
	}
	return v
}
