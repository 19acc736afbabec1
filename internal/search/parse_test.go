package search

import "testing"

func TestParseRating(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"4.5", 4.5, true},
		{" 3 ", 3, true},
		{"5.0", 5, true},
		{"4.5 estrelas", 4.5, true},
		{".5", 0.5, true},
		{"N/A", 0, false},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"1e999", 0, false},
		{"NaN", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseRating(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseRating(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseReviewCount(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"120 votos", 120, true},
		{"1 voto", 1, true},
		{"0 votos", 0, true},
		{"  42 votos  ", 42, true},
		{"77", 77, true},
		{"N/A", 0, false},
		{"", 0, false},
		{"votos", 0, false},
		{"muitos votos", 0, false},
		{"99999999999999999999999 votos", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseReviewCount(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseReviewCount(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
