package search

import (
	"slices"
	"testing"
)

func TestRank_Scenario(t *testing.T) {
	matches := FindMatches(scenarioCorpus(), []string{"farinha"})
	Rank(matches)

	if want := []uint{1, 3, 2}; !slices.Equal(ids(matches), want) {
		t.Errorf("ranked ids = %v, want %v", ids(matches), want)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Summary
		want int
	}{
		{"higher rating first", Summary{Rating: "4.8"}, Summary{Rating: "4.5"}, -1},
		{"lower rating last", Summary{Rating: "3"}, Summary{Rating: "4"}, 1},
		{"review count breaks rating tie", Summary{Rating: "4.5", ReviewCount: "120 votos"}, Summary{Rating: "4.5", ReviewCount: "80 votos"}, -1},
		{"singular suffix", Summary{Rating: "4", ReviewCount: "1 voto"}, Summary{Rating: "4", ReviewCount: "2 votos"}, 1},
		{"N/A rating is zero", Summary{Rating: "N/A", ReviewCount: "999 votos"}, Summary{Rating: "0.1"}, 1},
		{"garbage equals N/A", Summary{Rating: "abc", ReviewCount: "xyz"}, Summary{Rating: "N/A", ReviewCount: "N/A"}, 0},
		{"exact tie", Summary{Rating: "4.5", ReviewCount: "10 votos"}, Summary{Rating: "4.50", ReviewCount: "10"}, 0},
	}

	for _, tt := range tests {
		got := Compare(tt.a, tt.b)
		if sign(got) != tt.want {
			t.Errorf("%s: Compare = %d, want sign %d", tt.name, got, tt.want)
		}
		if sign(Compare(tt.b, tt.a)) != -tt.want {
			t.Errorf("%s: Compare is not antisymmetric", tt.name)
		}
	}
}

func TestRank_SortedUnderZeroFallback(t *testing.T) {
	items := []Summary{
		{ID: 1, Rating: "N/A", ReviewCount: "500 votos"},
		{ID: 2, Rating: "4.9", ReviewCount: "3 votos"},
		{ID: 3, Rating: "", ReviewCount: ""},
		{ID: 4, Rating: "4.9", ReviewCount: "30 votos"},
		{ID: 5, Rating: "2", ReviewCount: "N/A"},
		{ID: 6, Rating: "?", ReviewCount: "1 voto"},
	}
	Rank(items)

	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if Compare(items[i], items[j]) > 0 {
				t.Errorf("item %d (id %d) ranks before item %d (id %d) but compares greater",
					i, items[i].ID, j, items[j].ID)
			}
		}
	}
	if items[0].ID != 4 || items[1].ID != 2 {
		t.Errorf("top two ids = %d, %d, want 4, 2", items[0].ID, items[1].ID)
	}
}

func TestRank_IsPermutation(t *testing.T) {
	items := FindMatches(rankedCorpus(15), []string{"sal"})
	slices.Reverse(items)
	Rank(items)

	got := ids(items)
	for i, id := range got {
		if id != uint(i+1) {
			t.Fatalf("ranked ids = %v, want 1..15 in order", got)
		}
	}
}

func TestRank_TiesStayTogether(t *testing.T) {
	// Order among exact ties is not asserted, only that they rank as a block.
	items := []Summary{
		{ID: 1, Rating: "4", ReviewCount: "5 votos"},
		{ID: 2, Rating: "5", ReviewCount: "5 votos"},
		{ID: 3, Rating: "4", ReviewCount: "5 votos"},
	}
	Rank(items)

	if items[0].ID != 2 {
		t.Errorf("first id = %d, want 2", items[0].ID)
	}
	rest := []uint{items[1].ID, items[2].ID}
	slices.Sort(rest)
	if !slices.Equal(rest, []uint{1, 3}) {
		t.Errorf("tied ids = %v, want 1 and 3", rest)
	}
}

func TestRank_EmptyAndSingle(t *testing.T) {
	Rank(nil)

	one := []Summary{{ID: 9}}
	Rank(one)
	if one[0].ID != 9 {
		t.Errorf("single item changed: %+v", one[0])
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
