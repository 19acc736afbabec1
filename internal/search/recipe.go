package search

// Recipe is a corpus row as the search core sees it: display fields plus the
// free-text ingredient list that queries are matched against.
type Recipe struct {
	ID          uint
	Title       string
	Rating      string
	ReviewCount string
	Author      string
	PrepTime    string
	Link        string
	Image       string
	Ingredients []string
}

// Summary is a matched recipe without its ingredients or preparation steps.
// JSON keys follow the mobile client's contract.
type Summary struct {
	ID          uint   `json:"id"`
	Title       string `json:"titulo"`
	Rating      string `json:"nota"`
	ReviewCount string `json:"avaliacoes"`
	Author      string `json:"autor"`
	PrepTime    string `json:"tempo_preparo"`
	Link        string `json:"link"`
	Image       string `json:"imagem"`
}

// Summary strips the ingredient list from r.
func (r *Recipe) Summary() Summary {
	return Summary{
		ID:          r.ID,
		Title:       r.Title,
		Rating:      r.Rating,
		ReviewCount: r.ReviewCount,
		Author:      r.Author,
		PrepTime:    r.PrepTime,
		Link:        r.Link,
		Image:       r.Image,
	}
}
