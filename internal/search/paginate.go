package search

import "math"

// PageSize is the fixed number of recipes per page.
const PageSize = 10

// MaxPage is the largest page number whose offset still fits in an int.
// No result set can reach it, so capping there keeps it out of range.
const MaxPage = math.MaxInt / PageSize

// Page is one slice of a ranked result set plus continuation metadata.
type Page struct {
	Number  int
	Total   int
	Shown   int
	HasMore bool
	Items   []Summary
}

// ClampPage treats page numbers below 1 as the first page and caps them
// at MaxPage.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return min(page, MaxPage)
}

// Offset returns the index of the first item on page.
func Offset(page int) int {
	return (ClampPage(page) - 1) * PageSize
}

// HasMore reports whether items remain after the page starting at offset.
func HasMore(offset, total int) bool {
	return offset+PageSize < total
}

// Paginate slices the globally ranked items. Out-of-range pages are not an
// error; they come back empty with HasMore false.
func Paginate(sorted []Summary, page int) Page {
	page = ClampPage(page)
	offset := Offset(page)
	total := len(sorted)

	items := []Summary{}
	if offset < total {
		end := min(offset+PageSize, total)
		items = sorted[offset:end]
	}

	return Page{
		Number:  page,
		Total:   total,
		Shown:   len(items),
		HasMore: HasMore(offset, total),
		Items:   items,
	}
}
