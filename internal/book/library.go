package book

import (
	"slices"
	"strings"
)

// SortKey orders a library view.
type SortKey string

const (
	SortTitle       SortKey = "title"
	SortAuthor      SortKey = "author"
	SortPublishedAt SortKey = "publishedAt"
)

// LibraryQuery narrows and orders the favorites shelf.
// The zero value keeps every book sorted by title ascending.
type LibraryQuery struct {
	Genre Genre
	Term  string
	Sort  SortKey
	Desc  bool
}

// Apply filters and sorts books without modifying the input slice.
func (q LibraryQuery) Apply(books []Book) []Book {
	out := make([]Book, 0, len(books))
	term := strings.ToLower(q.Term)
	for _, b := range books {
		if q.Genre != "" && b.Genre != q.Genre {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(b.Title), term) &&
			!strings.Contains(strings.ToLower(b.Author.Name), term) &&
			!strings.Contains(strings.ToLower(b.Genre.Label()), term) {
			continue
		}
		out = append(out, b)
	}

	slices.SortStableFunc(out, func(a, b Book) int {
		var c int
		switch q.Sort {
		case SortAuthor:
			c = strings.Compare(strings.ToLower(a.Author.Name), strings.ToLower(b.Author.Name))
		case SortPublishedAt:
			c = a.PublishedAt.Compare(b.PublishedAt)
		default:
			c = strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
		if q.Desc {
			return -c
		}
		return c
	})
	return out
}
