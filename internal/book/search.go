package book

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidMatchType is returned for match types outside contains/startsWith/endsWith.
	ErrInvalidMatchType = errors.New("invalid match type")
	// ErrInvalidSearchField is returned for fields outside title/author/genre/synopsis.
	ErrInvalidSearchField = errors.New("invalid search field")
)

// MatchType selects how a query string is compared against a value.
// Comparison is always case-insensitive.
type MatchType string

const (
	MatchContains   MatchType = "contains"
	MatchStartsWith MatchType = "startsWith"
	MatchEndsWith   MatchType = "endsWith"
)

// MatchTypes lists every supported match type.
var MatchTypes = []MatchType{MatchContains, MatchStartsWith, MatchEndsWith}

// ParseMatchType validates s against the supported match types.
func ParseMatchType(s string) (MatchType, error) {
	switch m := MatchType(s); m {
	case MatchContains, MatchStartsWith, MatchEndsWith:
		return m, nil
	}
	return "", ErrInvalidMatchType
}

// SearchField is the book attribute a search targets.
type SearchField string

const (
	FieldTitle    SearchField = "title"
	FieldAuthor   SearchField = "author"
	FieldGenre    SearchField = "genre"
	FieldSynopsis SearchField = "synopsis"
)

// SearchFields lists every supported search field.
var SearchFields = []SearchField{FieldTitle, FieldAuthor, FieldGenre, FieldSynopsis}

// ParseSearchField validates s against the supported search fields.
func ParseSearchField(s string) (SearchField, error) {
	switch f := SearchField(s); f {
	case FieldTitle, FieldAuthor, FieldGenre, FieldSynopsis:
		return f, nil
	}
	return "", ErrInvalidSearchField
}

// Match reports whether value satisfies the match type against query,
// ignoring letter case.
func (m MatchType) Match(value, query string) bool {
	value = strings.ToLower(value)
	query = strings.ToLower(query)
	switch m {
	case MatchContains:
		return strings.Contains(value, query)
	case MatchStartsWith:
		return strings.HasPrefix(value, query)
	case MatchEndsWith:
		return strings.HasSuffix(value, query)
	}
	return false
}

// LikePattern renders query as a LIKE/ILIKE pattern using '\' as escape
// character, so wildcards in the query match literally.
func (m MatchType) LikePattern(query string) string {
	escaped := likeEscaper.Replace(query)
	switch m {
	case MatchStartsWith:
		return escaped + "%"
	case MatchEndsWith:
		return "%" + escaped
	default:
		return "%" + escaped + "%"
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FilterKind distinguishes the shapes of predicate storage has to execute.
type FilterKind int

const (
	// FilterScalar matches a text column of the book itself.
	FilterScalar FilterKind = iota + 1
	// FilterRelated matches a text column of the related author.
	FilterRelated
	// FilterGenreSet matches books whose genre is one of a finite set.
	FilterGenreSet
)

// Column names a text attribute a filter applies to.
type Column string

const (
	ColumnTitle      Column = "title"
	ColumnSynopsis   Column = "synopsis"
	ColumnAuthorName Column = "author.name"
)

// FilterSpec is a storage-agnostic description of a search predicate.
type FilterSpec struct {
	Kind   FilterKind
	Column Column
	Match  MatchType
	Query  string
	Genres []Genre
}

// BuildScalarMatch builds a case-insensitive condition on a book text column.
func BuildScalarMatch(column Column, query string, match MatchType) FilterSpec {
	return FilterSpec{Kind: FilterScalar, Column: column, Match: match, Query: query}
}

// BuildRelatedMatch builds a condition satisfied when the book's author name
// matches query case-insensitively.
func BuildRelatedMatch(query string, match MatchType) FilterSpec {
	return FilterSpec{Kind: FilterRelated, Column: ColumnAuthorName, Match: match, Query: query}
}

// BuildEnumMatch returns the candidates whose display label matches query,
// in candidate order. An empty result means no book can match.
func BuildEnumMatch(candidates []Genre, query string, match MatchType) []Genre {
	var out []Genre
	for _, g := range candidates {
		if match.Match(g.Label(), query) {
			out = append(out, g)
		}
	}
	return out
}

// GenreSetFilter wraps a resolved genre set into a FilterSpec.
func GenreSetFilter(set []Genre) FilterSpec {
	return FilterSpec{Kind: FilterGenreSet, Genres: set}
}

// Matches evaluates the filter against an in-memory book.
func (f FilterSpec) Matches(b Book) bool {
	switch f.Kind {
	case FilterScalar:
		switch f.Column {
		case ColumnTitle:
			return f.Match.Match(b.Title, f.Query)
		case ColumnSynopsis:
			return f.Match.Match(b.Synopsis, f.Query)
		}
	case FilterRelated:
		return f.Match.Match(b.Author.Name, f.Query)
	case FilterGenreSet:
		for _, g := range f.Genres {
			if b.Genre == g {
				return true
			}
		}
	}
	return false
}
