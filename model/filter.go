package model

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

// Filter narrows a fetched list by per-field substrings. Every non-empty
// field must match its own book field, case-insensitively.
//
// Unlike Search, which ORs one query across title, author and genre, a
// Filter ANDs independent constraints.
type Filter struct {
	Title  string
	Author string
	Genre  string
	// Status is matched exactly when set.
	Status Status
}

// IsEmpty reports whether the filter accepts every book.
func (f Filter) IsEmpty() bool {
	return f.Title == "" && f.Author == "" && f.Genre == "" && f.Status == ""
}

// Match reports whether b satisfies every constraint.
func (f Filter) Match(b *Book) bool {
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	return ContainsFold(b.Title, f.Title) &&
		ContainsFold(b.Author, f.Author) &&
		ContainsFold(b.Genre, f.Genre)
}

// Apply returns the books matching the filter, keeping their order.
func (f Filter) Apply(books []*Book) []*Book {
	if f.IsEmpty() {
		return books
	}
	return lo.Filter(books, func(b *Book, _ int) bool {
		return f.Match(b)
	})
}

// ContainsFold reports whether sub occurs in s under Unicode case folding.
// An empty sub matches everything.
func ContainsFold(s, sub string) bool {
	if sub == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(sub))
}

// MatchesQuery reports whether query occurs in the title, author or genre of b.
func MatchesQuery(b *Book, query string) bool {
	return ContainsFold(b.Title, query) ||
		ContainsFold(b.Author, query) ||
		ContainsFold(b.Genre, query)
}

// Search returns the books whose title, author or genre contains query,
// keeping their order. An empty query matches every book.
func Search(books []*Book, query string) []*Book {
	return lo.Filter(books, func(b *Book, _ int) bool {
		return MatchesQuery(b, query)
	})
}
