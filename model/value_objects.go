package model

// Value objects in this file coerce raw user input into checked values before
// an entity is built or mutated.

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// PageCount represents a total page count.
type PageCount struct {
	value int
}

// NewPageCount parses a positive page count.
func NewPageCount(s string) (*PageCount, error) {
	n, err := parseInt(s)
	if err != nil {
		return nil, NewValidationError("pages", "pages must be an integer")
	}
	if n <= 0 {
		return nil, NewValidationError("pages", "pages must be a positive integer")
	}
	return &PageCount{value: n}, nil
}

// Int returns the page count.
func (p *PageCount) Int() int {
	return p.value
}

// PageNumber represents a reading position.
type PageNumber struct {
	value int
}

// NewPageNumber parses a non-negative page number.
func NewPageNumber(s string) (*PageNumber, error) {
	n, err := parseInt(s)
	if err != nil {
		return nil, NewValidationError("current_page", "page must be an integer")
	}
	if n < 0 {
		return nil, NewValidationError("current_page", "page must be non-negative")
	}
	return &PageNumber{value: n}, nil
}

// Int returns the page number.
func (p *PageNumber) Int() int {
	return p.value
}

// RatingValue represents a rating in 1..10.
type RatingValue struct {
	value int
}

// NewRatingValue parses a rating.
func NewRatingValue(s string) (*RatingValue, error) {
	n, err := parseInt(s)
	if err != nil {
		return nil, NewValidationError("rating", "rating must be an integer")
	}
	if err := checkRating(n); err != nil {
		return nil, err
	}
	return &RatingValue{value: n}, nil
}

// Int returns the rating.
func (r *RatingValue) Int() int {
	return r.value
}

// Year represents a calendar year.
type Year struct {
	value int
}

// NewYear parses a year. An empty string means the current year.
func NewYear(s string) (*Year, error) {
	if strings.TrimSpace(s) == "" {
		return &Year{value: Today().Year()}, nil
	}
	n, err := parseInt(s)
	if err != nil {
		return nil, NewValidationError("year", "year must be an integer")
	}
	if n < 1 || n > 9999 {
		return nil, NewValidationError("year", "year must be between 1 and 9999")
	}
	return &Year{value: n}, nil
}

// Int returns the year.
func (y *Year) Int() int {
	return y.value
}

// BookID represents a storage id given by a user.
type BookID struct {
	value int64
}

// NewBookID parses a positive book id.
func NewBookID(s string) (*BookID, error) {
	if strings.TrimSpace(s) == "" {
		return nil, NewValidationError("id", "book id is required")
	}
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return nil, NewValidationError("id", fmt.Sprintf("invalid book id %q", s))
	}
	return &BookID{value: id}, nil
}

// Int64 returns the id.
func (b *BookID) Int64() int64 {
	return b.value
}

// ParseDate parses a calendar date. ISO-8601 (YYYY-MM-DD) is tried first,
// then any format dateparse recognises. The clock part is dropped.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, NewValidationError("date", "date is required")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, NewValidationError("date", fmt.Sprintf("unable to parse date %q, use YYYY-MM-DD", s))
	}
	return DateOf(t), nil
}

// parseInt converts a string to an integer.
func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
