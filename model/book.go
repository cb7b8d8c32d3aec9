package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO-8601 calendar date layout used for storage and display.
const DateLayout = "2006-01-02"

// Rating bounds, inclusive.
const (
	MinRating = 1
	MaxRating = 10
)

// Status is the reading state of a book.
type Status string

const (
	StatusUnread  Status = "UNREAD"
	StatusReading Status = "READING"
	StatusRead    Status = "READ"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusUnread, StatusReading, StatusRead}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusUnread, StatusReading, StatusRead:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus parses a status name case-insensitively.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", NewValidationError("status", fmt.Sprintf("unknown status %q", s))
	}
	return st, nil
}

// today returns the current calendar date. Tests replace it.
var today = func() time.Time {
	return DateOf(time.Now())
}

// Today returns the current calendar date as UTC midnight.
func Today() time.Time {
	return today()
}

// DateOf drops the clock part of t, keeping its calendar date as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Book is one reading-list entry.
//
// The entity never touches storage: after mutating a book the caller persists
// it explicitly through the store.
type Book struct {
	id int64

	Title        string
	Author       string
	Pages        int
	Genre        string
	Owned        bool
	CurrentPage  int
	Status       Status
	DateAdded    time.Time
	DateFinished *time.Time
	Rating       *int
}

// NewBook creates an unpersisted book with the default state: owned, unread,
// no progress, added today.
func NewBook(title, author string, pages int, genre string) (*Book, error) {
	b := &Book{
		Title:     title,
		Author:    author,
		Pages:     pages,
		Genre:     genre,
		Owned:     true,
		Status:    StatusUnread,
		DateAdded: Today(),
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// LoadBook rehydrates a stored book. The id is required.
func LoadBook(
	id int64,
	title, author string,
	pages int,
	genre string,
	owned bool,
	currentPage int,
	status Status,
	dateAdded time.Time,
	dateFinished *time.Time,
	rating *int,
) (*Book, error) {
	if id <= 0 {
		return nil, NewValidationError("id", "id is required for a loaded book")
	}
	b := &Book{
		id:           id,
		Title:        title,
		Author:       author,
		Pages:        pages,
		Genre:        genre,
		Owned:        owned,
		CurrentPage:  currentPage,
		Status:       status,
		DateAdded:    dateAdded,
		DateFinished: dateFinished,
		Rating:       rating,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// ID returns the storage id, or 0 for an unpersisted book.
func (b *Book) ID() int64 {
	return b.id
}

// Persisted reports whether the book has received a storage id.
func (b *Book) Persisted() bool {
	return b.id > 0
}

// SetID assigns the storage id. It can be done once.
func (b *Book) SetID(id int64) error {
	if b.Persisted() {
		return ErrBookAlreadyPersisted
	}
	if id <= 0 {
		return NewValidationError("id", "id must be positive")
	}
	b.id = id
	return nil
}

// Validate checks the field ranges and the status implications.
func (b *Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(b.Author) == "" {
		return NewValidationError("author", "author is required")
	}
	if b.Pages <= 0 {
		return NewValidationError("pages", "pages must be a positive integer")
	}
	if b.CurrentPage < 0 || b.CurrentPage > b.Pages {
		return NewValidationError("current_page", fmt.Sprintf("current page must be between 0 and %d", b.Pages))
	}
	if !b.Status.IsValid() {
		return NewValidationError("status", fmt.Sprintf("unknown status %q", b.Status))
	}
	if b.DateAdded.IsZero() {
		return NewValidationError("date_added", "date added is required")
	}
	if b.Rating != nil {
		if err := checkRating(*b.Rating); err != nil {
			return err
		}
	}
	if b.Status == StatusRead {
		if b.CurrentPage != b.Pages {
			return NewValidationError("current_page", "a read book must be at its last page")
		}
		if b.DateFinished == nil {
			return NewValidationError("date_finished", "a read book must have a finish date")
		}
	}
	return nil
}

func checkRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return NewValidationError("rating", fmt.Sprintf("rating must be between %d and %d", MinRating, MaxRating))
	}
	return nil
}

// Rate sets the rating. Values outside 1..10 leave the book unchanged.
func (b *Book) Rate(rating int) error {
	if err := checkRating(rating); err != nil {
		return err
	}
	b.Rating = &rating
	return nil
}

// MarkRead finishes the book today. Calling it again moves the finish date
// to today again.
func (b *Book) MarkRead() {
	finished := Today()
	b.Status = StatusRead
	b.CurrentPage = b.Pages
	b.DateFinished = &finished
}

// MarkReadWithRating finishes the book and overwrites its rating. An invalid
// rating fails before anything is changed.
func (b *Book) MarkReadWithRating(rating int) error {
	if err := checkRating(rating); err != nil {
		return err
	}
	b.MarkRead()
	b.Rating = &rating
	return nil
}

// MarkUnread resets the status only. Progress, finish date and rating are kept.
func (b *Book) MarkUnread() {
	b.Status = StatusUnread
}

// UpdateProgress records the current page. An unread book with progress
// becomes READING, and so does a read book moved back before its last page.
func (b *Book) UpdateProgress(page int) error {
	if page < 0 || page > b.Pages {
		return NewValidationError("current_page", fmt.Sprintf("current page must be between 0 and %d", b.Pages))
	}
	b.CurrentPage = page
	switch {
	case b.Status == StatusUnread && page > 0:
		b.Status = StatusReading
	case b.Status == StatusRead && page < b.Pages:
		b.Status = StatusReading
	}
	return nil
}

// SetOwned sets the ownership flag.
func (b *Book) SetOwned(owned bool) {
	b.Owned = owned
}

// MarkOwned records that a physical copy is owned.
func (b *Book) MarkOwned() {
	b.Owned = true
}

// MarkNotOwned records that no physical copy is owned.
func (b *Book) MarkNotOwned() {
	b.Owned = false
}

// ToggleOwned flips the ownership flag.
func (b *Book) ToggleOwned() {
	b.Owned = !b.Owned
}

// Progress returns the "current/total" page progress.
func (b *Book) Progress() string {
	return fmt.Sprintf("%d/%d", b.CurrentPage, b.Pages)
}

// OwnedLabel returns "Owned" or "Not Owned".
func (b *Book) OwnedLabel() string {
	if b.Owned {
		return "Owned"
	}
	return "Not Owned"
}

// RatingLabel returns the rating as "✰N", or "N/A" when unrated.
func (b *Book) RatingLabel() string {
	if b.Rating == nil {
		return "N/A"
	}
	return fmt.Sprintf("✰%d", *b.Rating)
}

// Describe returns a one-line human readable summary. Display only.
func (b *Book) Describe() string {
	return fmt.Sprintf("%s by %s | %s | %s | %s | %s | %s |",
		b.Title, b.Author, b.Genre, b.Status, b.Progress(), b.OwnedLabel(), b.RatingLabel())
}

func (b *Book) String() string {
	return b.Describe()
}
