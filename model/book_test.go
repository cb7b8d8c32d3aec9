package model

import (
	"errors"
	"testing"
	"time"
)

// withToday pins the clock used by the entity for the duration of a test.
func withToday(t *testing.T, day time.Time) {
	t.Helper()
	orig := today
	today = func() time.Time { return day }
	t.Cleanup(func() { today = orig })
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestBook(t *testing.T) *Book {
	t.Helper()
	b, err := NewBook("Dune", "Frank Herbert", 412, "Science Fiction")
	if err != nil {
		t.Fatalf("Failed to create book: %v", err)
	}
	return b
}

func TestNewBookDefaults(t *testing.T) {
	withToday(t, date(2024, 3, 1))

	b := newTestBook(t)

	if b.Persisted() {
		t.Error("Expected new book to be unpersisted")
	}
	if b.ID() != 0 {
		t.Errorf("Expected ID 0, got %d", b.ID())
	}
	if !b.Owned {
		t.Error("Expected new book to be owned by default")
	}
	if b.Status != StatusUnread {
		t.Errorf("Expected status UNREAD, got %s", b.Status)
	}
	if b.CurrentPage != 0 {
		t.Errorf("Expected current page 0, got %d", b.CurrentPage)
	}
	if !b.DateAdded.Equal(date(2024, 3, 1)) {
		t.Errorf("Expected date added 2024-03-01, got %v", b.DateAdded)
	}
	if b.DateFinished != nil {
		t.Error("Expected no finish date")
	}
	if b.Rating != nil {
		t.Error("Expected no rating")
	}
}

func TestNewBookValidation(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		author      string
		pages       int
		expectError bool
	}{
		{name: "Valid book", title: "Dune", author: "Herbert", pages: 10},
		{name: "Empty title", title: "", author: "Herbert", pages: 10, expectError: true},
		{name: "Blank author", title: "Dune", author: "  ", pages: 10, expectError: true},
		{name: "Zero pages", title: "Dune", author: "Herbert", pages: 0, expectError: true},
		{name: "Negative pages", title: "Dune", author: "Herbert", pages: -5, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBook(tt.title, tt.author, tt.pages, "")
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error but got nil")
				}
				if !IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadBook(t *testing.T) {
	finished := date(2024, 5, 2)
	rating := 9

	b, err := LoadBook(7, "Dune", "Herbert", 412, "SF", false, 412, StatusRead, date(2024, 1, 1), &finished, &rating)
	if err != nil {
		t.Fatalf("Failed to load book: %v", err)
	}
	if b.ID() != 7 || !b.Persisted() {
		t.Errorf("Expected persisted book with id 7, got %d", b.ID())
	}

	if _, err := LoadBook(0, "Dune", "Herbert", 412, "SF", true, 0, StatusUnread, date(2024, 1, 1), nil, nil); err == nil {
		t.Error("Expected error when loading book without id")
	}

	if _, err := LoadBook(1, "Dune", "Herbert", 412, "SF", true, 10, StatusRead, date(2024, 1, 1), nil, nil); err == nil {
		t.Error("Expected error when loading READ book that is not at its last page")
	}
}

func TestSetIDOnce(t *testing.T) {
	b := newTestBook(t)

	if err := b.SetID(0); err == nil {
		t.Error("Expected error for non-positive id")
	}
	if err := b.SetID(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.SetID(4); !errors.Is(err, ErrBookAlreadyPersisted) {
		t.Errorf("Expected ErrBookAlreadyPersisted, got %v", err)
	}
	if b.ID() != 3 {
		t.Errorf("Expected id to stay 3, got %d", b.ID())
	}
}

func TestRate(t *testing.T) {
	for r := -2; r <= 12; r++ {
		b := newTestBook(t)
		prev := 5
		b.Rating = &prev

		err := b.Rate(r)
		valid := r >= 1 && r <= 10
		if valid {
			if err != nil {
				t.Errorf("Rate(%d): unexpected error: %v", r, err)
			}
			if b.Rating == nil || *b.Rating != r {
				t.Errorf("Rate(%d): rating not applied", r)
			}
			continue
		}
		if !IsValidationError(err) {
			t.Errorf("Rate(%d): expected ValidationError, got %v", r, err)
		}
		if b.Rating == nil || *b.Rating != prev {
			t.Errorf("Rate(%d): rating changed on failure", r)
		}
	}
}

func TestMarkRead(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		page   int
	}{
		{name: "From unread", status: StatusUnread, page: 0},
		{name: "From reading", status: StatusReading, page: 120},
		{name: "From read", status: StatusRead, page: 412},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withToday(t, date(2024, 6, 9))
			b := newTestBook(t)
			b.Status = tt.status
			b.CurrentPage = tt.page

			b.MarkRead()

			if b.Status != StatusRead {
				t.Errorf("Expected status READ, got %s", b.Status)
			}
			if b.CurrentPage != b.Pages {
				t.Errorf("Expected current page %d, got %d", b.Pages, b.CurrentPage)
			}
			if b.DateFinished == nil || !b.DateFinished.Equal(date(2024, 6, 9)) {
				t.Errorf("Expected finish date 2024-06-09, got %v", b.DateFinished)
			}
			if err := b.Validate(); err != nil {
				t.Errorf("book invalid after MarkRead: %v", err)
			}
		})
	}
}

func TestMarkReadAgainMovesFinishDate(t *testing.T) {
	withToday(t, date(2023, 1, 10))
	b := newTestBook(t)
	b.MarkRead()

	withToday(t, date(2024, 2, 20))
	b.MarkRead()

	if !b.DateFinished.Equal(date(2024, 2, 20)) {
		t.Errorf("Expected finish date to move to 2024-02-20, got %v", b.DateFinished)
	}
}

func TestMarkReadWithRating(t *testing.T) {
	b := newTestBook(t)
	if err := b.MarkReadWithRating(8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *b.Rating != 8 {
		t.Errorf("Expected rating 8, got %d", *b.Rating)
	}

	// re-finishing overwrites the rating
	if err := b.MarkReadWithRating(6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *b.Rating != 6 {
		t.Errorf("Expected rating 6, got %d", *b.Rating)
	}

	fresh := newTestBook(t)
	if err := fresh.MarkReadWithRating(11); !IsValidationError(err) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if fresh.Status != StatusUnread || fresh.DateFinished != nil || fresh.Rating != nil {
		t.Error("Expected book unchanged after invalid rating")
	}
}

func TestMarkUnreadKeepsHistory(t *testing.T) {
	b := newTestBook(t)
	if err := b.MarkReadWithRating(7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b.MarkUnread()

	if b.Status != StatusUnread {
		t.Errorf("Expected status UNREAD, got %s", b.Status)
	}
	if b.CurrentPage != b.Pages {
		t.Error("Expected current page to be kept")
	}
	if b.DateFinished == nil {
		t.Error("Expected finish date to be kept")
	}
	if b.Rating == nil || *b.Rating != 7 {
		t.Error("Expected rating to be kept")
	}
}

func TestUpdateProgress(t *testing.T) {
	tests := []struct {
		name        string
		status      Status
		page        int
		expectError bool
		wantStatus  Status
	}{
		{name: "Unread with progress starts reading", status: StatusUnread, page: 50, wantStatus: StatusReading},
		{name: "Unread at zero stays unread", status: StatusUnread, page: 0, wantStatus: StatusUnread},
		{name: "Reading stays reading", status: StatusReading, page: 100, wantStatus: StatusReading},
		{name: "Read moved back resumes reading", status: StatusRead, page: 10, wantStatus: StatusReading},
		{name: "Beyond last page", status: StatusUnread, page: 413, expectError: true, wantStatus: StatusUnread},
		{name: "Negative page", status: StatusReading, page: -1, expectError: true, wantStatus: StatusReading},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBook(t)
			if tt.status == StatusRead {
				b.MarkRead()
			}
			b.Status = tt.status
			before := b.CurrentPage

			err := b.UpdateProgress(tt.page)
			if tt.expectError {
				if !IsValidationError(err) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if b.CurrentPage != before {
					t.Error("current page changed on failure")
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			} else if b.CurrentPage != tt.page {
				t.Errorf("Expected current page %d, got %d", tt.page, b.CurrentPage)
			}
			if b.Status != tt.wantStatus {
				t.Errorf("Expected status %s, got %s", tt.wantStatus, b.Status)
			}
		})
	}
}

func TestOwnership(t *testing.T) {
	b := newTestBook(t)

	b.ToggleOwned()
	if b.Owned {
		t.Error("Expected not owned after toggle")
	}
	b.ToggleOwned()
	if !b.Owned {
		t.Error("Expected owned after second toggle")
	}
	b.SetOwned(false)
	if b.Owned {
		t.Error("Expected not owned after SetOwned(false)")
	}
	b.MarkOwned()
	if !b.Owned {
		t.Error("Expected owned after MarkOwned")
	}
	b.MarkNotOwned()
	if b.Owned {
		t.Error("Expected not owned after MarkNotOwned")
	}
}

func TestDescribe(t *testing.T) {
	b := newTestBook(t)
	want := "Dune by Frank Herbert | Science Fiction | UNREAD | 0/412 | Owned | N/A |"
	if got := b.Describe(); got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}

	if err := b.MarkReadWithRating(9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b.MarkNotOwned()
	want = "Dune by Frank Herbert | Science Fiction | READ | 412/412 | Not Owned | ✰9 |"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus(" reading ")
	if err != nil || st != StatusReading {
		t.Errorf("ParseStatus(reading) = %v, %v", st, err)
	}
	if _, err := ParseStatus("DONE"); err == nil {
		t.Error("Expected error for unknown status")
	}
}
