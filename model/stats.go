package model

import (
	"slices"
	"time"

	"github.com/samber/lo"
)

// Stats aggregates the whole library.
type Stats struct {
	TotalBooks int
	Owned      int
	NotOwned   int
	Unread     int
	Reading    int
	Finished   int
	// PagesRead sums the current page of every book, partial progress included.
	PagesRead int
	// AverageRating is nil when no book is rated.
	AverageRating *float64
}

// Ownership splits a set of books by the owned flag.
type Ownership struct {
	Owned    int
	NotOwned int
}

// YearlySummary aggregates the books finished in one calendar year.
type YearlySummary struct {
	Year          int
	BooksFinished int
	// PagesRead sums the total page count of the finished books.
	PagesRead     int
	Ownership     Ownership
	AverageRating *float64
}

// DailyCount is the number of books and pages finished on one day.
type DailyCount struct {
	Date  time.Time
	Books int
	Pages int
}

// ComputeStats aggregates a snapshot of the library.
func ComputeStats(books []*Book) *Stats {
	owned := lo.CountBy(books, func(b *Book) bool { return b.Owned })
	return &Stats{
		TotalBooks:    len(books),
		Owned:         owned,
		NotOwned:      len(books) - owned,
		Unread:        countStatus(books, StatusUnread),
		Reading:       countStatus(books, StatusReading),
		Finished:      countStatus(books, StatusRead),
		PagesRead:     lo.SumBy(books, func(b *Book) int { return b.CurrentPage }),
		AverageRating: averageRating(books),
	}
}

// ComputeYearlySummary aggregates the books with status READ whose finish
// date falls in year.
func ComputeYearlySummary(books []*Book, year int) *YearlySummary {
	finished := FinishedIn(books, year)
	owned := lo.CountBy(finished, func(b *Book) bool { return b.Owned })
	return &YearlySummary{
		Year:          year,
		BooksFinished: len(finished),
		PagesRead:     lo.SumBy(finished, func(b *Book) int { return b.Pages }),
		Ownership: Ownership{
			Owned:    owned,
			NotOwned: len(finished) - owned,
		},
		AverageRating: averageRating(finished),
	}
}

// ComputeFinishedPerDay counts the books finished on each day of year,
// in ascending date order. Days without a finished book are omitted.
func ComputeFinishedPerDay(books []*Book, year int) []DailyCount {
	byDay := lo.GroupBy(FinishedIn(books, year), func(b *Book) time.Time {
		return DateOf(*b.DateFinished)
	})
	counts := make([]DailyCount, 0, len(byDay))
	for day, bs := range byDay {
		counts = append(counts, DailyCount{
			Date:  day,
			Books: len(bs),
			Pages: lo.SumBy(bs, func(b *Book) int { return b.Pages }),
		})
	}
	slices.SortFunc(counts, func(a, b DailyCount) int {
		return a.Date.Compare(b.Date)
	})
	return counts
}

// FinishedIn returns the READ books finished in year.
func FinishedIn(books []*Book, year int) []*Book {
	return lo.Filter(books, func(b *Book, _ int) bool {
		return b.Status == StatusRead && b.DateFinished != nil && b.DateFinished.Year() == year
	})
}

func countStatus(books []*Book, status Status) int {
	return lo.CountBy(books, func(b *Book) bool { return b.Status == status })
}

func averageRating(books []*Book) *float64 {
	ratings := lo.FilterMap(books, func(b *Book, _ int) (int, bool) {
		if b.Rating == nil {
			return 0, false
		}
		return *b.Rating, true
	})
	if len(ratings) == 0 {
		return nil
	}
	avg := float64(lo.Sum(ratings)) / float64(len(ratings))
	return &avg
}
