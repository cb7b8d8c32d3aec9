// Package heatmap renders reading activity as GitHub-like SVG heatmaps.
package heatmap

import (
	"time"
)

// Data holds the date and count for each day.
type Data struct {
	Date  time.Time
	Count int
}

// Options configures rendering parameters.
type Options struct {
	CellSize    int       // size of each day cell (px)
	CellPadding int       // padding between cells (px)
	Colors      []string  // array of N CSS colors for levels 0..N-1
	FontSize    int       // font size for month labels (px)
	FontFamily  string    // font family for labels
	Title       string    // optional title line
	Unit        string    // unit shown in tooltips, e.g. "pages"
	From        time.Time // first day drawn; defaults to the first data point
	To          time.Time // last day drawn; defaults to the last data point
}

// DefaultOptions returns the options used when nil is passed.
func DefaultOptions() *Options {
	return &Options{
		CellSize:    12,
		CellPadding: 2,
		FontSize:    10,
		FontFamily:  "sans-serif",
		Colors:      []string{"#f0f0f0", "#c6e48b", "#7bc96f", "#239a3b", "#196127", "#0d4429"},
	}
}

// YearRange returns the first and last day of year.
func YearRange(year int) (time.Time, time.Time) {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// truncateToMidnight zeroes time component
func truncateToMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
