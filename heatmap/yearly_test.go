package heatmap

import (
	"strings"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateYearlyHeatmapSVG_NoFutureDates(t *testing.T) {
	// 2025-01-15 is a Wednesday; the rest of that week must not be drawn
	data := []Data{
		{Date: day(2025, 1, 5), Count: 120},
		{Date: day(2025, 1, 10), Count: 300},
		{Date: day(2025, 1, 15), Count: 80},
	}

	opts := DefaultOptions()
	opts.From = day(2025, 1, 1)
	opts.To = day(2025, 1, 15)

	svg := GenerateYearlyHeatmapSVG(data, opts)

	if !strings.Contains(svg, "<svg") {
		t.Fatal("Expected SVG to be generated")
	}
	if !strings.Contains(svg, `data-date="2025-01-15"`) {
		t.Error("Expected end date 2025-01-15 to be included")
	}
	for _, d := range []string{"2025-01-16", "2025-01-17", "2025-01-18"} {
		if strings.Contains(svg, `data-date="`+d+`"`) {
			t.Errorf("Date %s after the range should not be included", d)
		}
	}
	// 2024-12-29 is the Sunday the first column is aligned to
	if strings.Contains(svg, `data-date="2024-12-31"`) {
		t.Error("Date before the range should not be included")
	}
}

func TestGenerateYearlyHeatmapSVG_FillsEmptyDays(t *testing.T) {
	data := []Data{
		{Date: day(2025, 3, 2), Count: 250},
	}
	opts := DefaultOptions()
	opts.From = day(2025, 3, 1)
	opts.To = day(2025, 3, 7)
	opts.Unit = "pages"

	svg := GenerateYearlyHeatmapSVG(data, opts)

	if got := strings.Count(svg, "<rect"); got != 7 {
		t.Errorf("Expected 7 cells, got %d", got)
	}
	if !strings.Contains(svg, `data-date="2025-03-03" data-count="0"`) {
		t.Error("Expected empty day to be drawn with count 0")
	}
	if !strings.Contains(svg, `fill="#f0f0f0" data-date="2025-03-01"`) {
		t.Error("Expected empty day to use the first color")
	}
	if !strings.Contains(svg, "<title>Mar 2, 2025: 250 pages</title>") {
		t.Error("Expected tooltip with count and unit")
	}
}

func TestGenerateYearlyHeatmapSVG_RangeFromData(t *testing.T) {
	data := []Data{
		{Date: day(2025, 6, 10), Count: 1},
		{Date: day(2025, 6, 12), Count: 2},
	}
	svg := GenerateYearlyHeatmapSVG(data, nil)

	if got := strings.Count(svg, "<rect"); got != 3 {
		t.Errorf("Expected 3 cells, got %d", got)
	}
	if !strings.Contains(svg, `data-date="2025-06-11" data-count="0"`) {
		t.Error("Expected day between data points")
	}
}

func TestGenerateYearlyHeatmapSVG_Empty(t *testing.T) {
	if svg := GenerateYearlyHeatmapSVG(nil, nil); svg != "" {
		t.Errorf("Expected empty output without data or range, got %q", svg)
	}

	opts := DefaultOptions()
	opts.From = day(2025, 2, 1)
	opts.To = day(2025, 1, 1)
	if svg := GenerateYearlyHeatmapSVG(nil, opts); svg != "" {
		t.Errorf("Expected empty output for inverted range, got %q", svg)
	}
}

func TestGenerateYearlyHeatmapSVG_ColorLevels(t *testing.T) {
	opts := DefaultOptions()
	opts.From = day(2025, 1, 1)
	opts.To = day(2025, 1, 3)

	data := []Data{
		{Date: day(2025, 1, 1), Count: 1},
		{Date: day(2025, 1, 2), Count: 1000},
	}
	svg := GenerateYearlyHeatmapSVG(data, opts)

	if !strings.Contains(svg, `fill="#c6e48b" data-date="2025-01-01"`) {
		t.Error("Expected smallest positive count to use the second color")
	}
	if !strings.Contains(svg, `fill="#0d4429" data-date="2025-01-02"`) {
		t.Error("Expected the maximum count to use the last color")
	}
	if !strings.Contains(svg, `fill="#f0f0f0" data-date="2025-01-03"`) {
		t.Error("Expected zero count to use the first color")
	}
}

func TestGenerateYearlyHeatmapSVG_TitleEscaped(t *testing.T) {
	opts := DefaultOptions()
	opts.From = day(2025, 1, 1)
	opts.To = day(2025, 1, 1)
	opts.Title = "Pages read <2025>"

	svg := GenerateYearlyHeatmapSVG(nil, opts)
	if !strings.Contains(svg, "Pages read &lt;2025&gt;") {
		t.Error("Expected escaped title")
	}
}

func TestRenderYear(t *testing.T) {
	svg := RenderYear(2024, []Data{{Date: day(2024, 2, 29), Count: 3}}, "2024", "books")

	// leap year
	if got := strings.Count(svg, "<rect"); got != 366 {
		t.Errorf("Expected 366 cells, got %d", got)
	}
	if !strings.Contains(svg, ">Jan<") || !strings.Contains(svg, ">Dec<") {
		t.Error("Expected month labels for the whole year")
	}
	if !strings.Contains(svg, "<title>Feb 29, 2024: 3 books</title>") {
		t.Error("Expected tooltip for leap day")
	}
}

func TestGenerateYearlyHeatmapSVG_DoesNotModifyOptions(t *testing.T) {
	opts := &Options{
		CellSize:    10,
		CellPadding: 1,
		FontSize:    8,
		FontFamily:  "monospace",
		Colors:      []string{"#000000"},
		From:        day(2025, 1, 1),
		To:          day(2025, 1, 7),
	}

	svg := GenerateYearlyHeatmapSVG([]Data{{Date: day(2025, 1, 2), Count: 5}}, opts)

	if !strings.Contains(svg, `fill="#f0f0f0"`) {
		t.Error("Expected default colors when too few are given")
	}
	if len(opts.Colors) != 1 || opts.Colors[0] != "#000000" {
		t.Errorf("Expected caller's colors to be untouched, got %v", opts.Colors)
	}
}
