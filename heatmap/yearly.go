package heatmap

import (
	"fmt"
	"html"
	"strings"
)

// GenerateYearlyHeatmapSVG returns an SVG string representing the yearly heatmap.
// Every day between From and To gets a cell; days missing from data count as 0.
// data should be sorted in ascending order by date.
func GenerateYearlyHeatmapSVG(data []Data, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}
	// work on a copy so the caller's options are left as given
	o := *opts
	opts = &o
	if len(opts.Colors) < 2 {
		opts.Colors = DefaultOptions().Colors
	}

	startDate, endDate := opts.From, opts.To
	if startDate.IsZero() && len(data) > 0 {
		startDate = data[0].Date
	}
	if endDate.IsZero() && len(data) > 0 {
		endDate = data[len(data)-1].Date
	}
	if startDate.IsZero() || endDate.IsZero() {
		return ""
	}
	startDate = truncateToMidnight(startDate)
	endDate = truncateToMidnight(endDate)
	if endDate.Before(startDate) {
		return ""
	}

	// map date string to count
	countMap := make(map[string]int, len(data))
	for _, d := range data {
		countMap[d.Date.Format("2006-01-02")] += d.Count
	}

	// align first column to Sunday
	firstSunday := startDate.AddDate(0, 0, -int(startDate.Weekday()))

	// calculate required number of weeks
	dayDiff := int(endDate.Sub(firstSunday).Hours() / 24)
	weeks := dayDiff/7 + 1

	// compute dimensions
	titleHeight := 0
	if opts.Title != "" {
		titleHeight = opts.FontSize + 8 // title text + padding
	}
	width := weeks*(opts.CellSize+opts.CellPadding) + opts.CellPadding
	height := 7*(opts.CellSize+opts.CellPadding) + opts.CellPadding + opts.FontSize + 4 + titleHeight

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height))
	sb.WriteString(fmt.Sprintf(`  <style>.label{font-family:%s;font-size:%dpx;fill:#666}.title{font-family:%s;font-size:%dpx;fill:#333;font-weight:bold}</style>`+"\n",
		opts.FontFamily, opts.FontSize, opts.FontFamily, opts.FontSize))

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="title">%s</text>`+"\n",
			opts.CellPadding, opts.FontSize, html.EscapeString(opts.Title)))
	}

	// month labels
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	lastMonth := -1
	monthLabelY := opts.FontSize + titleHeight
	for w := 0; w < weeks; w++ {
		x := opts.CellPadding + w*(opts.CellSize+opts.CellPadding)
		current := firstSunday.AddDate(0, 0, w*7)
		if current.Day() <= 7 && int(current.Month())-1 != lastMonth {
			sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="label">%s</text>`+"\n",
				x, monthLabelY, months[current.Month()-1]))
			lastMonth = int(current.Month()) - 1
		}
	}

	// find the maximum count for auto-scaling
	maxCount := 4
	for _, c := range countMap {
		maxCount = max(maxCount, c)
	}

	unit := opts.Unit
	if unit != "" {
		unit = " " + unit
	}

	levels := len(opts.Colors)
	for w := 0; w < weeks; w++ {
		for i := 0; i < 7; i++ {
			current := firstSunday.AddDate(0, 0, w*7+i)
			if current.Before(startDate) || current.After(endDate) {
				continue
			}
			key := current.Format("2006-01-02")
			count := countMap[key]

			// zero always uses level 0, positive counts spread over 1..levels-1
			level := 0
			if count > 0 {
				level = min((count-1)*(levels-2)/(maxCount-1)+1, levels-1)
			}
			x := opts.CellPadding + w*(opts.CellSize+opts.CellPadding)
			y := opts.CellPadding + opts.FontSize + 4 + titleHeight + i*(opts.CellSize+opts.CellPadding)

			sb.WriteString(fmt.Sprintf(`  <rect x="%d" y="%d" width="%d" height="%d" fill="%s" data-date="%s" data-count="%d">`+"\n",
				x, y, opts.CellSize, opts.CellSize, opts.Colors[level], key, count))
			sb.WriteString(fmt.Sprintf(`    <title>%s: %d%s</title>`+"\n", current.Format("Jan 2, 2006"), count, unit))
			sb.WriteString(`  </rect>` + "\n")
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// RenderYear draws the whole calendar year with the given counts.
func RenderYear(year int, data []Data, title, unit string) string {
	opts := DefaultOptions()
	opts.From, opts.To = YearRange(year)
	opts.Title = title
	opts.Unit = unit
	return GenerateYearlyHeatmapSVG(data, opts)
}
