package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/stsysd/kirjasto/model"
)

var bookHeader = []string{"ID", "Title", "Author", "Genre", "Status", "Progress", "Owned", "Rating"}

func bookRow(b *model.Book) []string {
	return []string{
		strconv.FormatInt(b.ID(), 10),
		b.Title,
		b.Author,
		b.Genre,
		b.Status.String(),
		b.Progress(),
		b.OwnedLabel(),
		b.RatingLabel(),
	}
}

func renderBooks(w io.Writer, books []*model.Book) error {
	if len(books) == 0 {
		_, err := fmt.Fprintln(w, "No books found.")
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header(bookHeader)
	for _, b := range books {
		if err := table.Append(bookRow(b)); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderPairs(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func pages(n int) string {
	return humanize.Comma(int64(n))
}

func formatAverage(avg *float64) string {
	if avg == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*avg, 'f', 2, 64)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(model.DateLayout)
}

func renderBookDetail(w io.Writer, b *model.Book) error {
	rows := [][]string{
		{"ID", strconv.FormatInt(b.ID(), 10)},
		{"Title", b.Title},
		{"Author", b.Author},
		{"Genre", b.Genre},
		{"Pages", pages(b.Pages)},
		{"Status", b.Status.String()},
		{"Progress", b.Progress()},
		{"Owned", b.OwnedLabel()},
		{"Rating", b.RatingLabel()},
		{"Added", b.DateAdded.Format(model.DateLayout)},
		{"Finished", formatDate(b.DateFinished)},
	}
	return renderPairs(w, []string{"Field", "Value"}, rows)
}
