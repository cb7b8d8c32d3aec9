package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stsysd/kirjasto/heatmap"
	"github.com/stsysd/kirjasto/model"
)

// year resolves an optional year argument, falling back to the configured default.
func (a *app) year(args []string) (int, error) {
	if len(args) == 0 {
		return a.cfg.DefaultYear, nil
	}
	y, err := model.NewYear(args[0])
	if err != nil {
		return 0, err
	}
	return y.Int(), nil
}

func newStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show library statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.store.GetStats(cmd.Context())
			if err != nil {
				return err
			}
			return renderPairs(cmd.OutOrStdout(), []string{"Metric", "Value"}, [][]string{
				{"Total books", strconv.Itoa(stats.TotalBooks)},
				{"Owned", strconv.Itoa(stats.Owned)},
				{"Not owned", strconv.Itoa(stats.NotOwned)},
				{"Unread", strconv.Itoa(stats.Unread)},
				{"Reading", strconv.Itoa(stats.Reading)},
				{"Finished", strconv.Itoa(stats.Finished)},
				{"Pages read", pages(stats.PagesRead)},
				{"Average rating", formatAverage(stats.AverageRating)},
			})
		},
	}
}

func newYearCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "year [year]",
		Short: "Summarize the books finished in a year",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := a.year(args)
			if err != nil {
				return err
			}
			summary, err := a.store.YearlySummary(cmd.Context(), year)
			if err != nil {
				return err
			}
			return renderPairs(cmd.OutOrStdout(), []string{"Metric", "Value"}, [][]string{
				{"Year", strconv.Itoa(summary.Year)},
				{"Books finished", strconv.Itoa(summary.BooksFinished)},
				{"Pages read", pages(summary.PagesRead)},
				{"Owned", strconv.Itoa(summary.Ownership.Owned)},
				{"Not owned", strconv.Itoa(summary.Ownership.NotOwned)},
				{"Average rating", formatAverage(summary.AverageRating)},
			})
		},
	}
}

func newHeatmapCommand(a *app) *cobra.Command {
	var (
		output string
		unit   string
	)
	cmd := &cobra.Command{
		Use:   "heatmap [year]",
		Short: "Render the books finished in a year as an SVG heatmap",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := a.year(args)
			if err != nil {
				return err
			}
			counts, err := a.store.FinishedPerDay(cmd.Context(), year)
			if err != nil {
				return err
			}

			var data []heatmap.Data
			switch unit {
			case "pages":
				data = lo.Map(counts, func(c model.DailyCount, _ int) heatmap.Data {
					return heatmap.Data{Date: c.Date, Count: c.Pages}
				})
			case "books":
				data = lo.Map(counts, func(c model.DailyCount, _ int) heatmap.Data {
					return heatmap.Data{Date: c.Date, Count: c.Books}
				})
			default:
				return fmt.Errorf("unknown unit %q, use pages or books", unit)
			}

			svg := heatmap.RenderYear(year, data, fmt.Sprintf("Reading in %d", year), unit)
			if output == "" || output == "-" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), svg)
				return err
			}
			if err := os.WriteFile(output, []byte(svg), 0o644); err != nil {
				return fmt.Errorf("failed to write heatmap: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the SVG to this file instead of stdout")
	cmd.Flags().StringVar(&unit, "unit", "pages", "what each cell counts: pages or books")
	return cmd
}
