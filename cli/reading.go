package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stsysd/kirjasto/model"
)

// updateBook loads the book named by arg, applies mutate and persists it.
func (a *app) updateBook(cmd *cobra.Command, arg string, mutate func(*model.Book) error) error {
	book, err := a.loadBook(cmd.Context(), arg)
	if err != nil {
		return err
	}
	if err := mutate(book); err != nil {
		return err
	}
	if err := a.store.Update(cmd.Context(), book); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated #%d: %s\n", book.ID(), book.Describe())
	return nil
}

func newProgressCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id> <page>",
		Short: "Record the current page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := model.NewPageNumber(args[1])
			if err != nil {
				return err
			}
			return a.updateBook(cmd, args[0], func(b *model.Book) error {
				return b.UpdateProgress(page.Int())
			})
		},
	}
}

func newReadCommand(a *app) *cobra.Command {
	var (
		rating string
		on     string
	)
	cmd := &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a book as finished",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var finished *model.RatingValue
			if rating != "" {
				r, err := model.NewRatingValue(rating)
				if err != nil {
					return err
				}
				finished = r
			}
			return a.updateBook(cmd, args[0], func(b *model.Book) error {
				if finished != nil {
					if err := b.MarkReadWithRating(finished.Int()); err != nil {
						return err
					}
				} else {
					b.MarkRead()
				}
				if on != "" {
					date, err := model.ParseDate(on)
					if err != nil {
						return err
					}
					b.DateFinished = &date
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&rating, "rating", "", "rating from 1 to 10")
	cmd.Flags().StringVar(&on, "on", "", "date the book was finished (default today)")
	return cmd
}

func newUnreadCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unread <id>",
		Short: "Mark a book as unread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.updateBook(cmd, args[0], func(b *model.Book) error {
				b.MarkUnread()
				return nil
			})
		},
	}
}

func newRateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <id> <rating>",
		Short: "Rate a book from 1 to 10",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := model.NewRatingValue(args[1])
			if err != nil {
				return err
			}
			return a.updateBook(cmd, args[0], func(b *model.Book) error {
				return b.Rate(rating.Int())
			})
		},
	}
}

func newOwnCommand(a *app) *cobra.Command {
	var toggle, yes, no bool
	cmd := &cobra.Command{
		Use:   "own <id>",
		Short: "Change whether a copy is owned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !toggle && !yes && !no {
				return errors.New("one of --toggle, --yes or --no is required")
			}
			return a.updateBook(cmd, args[0], func(b *model.Book) error {
				switch {
				case toggle:
					b.ToggleOwned()
				case yes:
					b.MarkOwned()
				default:
					b.MarkNotOwned()
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&toggle, "toggle", false, "flip the owned flag")
	cmd.Flags().BoolVar(&yes, "yes", false, "mark as owned")
	cmd.Flags().BoolVar(&no, "no", false, "mark as not owned")
	cmd.MarkFlagsMutuallyExclusive("toggle", "yes", "no")
	return cmd
}
