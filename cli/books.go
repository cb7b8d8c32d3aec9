package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/stsysd/kirjasto/model"
)

// loadBook resolves a user supplied id to a stored book.
func (a *app) loadBook(ctx context.Context, arg string) (*model.Book, error) {
	id, err := model.NewBookID(arg)
	if err != nil {
		return nil, err
	}
	return a.store.GetBook(ctx, id.Int64())
}

func statusNames() string {
	return strings.Join(lo.Map(model.Statuses, func(s model.Status, _ int) string {
		return strings.ToLower(s.String())
	}), ", ")
}

func newAddCommand(a *app) *cobra.Command {
	var (
		notOwned bool
		added    string
	)
	cmd := &cobra.Command{
		Use:   "add <title> <author> <pages> <genre>",
		Short: "Add a book to the library",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageCount, err := model.NewPageCount(args[2])
			if err != nil {
				return err
			}
			book, err := model.NewBook(args[0], args[1], pageCount.Int(), args[3])
			if err != nil {
				return err
			}
			if notOwned {
				book.MarkNotOwned()
			}
			if added != "" {
				date, err := model.ParseDate(added)
				if err != nil {
					return err
				}
				book.DateAdded = date
			}

			if err := a.store.AddBook(cmd.Context(), book); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added #%d: %s\n", book.ID(), book.Describe())
			return nil
		},
	}
	cmd.Flags().BoolVar(&notOwned, "not-owned", false, "record that no copy is owned")
	cmd.Flags().StringVar(&added, "added", "", "date the book was added (default today)")
	return cmd
}

func newListCommand(a *app) *cobra.Command {
	var (
		filter model.Filter
		status string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if status != "" {
				st, err := model.ParseStatus(status)
				if err != nil {
					return err
				}
				filter.Status = st
			}
			books, err := a.store.GetAllBooks(cmd.Context())
			if err != nil {
				return err
			}
			return renderBooks(cmd.OutOrStdout(), filter.Apply(books))
		},
	}
	cmd.Flags().StringVar(&filter.Title, "title", "", "only books whose title contains this text")
	cmd.Flags().StringVar(&filter.Author, "author", "", "only books whose author contains this text")
	cmd.Flags().StringVar(&filter.Genre, "genre", "", "only books whose genre contains this text")
	cmd.Flags().StringVar(&status, "status", "", "only books with this status ("+statusNames()+")")
	return cmd
}

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := a.loadBook(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderBookDetail(cmd.OutOrStdout(), book)
		},
	}
}

func newSearchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search title, author and genre",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := a.store.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderBooks(cmd.OutOrStdout(), books)
		},
	}
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := model.NewBookID(args[0])
			if err != nil {
				return err
			}
			if err := a.store.DeleteBook(cmd.Context(), id.Int64()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted #%d\n", id.Int64())
			return nil
		},
	}
}
