package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCommand(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !force && !a.confirm("Remove every book from the library?") {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
			n, err := a.store.ClearAll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Removed %d books\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "do not ask for confirmation")
	return cmd
}

func newResetCommand(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop and recreate the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !force && !a.confirm("Drop all data and recreate the schema?") {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
			if err := a.store.ResetSchema(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out, "Schema reset")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "do not ask for confirmation")
	return cmd
}
