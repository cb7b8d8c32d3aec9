// Package cli implements the kirjasto command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Songmu/prompter"
	"github.com/spf13/cobra"
	"github.com/stsysd/kirjasto/config"
	"github.com/stsysd/kirjasto/db"
	"github.com/stsysd/kirjasto/store"
)

// app is the state shared by every command of one invocation.
type app struct {
	configPath string
	dbPath     string
	logLevel   string

	cfg   *config.Config
	store store.BookStore

	logOutput io.Writer
	confirm   func(msg string) bool
}

func newApp() *app {
	return &app{
		logOutput: os.Stderr,
		confirm: func(msg string) bool {
			return prompter.YN(msg, false)
		},
	}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "kirjasto",
		Short:         "Keep track of the books you own and read",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !usesStore(cmd) {
				return nil
			}
			return a.setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path of the YAML config file")
	flags.StringVar(&a.dbPath, "db", "", "path of the SQLite database file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newAddCommand(a),
		newListCommand(a),
		newShowCommand(a),
		newSearchCommand(a),
		newProgressCommand(a),
		newReadCommand(a),
		newUnreadCommand(a),
		newRateCommand(a),
		newOwnCommand(a),
		newDeleteCommand(a),
		newClearCommand(a),
		newResetCommand(a),
		newStatsCommand(a),
		newYearCommand(a),
		newHeatmapCommand(a),
	)
	return root
}

// usesStore reports whether cmd needs the configuration and the store.
// Help and shell completion run without touching the database.
func usesStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

// setup loads the configuration, applies flag overrides and opens the store.
func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.DatabasePath = a.dbPath
	}
	if a.logLevel != "" {
		cfg.LogLevel = strings.ToLower(a.logLevel)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	logger := InitLogger(cfg.LogLevel, a.logOutput)
	logger.DebugContext(ctx, "configuration loaded", "db", cfg.DatabasePath, "default_year", cfg.DefaultYear)

	s, err := store.NewSQLiteStore(cfg.DatabasePath, db.Migrate, db.Reset)
	if err != nil {
		return err
	}
	a.store = s
	return nil
}

func (a *app) teardown() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := newApp()
	a.logOutput = stderr

	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	// PersistentPostRunE is skipped when RunE fails
	if cerr := a.teardown(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
