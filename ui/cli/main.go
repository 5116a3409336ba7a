// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, its persistent flags and the shared
// startup sequence (config, logging, i18n) every subcommand runs through.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/transferlist/buildvars"
	"github.com/toeirei/transferlist/core/catalog"
	"github.com/toeirei/transferlist/core/model"
	"github.com/toeirei/transferlist/core/transfer"
	"github.com/toeirei/transferlist/internal/config"
	"github.com/toeirei/transferlist/internal/db"
	"github.com/toeirei/transferlist/internal/i18n"
	"github.com/toeirei/transferlist/internal/logging"
	"github.com/toeirei/transferlist/ui/tui"
	"golang.org/x/term"
)

// isTerminal is swapped out in tests.
var isTerminal = term.IsTerminal

// runTUI is swapped out in tests.
var runTUI = tui.Run

// app carries what the startup sequence resolved to the subcommands.
type app struct {
	cfg     config.Config
	verbose bool
	store   *db.BunStore
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "transferlist",
		Short: "Move items between a source and a target list.",
		Long: `Transferlist shows two lists side by side. Every item starts in the
source list; tick items in either list and move the selection across.

Running without a subcommand launches the interactive TUI when stdout is a
terminal and prints the initial lists otherwise.`,
		Version:           buildvars.Full(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runRoot,
	}

	defaults := config.Defaults()
	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output (logs database statements)")
	flags.String("language", defaults["language"].(string), `UI language ("en", "de")`)
	flags.String("log.level", defaults["log.level"].(string), "Log level (debug, info, warn, error)")
	flags.String("catalog.source", defaults["catalog.source"].(string), "Where items come from: mock, file or db")
	flags.String("catalog.path", "", "Catalog file for --catalog.source=file (.yaml, .json, optionally .zst)")
	flags.Int("catalog.count", defaults["catalog.count"].(int), "Number of generated items for --catalog.source=mock")
	flags.String("database.type", defaults["database.type"].(string), "Database type (sqlite, postgres, mysql)")
	flags.String("database.dsn", defaults["database.dsn"].(string), "Database connection string (DSN)")

	cmd.AddCommand(
		a.newShowCmd(),
		a.newApplyCmd(),
		a.newCatalogCmd(),
		newVersionCmd(),
	)

	return cmd
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// setup loads the configuration and initialises logging and i18n.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.cfg, err = config.LoadConfig[config.Config](cmd, config.Defaults(), path)
	var notFound viper.ConfigFileNotFoundError
	switch {
	case errors.As(err, &notFound):
		// First run: persist the defaults so users have a file to edit.
		if writeErr := config.WriteConfigFile(&a.cfg, false); writeErr != nil {
			logging.Warnf("%s", i18n.T("config.error_write_default", writeErr))
		} else {
			logging.Infof("%s", i18n.T("config.wrote_default"))
		}
	case err != nil:
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := logging.SetLevel(a.cfg.Log.Level); err != nil {
		return err
	}
	i18n.Init(a.cfg.Language)
	db.SetDebug(a.verbose)
	return nil
}

// openStore opens the catalog database once per command.
func (a *app) openStore() (*db.BunStore, error) {
	if a.store != nil {
		return a.store, nil
	}
	store, err := db.NewStoreFromDSN(a.cfg.Database.Type, a.cfg.Database.Dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open the catalog database: %w", err)
	}
	a.store = store
	return store, nil
}

func (a *app) closeStore() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		logging.Warnf("closing catalog database: %v", err)
	}
	a.store = nil
}

// loadItems reads the item universe from the configured catalog source.
func (a *app) loadItems(ctx context.Context) ([]model.Item, error) {
	var lister catalog.ItemLister
	if strings.EqualFold(a.cfg.Catalog.Source, catalog.SourceDB) {
		store, err := a.openStore()
		if err != nil {
			return nil, err
		}
		lister = store
	}

	loader, err := catalog.New(catalog.Options{
		Source: a.cfg.Catalog.Source,
		Path:   a.cfg.Catalog.Path,
		Count:  a.cfg.Catalog.Count,
	}, lister)
	if err != nil {
		return nil, err
	}
	return loader.Load(ctx)
}

func (a *app) newState(ctx context.Context) (*transfer.State, error) {
	defer a.closeStore()
	items, err := a.loadItems(ctx)
	if err != nil {
		return nil, err
	}
	logging.Debugf("catalog %q loaded %d items", a.cfg.Catalog.Source, len(items))
	return transfer.New(items)
}

// runRoot starts the TUI, or prints the initial lists when stdout is not a
// terminal.
func (a *app) runRoot(cmd *cobra.Command, _ []string) error {
	st, err := a.newState(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	f, ok := out.(*os.File)
	if !ok || !isTerminal(int(f.Fd())) {
		return writeState(out, st.Snapshot(), formatTable)
	}

	restore, err := a.redirectLogs()
	if err != nil {
		return err
	}
	defer restore()
	return runTUI(st)
}

// redirectLogs keeps log output from corrupting the TUI: logs go to the
// configured file or are dropped.
func (a *app) redirectLogs() (func(), error) {
	restore := func() { logging.SetOutput(os.Stderr) }
	if a.cfg.Log.File == "" {
		logging.SetOutput(io.Discard)
		return restore, nil
	}
	f, err := os.OpenFile(a.cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	logging.SetOutput(f)
	return func() {
		restore()
		_ = f.Close()
	}, nil
}
