// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/transferlist/core/catalog"
	"github.com/toeirei/transferlist/internal/i18n"
)

func (a *app) newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the item catalog",
	}
	cmd.AddCommand(a.newCatalogImportCmd(), a.newCatalogExportCmd())
	return cmd
}

func (a *app) newCatalogImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Load a catalog file into the database",
		Long: `Reads items from a .yaml, .yml or .json file (optionally zstd compressed
with a trailing .zst) and upserts them into the catalog database. Existing
items with the same id are overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := catalog.ReadFile(args[0])
			if err != nil {
				return err
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer a.closeStore()

			if err := store.UpsertItems(cmd.Context(), items); err != nil {
				return fmt.Errorf("could not import catalog: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.imported", len(items), store.Type()))
			return nil
		},
	}
}

func (a *app) newCatalogExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the configured catalog to a file",
		Long: `Writes the items of the configured catalog source to a file. The format
follows the extension (.yaml, .yml, .json); a trailing .zst compresses the
output with zstd.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.closeStore()
			items, err := a.loadItems(cmd.Context())
			if err != nil {
				return err
			}
			if err := catalog.WriteFile(args[0], items); err != nil {
				return fmt.Errorf("could not export catalog: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.exported", len(items), args[0]))
			return nil
		},
	}
}
