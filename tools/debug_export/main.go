// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

// debug_export dumps the item catalog database as YAML. Without -dsn it
// seeds an in-memory SQLite database with generated items first, which makes
// it a quick end-to-end probe of the store.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/toeirei/transferlist/core/catalog"
	"github.com/toeirei/transferlist/core/model"
	"github.com/toeirei/transferlist/internal/db"
	"gopkg.in/yaml.v3"
)

func main() {
	dbType := flag.String("type", "sqlite", "database type (sqlite, postgres, mysql)")
	dsn := flag.String("dsn", "", "database DSN; empty seeds an in-memory database")
	seed := flag.Int("seed", 5, "number of generated items when no DSN is given")
	flag.Parse()

	if err := run(context.Background(), os.Stdout, *dbType, *dsn, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "debug_export: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, dbType, dsn string, seed int) error {
	if dsn == "" {
		dbType, dsn = "sqlite", ":memory:"
	}
	store, err := db.NewStoreFromDSN(dbType, dsn)
	if err != nil {
		return err
	}
	defer store.Close()

	if dsn == ":memory:" {
		if err := store.InsertItems(ctx, catalog.MockItems(seed)); err != nil {
			return err
		}
	}

	items, err := store.ListItems(ctx)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(model.CatalogData{SchemaVersion: model.CatalogSchemaVersion, Items: items}); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	fmt.Fprintf(w, "# %s: %d items\n", store.Type(), len(items))
	return nil
}
