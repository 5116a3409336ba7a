// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db contains the item catalog data-access layer used by
// Transferlist.
//
// The catalog is a single bun-backed table holding the item universe a
// transfer list is seeded with. It supports SQLite (modernc.org/sqlite),
// PostgreSQL (pgx stdlib) and MySQL. Pane membership and selections are
// never written here; they only live in memory for the lifetime of a widget.
//
// Testing notes
//   - Prefer `db.NewStoreFromDSN("sqlite", ":memory:")` in tests that need
//     real DB semantics; in-memory SQLite is forced onto a single connection.
package db
