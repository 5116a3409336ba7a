// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"

	"github.com/toeirei/transferlist/core/model"
	"github.com/uptrace/bun"
)

// ItemModel is the bun mapping of the items table.
type ItemModel struct {
	bun.BaseModel `bun:"table:items"`
	ID            int    `bun:"id,pk"`
	Text          string `bun:"text,notnull"`
	Description   string `bun:"description"`
}

func itemModelToModel(im ItemModel) model.Item {
	return model.Item{ID: im.ID, Text: im.Text, Description: im.Description}
}

// BunStore is the catalog store shared by all supported backends.
type BunStore struct {
	bun    *bun.DB
	dbType string
}

// Type returns the configured database type.
func (s *BunStore) Type() string { return s.dbType }

// ListItems returns every catalog item ordered by id.
func (s *BunStore) ListItems(ctx context.Context) ([]model.Item, error) {
	var rows []ItemModel
	if err := s.bun.NewSelect().Model(&rows).OrderExpr("id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.Item, 0, len(rows))
	for _, r := range rows {
		out = append(out, itemModelToModel(r))
	}
	return out, nil
}

// CountItems returns the number of catalog items.
func (s *BunStore) CountItems(ctx context.Context) (int, error) {
	return s.bun.NewSelect().Model((*ItemModel)(nil)).Count(ctx)
}

// InsertItems inserts items and fails with ErrDuplicate if any id exists.
func (s *BunStore) InsertItems(ctx context.Context, items []model.Item) error {
	if len(items) == 0 {
		return nil
	}
	rows := toRows(items)
	_, err := s.bun.NewInsert().Model(&rows).Exec(ctx)
	return MapDBError(err)
}

// UpsertItems inserts items, replacing text and description of existing ids.
// All rows are written in a single transaction.
func (s *BunStore) UpsertItems(ctx context.Context, items []model.Item) error {
	if len(items) == 0 {
		return nil
	}
	rows := toRows(items)
	return s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		q := tx.NewInsert().Model(&rows)
		if s.dbType == "mysql" {
			q = q.On("DUPLICATE KEY UPDATE").
				Set("text = VALUES(text)").
				Set("description = VALUES(description)")
		} else {
			q = q.On("CONFLICT (id) DO UPDATE").
				Set("text = EXCLUDED.text").
				Set("description = EXCLUDED.description")
		}
		if _, err := q.Exec(ctx); err != nil {
			return fmt.Errorf("upsert items: %w", err)
		}
		dbLogf("db: upserted %d items", len(rows))
		return nil
	})
}

// Close releases the underlying connection pool.
func (s *BunStore) Close() error {
	return s.bun.Close()
}

func toRows(items []model.Item) []ItemModel {
	rows := make([]ItemModel, 0, len(items))
	for _, it := range items {
		rows = append(rows, ItemModel{ID: it.ID, Text: it.Text, Description: it.Description})
	}
	return rows
}
