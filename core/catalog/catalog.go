// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

// Package catalog provides the item universe a transfer list is seeded with.
// Items can be generated, read from a YAML/JSON file (optionally zstd
// compressed) or read from the item catalog database.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/toeirei/transferlist/core/model"
)

// ErrUnknownSource is returned by New for an unrecognised source kind.
var ErrUnknownSource = errors.New("unknown catalog source")

// Source kinds accepted by New.
const (
	SourceMock = "mock"
	SourceFile = "file"
	SourceDB   = "db"
)

// Loader produces an ordered, id-unique item sequence.
type Loader interface {
	Load(ctx context.Context) ([]model.Item, error)
}

// ItemLister is the subset of the catalog store used by the DB loader.
type ItemLister interface {
	ListItems(ctx context.Context) ([]model.Item, error)
}

// Options selects and configures a loader.
type Options struct {
	Source string
	Path   string
	Count  int
}

// New returns the loader named by opts.Source. The store is only consulted
// for the "db" source and may be nil otherwise.
func New(opts Options, store ItemLister) (Loader, error) {
	switch strings.ToLower(opts.Source) {
	case "", SourceMock:
		return Mock{Count: opts.Count}, nil
	case SourceFile:
		if opts.Path == "" {
			return nil, errors.New("catalog source 'file' requires a path")
		}
		return File{Path: opts.Path}, nil
	case SourceDB:
		if store == nil {
			return nil, errors.New("catalog source 'db' requires a database")
		}
		return DB{Store: store}, nil
	default:
		return nil, fmt.Errorf("%q: %w", opts.Source, ErrUnknownSource)
	}
}

// DB loads items from the catalog database.
type DB struct {
	Store ItemLister
}

func (d DB) Load(ctx context.Context) ([]model.Item, error) {
	items, err := d.Store.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list catalog items: %w", err)
	}
	return items, nil
}
