// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/transferlist/core/model"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for file extensions other than
// .yaml, .yml and .json (each optionally followed by .zst).
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// File loads items from a catalog file.
type File struct {
	Path string
}

func (f File) Load(_ context.Context) ([]model.Item, error) {
	return ReadFile(f.Path)
}

type format int

const (
	formatYAML format = iota
	formatJSON
)

// detectFormat inspects the file name and reports the encoding and whether
// the content is zstd compressed.
func detectFormat(path string) (format, bool, error) {
	name := strings.ToLower(filepath.Base(path))
	compressed := strings.HasSuffix(name, ".zst")
	name = strings.TrimSuffix(name, ".zst")

	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return formatYAML, compressed, nil
	case ".json":
		return formatJSON, compressed, nil
	default:
		return 0, false, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// ReadFile reads and decodes a catalog file.
func ReadFile(path string) ([]model.Item, error) {
	fmtKind, compressed, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open catalog: %w", err)
	}
	defer func() { _ = file.Close() }()

	var r io.Reader = file
	if compressed {
		zr, err := zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("could not create zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	return decode(r, fmtKind)
}

func decode(r io.Reader, fmtKind format) ([]model.Item, error) {
	var data model.CatalogData
	switch fmtKind {
	case formatJSON:
		if err := json.NewDecoder(r).Decode(&data); err != nil {
			return nil, fmt.Errorf("could not decode json catalog: %w", err)
		}
	default:
		if err := yaml.NewDecoder(r).Decode(&data); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("could not decode yaml catalog: %w", err)
		}
	}
	if data.SchemaVersion > model.CatalogSchemaVersion {
		return nil, fmt.Errorf("catalog schema version %d is newer than supported version %d", data.SchemaVersion, model.CatalogSchemaVersion)
	}
	return data.Items, nil
}

// WriteFile encodes items into path, picking the encoding from the file
// extension. A trailing .zst compresses the output.
func WriteFile(path string, items []model.Item) (err error) {
	fmtKind, compressed, err := detectFormat(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close file: %w", cerr)
		}
	}()

	return writeCatalog(file, items, fmtKind, compressed)
}

// writeCatalog encodes items to w. With compressed set the zstd stream is
// closed before returning, so flush errors surface here.
func writeCatalog(w io.Writer, items []model.Item, fmtKind format, compressed bool) error {
	if !compressed {
		return encode(w, items, fmtKind)
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}
	if err := encode(zw, items, fmtKind); err != nil {
		_ = zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("could not flush zstd stream: %w", err)
	}
	return nil
}

func encode(w io.Writer, items []model.Item, fmtKind format) error {
	data := model.CatalogData{SchemaVersion: model.CatalogSchemaVersion, Items: items}
	switch fmtKind {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("could not encode json catalog: %w", err)
		}
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("could not encode yaml catalog: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("could not flush yaml catalog: %w", err)
		}
	}
	return nil
}
