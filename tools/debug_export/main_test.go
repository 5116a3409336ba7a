// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/toeirei/transferlist/core/model"
	"gopkg.in/yaml.v3"
)

func TestRunSeedsMemoryDatabase(t *testing.T) {
	var buf bytes.Buffer
	if err := run(context.Background(), &buf, "", "", 3); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "# sqlite: 3 items") {
		t.Fatalf("missing summary line:\n%s", out)
	}

	var data model.CatalogData
	if err := yaml.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not yaml: %v", err)
	}
	if data.SchemaVersion != model.CatalogSchemaVersion || len(data.Items) != 3 {
		t.Fatalf("unexpected export %+v", data)
	}
	if data.Items[2].Text != "content3" {
		t.Fatalf("unexpected item %+v", data.Items[2])
	}
}

func TestRunRejectsUnknownDatabase(t *testing.T) {
	if err := run(context.Background(), &bytes.Buffer{}, "oracle", "x", 0); err == nil {
		t.Fatalf("expected error for unsupported database type")
	}
}
