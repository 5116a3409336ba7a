// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/transferlist/core/catalog"
	"github.com/toeirei/transferlist/core/model"
	"github.com/toeirei/transferlist/core/transfer"
	"gopkg.in/yaml.v3"
)

func ids(items []model.Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// dataRows counts table rows below the header line.
func dataRows(out string) int {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	return len(lines) - 1
}

func TestShowPrintsTable(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "show", "--catalog.count", "3")
	if err != nil {
		t.Fatalf("show failed: %v\n%s", err, out)
	}
	if !strings.HasPrefix(out, "PANE") {
		t.Fatalf("expected table header, got %q", out)
	}
	if n := dataRows(out); n != 3 {
		t.Fatalf("expected 3 rows, got %d:\n%s", n, out)
	}
	if !strings.Contains(out, "source") || !strings.Contains(out, "content3") {
		t.Fatalf("unexpected table:\n%s", out)
	}
}

func TestShowJSONUsesDefaultCount(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "show", "-o", "json")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	var snap transfer.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if len(snap.Source) != catalog.DefaultMockCount || len(snap.Target) != 0 {
		t.Fatalf("unexpected snapshot sizes source=%d target=%d", len(snap.Source), len(snap.Target))
	}
}

func TestApplyScenario(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "apply", "--catalog.count", "5", "-o", "yaml",
		"select:s:1", "select:source:2", "to-target", "select:t:2")
	if err != nil {
		t.Fatalf("apply failed: %v\n%s", err, out)
	}
	var snap transfer.Snapshot
	if err := yaml.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("invalid yaml: %v\n%s", err, out)
	}
	if !equalInts(ids(snap.Source), []int{0, 3, 4}) {
		t.Fatalf("unexpected source %v", ids(snap.Source))
	}
	if !equalInts(ids(snap.Target), []int{1, 2}) {
		t.Fatalf("unexpected target %v", ids(snap.Target))
	}
	if len(snap.SourceSelected) != 0 || !equalInts(snap.TargetSelected, []int{2}) {
		t.Fatalf("unexpected selections %v / %v", snap.SourceSelected, snap.TargetSelected)
	}
}

func TestApplyTableMarksSelection(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "apply", "--catalog.count", "2", "select:s:1")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	var marked []string
	for _, line := range strings.Split(out, "\n") {
		if fields := strings.Fields(line); len(fields) == 4 && fields[1] == "x" {
			marked = append(marked, fields[3])
		}
	}
	if len(marked) != 1 || marked[0] != "content2" {
		t.Fatalf("expected only content2 marked, got %v:\n%s", marked, out)
	}
}

func TestApplyErrors(t *testing.T) {
	isolate(t)

	if _, err := executeCommand(t, "apply", "select:x:1"); !errors.Is(err, transfer.ErrInvalidOp) {
		t.Fatalf("expected ErrInvalidOp, got %v", err)
	}
	if _, err := executeCommand(t, "apply", "-o", "xml", "to-target"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err := executeCommand(t, "apply"); err == nil {
		t.Fatalf("expected error for missing ops")
	}
	if _, err := executeCommand(t, "show", "--catalog.source", "ftp"); !errors.Is(err, catalog.ErrUnknownSource) {
		t.Fatalf("expected ErrUnknownSource, got %v", err)
	}
}

func TestFileCatalogSource(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "items.json")
	items := []model.Item{{ID: 7, Text: "seven"}, {ID: 3, Text: "three"}}
	if err := catalog.WriteFile(path, items); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := executeCommand(t, "show", "-o", "json", "--catalog.source", "file", "--catalog.path", path)
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	var snap transfer.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// seeds are sorted by id
	if !equalInts(ids(snap.Source), []int{3, 7}) {
		t.Fatalf("unexpected source %v", ids(snap.Source))
	}
}

func TestCatalogImportExportRoundTrip(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	dsn := filepath.Join(dir, "catalog.db")
	in := filepath.Join(dir, "in.yaml.zst")
	items := []model.Item{
		{ID: 1, Text: "alpha", Description: "first"},
		{ID: 2, Text: "beta"},
		{ID: 3, Text: "gamma"},
	}
	if err := catalog.WriteFile(in, items); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := executeCommand(t, "catalog", "import", in, "--database.type", "sqlite", "--database.dsn", dsn)
	if err != nil {
		t.Fatalf("import failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Imported 3 item(s)") {
		t.Fatalf("unexpected import output %q", out)
	}

	// importing again upserts instead of failing on duplicates
	if _, err := executeCommand(t, "catalog", "import", in, "--database.dsn", dsn); err != nil {
		t.Fatalf("second import failed: %v", err)
	}

	exported := filepath.Join(dir, "out.json")
	if _, err := executeCommand(t, "catalog", "export", exported,
		"--catalog.source", "db", "--database.dsn", dsn); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	got, err := catalog.ReadFile(exported)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) != 3 || got[0] != items[0] || got[2] != items[2] {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestDefaultConfigWrittenOnFirstRun(t *testing.T) {
	home := isolate(t)
	if _, err := executeCommand(t, "show"); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	path := filepath.Join(home, ".config", "transferlist", "transferlist.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected default config at %s: %v", path, err)
	}
	if !strings.Contains(string(data), "source: mock") {
		t.Fatalf("unexpected default config:\n%s", data)
	}
}

func TestConfigFileAndEnvironment(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "custom.yaml")
	cfg := "language: de\ncatalog:\n  source: mock\n  count: 2\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := executeCommand(t, "--config", cfgPath, "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.HasPrefix(out, "LISTE") || dataRows(out) != 2 {
		t.Fatalf("config file not applied:\n%s", out)
	}

	t.Setenv("TRANSFERLIST_CATALOG_COUNT", "4")
	out, err = executeCommand(t, "--config", cfgPath, "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if dataRows(out) != 4 {
		t.Fatalf("environment should override the config file:\n%s", out)
	}

	// flags beat both
	out, err = executeCommand(t, "--config", cfgPath, "show", "--catalog.count", "1", "--language", "en")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.HasPrefix(out, "PANE") || dataRows(out) != 1 {
		t.Fatalf("flags should override everything:\n%s", out)
	}

	if _, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "show"); err == nil {
		t.Fatalf("expected error for a missing --config file")
	}
}

func TestRootPrintsStateWithoutTerminal(t *testing.T) {
	isolate(t)
	called := false
	oldRun := runTUI
	runTUI = func(*transfer.State) error { called = true; return nil }
	defer func() { runTUI = oldRun }()

	out, err := executeCommand(t, "--catalog.count", "2")
	if err != nil {
		t.Fatalf("root failed: %v", err)
	}
	if called {
		t.Fatalf("TUI must not start when output is not a terminal")
	}
	if dataRows(out) != 2 {
		t.Fatalf("expected the initial lists, got:\n%s", out)
	}
}

func TestRootStartsTUIOnTerminal(t *testing.T) {
	isolate(t)
	var got *transfer.State
	oldRun, oldTerm := runTUI, isTerminal
	runTUI = func(st *transfer.State) error { got = st; return nil }
	isTerminal = func(int) bool { return true }
	defer func() { runTUI, isTerminal = oldRun, oldTerm }()

	cmd := NewRootCmd()
	cmd.SetOut(os.Stdout)
	cmd.SetArgs([]string{"--catalog.count", "6"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("root failed: %v", err)
	}
	if got == nil || got.Len() != 6 || len(got.Target()) != 0 {
		t.Fatalf("TUI started with unexpected state %+v", got)
	}
}
