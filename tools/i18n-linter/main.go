// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the translation keys used in
// the Go sources. It fails when a key used in code is missing from any
// locale and warns about keys nobody uses.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/toeirei/transferlist/util/mapst"
	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var (
	keyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	// keys chosen at runtime appear as plain literals
	literalRe = regexp.MustCompile(`"([a-z]+\.[a-z_]+(?:\.[a-z_]+)*)"`)
	// i18n.T("pane." + ...) marks every key below the prefix as used
	prefixRe = regexp.MustCompile(`i18n\.T\("([a-z_.]+\.)"\s*\+`)
)

// usage is what the sources reference.
type usage struct {
	keys     map[string]struct{}
	literals map[string]struct{}
	prefixes []string
}

func (u usage) uses(key string) bool {
	if _, ok := u.keys[key]; ok {
		return true
	}
	if _, ok := u.literals[key]; ok {
		return true
	}
	for _, p := range u.prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// report is the outcome of a lint run.
type report struct {
	// missing maps a locale file to keys used in code it does not define.
	missing map[string][]string
	// orphaned lists primary-locale keys not referenced anywhere.
	orphaned []string
}

func (r report) failed() bool {
	return len(r.missing) > 0
}

func main() {
	r, err := lint(projectRoot, localesDir, primaryLocale)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	r.print(os.Stdout)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root, locales, primary string) (report, error) {
	used, err := findUsage(root)
	if err != nil {
		return report{}, fmt.Errorf("scanning sources: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return report{}, err
	}

	r := report{missing: map[string][]string{}}
	for _, file := range files {
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return report{}, fmt.Errorf("loading %s: %w", file, err)
		}

		for _, key := range mapst.SortedKeys(used.keys) {
			if _, ok := keys[key]; !ok {
				r.missing[file] = append(r.missing[file], key)
			}
		}

		if filepath.Base(file) == primary {
			for _, key := range mapst.SortedKeys(keys) {
				if !used.uses(key) {
					r.orphaned = append(r.orphaned, key)
				}
			}
		}
	}
	return r, nil
}

func (r report) print(w io.Writer) {
	for _, file := range mapst.SortedKeys(r.missing) {
		fmt.Fprintf(w, "%s:\n", file)
		for _, key := range r.missing[file] {
			fmt.Fprintf(w, "  - missing: %s\n", key)
		}
	}
	for _, key := range r.orphaned {
		fmt.Fprintf(w, "  - orphaned: %s\n", key)
	}
	switch {
	case r.failed():
		fmt.Fprintln(w, "locale files are missing keys")
	case len(r.orphaned) > 0:
		fmt.Fprintln(w, "orphaned keys found, consider removing them")
	default:
		fmt.Fprintln(w, "all translation files are consistent")
	}
}

// findUsage scans non-test .go files below root, skipping tools/.
func findUsage(root string) (usage, error) {
	u := usage{keys: map[string]struct{}{}, literals: map[string]struct{}{}}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range prefixRe.FindAllStringSubmatch(string(content), -1) {
			u.prefixes = append(u.prefixes, m[1])
		}
		for _, m := range keyRe.FindAllStringSubmatch(string(content), -1) {
			// dynamic prefixes are handled above
			if !strings.HasSuffix(m[1], ".") {
				u.keys[m[1]] = struct{}{}
			}
		}
		for _, m := range literalRe.FindAllStringSubmatch(string(content), -1) {
			u.literals[m[1]] = struct{}{}
		}
		return nil
	})

	return u, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into dot-separated leaf keys.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
