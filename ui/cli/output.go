// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/toeirei/transferlist/core/model"
	"github.com/toeirei/transferlist/core/transfer"
	"github.com/toeirei/transferlist/internal/i18n"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an unsupported --output value.
var ErrUnknownFormat = errors.New("unknown output format")

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

var outputFormats = []string{formatTable, formatYAML, formatJSON}

func addOutputFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "output", "o", formatTable,
		fmt.Sprintf("Output format (%s)", strings.Join(outputFormats, ", ")))
}

func checkFormat(format string) error {
	if !slices.Contains(outputFormats, format) {
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	return nil
}

// writeState renders both panes of snap to w.
func writeState(w io.Writer, snap transfer.Snapshot, format string) error {
	switch format {
	case formatTable:
		return writeTable(w, snap)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return err
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

func writeTable(w io.Writer, snap transfer.Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		i18n.T("cli.column_pane"), i18n.T("cli.column_selected"),
		i18n.T("cli.column_id"), i18n.T("cli.column_text"))

	rows := func(p model.Pane, items []model.Item, selected []int) {
		for _, it := range items {
			mark := ""
			if slices.Contains(selected, it.ID) {
				mark = "x"
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", p, mark, it.ID, it.Text)
		}
	}
	rows(model.Source, snap.Source, snap.SourceSelected)
	rows(model.Target, snap.Target, snap.TargetSelected)

	return tw.Flush()
}
