// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/transferlist/core/transfer"
	"github.com/toeirei/transferlist/internal/logging"
)

func (a *app) newShowCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the initial source and target lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			st, err := a.newState(cmd.Context())
			if err != nil {
				return err
			}
			return writeState(cmd.OutOrStdout(), st.Snapshot(), format)
		},
	}
	addOutputFlag(cmd, &format)
	return cmd
}

func (a *app) newApplyCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "apply <op>...",
		Short: "Apply a sequence of operations and print the result",
		Long: `Seeds a transfer list from the configured catalog, runs the given
operations in order and prints the final lists. Operations are

  select:<pane>:<id>     tick an item
  deselect:<pane>:<id>   untick an item
  toggle:<pane>:<id>     flip an item's tick
  to-target              move ticked source items to the target
  to-source              move ticked target items to the source

where <pane> is source (s) or target (t). Unknown ids and items in the
other pane are ignored, like clicks on stale rows.`,
		Example: "  transferlist apply select:s:1 select:s:2 to-target",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			ops, err := transfer.ParseOps(args)
			if err != nil {
				return err
			}
			st, err := a.newState(cmd.Context())
			if err != nil {
				return err
			}

			transfer.Apply(st, ops...)
			logging.Debugf("applied %s", strings.Join(opStrings(ops), " "))

			return writeState(cmd.OutOrStdout(), st.Snapshot(), format)
		},
	}
	addOutputFlag(cmd, &format)
	return cmd
}

func opStrings(ops []transfer.Op) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.String()
	}
	return out
}
