// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/toeirei/transferlist/buildvars"
)

const modulePath = "github.com/toeirei/transferlist"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// no config or database needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v, c := resolveBuildVersion(nil)
			fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", v)
			if c != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", c)
			}
		},
	}
}

// resolveBuildVersion computes the best-available version and commit for the
// running binary. Link-time values win; otherwise the module build info is
// consulted. If info is nil, it is read from the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (version, commit string) {
	version = buildvars.VersionOrDefault("dev")
	commit = buildvars.Commit

	if info == nil {
		var ok bool
		if info, ok = debug.ReadBuildInfo(); !ok {
			return version, commit
		}
	}

	if version == "dev" {
		switch {
		case info.Main.Version != "" && info.Main.Version != "(devel)":
			version = info.Main.Version
		default:
			// built as a dependency of another module
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					version = dep.Version
					break
				}
			}
		}
	}
	if commit == "" {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				commit = s.Value
			}
		}
	}
	return version, commit
}
