// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

// Version and Commit are set at link time, e.g.
// `-ldflags "-X github.com/toeirei/transferlist/buildvars.Version=v1.2.0"`.
// Both stay empty for local or development builds.
var (
	Version string
	Commit  string
)

// VersionOrDefault returns Version if set, otherwise def.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}

// Full renders the version together with the short commit hash when known.
func Full() string {
	v := VersionOrDefault("dev")
	if len(Commit) == 0 {
		return v
	}
	c := Commit
	if len(c) > 7 {
		c = c[:7]
	}
	return v + " (" + c + ")"
}
