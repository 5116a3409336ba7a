// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli contains the cobra command tree. Commands load configuration,
// build a transfer list from the configured catalog and either hand it to
// the TUI or drive it non-interactively.
package cli
