// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the user interfaces of Transferlist.
//
// ui/cli holds the cobra command tree and ui/tui the interactive
// bubbletea program it starts.
package ui
