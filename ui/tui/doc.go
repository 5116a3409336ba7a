// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the terminal UI. Presentation and input handling
// live here; list state and transfers are provided by core/transfer.
package tui
