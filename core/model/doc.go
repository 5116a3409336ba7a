// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
// Package model defines the core data models used across Transferlist. These
// are plain values that flow between catalogs, the transfer core and the UI,
// and are intentionally minimal to keep serialization straightforward.
package model
