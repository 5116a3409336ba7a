// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

// Package transfer implements the selection and transfer state of a two-pane
// transfer list. A State owns both item collections and both selection sets
// and exposes the only legal mutations: selecting, deselecting and moving the
// current selection of one pane into the other.
//
// State is not safe for concurrent use; it is owned by a single UI loop that
// applies one command per interaction.
package transfer
