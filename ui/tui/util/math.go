// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import "cmp"

// Clamp bounds wanted to [lo, hi]. When hi < lo, hi wins, so an empty
// range collapses to hi (e.g. Clamp(0, x, -1) == -1 for an empty list).
func Clamp[T cmp.Ordered](lo, wanted, hi T) T {
	return min(max(lo, wanted), hi)
}
