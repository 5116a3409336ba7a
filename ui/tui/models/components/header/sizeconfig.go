// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/toeirei/transferlist/ui/tui/models/components/stack"
	"github.com/toeirei/transferlist/ui/tui/util"
)

// minBody is the least amount of rows the rest of the screen needs before
// the header is shown at all.
const minBody = 6

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// Calculate reserves the title line plus its bottom border.
func (s *sizeConfig) Calculate(_ util.Model, _ int, total int) int {
	if total >= minBody+2 {
		return 2
	}
	return 0
}
