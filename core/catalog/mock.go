// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package catalog

import (
	"context"
	"fmt"

	"github.com/toeirei/transferlist/core/model"
)

// DefaultMockCount is the number of generated items when Count is not set.
const DefaultMockCount = 20

// Mock generates a demo universe: IDs 0..n-1 labelled content1..contentN.
type Mock struct {
	Count int
}

func (m Mock) Load(_ context.Context) ([]model.Item, error) {
	return MockItems(m.Count), nil
}

// MockItems returns n generated items, or DefaultMockCount if n <= 0.
func MockItems(n int) []model.Item {
	if n <= 0 {
		n = DefaultMockCount
	}
	items := make([]model.Item, n)
	for i := range items {
		items[i] = model.Item{
			ID:          i,
			Text:        fmt.Sprintf("content%d", i+1),
			Description: fmt.Sprintf("description of content%d", i+1),
		}
	}
	return items
}
