package mapst

import (
	"reflect"
	"testing"
)

func TestSortedKeys(t *testing.T) {
	m := map[int]struct{}{9: {}, 1: {}, 4: {}}
	if got := SortedKeys(m); !reflect.DeepEqual(got, []int{1, 4, 9}) {
		t.Fatalf("SortedKeys = %v", got)
	}
	if got := SortedKeys(map[string]int{}); len(got) != 0 {
		t.Fatalf("SortedKeys of empty map = %v", got)
	}
}
