package timer

import (
	"reflect"
	"sort"
	"testing"
)

func TestSortByCallOrderEmpty(t *testing.T) {
	got := SortByCallOrder(nil)
	if len(got) != 0 {
		t.Errorf("Empty input should give empty ordering, got %v", got)
	}
}

func TestSortByCallOrderSingle(t *testing.T) {
	got := SortByCallOrder([]int{0})
	if !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("Single record should order as [0], got %v", got)
	}
}

func TestSortByCallOrderFlat(t *testing.T) {
	// Two top-level regions, no nesting: arrival order is display order.
	got := SortByCallOrder([]int{0, 0})
	if !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("Flat log should keep arrival order [0 1], got %v", got)
	}
}

func TestSortByCallOrderOneLevelNested(t *testing.T) {
	// inner completes first (index 0, depth 1), outer second (index 1, depth 0).
	// Display order puts the parent first.
	got := SortByCallOrder([]int{1, 0})
	if !reflect.DeepEqual(got, []int{1, 0}) {
		t.Errorf("Nested log should order parent before child [1 0], got %v", got)
	}
}

func TestSortByCallOrderTwoSiblingsWithChildren(t *testing.T) {
	// Completion log: a1(d1), a(d0), b1(d1), b(d0).
	// Each parent is displayed before its own child, siblings in arrival order.
	got := SortByCallOrder([]int{1, 0, 1, 0})
	if !reflect.DeepEqual(got, []int{1, 0, 3, 2}) {
		t.Errorf("Expected ordering [1 0 3 2], got %v", got)
	}
}

func TestSortByCallOrderDeepNesting(t *testing.T) {
	// leaf(d2), mid(d2), parent(d1), root(d0), second root(d0).
	got := SortByCallOrder([]int{2, 2, 1, 0, 0})
	want := []int{3, 2, 0, 1, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected ordering %v, got %v", want, got)
	}
}

func TestSortByCallOrderMixedDepths(t *testing.T) {
	// root1 with one child, then root2 with a grandchild chain.
	// Log: c1(d1), r1(d0), gc(d2), c2(d1), r2(d0).
	got := SortByCallOrder([]int{1, 0, 2, 1, 0})
	want := []int{1, 0, 4, 3, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected ordering %v, got %v", want, got)
	}
}

func TestSortByCallOrderIsPermutation(t *testing.T) {
	depths := []int{1, 2, 2, 1, 0, 1, 0, 0}
	got := SortByCallOrder(depths)
	if len(got) != len(depths) {
		t.Fatalf("Ordering should have %d entries, got %d", len(depths), len(got))
	}
	seen := append([]int(nil), got...)
	sort.Ints(seen)
	for i, v := range seen {
		if v != i {
			t.Errorf("Ordering is not a permutation of record indices: %v", got)
			break
		}
	}
}

func TestSortByCallOrderIdempotent(t *testing.T) {
	depths := []int{1, 0, 2, 1, 0, 0}
	first := SortByCallOrder(depths)
	second := SortByCallOrder(depths)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Two runs over the same log differ: %v vs %v", first, second)
	}
}

func TestSortByCallOrderSiblingOrderPreserved(t *testing.T) {
	// Four children of one root, completion order 0..3.
	got := SortByCallOrder([]int{1, 1, 1, 1, 0})
	want := []int{4, 0, 1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sibling arrival order not preserved: want %v, got %v", want, got)
	}
}

func TestSortByCallOrderSkippedLevel(t *testing.T) {
	// A depth-2 record with no depth-1 parent is an unchecked precondition
	// violation; the algorithm deterministically drops it during the level-1
	// pass because no marker follows it.
	got := SortByCallOrder([]int{2, 0})
	if !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("Skipped-level input should resolve to [1], got %v", got)
	}
}
