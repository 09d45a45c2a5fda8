package analyzer

import (
	"reflect"
	"sort"
	"testing"
)

func TestSlotCombosSizes(t *testing.T) {
	want := map[int]int{1: 4, 2: 6, 3: 4, 4: 1}
	for k, n := range want {
		combos := slotCombos(k)
		if len(combos) != n {
			t.Fatalf("slotCombos(%d) has %d entries, want %d", k, len(combos), n)
		}
		for _, c := range combos {
			if len(c) != k {
				t.Fatalf("combo %v has length %d, want %d", c, len(c), k)
			}
		}
	}
}

func TestSlotCombosFourIsFullSet(t *testing.T) {
	combos := slotCombos(4)
	if len(combos) != 1 {
		t.Fatalf("expected exactly one 4-slot combo, got %d", len(combos))
	}
	got := append([]int(nil), combos[0]...)
	sort.Ints(got)
	if !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Fatalf("combo = %v, want {0,1,2,3}", got)
	}
}

func TestBestOverCombosZeroShortCircuits(t *testing.T) {
	combos := slotCombos(2)
	called := 0
	got := bestOverCombos(combos, func(c []int) int { return 0 }, func(c []int, dMin, dMax int) (int, bool) {
		called++
		return 0, true
	}, 99)
	if got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
	if called != 0 {
		t.Fatalf("solve called %d times, want 0 for a zero lower bound", called)
	}
}

func TestBestOverCombosPrunesWorseBounds(t *testing.T) {
	combos := [][]int{{0}, {1}, {2}}
	bound := map[int]int{0: 3, 1: 5, 2: 5}
	solved := map[int]int{0: 4}
	var tried []int
	got := bestOverCombos(combos, func(c []int) int { return bound[c[0]] },
		func(c []int, dMin, dMax int) (int, bool) {
			tried = append(tried, c[0])
			d, ok := solved[c[0]]
			return d, ok
		}, 10)
	if got != 4 {
		t.Fatalf("got %d, want 4", got)
	}
	if !reflect.DeepEqual(tried, []int{0}) {
		t.Fatalf("tried = %v, want only the first (lowest-bound) combo since its result beats the remaining bounds", tried)
	}
}

func TestBestOverCombosFallsBackToCap(t *testing.T) {
	combos := slotCombos(1)
	got := bestOverCombos(combos, func(c []int) int { return 7 }, func(c []int, dMin, dMax int) (int, bool) {
		return 0, false
	}, 6)
	if got != 6 {
		t.Fatalf("got %d, want cap 6 since every bound already meets or exceeds it", got)
	}
}
