package runner

import (
	"sync"
	"testing"
)

func TestRunEmitsInInputOrder(t *testing.T) {
	const n = 50
	var mu sync.Mutex
	var order []int

	Run(n, 8, func(i int) any {
		return i * i
	}, func(i int, result any) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, i)
		if result.(int) != i*i {
			t.Errorf("result for %d = %v, want %d", i, result, i*i)
		}
	})

	if len(order) != n {
		t.Fatalf("got %d emits, want %d", len(order), n)
	}
	for i, idx := range order {
		if idx != i {
			t.Fatalf("emit order[%d] = %d, want %d", i, idx, i)
		}
	}
}

func TestRunZeroWorkersFallsBackToOne(t *testing.T) {
	var seen []int
	Run(3, 0, func(i int) any { return i }, func(i int, result any) {
		seen = append(seen, result.(int))
	})
	if len(seen) != 3 {
		t.Fatalf("got %d results, want 3", len(seen))
	}
}

func TestRunEmptyInput(t *testing.T) {
	called := false
	Run(0, 4, func(i int) any { return i }, func(i int, result any) {
		called = true
	})
	if called {
		t.Fatalf("emit should not be called for zero tasks")
	}
}
