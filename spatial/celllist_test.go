package spatial

import "testing"

func TestForEachPairEmpty(t *testing.T) {
	cl := New(nil, 0, 2.5)
	called := false
	cl.ForEachPair(func(a, b int) { called = true })
	if called {
		t.Fatal("expected no pairs for zero atoms")
	}
}

func TestForEachPairNoDuplicates(t *testing.T) {
	// Two small clusters of points that land in two diagonal grid cells,
	// (0,0,0) and (1,1,1), so both intra-cell and half-shell paths fire.
	positions := []float32{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		3, 3, 3,
		3.5, 3, 3,
	}
	n := 5
	cl := New(positions, n, 2.0)

	seen := map[[2]int]int{}
	cl.ForEachPair(func(a, b int) {
		if a >= b {
			t.Fatalf("pair not ordered: (%d,%d)", a, b)
		}
		seen[[2]int{a, b}]++
	})

	for pair, count := range seen {
		if count != 1 {
			t.Errorf("pair %v visited %d times, want 1", pair, count)
		}
	}
	// Every pair among the 5 points must appear, since the grid is at
	// most 2x2x2 cells and half-shell + intra-cell covers all of it.
	want := n * (n - 1) / 2
	if len(seen) != want {
		t.Errorf("got %d distinct pairs, want %d", len(seen), want)
	}
}
