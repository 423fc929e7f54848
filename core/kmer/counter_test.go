package kmer

import (
	"errors"
	"testing"

	"vcfy-core/genome"
)

func mustTally(t *testing.T, n int, pos []int) []int {
	t.Helper()
	tl, err := Tally(n, pos)
	if err != nil {
		t.Fatalf("tally: %v", err)
	}
	return tl
}

func TestSweepExample(t *testing.T) {
	// N=10, P={2,5}, k=3 → 8 windows.
	tl := mustTally(t, 10, []int{2, 5})
	got, err := Sweep(tl, 3)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	want := []int{1, 1, 1, 1, 1, 1, 0, 0}
	if len(got) != len(want) {
		t.Fatalf("expected %d windows, got %d", len(want), len(got))
	}
	for i, w := range got {
		if w.Index != i {
			t.Errorf("window %d has index %d", i, w.Index)
		}
		if w.Count != want[i] {
			t.Errorf("window %d: count %d, want %d", i, w.Count, want[i])
		}
	}
}

func TestWindowCountMatchesNaive(t *testing.T) {
	n, k := 23, 5
	pos := []int{0, 0, 3, 7, 8, 8, 8, 21, 22}
	tl := mustTally(t, n, pos)
	got, err := Sweep(tl, k)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(got) != n-k+1 {
		t.Fatalf("expected %d windows, got %d", n-k+1, len(got))
	}
	for i, w := range got {
		naive := 0
		for _, p := range pos {
			if p >= i && p < i+k {
				naive++
			}
		}
		if w.Count != naive {
			t.Errorf("window %d: count %d, naive %d", i, w.Count, naive)
		}
	}
}

func TestInteriorPositionAppearsInKWindows(t *testing.T) {
	n, k, p := 30, 4, 15
	tl := mustTally(t, n, []int{p})
	ws, err := Sweep(tl, k)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	sum := 0
	for _, w := range ws {
		sum += w.Count
	}
	if sum != k {
		t.Fatalf("interior position counted in %d windows, want %d", sum, k)
	}
}

func TestKEqualsLength(t *testing.T) {
	tl := mustTally(t, 6, []int{0, 2, 5})
	ws, err := Sweep(tl, 6)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(ws) != 1 || ws[0].Index != 0 || ws[0].Count != 3 {
		t.Fatalf("unexpected windows: %+v", ws)
	}
}

func TestDuplicatePositionsAccumulate(t *testing.T) {
	tl := mustTally(t, 4, []int{1, 1})
	ws, err := Sweep(tl, 4)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if ws[0].Count != 2 {
		t.Fatalf("duplicate rows collapsed: count %d, want 2", ws[0].Count)
	}
}

func TestInvalidK(t *testing.T) {
	tl := mustTally(t, 5, nil)
	for _, k := range []int{0, -1, 6} {
		if _, err := Sweep(tl, k); !errors.Is(err, genome.ErrConfig) {
			t.Errorf("k=%d: error %v, want ErrConfig", k, err)
		}
	}
}

func TestOutOfBoundsPosition(t *testing.T) {
	for _, p := range []int{-1, 5} {
		if _, err := Tally(5, []int{p}); !errors.Is(err, genome.ErrConsistency) {
			t.Errorf("position %d: error %v, want ErrConsistency", p, err)
		}
	}
}
