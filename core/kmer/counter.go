// core/kmer/counter.go
package kmer

import (
	"fmt"

	"vcfy-core/genome"
)

// WindowCount is the number of variant positions inside the k-window
// starting at Index.
type WindowCount struct {
	Index int
	Count int
}

// Tally builds a per-position occurrence count over a sequence of
// length n. Every input element adds one, so duplicate positions
// accumulate. Positions outside [0,n) are a consistency error: they
// mean the VCF does not describe the declared reference.
func Tally(n int, positions []int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: reference length %d", genome.ErrConfig, n)
	}
	t := make([]int, n)
	for _, p := range positions {
		if p < 0 || p >= n {
			return nil, fmt.Errorf("%w: variant position %d outside reference [0,%d)",
				genome.ErrConsistency, p, n)
		}
		t[p]++
	}
	return t, nil
}

// EachWindow slides a window of width k across the tally and calls fn
// with each of the len(tally)-k+1 counts in index order. The count is
// carried incrementally: add the position entering at the right edge,
// drop the one leaving at the left.
func EachWindow(tally []int, k int, fn func(WindowCount) error) error {
	n := len(tally)
	if k <= 0 || k > n {
		return fmt.Errorf("%w: k=%d not in [1,%d]", genome.ErrConfig, k, n)
	}
	count := 0
	for i := 0; i < k; i++ {
		count += tally[i]
	}
	if err := fn(WindowCount{Index: 0, Count: count}); err != nil {
		return err
	}
	for i := k; i < n; i++ {
		count += tally[i] - tally[i-k]
		if err := fn(WindowCount{Index: i - k + 1, Count: count}); err != nil {
			return err
		}
	}
	return nil
}

// Sweep materializes EachWindow.
func Sweep(tally []int, k int) ([]WindowCount, error) {
	var out []WindowCount
	err := EachWindow(tally, k, func(w WindowCount) error {
		out = append(out, w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
