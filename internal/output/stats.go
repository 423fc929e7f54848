// internal/output/stats.go
package output

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of per-window SNP counts.
type Summary struct {
	Windows int
	Mean    float64
	StdDev  float64
	Min     int
	Max     int
}

// Summarize computes count statistics over all windows.
func Summarize(counts []int) Summary {
	s := Summary{Windows: len(counts)}
	if len(counts) == 0 {
		return s
	}
	xs := make([]float64, len(counts))
	s.Min, s.Max = counts[0], counts[0]
	for i, c := range counts {
		xs[i] = float64(c)
		if c < s.Min {
			s.Min = c
		}
		if c > s.Max {
			s.Max = c
		}
	}
	s.Mean = stat.Mean(xs, nil)
	if len(xs) > 1 {
		s.StdDev = stat.StdDev(xs, nil)
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("windows=%d mean=%.4f sd=%.4f min=%d max=%d",
		s.Windows, s.Mean, s.StdDev, s.Min, s.Max)
}
