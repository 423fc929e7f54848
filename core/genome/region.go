// core/genome/region.go
package genome

import (
	"errors"
	"fmt"
)

// Error kinds. Validation failures wrap one of these so callers can
// distinguish bad configuration from inconsistent inputs via errors.Is.
var (
	ErrConfig      = errors.New("configuration error")
	ErrConsistency = errors.New("consistency error")
)

// Region is a named reference sequence (a chromosome or contig).
// Read-only once loaded.
type Region struct {
	ID  string
	Seq []byte
}

func (r *Region) Len() int { return len(r.Seq) }

// Range is a 0-based half-open interval [Low, High) over a region.
type Range struct {
	Low  int
	High int
}

// FullRange covers the whole region.
func FullRange(r *Region) Range { return Range{Low: 0, High: r.Len()} }

func (rg Range) Len() int { return rg.High - rg.Low }

// Validate checks 0 ≤ Low < High ≤ r.Len().
func (rg Range) Validate(r *Region) error {
	if rg.Low < 0 || rg.High > r.Len() || rg.Low >= rg.High {
		return fmt.Errorf("%w: range [%d,%d) invalid for region %q (length %d)",
			ErrConfig, rg.Low, rg.High, r.ID, r.Len())
	}
	return nil
}
