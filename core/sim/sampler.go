// core/sim/sampler.go
package sim

import (
	"fmt"
	"math/rand"

	"vcfy-core/genome"
)

const bases = "ACGT"

// Variant is a single-base substitution at Pos (0-based). Alt ≠ Ref.
type Variant struct {
	Pos int
	Ref byte
	Alt byte
}

// Sampler draws independent per-position substitutions over a range.
// Rng must be non-nil; pass rand.New(rand.NewSource(seed)) for
// reproducible output. Warn, if set, receives a message for every
// sampled position whose reference base is not A/C/G/T (the position
// is skipped, matching how unplaced or masked bases are handled).
type Sampler struct {
	Rate float64
	Rng  *rand.Rand
	Warn func(msg string)
}

// Each visits positions of rg in ascending order and calls fn for each
// sampled variant. A rate of 1 mutates every ACGT position. A rate
// outside (0,1] is rejected: zero would produce an empty VCF that is
// indistinguishable from a misconfigured run.
func (s *Sampler) Each(r *genome.Region, rg genome.Range, fn func(Variant) error) error {
	if s.Rate <= 0 || s.Rate > 1 {
		return fmt.Errorf("%w: mutation rate %v not in (0,1]", genome.ErrConfig, s.Rate)
	}
	if s.Rng == nil {
		return fmt.Errorf("%w: nil random source", genome.ErrConfig)
	}
	if err := rg.Validate(r); err != nil {
		return err
	}
	for t := rg.Low; t < rg.High; t++ {
		if s.Rng.Float64() >= s.Rate {
			continue
		}
		ref := upper(r.Seq[t])
		if !isBase(ref) {
			if s.Warn != nil {
				s.Warn(fmt.Sprintf("skipping locus %d: invalid base %q", t+1, ref))
			}
			continue
		}
		if err := fn(Variant{Pos: t, Ref: ref, Alt: s.alt(ref)}); err != nil {
			return err
		}
	}
	return nil
}

// Sample materializes Each into a slice ordered by position.
func (s *Sampler) Sample(r *genome.Region, rg genome.Range) ([]Variant, error) {
	var out []Variant
	err := s.Each(r, rg, func(v Variant) error {
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// alt picks uniformly among the three bases other than ref.
func (s *Sampler) alt(ref byte) byte {
	i := s.Rng.Intn(3)
	for j := 0; j < len(bases); j++ {
		b := bases[j]
		if b == ref {
			continue
		}
		if i == 0 {
			return b
		}
		i--
	}
	return 0 // unreachable while ref ∈ ACGT
}

func upper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func isBase(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T':
		return true
	}
	return false
}
