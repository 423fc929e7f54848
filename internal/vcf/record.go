// internal/vcf/record.go

// Package vcf reads and writes the minimal slice of the Variant Call
// Format that the simulator emits: site-only records (no samples), one
// ALT allele per row.
package vcf

import (
	"vcfy-core/sim"
)

// Missing is the VCF placeholder for absent values.
const Missing = "."

// Record is one VCF data row. Pos is 1-based, as in the text format.
type Record struct {
	Chrom  string
	Pos    int
	ID     string
	Ref    string
	Alt    string
	Qual   string
	Filter string
	Info   string
}

// IsSNV reports whether the record is a single-base substitution.
func (r *Record) IsSNV() bool {
	return len(r.Ref) == 1 && len(r.Alt) == 1 && r.Alt != Missing
}

// FromVariant converts a sampled variant (0-based) to a record.
func FromVariant(chrom string, v sim.Variant) Record {
	return Record{
		Chrom:  chrom,
		Pos:    v.Pos + 1,
		ID:     Missing,
		Ref:    string(v.Ref),
		Alt:    string(v.Alt),
		Qual:   Missing,
		Filter: Missing,
		Info:   Missing,
	}
}
