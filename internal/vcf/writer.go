// internal/vcf/writer.go
package vcf

import (
	"fmt"
	"io"
	"time"
)

// HeaderInfo carries the metadata stamped into a generated VCF header.
type HeaderInfo struct {
	Source    string // tool name + version
	Reference string // reference FASTA path
	Contig    string // simulated region ID
	ContigLen int
	Command   string    // resolved command line
	Date      time.Time // zero value = now
}

// WriteHeader emits the metadata block and the column header line.
func WriteHeader(w io.Writer, h HeaderInfo) error {
	date := h.Date
	if date.IsZero() {
		date = time.Now()
	}
	lines := []string{
		"##fileformat=VCFv4.2",
		"##fileDate=" + date.Format("20060102"),
		"##source=" + h.Source,
		"##reference=" + h.Reference,
		fmt.Sprintf("##contig=<ID=%s,length=%d>", h.Contig, h.ContigLen),
	}
	if h.Command != "" {
		lines = append(lines, "##commandline="+h.Command)
	}
	lines = append(lines, "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO")
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// WriteRecord emits one data row.
func WriteRecord(w io.Writer, rec Record) error {
	_, err := fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
		rec.Chrom, rec.Pos, rec.ID, rec.Ref, rec.Alt, rec.Qual, rec.Filter, rec.Info)
	return err
}
