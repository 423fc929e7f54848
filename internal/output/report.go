// internal/output/report.go
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"vcfy-core/kmer"
)

// Dialect selects the CSV flavor of the report.
type Dialect string

const (
	DialectUnix  Dialect = "unix"  // LF line endings
	DialectExcel Dialect = "excel" // CRLF line endings
)

// ParseDialect validates a --dialect value.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(s) {
	case DialectUnix, DialectExcel:
		return Dialect(s), nil
	}
	return "", fmt.Errorf("unknown CSV dialect %q (want unix or excel)", s)
}

// ReportWriter emits the per-window SNP count report: a "k,count"
// header then one row per window in index order.
type ReportWriter struct {
	cw *csv.Writer
	k  string
}

func NewReportWriter(w io.Writer, k int, d Dialect) (*ReportWriter, error) {
	cw := csv.NewWriter(w)
	cw.UseCRLF = d == DialectExcel
	if err := cw.Write([]string{"k", "count"}); err != nil {
		return nil, err
	}
	return &ReportWriter{cw: cw, k: strconv.Itoa(k)}, nil
}

func (rw *ReportWriter) Write(wc kmer.WindowCount) error {
	return rw.cw.Write([]string{rw.k, strconv.Itoa(wc.Count)})
}

func (rw *ReportWriter) Flush() error {
	rw.cw.Flush()
	return rw.cw.Error()
}
