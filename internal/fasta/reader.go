// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"vcfy-core/genome"
)

// Load reads every region from a FASTA file. "-" reads stdin; gzip is
// detected by magic number or .gz suffix. Regions are loaded whole:
// both pipelines need random access to the full sequence.
func Load(path string) ([]*genome.Region, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return LoadReader(rc)
}

// LoadReader parses FASTA records from r. The record ID is the first
// whitespace token after '>'; sequence lines are uppercased.
func LoadReader(r io.Reader) ([]*genome.Region, error) {
	var (
		regions []*genome.Region
		cur     *genome.Region
	)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		eof := err == io.EOF
		if err != nil && !eof {
			return nil, err
		}
		line = bytes.TrimRight(line, "\r\n")
		if len(line) > 0 {
			if line[0] == '>' {
				id := ""
				if f := strings.Fields(string(line[1:])); len(f) > 0 {
					id = f[0]
				}
				if id == "" {
					return nil, fmt.Errorf("fasta: record with empty ID")
				}
				cur = &genome.Region{ID: id}
				regions = append(regions, cur)
			} else {
				if cur == nil {
					return nil, fmt.Errorf("fasta: sequence data before first header")
				}
				cur.Seq = append(cur.Seq, bytes.ToUpper(line)...)
			}
		}
		if eof {
			break
		}
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("fasta: no records found")
	}
	return regions, nil
}

// Pick resolves the region to operate on. An empty id selects the first
// record (explicit default substitution at the boundary).
func Pick(regions []*genome.Region, id string) (*genome.Region, error) {
	if id == "" {
		return regions[0], nil
	}
	for _, r := range regions {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("fasta: region %q not found", id)
}

/* ---------------- small helpers ---------------- */

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	// Detect gzip by magic number (1F 8B) or by .gz suffix.
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}
