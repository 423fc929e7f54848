// internal/vcf/reader.go
package vcf

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Reader parses VCF data rows and collects "##key=value" metadata from
// the header as it goes. All metadata precedes the first data row, so
// it is complete once Next has returned the first record (or io.EOF).
type Reader struct {
	br   *bufio.Reader
	meta map[string]string
	line int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r), meta: map[string]string{}}
}

// Next returns the next data row, or io.EOF.
func (r *Reader) Next() (Record, error) {
	for {
		raw, err := r.br.ReadString('\n')
		eof := err == io.EOF
		if err != nil && !eof {
			return Record{}, err
		}
		r.line++
		raw = strings.TrimRight(raw, "\r\n")
		switch {
		case raw == "":
			// skip blank lines
		case strings.HasPrefix(raw, "##"):
			if k, v, ok := strings.Cut(raw[2:], "="); ok {
				r.meta[k] = v
			}
		case strings.HasPrefix(raw, "#"):
			// column header line
		default:
			return r.parse(raw)
		}
		if eof {
			return Record{}, io.EOF
		}
	}
}

func (r *Reader) parse(raw string) (Record, error) {
	f := strings.Split(raw, "\t")
	if len(f) < 8 {
		return Record{}, fmt.Errorf("vcf: line %d: %d columns, want at least 8", r.line, len(f))
	}
	pos, err := strconv.Atoi(f[1])
	if err != nil || pos < 1 {
		return Record{}, fmt.Errorf("vcf: line %d: bad POS %q", r.line, f[1])
	}
	return Record{
		Chrom:  f[0],
		Pos:    pos,
		ID:     f[2],
		Ref:    f[3],
		Alt:    f[4],
		Qual:   f[5],
		Filter: f[6],
		Info:   f[7],
	}, nil
}

// Meta returns a "##key=value" header value, or "".
func (r *Reader) Meta(key string) string { return r.meta[key] }

// Reference returns the reference FASTA path declared in the header.
func (r *Reader) Reference() string { return r.meta["reference"] }

// ReadAll drains the reader into a slice.
func (r *Reader) ReadAll() ([]Record, error) {
	var out []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
}

// Open opens a VCF file for reading. "-" is stdin; gzip is applied for
// a .gz suffix or when force is set (compressed stream on stdin).
func Open(path string, force bool) (io.ReadCloser, error) {
	var rc io.ReadCloser
	if path == "-" {
		rc = io.NopCloser(os.Stdin)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		rc = fh
	}
	if force || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(rc)
		if err != nil {
			_ = rc.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, rc}}, nil
	}
	return rc, nil
}

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
