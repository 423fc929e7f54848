package vcf

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"vcfy-core/sim"
)

const sample = `##fileformat=VCFv4.2
##reference=/data/ref.fa
##contig=<ID=chr1,length=12>
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO
chr1	3	.	A	G	.	.	.
chr1	7	.	C	T	.	.	.
`

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader(sample))
	recs, err := r.ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Chrom != "chr1" || recs[0].Pos != 3 || recs[0].Ref != "A" || recs[0].Alt != "G" {
		t.Fatalf("record 0 parsed wrong: %+v", recs[0])
	}
	if !recs[0].IsSNV() {
		t.Error("substitution not recognized as SNV")
	}
	if got := r.Reference(); got != "/data/ref.fa" {
		t.Errorf("reference inference: %q", got)
	}
	if got := r.Meta("contig"); got != "<ID=chr1,length=12>" {
		t.Errorf("contig meta: %q", got)
	}
}

func TestReaderRejectsMalformedLines(t *testing.T) {
	cases := []string{
		"chr1\t3\t.\tA\n",           // too few columns
		"chr1\tx\t.\tA\tG\t.\t.\t.\n", // non-numeric POS
		"chr1\t0\t.\tA\tG\t.\t.\t.\n", // POS < 1
	}
	for _, c := range cases {
		if _, err := NewReader(strings.NewReader(c)).Next(); err == nil {
			t.Errorf("line %q not rejected", strings.TrimSpace(c))
		}
	}
}

func TestWriteHeaderAndRecords(t *testing.T) {
	var buf bytes.Buffer
	h := HeaderInfo{
		Source:    "vcfy 0.1.0",
		Reference: "/data/ref.fa",
		Contig:    "chr1",
		ContigLen: 12,
		Command:   "vcfy -m 0.01 -r chr1",
		Date:      time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
	}
	if err := WriteHeader(&buf, h); err != nil {
		t.Fatalf("header: %v", err)
	}
	rec := FromVariant("chr1", sim.Variant{Pos: 2, Ref: 'A', Alt: 'G'})
	if err := WriteRecord(&buf, rec); err != nil {
		t.Fatalf("record: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"##fileformat=VCFv4.2\n",
		"##fileDate=20260824\n",
		"##reference=/data/ref.fa\n",
		"##contig=<ID=chr1,length=12>\n",
		"##commandline=vcfy -m 0.01 -r chr1\n",
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n",
		"chr1\t3\t.\tA\tG\t.\t.\t.\n", // POS is 1-based
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Round trip through the reader.
	r := NewReader(strings.NewReader(out))
	recs, err := r.ReadAll()
	if err != nil {
		t.Fatalf("reread: %v", err)
	}
	if len(recs) != 1 || recs[0].Pos != 3 || recs[0].Ref != "A" || recs[0].Alt != "G" {
		t.Fatalf("round trip lost data: %+v", recs)
	}
}

func TestOpenGzip(t *testing.T) {
	fh, err := os.CreateTemp(t.TempDir(), "in-*.vcf.gz")
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(sample)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	gw.Close()
	fh.Close()

	rc, err := Open(fh.Name(), false)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != sample {
		t.Fatal("gzip content mismatch")
	}
}
