package writers

import (
	"bytes"
	"testing"

	"vcfy-core/kmer"
	"vcfy/internal/output"
	"vcfy/internal/vcf"
)

func TestStartVCFWriter(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartVCFWriter(&buf, 0)
	in <- vcf.Record{Chrom: "chr1", Pos: 5, ID: ".", Ref: "A", Alt: "T", Qual: ".", Filter: ".", Info: "."}
	in <- vcf.Record{Chrom: "chr1", Pos: 9, ID: ".", Ref: "G", Alt: "C", Qual: ".", Filter: ".", Info: "."}
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("writer: %v", err)
	}
	want := "chr1\t5\t.\tA\tT\t.\t.\t.\nchr1\t9\t.\tG\tC\t.\t.\t.\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestStartReportWriter(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartReportWriter(&buf, 4, output.DialectUnix, 0)
	in <- kmer.WindowCount{Index: 0, Count: 2}
	in <- kmer.WindowCount{Index: 1, Count: 3}
	close(in)
	if err := <-errCh; err != nil {
		t.Fatalf("writer: %v", err)
	}
	if buf.String() != "k,count\n4,2\n4,3\n" {
		t.Fatalf("unexpected report: %q", buf.String())
	}
}
