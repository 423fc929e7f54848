// internal/ksnperapp/app.go
package ksnperapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"vcfy-core/genome"
	"vcfy-core/kmer"
	"vcfy/internal/cmdutil"
	"vcfy/internal/fasta"
	"vcfy/internal/ksnpercli"
	"vcfy/internal/output"
	"vcfy/internal/vcf"
	"vcfy/internal/version"
	"vcfy/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := ksnpercli.NewFlagSet("ksnper")
	fs.SetOutput(io.Discard)

	opts, err := ksnpercli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "ksnper version %s\n", version.Version)
		return 0
	}

	rc, err := vcf.Open(opts.VCF, opts.Gzip)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	r := vcf.NewReader(rc)
	recs, err := r.ReadAll()
	if cerr := rc.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	// One increment per VCF row; POS is 1-based in the text format.
	positions := make([]int, len(recs))
	for i, rec := range recs {
		if !rec.IsSNV() {
			cmdutil.Warnf(stderr, opts.Quiet, "%s:%d is not a single-base substitution; counted anyway", rec.Chrom, rec.Pos)
		}
		positions[i] = rec.Pos - 1
	}

	refPath := opts.Reference
	if refPath == "" {
		refPath = r.Reference()
	}
	if refPath == "" {
		fmt.Fprintln(stderr, "no --reference given and the VCF header has no ##reference line")
		return 2
	}
	regions, err := fasta.Load(refPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	// Like the reference-length convention of the VCF header, the
	// first record is the sequence the counts run over.
	n := regions[0].Len()

	if opts.K > n {
		fmt.Fprintf(stderr, "-k (%d) exceeds the reference length (%d)\n", opts.K, n)
		return 2
	}
	tally, err := kmer.Tally(n, positions)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, genome.ErrConfig) {
			return 2
		}
		return 3 // consistency: VCF does not match the reference
	}

	// Output target is created only after validation so a failed run
	// leaves no partial report behind.
	target := stdout
	var fh *os.File
	if opts.Output != "-" {
		fh, err = os.Create(opts.Output)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		target = fh
	}
	bw := bufio.NewWriter(target)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	dialect := output.Dialect(opts.Dialect)
	in, writeErr := writers.StartReportWriter(bw, opts.K, dialect, 64)

	var counts []int
	if opts.Summary {
		counts = make([]int, 0, n-opts.K+1)
	}
	serr := kmer.EachWindow(tally, opts.K, func(wc kmer.WindowCount) error {
		if opts.Summary {
			counts = append(counts, wc.Count)
		}
		select {
		case in <- wc:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	close(in)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := bw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}
	if fh != nil {
		if e := fh.Close(); e != nil {
			fmt.Fprintln(stderr, e)
			return 3
		}
	}

	if serr != nil {
		if errors.Is(serr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, serr)
		if errors.Is(serr, genome.ErrConfig) {
			return 2
		}
		return 3
	}

	if opts.Summary {
		fmt.Fprintln(stderr, output.Summarize(counts))
	}
	return 0
}
