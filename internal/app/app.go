// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vcfy-core/genome"
	"vcfy-core/sim"
	"vcfy/internal/cli"
	"vcfy/internal/cmdutil"
	"vcfy/internal/fasta"
	"vcfy/internal/vcf"
	"vcfy/internal/version"
	"vcfy/internal/writers"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("vcfy")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
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
		fmt.Fprintf(stdout, "vcfy version %s\n", version.Version)
		return 0
	}

	regions, err := fasta.Load(opts.Reference)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	region, err := fasta.Pick(regions, opts.Region)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	// Resolve the 1-based half-open CLI range to core coordinates.
	low, high := opts.Low, opts.High
	if low == 0 {
		low = 1
	}
	if high == 0 {
		high = region.Len() + 1
	}
	rg := genome.Range{Low: low - 1, High: high - 1}
	if err := rg.Validate(region); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sampler := &sim.Sampler{
		Rate: opts.Rate,
		Rng:  rand.New(rand.NewSource(seed)),
		Warn: func(msg string) { cmdutil.Warnf(stderr, opts.Quiet, "%s", msg) },
	}

	// The output target is created only after validation so a failed
	// run leaves no partial VCF behind.
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

	refPath := opts.Reference
	if refPath != "-" {
		if abs, aerr := filepath.Abs(refPath); aerr == nil {
			refPath = abs
		}
	}
	head := vcf.HeaderInfo{
		Source:    "vcfy " + version.Version,
		Reference: refPath,
		Contig:    region.ID,
		ContigLen: region.Len(),
		Command:   commandLine(opts, region.ID, seed),
	}
	if err := vcf.WriteHeader(bw, head); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 3
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	in, writeErr := writers.StartVCFWriter(bw, 64)
	serr := sampler.Each(region, rg, func(v sim.Variant) error {
		select {
		case in <- vcf.FromVariant(region.ID, v):
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
	return 0
}

// commandLine reconstructs the resolved invocation stamped into the
// VCF header. The seed is included so any run can be reproduced.
func commandLine(o cli.Options, regionID string, seed int64) string {
	parts := []string{"vcfy", fmt.Sprintf("-m %v", o.Rate), fmt.Sprintf("-r '%s'", regionID)}
	if o.Low > 0 {
		parts = append(parts, fmt.Sprintf("-l %d", o.Low))
	}
	if o.High > 0 {
		parts = append(parts, fmt.Sprintf("-u %d", o.High))
	}
	parts = append(parts, fmt.Sprintf("--seed %d", seed))
	return strings.Join(parts, " ")
}
