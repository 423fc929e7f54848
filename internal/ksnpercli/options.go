// internal/ksnpercli/options.go
package ksnpercli

import (
	"flag"
	"fmt"
	"io"

	"vcfy/internal/clibase"
	"vcfy/internal/cliutil"
)

// Options holds all ksnper flags and arguments.
type Options struct {
	clibase.Common

	VCF       string // positional VCF path; "-" = stdin
	K         int
	Reference string // FASTA path; "" = infer from ##reference header
	Dialect   string
	Gzip      bool // force gzip-decoding the VCF
	Summary   bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "report the number of SNPs in all k-mers", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] -k K [variants.vcf[.gz]]\n", name)

		fmt.Fprintln(out, "\nCounting:")
		fmt.Fprintln(out, "  -k int                      The k-mer length [*]")
		fmt.Fprintln(out, "  -r, --reference string      Reference FASTA (default: from ##reference header)")
		fmt.Fprintf(out, "  -d, --dialect string        CSV dialect: unix | excel [%s]\n", def("dialect"))
		fmt.Fprintf(out, "  -z, --gzip                  Force gzip-decoding the VCF input [%s]\n", def("gzip"))
		fmt.Fprintf(out, "      --summary               Print count statistics to stderr [%s]\n", def("summary"))
	})
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(NewFlagSet("ksnper"), nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common)

	fs.IntVar(&o.K, "k", 0, "the k-mer length [*]")
	fs.StringVar(&o.Reference, "reference", "", "reference FASTA (default: from ##reference header)")
	fs.StringVar(&o.Reference, "r", "", "alias of --reference")
	fs.StringVar(&o.Dialect, "dialect", "unix", "CSV dialect: unix | excel [unix]")
	fs.StringVar(&o.Dialect, "d", "unix", "alias of --dialect")
	fs.BoolVar(&o.Gzip, "gzip", false, "force gzip-decoding the VCF input [false]")
	fs.BoolVar(&o.Gzip, "z", false, "alias of --gzip")
	fs.BoolVar(&o.Summary, "summary", false, "print count statistics to stderr [false]")

	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}

	// Validation
	switch len(posArgs) {
	case 0:
		o.VCF = "-"
	case 1:
		o.VCF = posArgs[0]
	default:
		return o, fmt.Errorf("expected at most one VCF file, got %d arguments", len(posArgs))
	}
	if o.K < 1 {
		return o, fmt.Errorf("-k must be ≥ 1, got %d", o.K)
	}
	switch o.Dialect {
	case "unix", "excel":
	default:
		return o, fmt.Errorf("invalid --dialect %q (want unix or excel)", o.Dialect)
	}
	if err := clibase.Validate(&o.Common); err != nil {
		return o, err
	}
	return o, nil
}
