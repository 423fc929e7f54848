// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"vcfy/internal/clibase"
	"vcfy/internal/cliutil"
)

// Options holds all vcfy flags and arguments.
type Options struct {
	clibase.Common

	Reference string // positional FASTA path ('-' = stdin)
	Region    string // region ID; "" = first record
	Rate      float64
	Low       int   // 1-based inclusive lower bound; 0 = region start
	High      int   // 1-based exclusive upper bound; 0 = one past region end
	Seed      int64 // 0 = time-derived
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "simulate random variants from a reference genome", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] -m RATE ref.fa[.gz]\n", name)

		fmt.Fprintln(out, "\nSimulation:")
		fmt.Fprintln(out, "  -m, --mutation-rate float   Per-base substitution probability in (0,1] [*]")
		fmt.Fprintln(out, "  -r, --region string         Region ID to simulate (default: first record)")
		fmt.Fprintf(out, "  -l, --low int               1-based lower bound of the sampled range [%s]\n", def("low"))
		fmt.Fprintf(out, "  -u, --high int              One above the 1-based upper bound [%s]\n", def("high"))
		fmt.Fprintf(out, "      --seed int              Random seed (0 = time-derived) [%s]\n", def("seed"))
	})
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(NewFlagSet("vcfy"), nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common)

	fs.Float64Var(&o.Rate, "mutation-rate", 0, "per-base substitution probability [*]")
	fs.Float64Var(&o.Rate, "m", 0, "alias of --mutation-rate")
	fs.StringVar(&o.Region, "region", "", "region ID (default: first record)")
	fs.StringVar(&o.Region, "r", "", "alias of --region")
	fs.IntVar(&o.Low, "low", 0, "1-based lower bound (0 = region start) [0]")
	fs.IntVar(&o.Low, "l", 0, "alias of --low")
	fs.IntVar(&o.High, "high", 0, "one above the 1-based upper bound (0 = region end) [0]")
	fs.IntVar(&o.High, "u", 0, "alias of --high")
	fs.Int64Var(&o.Seed, "seed", 0, "random seed (0 = time-derived) [0]")

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
		return o, errors.New("a reference FASTA file is required ('-' for stdin)")
	case 1:
		o.Reference = posArgs[0]
	default:
		return o, fmt.Errorf("expected one reference FASTA, got %d arguments", len(posArgs))
	}
	if o.Rate <= 0 || o.Rate > 1 {
		return o, fmt.Errorf("--mutation-rate must be in (0,1], got %v", o.Rate)
	}
	if o.Low < 0 || o.High < 0 {
		return o, errors.New("--low/--high must be ≥ 0")
	}
	if o.Low > 0 && o.High > 0 && o.Low >= o.High {
		return o, fmt.Errorf("--low (%d) must be below --high (%d)", o.Low, o.High)
	}
	if err := clibase.Validate(&o.Common); err != nil {
		return o, err
	}
	return o, nil
}
