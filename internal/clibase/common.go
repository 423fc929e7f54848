// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
)

// Common holds CLI fields shared by vcfy and ksnper.
type Common struct {
	Output  string // output path, "-" = stdout
	Quiet   bool
	Version bool
}

// Register wires the shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.StringVar(&c.Output, "output", "-", "write to this file instead of stdout")
	fs.StringVar(&c.Output, "o", "-", "alias of --output")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// Validate applies shared CLI invariants.
func Validate(c *Common) error {
	if c.Output == "" {
		return errors.New("--output must not be empty (use '-' for stdout)")
	}
	return nil
}
