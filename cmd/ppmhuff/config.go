package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/Zamzurizmn/PROJECT-IF112/internal/huffman"
	shellwords "github.com/mattn/go-shellwords"
)

// _flagsEnv holds default flags for every invocation.
// Flags passed on the command line take precedence over these.
const _flagsEnv = "PPMHUFF_FLAGS"

type config struct {
	Input  string // path to the PPM image
	Output string // path to the compressed artifact

	Pack      bool
	Stats     bool
	Histogram string
	LogFile   string
	Verbose   bool
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.BoolVar(&c.Pack, "pack", false, "")
	flag.BoolVar(&c.Stats, "stats", false, "")
	flag.StringVar(&c.Histogram, "histogram", "", "")
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
}

// ParseEnv fills this config from a shell-quoted list of flags,
// as found in the PPMHUFF_FLAGS environment variable.
func (c *config) ParseEnv(value string) error {
	args, err := shellwords.Parse(value)
	if err != nil {
		return fmt.Errorf("$%v: %w", _flagsEnv, err)
	}

	fset := flag.NewFlagSet(_flagsEnv, flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	c.RegisterFlags(fset)
	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("$%v: %w", _flagsEnv, err)
	}

	if args := fset.Args(); len(args) > 0 {
		return fmt.Errorf("$%v: unexpected arguments %q", _flagsEnv, args)
	}

	return nil
}

// FillFrom updates this config object, filling empty values with values from
// the provided struct but not overwriting those that are already set.
func (c *config) FillFrom(o *config) {
	if len(c.Input) == 0 {
		c.Input = o.Input
	}
	if len(c.Output) == 0 {
		c.Output = o.Output
	}
	if len(c.Histogram) == 0 {
		c.Histogram = o.Histogram
	}
	if len(c.LogFile) == 0 {
		c.LogFile = o.LogFile
	}
	c.Pack = c.Pack || o.Pack
	c.Stats = c.Stats || o.Stats
	c.Verbose = c.Verbose || o.Verbose
}

// Flags rebuilds a list of arguments from which this configuration may be
// parsed. Input and Output are placed last.
func (c *config) Flags() []string {
	var args []string
	if c.Pack {
		args = append(args, "-pack")
	}
	if c.Stats {
		args = append(args, "-stats")
	}
	if len(c.Histogram) > 0 {
		args = append(args, "-histogram", c.Histogram)
	}
	if len(c.LogFile) > 0 {
		args = append(args, "-log", c.LogFile)
	}
	if c.Verbose {
		args = append(args, "-verbose")
	}
	if len(c.Input) > 0 || len(c.Output) > 0 {
		args = append(args, c.Input, c.Output)
	}
	return args
}

// Format reports the code stream format selected by this config.
func (c *config) Format() huffman.Format {
	if c.Pack {
		return huffman.FormatPacked
	}
	return huffman.FormatText
}
