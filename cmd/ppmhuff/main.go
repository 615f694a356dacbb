package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Zamzurizmn/PROJECT-IF112/internal/log"
	"github.com/Zamzurizmn/PROJECT-IF112/internal/paniclog"
	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
)

var _version = "dev"

var _main = mainCmd{
	Stdout: os.Stdout,
	Stderr: os.Stderr,
	Getenv: os.Getenv,
	Clock:  clock.New(),
}

func main() {
	if err := run(&_main, os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(_main.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *mainCmd, args []string) (err error) {
	var cfg config
	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		name := flag.Name()
		fmt.Fprintf(flag.Output(), _usage, name)
	}
	cfg.RegisterFlags(flag)
	version := flag.Bool("version", false, "")
	if err := flag.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Fprintf(cmd.Stdout, "%v version %v\n", _name, _version)
		return nil
	}

	args = flag.Args()
	if len(args) != 2 {
		return fmt.Errorf("usage: %v [options] INPUT OUTPUT: expected 2 arguments, got %d", _name, len(args))
	}
	cfg.Input, cfg.Output = args[0], args[1]

	if opts := cmd.Getenv(_flagsEnv); len(opts) > 0 {
		var envCfg config
		if err := envCfg.ParseEnv(opts); err != nil {
			return err
		}
		cfg.FillFrom(&envCfg)
	}

	return cmd.Run(&cfg)
}

type mainCmd struct {
	Stdout io.Writer
	Stderr io.Writer

	Getenv func(string) string // == os.Getenv
	Clock  clock.Clock

	runTarget runTargetFunc
}

const _name = "ppmhuff"

const _usage = `usage: %v [options] INPUT OUTPUT

Compresses the red channel of the binary PPM image at INPUT with a Huffman
code and writes the code table and the encoded stream to OUTPUT.

The following flags are available:

	-pack
		pack the encoded stream eight symbols to a byte.
		Writes one '0' or '1' character per symbol by default.
	-stats
		print the code table and a summary of the compression.
	-histogram FILE
		write a bar chart of the sample histogram to FILE as a PPM
		image.
	-log FILE
		file to write logs to.
		Uses stderr by default.
	-verbose
		log more output.
	-version
		display version information.

Default flags may be provided with the PPMHUFF_FLAGS environment variable.
Flags on the command line take precedence.

	PPMHUFF_FLAGS='-pack -stats'
`

func (cmd *mainCmd) init() {
	if cmd.runTarget == nil {
		cmd.runTarget = runTarget
	}
}

func (cmd *mainCmd) Run(cfg *config) (err error) {
	cmd.init()

	logw := cmd.Stderr
	if file := cfg.LogFile; len(file) > 0 {
		f, ferr := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if ferr != nil {
			return fmt.Errorf("open log %q: %w", file, ferr)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		logw = f
	}

	logger := log.New(logw)
	if cfg.Verbose {
		logger = logger.WithLevel(log.Debug)
	}

	defer paniclog.Recover(&err, logger)

	target := &app{
		Log:    logger,
		Stdout: cmd.Stdout,
		Clock:  cmd.Clock,
	}

	return cmd.runTarget(target, cfg)
}

// runTargetFunc runs objects that conform to the app signature.
type runTargetFunc func(interface {
	Run(*config) error
}, *config) error

func runTarget(target interface{ Run(*config) error }, cfg *config) error {
	return target.Run(cfg)
}
