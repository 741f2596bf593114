// Package cli implements the modelkit command line.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/born-ml/modelkit/internal/config"
)

// Version is the modelkit release.
const Version = "v0.1.0"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

func failure(err error) error {
	return &ExitError{Code: 1, Message: err.Error()}
}

// env is what every command runs with.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, e *env, args []string) error
}

var commands = []command{
	{"version", "print the modelkit version", runVersion},
	{"pack", "build a bundle archive from an outcome list and dictionaries", runPack},
	{"inspect", "print the manifest and entries of a bundle", runInspect},
	{"validate", "load a bundle and check its artifacts", runValidate},
	{"lookup", "tokenize text and print the tags the bundle admits per token", runLookup},
	{"samples", "read a language detection training file", runSamples},
}

// Run parses global flags, selects the subcommand and runs it. Errors meant for the
// process exit status are *ExitError values.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flagSet := flag.NewFlagSet("modelkit", flag.ContinueOnError)
	flagSet.SetOutput(stderr)

	flagSet.Usage = func() {
		fmt.Fprint(stderr, `
modelkit - package, inspect and validate tagger model bundles.

Usage:
  modelkit [options] COMMAND [ARGS]

Commands:
`)
		for _, c := range commands {
			fmt.Fprintf(stderr, "  %-10s %s\n", c.name, c.summary)
		}
		fmt.Fprint(stderr, "\nOptions:\n")
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a YAML config file (overrides $MODELKIT_CONFIG).")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format: 'console' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return &ExitError{Code: 2, Message: "no command given"}
	}

	name := flagSet.Arg(0)
	idx := slices.IndexFunc(commands, func(c command) bool { return c.name == name })
	if idx < 0 {
		return usageError("unknown command %q", name)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return failure(err)
	}
	if *logLevelFlag != "" {
		cfg.Log.Level = strings.ToLower(*logLevelFlag)
	}
	if *logFormatFlag != "" {
		cfg.Log.Format = strings.ToLower(*logFormatFlag)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return usageError("%v", err)
	}
	defer func() { _ = logger.Sync() }()

	e := &env{cfg: cfg, logger: logger, stdout: stdout, stderr: stderr}
	return commands[idx].run(ctx, e, flagSet.Args()[1:])
}

// newFlagSet creates the flag set of a subcommand.
func (e *env) newFlagSet(name, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet("modelkit "+name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage:\n  modelkit %s %s\n\nOptions:\n", name, usage)
		fs.PrintDefaults()
	}
	return fs
}

// parse parses a subcommand's flags. It reports done when help was requested.
func parse(fs *flag.FlagSet, args []string) (done bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return true, &ExitError{Code: 2, Message: err.Error()}
	}
	return false, nil
}
