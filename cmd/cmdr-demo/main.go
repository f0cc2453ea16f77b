// cmdr-demo is an interactive shell showing what cmdr scopes can do.
//
// Input is read from the terminal with line editing, or from a file with --file.
// Use --echo with --file to print each line after its prompt, so the output reads like a session transcript.
package main

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/cmdr"
	"github.com/saylorsolutions/cmdr/lineio"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"
	"io"
	"os"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil && !errors.Is(err, &cmdr.FatalError{}) {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(cmdr.ExitCode(err))
}

type flags struct {
	file           string
	echo           bool
	config         string
	noColor        bool
	emptyLineError bool
	logLevel       string
}

func parseFlags(args []string) (*flags, *flag.FlagSet, error) {
	var f flags
	fs := flag.NewFlagSet("cmdr-demo", flag.ContinueOnError)
	fs.StringVarP(&f.file, "file", "f", "", "Reads commands from a file instead of the terminal")
	fs.BoolVar(&f.echo, "echo", false, "Echoes each line read from --file after its prompt")
	fs.StringVarP(&f.config, "config", "c", "", "Loads settings from a YAML file")
	fs.BoolVar(&f.noColor, "no-color", false, "Disables styled output")
	fs.BoolVar(&f.emptyLineError, "empty-line-error", false, "Reports empty lines as errors")
	fs.StringVar(&f.logLevel, "log-level", "", "Logs runner decisions to stderr at this level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	if fs.NArg() > 0 {
		return nil, fs, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return &f, fs, nil
}

func run(args []string, stdin *os.File, stdout io.Writer) error {
	f, fs, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := LoadConfig(f.config)
	if err != nil {
		return err
	}
	if fs.Changed("empty-line-error") {
		cfg.EmptyLineError = &f.emptyLineError
	}

	in, closeInput, err := openInput(f, stdin, stdout)
	if err != nil {
		return err
	}
	defer closeInput()

	out := lineio.NewPrinter()
	out.Redirect(stdout)
	if f.noColor {
		out.Plain()
	}

	opts, err := runnerOptions(f, cfg)
	if err != nil {
		return err
	}
	return cmdr.NewRunner(in, out, opts...).Run(newMainScope(out, cfg))
}

// runnerOptions applies the environment first, then the config file, then flags.
func runnerOptions(f *flags, cfg Config) ([]cmdr.Option, error) {
	opts := cmdr.EnvOptions()
	if cfg.EmptyLineError != nil {
		opts = append(opts, cmdr.WithEmptyLineError(*cfg.EmptyLineError))
	}
	if cfg.Suggestions != nil {
		opts = append(opts, cmdr.WithSuggestions(*cfg.Suggestions))
	}
	if len(f.logLevel) > 0 {
		level, ok := cmdr.ParseLogLevel(f.logLevel)
		if !ok {
			return nil, fmt.Errorf("unknown log level '%s'", f.logLevel)
		}
		opts = append(opts, cmdr.WithLogger(cmdr.NewLogger(os.Stderr, level)))
	}
	return opts, nil
}

func openInput(f *flags, stdin *os.File, stdout io.Writer) (cmdr.LineReader, func(), error) {
	if len(f.file) == 0 {
		if term.IsTerminal(int(stdin.Fd())) {
			return lineio.NewTerminalReader(stdin, stdout), func() {}, nil
		}
		return lineio.NewStreamReader(stdin), func() {}, nil
	}
	file, err := os.Open(f.file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	closeFile := func() {
		_ = file.Close()
	}
	var in cmdr.LineReader = lineio.NewStreamReader(file)
	if f.echo {
		in = lineio.NewEchoReader(in, stdout)
	}
	return in, closeFile, nil
}
