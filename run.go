package cmdr

import (
	"github.com/saylorsolutions/cmdr/lineio"
	"golang.org/x/term"
	"os"
)

// Run executes a scope against the process's standard input and output, which is the most common way to start a shell.
// Input is read with line editing and history if stdin is a terminal, and read as a plain stream otherwise.
//
// Options from [EnvOptions] are applied before the given options.
func Run(scope Scope, opts ...Option) error {
	var in LineReader
	if term.IsTerminal(int(os.Stdin.Fd())) {
		in = lineio.NewTerminalReader(os.Stdin, os.Stdout)
	} else {
		in = lineio.NewStreamReader(os.Stdin)
	}
	runner := NewRunner(in, lineio.NewPrinter(), append(EnvOptions(), opts...)...)
	return runner.Run(scope)
}
