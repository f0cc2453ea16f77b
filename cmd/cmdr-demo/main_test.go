package main

import (
	"bytes"
	"github.com/saylorsolutions/cmdr"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func runScript(t *testing.T, lines []string, extraArgs ...string) (string, error) {
	t.Helper()
	path := writeFile(t, "input.txt", strings.Join(lines, "\n"))
	var buf bytes.Buffer
	args := append([]string{"--file", path, "--echo", "--no-color"}, extraArgs...)
	err := run(args, os.Stdin, &buf)
	return buf.String(), err
}

func TestRun_Transcript(t *testing.T) {
	output, err := runScript(t, []string{
		"greet",
		"hi Bob",
		"!!",
		"notes",
		"add buy milk",
		"remember the keys",
		"ls",
		"back",
		"stats",
		"quit",
	})
	require.NoError(t, err)
	assert.Equal(t, `Welcome! Type 'help' to see what you can do.
demo> greet
Hello, stranger!
demo> hi Bob
Hello, Bob!
demo> !!
hi Bob
Hello, Bob!
demo> notes
notes> add buy milk
notes> remember the keys
notes> ls
1. buy milk
2. remember the keys
notes> back
demo> stats
Commands: 4, notes: 2
demo> quit
Goodbye!
`, output)
}

func TestRun_Errors(t *testing.T) {
	output, err := runScript(t, []string{
		"gret",
		"fail",
		"greet a b",
		"help fail",
		"",
	}, "--empty-line-error")
	require.NoError(t, err, "End of input should end the run normally")
	assert.Contains(t, output, "unknown command: gret (did you mean greet")
	assert.Contains(t, output, "this command always fails\n")
	assert.Contains(t, output, "invalid number of arguments: greet\n")
	assert.Contains(t, output, "no help available: fail\n")
	assert.Contains(t, output, "empty line\n")
	assert.True(t, strings.HasSuffix(output, "Goodbye!\n"))
}

func TestRun_Translated(t *testing.T) {
	cfg := writeFile(t, "demo.yaml", "language: nl\ngreeting: ''\nsuggestions: 0\n")
	output, err := runScript(t, []string{
		"gret",
		"greet a b",
		"fail",
		"quit",
	}, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, `demo> gret
Onbekend commando: gret
demo> greet a b
Ongeldig aantal argumenten: greet
demo> fail
this command always fails
demo> quit
Goodbye!
`, output)
}

func TestRun_AdminScope(t *testing.T) {
	output, err := runScript(t, []string{
		"notes",
		"first note",
		"back",
		"admin",
		"",
		"?",
		"status",
		"q",
	})
	require.NoError(t, err)
	assert.Contains(t, output, "demo> admin\nGoodbye!\nadmin# \nType '?' for help\n", "The main scope's loop should finish before the admin scope starts")
	assert.Contains(t, output, "- status\n- quit\n")
	assert.Contains(t, output, "Language: en, commands: 2, notes: 1\n")
	assert.True(t, strings.HasSuffix(output, "admin# q\n"))
}

func TestRun_ExitCode(t *testing.T) {
	_, err := runScript(t, []string{"exit 4", "quit"})
	assert.ErrorIs(t, err, &cmdr.FatalError{})
	assert.Equal(t, 4, cmdr.ExitCode(err))

	_, err = runScript(t, []string{"exit nope", "quit"})
	assert.NoError(t, err)
}

func TestRun_BadFlags(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, run([]string{"--help"}, os.Stdin, &buf), flag.ErrHelp)
	assert.Error(t, run([]string{"extra"}, os.Stdin, &buf))
	assert.Error(t, run([]string{"--file", filepath.Join(t.TempDir(), "missing")}, os.Stdin, &buf))
	_, err := runScript(t, []string{"quit"}, "--log-level", "chatty")
	assert.Error(t, err)
}

func TestRun_EmptyLineErrorPrecedence(t *testing.T) {
	tests := map[string]struct {
		env      string
		config   string
		flags    []string
		reported bool
	}{
		"Default": {},
		"Environment": {
			env:      "true",
			reported: true,
		},
		"Config overrides environment": {
			env:    "true",
			config: "empty_line_error: false\n",
		},
		"Config without the setting": {
			env:      "true",
			config:   "greeting: ''\n",
			reported: true,
		},
		"Flag overrides config": {
			config:   "empty_line_error: false\n",
			flags:    []string{"--empty-line-error"},
			reported: true,
		},
		"Flag turned off": {
			env:   "true",
			flags: []string{"--empty-line-error=false"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(cmdr.EnvEmptyLineError, tc.env)
			args := tc.flags
			if len(tc.config) > 0 {
				args = append(args, "--config", writeFile(t, "demo.yaml", tc.config))
			}
			output, err := runScript(t, []string{"", "quit"}, args...)
			require.NoError(t, err)
			if tc.reported {
				assert.Contains(t, output, "demo> \nempty line\n")
			} else {
				assert.NotContains(t, output, "empty line")
			}
		})
	}
}
