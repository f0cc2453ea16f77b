package cmdr

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCommandError(t *testing.T) {
	tests := map[string]struct {
		err      error
		kind     error
		expected string
	}{
		"Invalid command": {
			err:      InvalidCommand("blah"),
			kind:     ErrInvalidCommand,
			expected: "unknown command: blah",
		},
		"Invalid number of arguments": {
			err:      InvalidNumberOfArguments("greet"),
			kind:     ErrInvalidNumberOfArguments,
			expected: "invalid number of arguments: greet",
		},
		"No help": {
			err:      NoHelpForCommand("quit"),
			kind:     ErrNoHelpForCommand,
			expected: "no help available: quit",
		},
		"No kind": {
			err:      &CommandError{Command: "x"},
			expected: "command error: x",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.EqualError(t, tc.err, tc.expected)
			if tc.kind != nil {
				assert.ErrorIs(t, tc.err, tc.kind)
				assert.ErrorIs(t, fmt.Errorf("wrapped: %w", tc.err), tc.kind)
			}
			var cmdErr *CommandError
			assert.True(t, errors.As(tc.err, &cmdErr))
		})
	}
}

func TestCommandError_KindsDiffer(t *testing.T) {
	err := InvalidCommand("x")
	assert.NotErrorIs(t, err, ErrInvalidNumberOfArguments)
	assert.NotErrorIs(t, err, ErrNoHelpForCommand)
}

func TestFatalError(t *testing.T) {
	err := Fatal(3)
	assert.EqualError(t, err, "fatal error: exit code 3")
	assert.ErrorIs(t, err, &FatalError{}, "Any FatalError should match regardless of code")
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), &FatalError{})
	assert.NotErrorIs(t, errors.New("other"), &FatalError{})
}

func TestExitCode(t *testing.T) {
	tests := map[string]struct {
		err      error
		expected int
	}{
		"Nil":           {err: nil, expected: 0},
		"Fatal":         {err: Fatal(101), expected: 101},
		"Fatal zero":    {err: Fatal(0), expected: 0},
		"Wrapped fatal": {err: fmt.Errorf("wrapped: %w", Fatal(5)), expected: 5},
		"Read failure":  {err: fmt.Errorf("%w: %w", ErrLineRead, errors.New("broken")), expected: 1},
		"Other":         {err: errors.New("other"), expected: 1},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExitCode(tc.err))
		})
	}
}

func TestRegistrationError(t *testing.T) {
	collected := new(RegistrationError)
	require.NoError(t, collected.result())

	collected.add(nil)
	require.NoError(t, collected.result(), "Nil errors should be ignored")

	first := fmt.Errorf("%w: first", ErrDuplicateName)
	collected.add(first)
	collected.add(errors.New("second"))
	err := collected.result()
	require.Error(t, err)
	assert.Equal(t, "duplicate command name: first\nsecond", err.Error())
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, []error{first, collected.errs[1]}, collected.Unwrap())
}

func TestErrInterrupted(t *testing.T) {
	assert.EqualError(t, ErrInterrupted, "interrupted")
}
