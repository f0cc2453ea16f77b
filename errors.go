package cmdr

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/cmdr/lineio"
	"strings"
)

var (
	ErrInvalidCommand           = errors.New("unknown command")
	ErrInvalidNumberOfArguments = errors.New("invalid number of arguments")
	ErrNoHelpForCommand         = errors.New("no help available")
	ErrEmptyLine                = errors.New("empty line")
	ErrInterrupted              = lineio.ErrInterrupted // ErrInterrupted is reported when the user interrupts input, usually with Ctrl-C.
	ErrEndOfInput               = errors.New("end of input")
	ErrLineRead                 = errors.New("failed to read line")
)

// CommandError reports a problem with the command named in a [Line].
// It matches its kind sentinel with [errors.Is], for example [ErrInvalidCommand].
type CommandError struct {
	Command string
	kind    error
}

func (e *CommandError) Error() string {
	if e.kind == nil {
		return "command error: " + e.Command
	}
	return e.kind.Error() + ": " + e.Command
}

func (e *CommandError) Unwrap() error {
	return e.kind
}

// InvalidCommand creates an error for a command that isn't registered in a scope.
func InvalidCommand(command string) error {
	return &CommandError{Command: command, kind: ErrInvalidCommand}
}

// InvalidNumberOfArguments creates an error for a command that was given the wrong number of arguments.
func InvalidNumberOfArguments(command string) error {
	return &CommandError{Command: command, kind: ErrInvalidNumberOfArguments}
}

// NoHelpForCommand creates an error for a command that exists, but has no help text.
func NoHelpForCommand(command string) error {
	return &CommandError{Command: command, kind: ErrNoHelpForCommand}
}

// FatalError ends a run immediately, and carries the exit code the process should use.
// Returning one from a command skips every remaining hook once the scope's [ErrorHandler] has seen it.
type FatalError struct {
	Code int
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal error: exit code %d", e.Code)
}

func (e *FatalError) Is(err error) bool {
	_, ok := err.(*FatalError)
	return ok
}

// Fatal creates a [FatalError] with the given exit code.
func Fatal(code int) error {
	return &FatalError{Code: code}
}

// ExitCode translates the error returned from [Runner.Run] into a process exit code.
// A nil error is 0, a [FatalError] is its own code, and anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var fatal *FatalError
	if errors.As(err, &fatal) {
		return fatal.Code
	}
	return 1
}

// RegistrationError collects the conflicts found by [Table.Validate].
// Each conflict may be matched with [errors.Is] against [ErrDuplicateName].
type RegistrationError struct {
	errs []error
}

var ErrDuplicateName = errors.New("duplicate command name")

func (e *RegistrationError) add(err error) {
	if err != nil {
		e.errs = append(e.errs, err)
	}
}

func (e *RegistrationError) result() error {
	if len(e.errs) > 0 {
		return e
	}
	return nil
}

func (e *RegistrationError) Error() string {
	var buf strings.Builder
	for i, err := range e.errs {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(err.Error())
	}
	return buf.String()
}

func (e *RegistrationError) Unwrap() []error {
	return e.errs
}
