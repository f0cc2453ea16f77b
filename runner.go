package cmdr

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// LineReader supplies raw lines of input to a [Runner].
// ReadLine blocks until a line is available.
//
// Returning [io.EOF] or [ErrEndOfInput] signals the end of input, and [ErrInterrupted] signals that the user interrupted input.
// Any other error is treated as a read failure.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Runner reads lines from a [LineReader], and executes them against a [Scope] until it's told to stop.
//
// Errors that are not handled by a scope's [ErrorHandler] are handled like this:
//   - [ErrInvalidCommand], [ErrInvalidNumberOfArguments], [ErrNoHelpForCommand], and [ErrEmptyLine] are written to the [LineWriter], and the loop continues.
//   - [ErrInterrupted] quits every scope.
//   - [ErrEndOfInput] exits the current scope.
//   - A [FatalError] or [ErrLineRead] stops every scope immediately, and is returned from [Runner.Run].
//   - Any other error is written to the [LineWriter], and the loop continues.
//
// A Runner is not safe for concurrent use, and only one [Runner.Run] should be active at a time.
type Runner struct {
	in           LineReader
	out          LineWriter
	log          *slog.Logger
	emptyLineErr bool
	suggestions  int
	depth        int
}

// NewRunner creates a [Runner] that reads from in and writes to out.
// Nil values for in or out will panic.
func NewRunner(in LineReader, out LineWriter, opts ...Option) *Runner {
	if in == nil {
		panic("nil line reader")
	}
	if out == nil {
		panic("nil line writer")
	}
	r := &Runner{
		in:          in,
		out:         out,
		log:         discardLogger(),
		suggestions: DefaultSuggestions,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the scope until a command quits, the input ends, or a fatal error occurs.
// When a scope is replaced with [NewScope], the new scope is run with the same input and output.
//
// A nil error is returned when the run ends normally.
// [ExitCode] can be used to translate the returned error to a process exit code.
func (r *Runner) Run(scope Scope) error {
	if scope == nil {
		panic("nil scope")
	}
	result, err := r.runScope(scope)
	if err != nil {
		r.log.Warn("Run terminated with error", "error", err)
		return err
	}
	r.log.Debug("Run finished", "result", result)
	return nil
}

// runScope runs scope, and then any scope that replaces it, until something other than NewScope is produced.
func (r *Runner) runScope(scope Scope) (Action, error) {
	for {
		result, err := r.runLines(scope)
		if err != nil {
			return result, err
		}
		if result.Kind() != KindNewScope {
			return result, nil
		}
		r.log.Debug("Switching scope", "depth", r.depth, "from", fmt.Sprintf("%T", scope), "to", fmt.Sprintf("%T", result.Scope()))
		scope = result.Scope()
	}
}

// runLines is the loop for a single scope.
// Exit is translated to Continue, since it only has meaning for this scope.
func (r *Runner) runLines(scope Scope) (Action, error) {
	if h, ok := scope.(BeforeLooper); ok {
		h.BeforeLoop()
	}
	var result Action
	for {
		var err error
		result, err = r.iterate(scope)
		if err != nil {
			return Continue, err
		}
		if result.ends() {
			break
		}
	}
	if h, ok := scope.(AfterLooper); ok {
		h.AfterLoop()
	}
	if result.Kind() == KindExit {
		return Continue, nil
	}
	return result, nil
}

// iterate reads and executes one line.
// A non-nil error is terminal for every running scope.
func (r *Runner) iterate(scope Scope) (Action, error) {
	raw, err := r.in.ReadLine(promptFor(scope))
	if err != nil {
		// No line was read, so there's nothing to give the command hooks.
		result, err := r.resolve(scope, Continue, readError(err))
		if err != nil {
			return result, err
		}
		return r.enter(result)
	}

	line := ParseLine(raw)
	if h, ok := scope.(BeforeCommander); ok {
		line = h.BeforeCommand(line)
	}

	var result Action
	if line.Empty() {
		result, err = r.emptyLine(scope)
	} else {
		r.log.Debug("Dispatching command", "depth", r.depth, "command", line.Command, "args", len(line.Args))
		result, err = Dispatch(scope, line, r.out)
	}
	result, err = r.resolve(scope, result, err)
	if err != nil {
		return result, err
	}
	result, err = r.enter(result)
	if err != nil {
		return result, err
	}

	h, ok := scope.(AfterCommander)
	if !ok {
		return result, nil
	}
	result, err = h.AfterCommand(line, result)
	result, err = r.resolve(scope, result, err)
	if err != nil {
		return result, err
	}
	return r.enter(result)
}

func (r *Runner) emptyLine(scope Scope) (Action, error) {
	if h, ok := scope.(EmptyLineHandler); ok {
		return h.EmptyLine()
	}
	if r.emptyLineErr {
		return Continue, ErrEmptyLine
	}
	return Continue, nil
}

// enter runs a sub-scope to completion if one is requested.
// The sub-scope's result becomes the result of the current iteration.
func (r *Runner) enter(result Action) (Action, error) {
	if result.Kind() != KindSubScope {
		return result, nil
	}
	r.depth++
	r.log.Debug("Entering sub-scope", "depth", r.depth, "scope", fmt.Sprintf("%T", result.Scope()))
	result, err := r.runScope(result.Scope())
	r.log.Debug("Left sub-scope", "depth", r.depth, "result", result)
	r.depth--
	return result, err
}

// resolve gives an error to the scope's ErrorHandler, and then applies the default handling if it's still unresolved.
// A non-nil error is only returned if it should end the run.
func (r *Runner) resolve(scope Scope, result Action, err error) (Action, error) {
	if err == nil {
		return result, nil
	}
	if h, ok := scope.(ErrorHandler); ok {
		result, err = h.HandleError(err)
		if err == nil {
			return result, nil
		}
	}
	return r.defaultHandling(scope, err)
}

func (r *Runner) defaultHandling(scope Scope, err error) (Action, error) {
	var fatal *FatalError
	switch {
	case errors.As(err, &fatal), errors.Is(err, ErrLineRead):
		return Continue, err
	case errors.Is(err, ErrInterrupted):
		r.log.Debug("Input interrupted", "depth", r.depth)
		return Quit, nil
	case errors.Is(err, ErrEndOfInput):
		r.log.Debug("End of input", "depth", r.depth)
		return Exit, nil
	case errors.Is(err, ErrInvalidCommand):
		r.out.WriteError(r.withSuggestions(scope, err))
	default:
		r.out.WriteError(err.Error())
	}
	return Continue, nil
}

func (r *Runner) withSuggestions(scope Scope, err error) string {
	var cmdErr *CommandError
	if r.suggestions == 0 || !errors.As(err, &cmdErr) {
		return err.Error()
	}
	similar := scope.Commands().Suggest(cmdErr.Command, r.suggestions)
	if len(similar) == 0 {
		return err.Error()
	}
	return fmt.Sprintf("%s (did you mean %s?)", err.Error(), strings.Join(similar, ", "))
}

func readError(err error) error {
	switch {
	case errors.Is(err, ErrInterrupted), errors.Is(err, ErrEndOfInput):
		return err
	case errors.Is(err, io.EOF):
		return ErrEndOfInput
	default:
		return fmt.Errorf("%w: %w", ErrLineRead, err)
	}
}
