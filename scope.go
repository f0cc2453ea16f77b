package cmdr

import "iter"

// Scope is a set of commands that a [Runner] can execute, along with any state those commands need.
// A scope may also implement any of the optional hook interfaces in this package to change default behavior.
type Scope interface {
	// Commands returns the command table for this scope.
	// This is typically shared by every instance of the scope's type.
	Commands() Commands
}

// Commands is the read-only view of a command table that the [Runner] uses.
// [Table] is the implementation provided by this package.
type Commands interface {
	// HelpCommand returns the name that triggers help output, or an empty string if help is disabled.
	HelpCommand() string
	// Lookup finds a command by name or alias.
	Lookup(name string) (Entry, bool)
	// All iterates every command in registration order.
	All() iter.Seq[Entry]
	// FormatHelp renders help for the scope, or for one command if an argument is given.
	FormatHelp(args []string) (string, error)
	// Suggest returns up to limit names close to the given name.
	Suggest(name string, limit int) []string
}

// Entry is a single registered command.
type Entry interface {
	Name() string
	Aliases() []string
	// Help returns the command's help text, which may be empty.
	Help() string
	// Invoke runs the command's handler for the given scope instance.
	Invoke(scope Scope, args []string) (Action, error)
}

// Prompter may be implemented by a [Scope] to change the prompt from [DefaultPrompt].
type Prompter interface {
	Prompt() string
}

// DefaultPrompt is used for scopes that don't implement [Prompter].
const DefaultPrompt = ">"

// EmptyLineHandler may be implemented by a [Scope] to decide what happens when an empty line is entered.
// Without it, an empty line is ignored unless the [Runner] is configured with [WithEmptyLineError].
type EmptyLineHandler interface {
	EmptyLine() (Action, error)
}

// Defaulter may be implemented by a [Scope] to handle lines that don't match a registered command.
// Without it, an [InvalidCommand] error is produced.
type Defaulter interface {
	Default(line Line) (Action, error)
}

// ErrorHandler may be implemented by a [Scope] to see every error before the [Runner] applies its defaults.
// Returning a nil error means the error was handled, and the returned [Action] is used instead.
// Returning a non-nil error, either the same or a different one, passes it on to the defaults.
type ErrorHandler interface {
	HandleError(err error) (Action, error)
}

// BeforeLooper may be implemented by a [Scope] to run code when the scope starts.
type BeforeLooper interface {
	BeforeLoop()
}

// BeforeCommander may be implemented by a [Scope] to inspect or replace each line before it's dispatched.
type BeforeCommander interface {
	BeforeCommand(line Line) Line
}

// AfterCommander may be implemented by a [Scope] to inspect or replace the result of each line.
// The returned values are authoritative for the iteration.
type AfterCommander interface {
	AfterCommand(line Line, result Action) (Action, error)
}

// AfterLooper may be implemented by a [Scope] to run code when the scope finishes normally.
// This is not called when a run ends with a [FatalError] or a line read failure.
type AfterLooper interface {
	AfterLoop()
}

func promptFor(scope Scope) string {
	if p, ok := scope.(Prompter); ok {
		return p.Prompt()
	}
	return DefaultPrompt
}
