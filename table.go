package cmdr

import (
	"fmt"
	"iter"
	"regexp"
	"slices"
)

// DefaultHelpCommand is the name that shows help in a [Table] unless it's configured otherwise.
const DefaultHelpCommand = "help"

var invalidNamePattern = regexp.MustCompile(`\s`)

// Handler is the function executed for a [Command], given the scope instance it was invoked on and the line's arguments.
type Handler[S Scope] func(scope S, args []string) (Action, error)

// Command is a command registered in a [Table].
type Command[S Scope] struct {
	name    string
	help    string
	aliases []string
	handler Handler[S]
}

var _ Entry = (*Command[Scope])(nil)

// Does specifies the [Handler] that should be executed for this [Command].
// A nil handler is ignored.
func (c *Command[S]) Does(handler Handler[S]) *Command[S] {
	if handler == nil {
		return c
	}
	c.handler = handler
	return c
}

// Name returns the primary name of this [Command].
func (c *Command[S]) Name() string {
	return c.name
}

// Aliases returns a copy of the alternate names of this [Command].
func (c *Command[S]) Aliases() []string {
	return slices.Clone(c.aliases)
}

// Help returns the help text for this [Command].
func (c *Command[S]) Help() string {
	return c.help
}

// Invoke runs the handler with the given scope, which must be an S.
// A command without a handler does nothing.
func (c *Command[S]) Invoke(scope Scope, args []string) (Action, error) {
	if c.handler == nil {
		return Continue, nil
	}
	typed, ok := scope.(S)
	if !ok {
		panic(fmt.Sprintf("command '%s' invoked with scope type %T", c.name, scope))
	}
	return c.handler(typed, args)
}

func (c *Command[S]) handles(name string) bool {
	return c.name == name || slices.Contains(c.aliases, name)
}

type tableConfig struct {
	scopeHelp   string
	helpCommand string
}

// TableOption configures a [Table] when it's created.
type TableOption func(conf *tableConfig)

// WithScopeHelp sets the text shown above the command list when help is requested without arguments.
func WithScopeHelp(text string) TableOption {
	return func(conf *tableConfig) {
		conf.scopeHelp = text
	}
}

// WithHelpCommand changes the name of the help command from [DefaultHelpCommand].
func WithHelpCommand(name string) TableOption {
	return func(conf *tableConfig) {
		conf.helpCommand = name
	}
}

// WithoutHelp disables the help command, so the name is dispatched like any other command.
func WithoutHelp() TableOption {
	return func(conf *tableConfig) {
		conf.helpCommand = ""
	}
}

// Table is the command registry for one scope type.
// It should be populated once, before it's used by a [Runner], and not changed afterward.
//
// Names and aliases are case-sensitive.
// When more than one command claims the same name or alias, the one registered first is used.
type Table[S Scope] struct {
	tableConfig
	commands []*Command[S]
	index    map[string]*Command[S]
}

var _ Commands = (*Table[Scope])(nil)

// NewTable creates an empty [Table] for scopes of type S.
func NewTable[S Scope](opts ...TableOption) *Table[S] {
	t := &Table[S]{
		tableConfig: tableConfig{helpCommand: DefaultHelpCommand},
		index:       map[string]*Command[S]{},
	}
	for _, opt := range opts {
		opt(&t.tableConfig)
	}
	return t
}

// Add registers a new command and returns it so a [Handler] can be attached with [Command.Does].
// The help text may be empty, and aliases may be added as shorter variants of the name.
//
// Names and aliases must not be empty or contain whitespace, since they could never be entered.
// Violating this will panic.
func (t *Table[S]) Add(name, help string, aliases ...string) *Command[S] {
	mustBeValidName(name)
	cmd := &Command[S]{name: name, help: help}
	if t.index == nil {
		t.index = map[string]*Command[S]{}
	}
	t.commands = append(t.commands, cmd)
	t.claim(name, cmd)
	for _, alias := range aliases {
		mustBeValidName(alias)
		cmd.aliases = append(cmd.aliases, alias)
		t.claim(alias, cmd)
	}
	return cmd
}

func mustBeValidName(name string) {
	if len(name) == 0 {
		panic("empty command name")
	}
	if invalidNamePattern.MatchString(name) {
		panic(fmt.Sprintf("command name '%s' contains whitespace", name))
	}
}

func (t *Table[S]) claim(key string, cmd *Command[S]) {
	if _, taken := t.index[key]; taken {
		return
	}
	t.index[key] = cmd
}

// HelpCommand returns the configured help command name, or an empty string if help is disabled.
func (t *Table[S]) HelpCommand() string {
	return t.helpCommand
}

// ScopeHelp returns the text configured with [WithScopeHelp].
func (t *Table[S]) ScopeHelp() string {
	return t.scopeHelp
}

// Lookup finds a [Command] by name or alias.
func (t *Table[S]) Lookup(name string) (Entry, bool) {
	cmd, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return cmd, true
}

// All iterates every registered command in registration order.
func (t *Table[S]) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, cmd := range t.commands {
			if !yield(cmd) {
				return
			}
		}
	}
}

// Len returns the number of registered commands.
func (t *Table[S]) Len() int {
	return len(t.commands)
}

// Validate reports every name or alias that is claimed by more than one command, and any command without a [Handler].
// The Table is still usable when this returns an error, since conflicts are resolved in registration order.
func (t *Table[S]) Validate() error {
	var (
		regErr RegistrationError
		owners = map[string]*Command[S]{}
	)
	for _, cmd := range t.commands {
		if cmd.handler == nil {
			regErr.add(fmt.Errorf("command '%s' has no handler", cmd.name))
		}
		for _, key := range append([]string{cmd.name}, cmd.aliases...) {
			owner, taken := owners[key]
			if !taken {
				owners[key] = cmd
				continue
			}
			if owner == cmd {
				continue
			}
			regErr.add(fmt.Errorf("%w: '%s' is claimed by '%s' and '%s'", ErrDuplicateName, key, owner.name, cmd.name))
		}
		if len(t.helpCommand) > 0 && cmd.handles(t.helpCommand) {
			regErr.add(fmt.Errorf("%w: '%s' is the help command and can't be used by '%s'", ErrDuplicateName, t.helpCommand, cmd.name))
		}
	}
	return regErr.result()
}
