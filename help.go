package cmdr

import "strings"

// DefaultScopeHelp is shown above the command list when a [Table] has no scope help text.
const DefaultScopeHelp = "These are the valid commands in this scope:"

// FormatHelp renders help for this [Table].
//
// With no arguments, the scope help is returned followed by the name of every command.
// With one argument, the help text for the matching command is returned.
// If that command doesn't exist an [InvalidCommand] error is returned, and if it has no help text a [NoHelpForCommand] error is returned.
// More than one argument is an [InvalidNumberOfArguments] error for the help command itself.
func (t *Table[S]) FormatHelp(args []string) (string, error) {
	switch len(args) {
	case 0:
		return t.formatScopeHelp(), nil
	case 1:
		entry, ok := t.Lookup(args[0])
		if !ok {
			return "", InvalidCommand(args[0])
		}
		if len(entry.Help()) == 0 {
			return "", NoHelpForCommand(args[0])
		}
		return entry.Help(), nil
	default:
		return "", InvalidNumberOfArguments(t.helpCommandName())
	}
}

func (t *Table[S]) helpCommandName() string {
	if len(t.helpCommand) == 0 {
		return DefaultHelpCommand
	}
	return t.helpCommand
}

func (t *Table[S]) formatScopeHelp() string {
	var buf strings.Builder
	if len(t.scopeHelp) > 0 {
		buf.WriteString(strings.TrimSuffix(t.scopeHelp, "\n"))
	} else {
		buf.WriteString(DefaultScopeHelp)
	}
	buf.WriteString("\n")
	for _, cmd := range t.commands {
		buf.WriteString("- ")
		buf.WriteString(cmd.name)
		buf.WriteString("\n")
	}
	return buf.String()
}
