package cmdr

// LineWriter receives everything a [Runner] outputs.
type LineWriter interface {
	// WriteLine writes text followed by a line break.
	WriteLine(text string)
	// WriteError writes a one line diagnostic followed by a line break.
	WriteError(text string)
}

// Dispatch executes a non-empty [Line] against a [Scope].
//
// If the line's command is the scope's help command, then help text is written to out.
// Otherwise, the matching command's handler is invoked with the line's arguments.
// A line that doesn't match any command is given to the scope's [Defaulter], or results in an [InvalidCommand] error.
func Dispatch(scope Scope, line Line, out LineWriter) (Action, error) {
	cmds := scope.Commands()
	if help := cmds.HelpCommand(); len(help) > 0 && line.Command == help {
		text, err := cmds.FormatHelp(line.Args)
		if err != nil {
			return Continue, err
		}
		out.WriteLine(text)
		return Continue, nil
	}
	if entry, ok := cmds.Lookup(line.Command); ok {
		return entry.Invoke(scope, line.Args)
	}
	if d, ok := scope.(Defaulter); ok {
		return d.Default(line)
	}
	return Continue, InvalidCommand(line.Command)
}
