package cmdr

import "strings"

// Line is a parsed line of input.
// The zero value is an empty line.
type Line struct {
	Command string
	Args    []string
}

// ParseLine splits raw input on runs of whitespace.
// The first token is the command, and the rest are its arguments.
// There is no support for quoting, so every argument is exactly one whitespace delimited token.
func ParseLine(raw string) Line {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return Line{}
	}
	line := Line{Command: tokens[0]}
	if len(tokens) > 1 {
		line.Args = tokens[1:]
	}
	return line
}

// Empty reports whether the Line has no command.
func (l Line) Empty() bool {
	return len(l.Command) == 0
}

func (l Line) String() string {
	if len(l.Args) == 0 {
		return l.Command
	}
	return l.Command + " " + strings.Join(l.Args, " ")
}
