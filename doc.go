/*
Package cmdr provides a small framework for line-oriented, interactive command shells.

A host application defines one or more scopes. Each scope exposes a [Table] of named commands, and a [Runner] reads lines of input, parses them into a [Line], dispatches to the matching command, and loops until a command asks it to stop.

# Scopes

A scope is any type that satisfies [Scope], which only requires returning its command table.
The table is normally built once per scope type, and handlers receive the scope instance they are invoked for.

	type Main struct{ greeted int }

	var mainCommands = cmdr.NewTable[*Main]()

	func init() {
		mainCommands.Add("greet", "Greets the given name", "hi").Does(func(m *Main, args []string) (cmdr.Action, error) {
			m.greeted++
			fmt.Println("Hello", strings.Join(args, " "))
			return cmdr.Continue, nil
		})
		mainCommands.Add("quit", "Quits the shell", "q").Does(func(*Main, []string) (cmdr.Action, error) {
			return cmdr.Quit, nil
		})
	}

	func (m *Main) Commands() cmdr.Commands { return mainCommands }

Scopes may additionally implement any of the optional hook interfaces, like [Prompter], [ErrorHandler], or [BeforeCommander], to change how the loop behaves.

# Actions

Every command returns an [Action] and an error.
The Action tells the loop what to do next: [Continue], [Quit] everything, [Exit] the current scope, or move into another scope with [SubScope] or [NewScope].
A non-nil error is first given to the scope's [ErrorHandler], and then handled with the defaults described on [Runner].

# Input and output

A [Runner] never touches stdin or stdout directly.
It reads from a [LineReader] and writes to a [LineWriter], and package [github.com/saylorsolutions/cmdr/lineio] has implementations for terminals, files, and in-memory streams.
[Run] wires these up for the common case of an interactive process.
*/
package cmdr
