package main

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/cmdr"
	"strconv"
	"strings"
)

// session is the state shared by every scope in the demo.
type session struct {
	out      cmdr.LineWriter
	cfg      Config
	notes    []string
	commands int
}

func (s *session) translate(err error) (cmdr.Action, error) {
	messages := translations[s.cfg.Language]
	if messages == nil {
		return cmdr.Continue, err
	}
	var cmdErr *cmdr.CommandError
	if !errors.As(err, &cmdErr) && !errors.Is(err, cmdr.ErrEmptyLine) {
		return cmdr.Continue, err
	}
	for kind, msg := range messages {
		if !errors.Is(err, kind) {
			continue
		}
		if cmdErr != nil {
			msg += ": " + cmdErr.Command
		}
		s.out.WriteError(msg)
		return cmdr.Continue, nil
	}
	return cmdr.Continue, err
}

type mainScope struct {
	*session
	last cmdr.Line
}

var mainCommands = cmdr.NewTable[*mainScope](cmdr.WithScopeHelp("Commands in the main scope:"))

func init() {
	mainCommands.Add("greet", "Greets someone.\nUsage: greet [name]", "hi").Does(func(s *mainScope, args []string) (cmdr.Action, error) {
		name := "stranger"
		if err := cmdr.MapArgs("greet", args, 0, &name); err != nil {
			return cmdr.Continue, err
		}
		s.out.WriteLine("Hello, " + name + "!")
		return cmdr.Continue, nil
	})
	mainCommands.Add("stats", "Shows how many commands have run, and how many notes there are.").Does(func(s *mainScope, _ []string) (cmdr.Action, error) {
		s.out.WriteLine(fmt.Sprintf("Commands: %d, notes: %d", s.commands, len(s.notes)))
		return cmdr.Continue, nil
	})
	mainCommands.Add("notes", "Opens the notes scope. Use 'back' to return here.").Does(func(s *mainScope, _ []string) (cmdr.Action, error) {
		return cmdr.SubScope(&notesScope{session: s.session}), nil
	})
	mainCommands.Add("admin", "Switches to the admin scope. There's no way back.").Does(func(s *mainScope, _ []string) (cmdr.Action, error) {
		return cmdr.NewScope(&adminScope{session: s.session}), nil
	})
	mainCommands.Add("fail", "").Does(func(*mainScope, []string) (cmdr.Action, error) {
		return cmdr.Continue, errors.New("this command always fails")
	})
	mainCommands.Add("exit", "Stops the demo with an exit code.\nUsage: exit <code>").Does(exitWithCode)
	mainCommands.Add("quit", "Quits the demo.", "q").Does(func(*mainScope, []string) (cmdr.Action, error) {
		return cmdr.Quit, nil
	})
}

func exitWithCode(_ *mainScope, args []string) (cmdr.Action, error) {
	var code string
	if err := cmdr.MapArgs("exit", args, 1, &code); err != nil {
		return cmdr.Continue, err
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return cmdr.Continue, fmt.Errorf("invalid exit code '%s'", code)
	}
	return cmdr.Continue, cmdr.Fatal(n)
}

func newMainScope(out cmdr.LineWriter, cfg Config) *mainScope {
	return &mainScope{session: &session{out: out, cfg: cfg}}
}

func (s *mainScope) Commands() cmdr.Commands {
	return mainCommands
}

func (s *mainScope) Prompt() string {
	return s.cfg.Prompt
}

func (s *mainScope) BeforeLoop() {
	if len(s.cfg.Greeting) > 0 {
		s.out.WriteLine(s.cfg.Greeting)
	}
}

// BeforeCommand repeats the last command for "!!".
func (s *mainScope) BeforeCommand(line cmdr.Line) cmdr.Line {
	if line.Command == "!!" && len(line.Args) == 0 {
		if s.last.Empty() {
			return cmdr.Line{}
		}
		s.out.WriteLine(s.last.String())
		return s.last
	}
	return line
}

func (s *mainScope) AfterCommand(line cmdr.Line, result cmdr.Action) (cmdr.Action, error) {
	if !line.Empty() {
		s.last = line
		s.commands++
	}
	return result, nil
}

func (s *mainScope) HandleError(err error) (cmdr.Action, error) {
	return s.translate(err)
}

func (s *mainScope) AfterLoop() {
	s.out.WriteLine("Goodbye!")
}

type notesScope struct {
	*session
}

var notesCommands = cmdr.NewTable[*notesScope](cmdr.WithScopeHelp("Commands for taking notes:"))

func init() {
	notesCommands.Add("add", "Adds a note.\nUsage: add <text...>").Does(func(s *notesScope, args []string) (cmdr.Action, error) {
		if len(args) == 0 {
			return cmdr.Continue, cmdr.InvalidNumberOfArguments("add")
		}
		s.notes = append(s.notes, strings.Join(args, " "))
		return cmdr.Continue, nil
	})
	notesCommands.Add("list", "Lists every note.", "ls").Does(func(s *notesScope, _ []string) (cmdr.Action, error) {
		if len(s.notes) == 0 {
			s.out.WriteLine("No notes yet")
			return cmdr.Continue, nil
		}
		for i, note := range s.notes {
			s.out.WriteLine(fmt.Sprintf("%d. %s", i+1, note))
		}
		return cmdr.Continue, nil
	})
	notesCommands.Add("clear", "Removes every note.").Does(func(s *notesScope, _ []string) (cmdr.Action, error) {
		s.notes = nil
		return cmdr.Continue, nil
	})
	notesCommands.Add("back", "Returns to the main scope.").Does(func(*notesScope, []string) (cmdr.Action, error) {
		return cmdr.Exit, nil
	})
	notesCommands.Add("quit", "Quits the demo.").Does(func(*notesScope, []string) (cmdr.Action, error) {
		return cmdr.Quit, nil
	})
}

func (s *notesScope) Commands() cmdr.Commands {
	return notesCommands
}

func (s *notesScope) Prompt() string {
	return "notes>"
}

// Default adds unknown lines as notes.
func (s *notesScope) Default(line cmdr.Line) (cmdr.Action, error) {
	s.notes = append(s.notes, line.String())
	return cmdr.Continue, nil
}

func (s *notesScope) HandleError(err error) (cmdr.Action, error) {
	return s.translate(err)
}

type adminScope struct {
	*session
}

var adminCommands = cmdr.NewTable[*adminScope](cmdr.WithHelpCommand("?"))

func init() {
	adminCommands.Add("status", "Shows the session status.").Does(func(s *adminScope, _ []string) (cmdr.Action, error) {
		s.out.WriteLine(fmt.Sprintf("Language: %s, commands: %d, notes: %d", s.cfg.Language, s.commands, len(s.notes)))
		return cmdr.Continue, nil
	})
	adminCommands.Add("quit", "Quits the demo.", "q").Does(func(*adminScope, []string) (cmdr.Action, error) {
		return cmdr.Quit, nil
	})
}

func (s *adminScope) Commands() cmdr.Commands {
	return adminCommands
}

func (s *adminScope) Prompt() string {
	return "admin#"
}

func (s *adminScope) EmptyLine() (cmdr.Action, error) {
	s.out.WriteLine("Type '?' for help")
	return cmdr.Continue, nil
}

func (s *adminScope) HandleError(err error) (cmdr.Action, error) {
	return s.translate(err)
}
