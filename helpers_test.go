package cmdr

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

type scriptStep struct {
	line string
	err  error
}

// scriptReader returns its steps in order, and io.EOF once they run out.
type scriptReader struct {
	steps   []scriptStep
	prompts []string
}

func script(lines ...string) *scriptReader {
	s := &scriptReader{}
	for _, line := range lines {
		s.steps = append(s.steps, scriptStep{line: line})
	}
	return s
}

func (s *scriptReader) thenErr(err error) *scriptReader {
	s.steps = append(s.steps, scriptStep{err: err})
	return s
}

func (s *scriptReader) then(lines ...string) *scriptReader {
	for _, line := range lines {
		s.steps = append(s.steps, scriptStep{line: line})
	}
	return s
}

func (s *scriptReader) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.prompts) > len(s.steps) {
		return "", io.EOF
	}
	step := s.steps[len(s.prompts)-1]
	return step.line, step.err
}

func (s *scriptReader) reads() int {
	return len(s.prompts)
}

type recordWriter struct {
	lines []string
	errs  []string
}

func (w *recordWriter) WriteLine(text string) {
	w.lines = append(w.lines, text)
}

func (w *recordWriter) WriteError(text string) {
	w.errs = append(w.errs, text)
}

type mainScope struct {
	out     LineWriter
	counter int
	subs    []*subScope
}

var mainCommands = NewTable[*mainScope](WithScopeHelp("Main scope commands"))

func init() {
	mainCommands.Add("greet", "Greets whoever is named", "hi").Does(func(s *mainScope, args []string) (Action, error) {
		s.out.WriteLine("Hello " + strings.Join(args, " "))
		return Continue, nil
	})
	mainCommands.Add("count", "Increments the counter").Does(func(s *mainScope, _ []string) (Action, error) {
		s.counter++
		return Continue, nil
	})
	mainCommands.Add("quit", "Quits everything", "exit", "q").Does(func(*mainScope, []string) (Action, error) {
		return Quit, nil
	})
	mainCommands.Add("sub", "Enters a sub-scope").Does(func(s *mainScope, _ []string) (Action, error) {
		sub := &subScope{out: s.out, level: 1}
		s.subs = append(s.subs, sub)
		return SubScope(sub), nil
	})
	mainCommands.Add("switch", "Replaces this scope").Does(func(s *mainScope, _ []string) (Action, error) {
		return NewScope(&subScope{out: s.out, level: 0}), nil
	})
	mainCommands.Add("fatal", "").Does(func(_ *mainScope, args []string) (Action, error) {
		var code string
		if err := MapArgs("fatal", args, 1, &code); err != nil {
			return Continue, err
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			return Continue, err
		}
		return Continue, Fatal(n)
	})
	mainCommands.Add("fail", "").Does(func(*mainScope, []string) (Action, error) {
		return Continue, errors.New("something broke")
	})
}

func (s *mainScope) Commands() Commands {
	return mainCommands
}

func (s *mainScope) Prompt() string {
	return "main>"
}

type subScope struct {
	out     LineWriter
	level   int
	counter int
}

var subCommands = NewTable[*subScope]()

func init() {
	subCommands.Add("count", "Increments the sub-scope counter").Does(func(s *subScope, _ []string) (Action, error) {
		s.counter++
		return Continue, nil
	})
	subCommands.Add("up", "Returns to the calling scope").Does(func(*subScope, []string) (Action, error) {
		return Exit, nil
	})
	subCommands.Add("quit", "Quits everything").Does(func(*subScope, []string) (Action, error) {
		return Quit, nil
	})
	subCommands.Add("sub", "Enters a deeper sub-scope").Does(func(s *subScope, _ []string) (Action, error) {
		return SubScope(&subScope{out: s.out, level: s.level + 1}), nil
	})
	subCommands.Add("replace", "Replaces this sub-scope").Does(func(s *subScope, _ []string) (Action, error) {
		return NewScope(&subScope{out: s.out, level: s.level + 10}), nil
	})
}

func (s *subScope) Commands() Commands {
	return subCommands
}

func (s *subScope) Prompt() string {
	return "sub" + strconv.Itoa(s.level) + ">"
}
