package lineio

import (
	"errors"
	"fmt"
	"golang.org/x/term"
	"io"
	"os"
	"sync"
)

// ErrInterrupted is returned from a reader when the user interrupts input, usually with Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

const (
	keyCtrlC      = 3
	keyCtrlD      = 4
	keyBackspace  = 8
	keyEnter      = '\r'
	keyNewline    = '\n'
	keyDelete     = 127
	firstPrintKey = ' '
)

// interruptWatcher records, in order, the keys that end a line without entering it.
// The terminal reports Ctrl-C and Ctrl-D the same way, so this is how they're told apart.
//
// Ctrl-D only ends a line when the line is empty, so the watcher keeps a rough count of typed characters.
// Cursor movement isn't tracked, so a Ctrl-D after editing the line back to empty may be reported as end of input even if it wasn't recorded.
type interruptWatcher struct {
	r       io.Reader
	mux     sync.Mutex
	typed   int
	pending []error
}

func (w *interruptWatcher) Read(p []byte) (int, error) {
	n, err := w.r.Read(p)
	w.mux.Lock()
	defer w.mux.Unlock()
	for _, b := range p[:n] {
		switch {
		case b == keyCtrlC:
			w.pending = append(w.pending, ErrInterrupted)
			w.typed = 0
		case b == keyCtrlD:
			if w.typed == 0 {
				w.pending = append(w.pending, io.EOF)
			}
		case b == keyEnter || b == keyNewline:
			w.typed = 0
		case b == keyBackspace || b == keyDelete:
			if w.typed > 0 {
				w.typed--
			}
		case b >= firstPrintKey:
			w.typed++
		}
	}
	return n, err
}

// takeTerminator consumes the earliest recorded key that ended a line.
// If nothing was recorded, then [io.EOF] is returned.
func (w *interruptWatcher) takeTerminator() error {
	w.mux.Lock()
	defer w.mux.Unlock()
	if len(w.pending) == 0 {
		return io.EOF
	}
	err := w.pending[0]
	w.pending = w.pending[1:]
	return err
}

type readWriter struct {
	io.Reader
	io.Writer
}

// TerminalReader reads lines from a terminal with line editing and history.
// The terminal is put into raw mode only while a line is being read, so command output is written normally.
type TerminalReader struct {
	fd      int
	watcher *interruptWatcher
	term    *term.Terminal
}

// NewTerminalReader creates a [TerminalReader] reading from in, which must be a terminal, and echoing to out.
func NewTerminalReader(in *os.File, out io.Writer) *TerminalReader {
	watcher := &interruptWatcher{r: in}
	return &TerminalReader{
		fd:      int(in.Fd()),
		watcher: watcher,
		term:    term.NewTerminal(&readWriter{Reader: watcher, Writer: out}, ""),
	}
}

// ReadLine shows the prompt, followed by a space, and blocks until a line is entered.
//
// Ctrl-C returns [ErrInterrupted], and Ctrl-D on an empty line returns [io.EOF].
// Entered lines are added to the history, which is available with the up and down arrow keys.
func (r *TerminalReader) ReadLine(prompt string) (string, error) {
	state, err := term.MakeRaw(r.fd)
	if err != nil {
		return "", fmt.Errorf("failed to set terminal to raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(r.fd, state)
	}()
	if width, height, err := term.GetSize(r.fd); err == nil {
		_ = r.term.SetSize(width, height)
	}
	r.term.SetPrompt(prompt + " ")
	line, err := r.term.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", r.watcher.takeTerminator()
		}
		return "", err
	}
	return line, nil
}
