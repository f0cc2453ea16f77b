package lineio

import (
	"fmt"
	"io"
)

// LineReader is the input contract satisfied by every reader in this package.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// EchoReader wraps another reader, and writes each line it returns after the prompt.
// Errors are passed through without echoing anything.
type EchoReader struct {
	wrapped LineReader
	out     io.Writer
}

// NewEchoReader creates an [EchoReader] that reads from wrapped and echoes to out.
func NewEchoReader(wrapped LineReader, out io.Writer) *EchoReader {
	if wrapped == nil {
		panic("nil wrapped reader")
	}
	if out == nil {
		panic("nil echo writer")
	}
	return &EchoReader{wrapped: wrapped, out: out}
}

func (e *EchoReader) ReadLine(prompt string) (string, error) {
	line, err := e.wrapped.ReadLine(prompt)
	if err != nil {
		return "", err
	}
	_, _ = fmt.Fprintf(e.out, "%s %s\n", prompt, line)
	return line, nil
}
