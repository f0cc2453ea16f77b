package lineio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// StreamReader reads lines from an [io.Reader], like a file or pipe.
// There's no line editing, so the prompt is ignored.
type StreamReader struct {
	r *bufio.Reader
}

// NewStreamReader creates a [StreamReader] over r.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its line ending.
// A last line without a line ending is still returned, and [io.EOF] is returned once there's nothing left.
func (s *StreamReader) ReadLine(_ string) (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read from stream: %w", err)
		}
		if len(line) == 0 {
			return "", io.EOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
