package lineio

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"io"
	"os"
	"strings"
)

// Printer writes shell output to an [io.Writer].
// Error diagnostics are styled when the writer is a terminal that supports color.
type Printer struct {
	out      io.Writer
	plain    bool
	renderer *lipgloss.Renderer
	errStyle lipgloss.Style
}

// NewPrinter creates a [Printer] that writes to stdout.
func NewPrinter() *Printer {
	p := &Printer{}
	p.Redirect(os.Stdout)
	return p
}

// Redirect sends all further output to writer.
func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
	p.renderer = lipgloss.NewRenderer(writer)
	if p.plain {
		p.renderer.SetColorProfile(termenv.Ascii)
	}
	p.errStyle = p.renderer.NewStyle().Foreground(lipgloss.Color("9"))
}

// Plain turns off all styling, even if the output supports it.
func (p *Printer) Plain() *Printer {
	p.plain = true
	p.Redirect(p.out)
	return p
}

// Write satisfies [io.Writer] by writing directly to the output.
func (p *Printer) Write(data []byte) (int, error) {
	return p.out.Write(data)
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

// WriteLine writes text, and a line break if text doesn't already end with one.
func (p *Printer) WriteLine(text string) {
	if strings.HasSuffix(text, "\n") {
		p.Print(text)
		return
	}
	p.Println(text)
}

// WriteError writes a one line diagnostic.
func (p *Printer) WriteError(text string) {
	p.Println(p.errStyle.Render(strings.TrimSuffix(text, "\n")))
}
