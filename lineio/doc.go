/*
Package lineio provides the line input and output collaborators used to run a cmdr shell.

Readers implement a single blocking method that returns a raw line, and report the end of input with [io.EOF] and a user interrupt with [ErrInterrupted].

  - [TerminalReader] edits lines in a terminal with history, using [golang.org/x/term].
  - [StreamReader] reads lines from any [io.Reader], which is useful for scripts and tests.
  - [EchoReader] wraps another reader and echoes each line after its prompt, so scripted sessions look like interactive ones.

Output goes through a [Printer], which writes to stdout by default and may be redirected to any [io.Writer].
Error diagnostics are colored with [lipgloss] when the output supports it.

[lipgloss]: https://github.com/charmbracelet/lipgloss
*/
package lineio
