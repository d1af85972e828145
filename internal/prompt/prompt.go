// Package prompt wraps the interactive console I/O so the check flow can be
// driven from a terminal, a piped file, or a test buffer.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	// ReadInput prints the prompt and reads one trimmed line.
	ReadInput(prompt string) (string, error)
	// ReadSecret reads a line without echoing when attached to a terminal
	// (CVV entry); otherwise it behaves like ReadInput.
	ReadSecret(prompt string) (string, error)
}

type Stdio struct {
	in  *bufio.Reader
	out io.Writer
	// fd is the stdin descriptor used for hidden reads; -1 disables the
	// terminal path.
	fd int
}

// NewStdio wires the process terminal.
func NewStdio() *Stdio {
	return &Stdio{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
		fd:  int(os.Stdin.Fd()),
	}
}

// New reads from r and writes to w; secrets are read as plain lines. Used
// for -input files and tests.
func New(r io.Reader, w io.Writer) *Stdio {
	return &Stdio{in: bufio.NewReader(r), out: w, fd: -1}
}

func (s *Stdio) Println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && (line == "" || err != io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Stdio) ReadSecret(prompt string) (string, error) {
	if s.fd < 0 || !term.IsTerminal(s.fd) {
		return s.ReadInput(prompt)
	}
	s.Printf("%s", prompt)
	b, err := term.ReadPassword(s.fd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
