package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalPrompter implements Prompter. On a terminal it reads with line
// editing in raw mode; otherwise it reads plain newline terminated lines.
type TerminalPrompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

func (p *TerminalPrompter) ReadLine(prompt string) (string, error) {
	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return p.readTerminalLine(int(f.Fd()), prompt)
	}

	fmt.Fprint(p.out, prompt)
	line, err := p.reader.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *TerminalPrompter) readTerminalLine(fd int, prompt string) (string, error) {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	return readEditedLine(struct {
		io.Reader
		io.Writer
	}{p.in, p.out}, prompt)
}

// readEditedLine reads one line with terminal line editing. Ctrl-D on an
// empty line returns io.EOF.
func readEditedLine(rw io.ReadWriter, prompt string) (string, error) {
	return term.NewTerminal(rw, prompt).ReadLine()
}
