package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Gate asks the user yes/no questions before side-effecting steps. When
// interactive mode is off it answers yes to everything without touching
// its input, so unattended runs never block.
type Gate struct {
	interactive bool
	in          *bufio.Reader
	out         io.Writer
}

func NewGate(interactive bool, in io.Reader, out io.Writer) *Gate {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Gate{
		interactive: interactive,
		in:          bufio.NewReader(in),
		out:         out,
	}
}

// Confirm returns false only when the user answers exactly "n" or "N".
// Any other answer, including an empty line or a read error, proceeds.
// Only the line terminator is stripped; a padded answer like "  n" is
// not an exact match and proceeds.
func (g *Gate) Confirm(question string) bool {
	if !g.interactive {
		return true
	}

	fmt.Fprintf(g.out, "%s [Y/n] ", question)

	line, err := g.in.ReadString('\n')
	if err != nil && line == "" {
		return true
	}

	return !strings.EqualFold(strings.TrimRight(line, "\r\n"), "n")
}
