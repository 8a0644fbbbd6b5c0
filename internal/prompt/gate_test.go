package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type panicReader struct{}

func (panicReader) Read([]byte) (int, error) {
	panic("gate read from input in non-interactive mode")
}

func TestGate_NonInteractiveNeverReads(t *testing.T) {
	g := NewGate(false, panicReader{}, io.Discard)

	require.True(t, g.Confirm("install something?"))
}

func TestGate_Answers(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		proceed bool
	}{
		{name: "lowercase n declines", input: "n\n", proceed: false},
		{name: "uppercase N declines", input: "N\n", proceed: false},
		{name: "windows line ending declines", input: "n\r\n", proceed: false},
		{name: "padded n is not an exact match", input: "  n  \n", proceed: true},
		{name: "empty line proceeds", input: "\n", proceed: true},
		{name: "yes proceeds", input: "y\n", proceed: true},
		{name: "no is not an exact n", input: "no\n", proceed: true},
		{name: "eof without input proceeds", input: "", proceed: true},
		{name: "eof after answer still counts", input: "n", proceed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGate(true, strings.NewReader(tc.input), io.Discard)
			assert.Equal(t, tc.proceed, g.Confirm("proceed?"))
		})
	}
}

func TestGate_WritesQuestion(t *testing.T) {
	var out bytes.Buffer
	g := NewGate(true, strings.NewReader("\n"), &out)

	g.Confirm("install Git?")

	assert.Contains(t, out.String(), "install Git?")
	assert.Contains(t, out.String(), "[Y/n]")
}
