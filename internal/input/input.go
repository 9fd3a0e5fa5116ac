// Package input reads lines of player input from a terminal or from any other
// stream.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// DefaultPrompt is shown before each command in interactive mode.
const DefaultPrompt = "> "

// DirectReader implements command.Reader and reads lines from any io.Reader.
// It does not sanitize control or escape sequences, so it is meant for piped
// input and tests.
//
// DirectReader should not be used directly; create one with [NewDirectReader].
type DirectReader struct {
	r *bufio.Reader
}

// InteractiveReader implements command.Reader and reads lines from the
// terminal with readline, which keeps editing escape sequences out of the
// input and gives the player a command history.
//
// InteractiveReader should not be used directly; create one with
// [NewInteractiveReader].
type InteractiveReader struct {
	rl     *readline.Instance
	prompt string
}

// NewDirectReader creates a DirectReader with a buffered reader on r.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{
		r: bufio.NewReader(r),
	}
}

// NewInteractiveReader creates an InteractiveReader and initializes readline.
// The returned reader must have Close called on it to tear down the terminal
// state readline sets up.
func NewInteractiveReader(prompt string) (*InteractiveReader, error) {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveReader{
		rl:     rl,
		prompt: prompt,
	}, nil
}

// Close does nothing; it exists so DirectReader implements command.Reader.
func (dr *DirectReader) Close() error {
	return nil
}

// Close tears down readline.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}

// ReadCommand reads the next line and returns it with surrounding whitespace
// removed. Blank lines are returned as "" with a nil error; the game responds
// to those too.
//
// At end of input the returned error is io.EOF. A final line without a
// newline is returned first, and io.EOF on the call after.
func (dr *DirectReader) ReadCommand() (string, error) {
	line, err := dr.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadCommand reads the next line from the terminal. Ctrl-C on an empty line
// and Ctrl-D are both reported as io.EOF.
func (ir *InteractiveReader) ReadCommand() (string, error) {
	line, err := ir.rl.Readline()
	if err == readline.ErrInterrupt {
		if line == "" {
			return "", io.EOF
		}
		return "", nil
	}
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// SetPrompt updates the prompt to the given text.
func (ir *InteractiveReader) SetPrompt(p string) {
	ir.prompt = p
	ir.rl.SetPrompt(p)
}

// Prompt gets the current prompt.
func (ir *InteractiveReader) Prompt() string {
	return ir.prompt
}
