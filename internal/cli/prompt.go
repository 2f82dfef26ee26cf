package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ErrInterrupted is returned by a Prompter when the user presses Ctrl-C.
var ErrInterrupted = errors.New("interrupted")

// Prompter reads one line of user input after showing a label.
// It returns io.EOF once input is exhausted.
type Prompter interface {
	Prompt(label string) (string, error)
	Close() error
}

// newPrompter uses line editing on a terminal and plain line reads otherwise.
func (a *App) newPrompter() Prompter {
	if isTerminal(a.stdin) {
		p, err := newReadlinePrompter(a.stdin, a.stdout, a.stderr)
		if err == nil {
			return p
		}
	}
	return newLinePrompter(a.stdin, a.stdout)
}

// readlinePrompter wraps a readline instance.
type readlinePrompter struct {
	rl *readline.Instance
}

func newReadlinePrompter(in io.Reader, out, errOut io.Writer) (*readlinePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:                  io.NopCloser(in),
		Stdout:                 out,
		Stderr:                 errOut,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &readlinePrompter{rl: rl}, nil
}

func (p *readlinePrompter) Prompt(label string) (string, error) {
	p.rl.SetPrompt(label)
	line, err := p.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupted
	case err != nil:
		return line, err
	}
	return line, nil
}

func (p *readlinePrompter) Close() error {
	return p.rl.Close()
}

// linePrompter reads newline-terminated input, for pipes and tests.
type linePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{in: bufio.NewReader(in), out: out}
}

func (p *linePrompter) Prompt(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		// A final line without a newline still counts as input
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *linePrompter) Close() error {
	return nil
}
