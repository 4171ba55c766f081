package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"lighthouseservers/ptprov/internal/provision"

	"github.com/charmbracelet/huh"
)

// FormPrompter asks each question with a single-field huh form. Interrupting
// the form is reported as provision.ErrCancelled.
type FormPrompter struct {
	accessible bool
}

// NewFormPrompter returns a FormPrompter. Setting ACCESSIBLE in the
// environment switches huh to its screen-reader friendly mode.
func NewFormPrompter() *FormPrompter {
	return &FormPrompter{accessible: os.Getenv("ACCESSIBLE") != ""}
}

// Ask implements provision.Prompter.
func (p *FormPrompter) Ask(prompt string) (string, error) {
	var answer string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(promptTitle(prompt)).
				Value(&answer),
		),
	).WithAccessible(p.accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", provision.ErrCancelled
		}
		return "", err
	}
	return answer, nil
}

// promptTitle turns a console prompt such as "Enter username: " into a form
// title.
func promptTitle(prompt string) string {
	return strings.TrimSuffix(strings.TrimSpace(prompt), ":")
}

// LinePrompter reads one line per question from a plain reader. It is used
// when stdin is not a terminal.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter returns a LinePrompter reading from in and writing
// prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask implements provision.Prompter. A closed input with nothing left to
// read ends the run as a cancellation.
func (p *LinePrompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				fmt.Fprintln(p.out)
				return "", provision.ErrCancelled
			}
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
