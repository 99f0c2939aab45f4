// Package prompt asks the user to pick one option from a list.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arthur-debert/valk/pkg/catalog"
	"github.com/arthur-debert/valk/pkg/errors"
	"github.com/arthur-debert/valk/pkg/logging"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Prompter shows message with a list of options and returns the key of the
// chosen one.
type Prompter interface {
	Select(message string, options []catalog.Option) (string, error)
}

// IsTerminal reports whether both stdin and stdout are terminals
func IsTerminal() bool {
	in, out := os.Stdin.Fd(), os.Stdout.Fd()
	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
		(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
}

// Default returns the arrow-key selector on a terminal and a line-based
// prompter on in/out otherwise.
func Default(in io.Reader, out io.Writer) Prompter {
	if IsTerminal() {
		return NewInteractive()
	}
	logger := logging.GetLogger("prompt")
	logger.Debug().Msg("No terminal attached, reading answers line by line")
	return NewLine(in, out)
}

// Interactive is an arrow-key list selector
type Interactive struct {
	printer pterm.InteractiveSelectPrinter
}

// NewInteractive creates an Interactive prompter
func NewInteractive() *Interactive {
	return &Interactive{printer: pterm.DefaultInteractiveSelect}
}

func (p *Interactive) Select(message string, options []catalog.Option) (string, error) {
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = o.Label
	}

	chosen, err := p.printer.
		WithOptions(labels).
		WithDefaultText(message).
		Show()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrPrompt, "selection aborted")
	}

	for _, o := range options {
		if o.Label == chosen {
			return o.Key, nil
		}
	}
	return chosen, nil
}

// Line prints a numbered list and reads the answer from a line of input.
// The answer may be the option's number, its key or its label; anything
// else is returned as typed.
type Line struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLine creates a Line prompter
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

func (p *Line) Select(message string, options []catalog.Option) (string, error) {
	fmt.Fprintf(p.out, "? %s\n", message)
	for i, o := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, o.Label)
	}
	fmt.Fprint(p.out, "> ")

	answer, err := p.in.ReadString('\n')
	answer = strings.TrimSpace(answer)
	if err != nil && (err != io.EOF || answer == "") {
		return "", errors.Wrap(err, errors.ErrPrompt, "no answer given")
	}

	if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(options) {
		return options[n-1].Key, nil
	}
	for _, o := range options {
		if strings.EqualFold(answer, o.Key) || strings.EqualFold(answer, o.Label) {
			return o.Key, nil
		}
	}
	return answer, nil
}
