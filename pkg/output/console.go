// Package output is the single sink for everything valk tells the user.
//
// Keybinding lines and status notices go to the out writer; error dumps go
// to the err writer. Commands never print directly, which keeps every
// notice capturable in tests.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/valk/pkg/logging"
	"github.com/arthur-debert/valk/pkg/ui/styles"
)

// Sink receives user-facing output.
type Sink interface {
	Line(s string)
	Header(s string)
	Success(msg string)
	Progress(msg string)
	Warn(msg string)
	Error(msg string)
	Report(err error)
}

// Console writes to a pair of writers, styling notices unless noColor is set.
type Console struct {
	out     io.Writer
	errOut  io.Writer
	noColor bool
}

// NewConsole creates a Console. With noColor every notice is written plain.
func NewConsole(out, errOut io.Writer, noColor bool) *Console {
	log := logging.GetLogger("output.Console")
	log.Debug().
		Bool("noColor", noColor).
		Str("TERM", os.Getenv("TERM")).
		Msg("Creating console")

	return &Console{out: out, errOut: errOut, noColor: noColor}
}

// Line writes s verbatim followed by a newline.
func (c *Console) Line(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) Header(s string) { c.styled(c.out, styles.Header, s) }
func (c *Console) Success(msg string) { c.styled(c.out, styles.Success, msg) }
func (c *Console) Progress(msg string) { c.styled(c.out, styles.Progress, msg) }
func (c *Console) Warn(msg string) { c.styled(c.out, styles.Warning, msg) }
func (c *Console) Error(msg string) { c.styled(c.out, styles.Error, msg) }

// Report dumps err on the error writer.
func (c *Console) Report(err error) {
	if err == nil {
		return
	}
	c.styled(c.errOut, styles.Error, fmt.Sprintf("Error: %v", err))
}

func (c *Console) styled(w io.Writer, style, msg string) {
	if c.noColor {
		fmt.Fprintln(w, msg)
		return
	}
	fmt.Fprintln(w, styles.Render(style, msg))
}
