// Package output writes wut's primary output: command tables and status
// lines on stdout. Diagnostics go through the log package on stderr.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/wut/internal/ui/styles"
)

type ctxKey struct{}

// Printer writes to stdout, or whatever writer it was created with.
// Styled status lines are downsampled to what the writer supports, so
// pipes and test buffers receive plain text.
type Printer struct {
	w      io.Writer
	styled io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{
		w:      w,
		styled: &colorprofile.Writer{Forward: w, Profile: colorprofile.Detect(w, os.Environ())},
	}
}

// WithPrinter attaches a Printer writing to w to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext returns the context's Printer, or one on os.Stdout.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Success prints a line reporting a completed change.
func (p *Printer) Success(format string, a ...any) {
	p.styledLine(styles.SuccessStyle, format, a...)
}

// Notice prints a line reporting that nothing was done.
func (p *Printer) Notice(format string, a ...any) {
	p.styledLine(styles.MutedStyle, format, a...)
}

func (p *Printer) styledLine(style lipgloss.Style, format string, a ...any) {
	fmt.Fprintln(p.styled, style.Render(fmt.Sprintf(format, a...)))
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
