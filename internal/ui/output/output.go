// Package output renders command results for humans.
package output

import (
	"fmt"
	"io"
	"os"

	"go.skilldock.io/skilldock/internal/core/domain"
	"go.skilldock.io/skilldock/internal/ui/style"
)

// Printer writes styled command output to a single destination.
type Printer struct {
	w io.Writer
}

// New creates a Printer. A nil writer falls back to stdout.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// Success prints a line marked as succeeded.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.w, style.Success.Render(style.Check+" "+msg))
}

// Warning prints a non-fatal warning line.
func (p *Printer) Warning(msg string) {
	fmt.Fprintln(p.w, style.Warn.Render(style.Warning+" "+msg))
}

// Error prints a fatal error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.w, style.Error.Render(style.Cross+" "+msg))
}

// Info prints a muted informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.w, style.Muted.Render(msg))
}

// Header prints a bold section header.
func (p *Printer) Header(msg string) {
	fmt.Fprintln(p.w, style.Header.Render(msg))
}

// KeyValue prints an aligned "key: value" line with an accented key.
func (p *Printer) KeyValue(key, value string) {
	fmt.Fprintf(p.w, "%s %s\n", style.Accent.Render(key+":"), value)
}

// Item prints one list entry with a leading bullet.
func (p *Printer) Item(msg string) {
	fmt.Fprintln(p.w, "  "+style.Dot+" "+msg)
}

// Summary renders a reconcile result: one line per action, then warnings.
func (p *Printer) Summary(result *domain.ReconcileResult) {
	for _, key := range result.Installed {
		p.Success("Installed " + key)
	}
	for _, key := range result.Updated {
		p.Success("Updated " + key)
	}
	for _, key := range result.Removed {
		p.Success("Removed " + key)
	}
	for _, key := range result.Unchanged {
		p.Info("Unchanged " + key)
	}
	for _, warning := range result.Warnings {
		p.Warning(warning)
	}
	if len(result.Installed)+len(result.Updated)+len(result.Removed) == 0 {
		p.Info("Nothing to do")
	}
}
