// Package ui prints the user-facing messages of the CLI with the color scheme
// of each message kind. Colors are dropped automatically when the writer is
// not a terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes styled lines to a single writer.
type Printer struct {
	w       io.Writer
	info    lipgloss.Style
	success lipgloss.Style
	notice  lipgloss.Style
	failure lipgloss.Style
}

// NewPrinter returns a Printer whose color profile is detected from w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		info:    r.NewStyle().Foreground(lipgloss.Color("6")),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		notice:  r.NewStyle().Foreground(lipgloss.Color("3")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Info prints a cyan line.
func (p *Printer) Info(format string, args ...any) { p.line(p.info, format, args...) }

// Success prints a green line.
func (p *Printer) Success(format string, args ...any) { p.line(p.success, format, args...) }

// Notice prints a yellow line.
func (p *Printer) Notice(format string, args ...any) { p.line(p.notice, format, args...) }

// Error prints a red line.
func (p *Printer) Error(format string, args ...any) { p.line(p.failure, format, args...) }

// Plain prints an unstyled line.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Blank prints an empty line.
func (p *Printer) Blank() { fmt.Fprintln(p.w) }

func (p *Printer) line(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(p.w, style.Render(fmt.Sprintf(format, args...)))
}
