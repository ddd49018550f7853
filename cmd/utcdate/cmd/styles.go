package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	utcerror "github.com/msto63/utcdate/foundation/core/error"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	okStyle = lipgloss.NewStyle().
		Foreground(colorSecondary)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)
)

// printer writes command results, styled when color is enabled.
type printer struct {
	w     io.Writer
	color bool
}

func newPrinter(w io.Writer, color bool) *printer {
	return &printer{w: w, color: color}
}

func (p *printer) render(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

// value prints a single result on its own line.
func (p *printer) value(v interface{}) {
	fmt.Fprintln(p.w, p.render(valueStyle, fmt.Sprint(v)))
}

// pair prints an aligned "label  value" line.
func (p *printer) pair(label string, v interface{}) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(labelStyle, fmt.Sprintf("%-14s", label)), fmt.Sprint(v))
}

func (p *printer) ok(msg string) {
	fmt.Fprintln(p.w, p.render(okStyle, msg))
}

// errorf prints err with its code when it carries one.
func (p *printer) errorf(err error) {
	msg := "error: " + err.Error()
	if e, ok := utcerror.As(err); ok && e.Code() != utcerror.CodeUnknown {
		msg = fmt.Sprintf("error [%s]: %s", e.Code(), err.Error())
	}
	fmt.Fprintln(p.w, p.render(errorStyle, msg))
}
