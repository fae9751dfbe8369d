package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// colorStyles maps the color tags used throughout the application onto
// lipgloss styles. "default" (and any unknown tag) renders unstyled.
var colorStyles = map[string]lipgloss.Style{
	"black":         lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	"red":           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	"green":         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	"yellow":        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	"blue":          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	"magenta":       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	"cyan":          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	"white":         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	"brightblack":   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	"brightred":     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	"brightgreen":   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	"brightyellow":  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	"brightblue":    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	"brightmagenta": lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	"brightcyan":    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	"brightwhite":   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
}

// ValidColor reports whether name is a known color tag.
func ValidColor(name string) bool {
	if name == "default" {
		return true
	}
	_, ok := colorStyles[name]
	return ok
}

// Printer writes tagged text fragments to an output stream, translating
// color tags into terminal escapes. It implements grid.Sink but has no
// knowledge of grid semantics.
type Printer struct {
	out      io.Writer
	errOut   io.Writer
	useColor bool
}

// New returns a Printer writing to out and errOut. With useColor false the
// tags are ignored and raw text is written.
func New(out, errOut io.Writer, useColor bool) *Printer {
	return &Printer{out: out, errOut: errOut, useColor: useColor}
}

// Default returns a Printer on stdout/stderr.
func Default(useColor bool) *Printer {
	return New(os.Stdout, os.Stderr, useColor)
}

// Msg writes text in the named color.
func (p *Printer) Msg(text, color string) {
	if p.useColor {
		if style, ok := colorStyles[color]; ok {
			fmt.Fprint(p.out, style.Render(text))
			return
		}
	}
	fmt.Fprint(p.out, text)
}

// Msgf formats and writes in the named color.
func (p *Printer) Msgf(color, format string, args ...any) {
	p.Msg(fmt.Sprintf(format, args...), color)
}

// ErrMsg writes an error message to the error stream, in bright red when
// color is enabled.
func (p *Printer) ErrMsg(text string) {
	if p.useColor {
		fmt.Fprint(p.errOut, colorStyles["brightred"].Render(text))
		return
	}
	fmt.Fprint(p.errOut, text)
}
