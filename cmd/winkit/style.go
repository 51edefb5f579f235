package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// styles colours command output when stdout is a terminal and leaves it
// plain otherwise.
type styles struct {
	enabled bool
	header  lipgloss.Style
	name    lipgloss.Style
	ok      lipgloss.Style
	fail    lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(f *os.File) styles {
	return styles{
		enabled: term.IsTerminal(int(f.Fd())),
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		name:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		fail:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (s styles) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

func (s styles) Header(text string) string { return s.render(s.header, text) }
func (s styles) Name(text string) string   { return s.render(s.name, text) }
func (s styles) OK(text string) string     { return s.render(s.ok, text) }
func (s styles) Fail(text string) string   { return s.render(s.fail, text) }
func (s styles) Dim(text string) string    { return s.render(s.dim, text) }

// pad renders text styled and padded to width visible columns.
func (s styles) pad(st lipgloss.Style, text string, width int) string {
	if !s.enabled {
		return text + spaces(width-len(text))
	}
	return st.Width(width).Render(text)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
