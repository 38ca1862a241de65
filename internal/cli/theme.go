package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type theme struct {
	title lipgloss.Style
	ok    lipgloss.Style
	bad   lipgloss.Style
	faint lipgloss.Style
}

// newTheme binds styles to w so colours are dropped when w is not a terminal.
func newTheme(w io.Writer) theme {
	r := lipgloss.NewRenderer(w)
	return theme{
		title: r.NewStyle().Bold(true),
		ok:    r.NewStyle().Foreground(lipgloss.Color("42")),
		bad:   r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		faint: r.NewStyle().Faint(true),
	}
}
