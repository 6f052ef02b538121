// Package theme provides the color palette and huh/lipgloss styling for the
// vtparse CLI's wizard and screen snapshot render, backed by Catppuccin and sized for
// rendering a terminal screen rather than a single status line.
package theme

import (
	"github.com/catppuccin/go"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var flavor = catppuccin.Mocha

var (
	Primary   = lipgloss.Color("#" + flavor.Mauve().Hex)
	Secondary = lipgloss.Color("#" + flavor.Pink().Hex)
	Accent    = lipgloss.Color("#" + flavor.Peach().Hex)
	Muted     = lipgloss.Color("#" + flavor.Overlay1().Hex)
	Base      = lipgloss.Color("#" + flavor.Base().Hex)
	Text      = lipgloss.Color("#" + flavor.Text().Hex)
)

// Form returns the vtparse wizard's huh theme.
func Form() *huh.Theme {
	t := huh.ThemeBase()

	t.Form.Base = t.Form.Base.PaddingLeft(1)
	t.Group.Title = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	t.Group.Description = lipgloss.NewStyle().Foreground(Muted)

	t.Focused.Title = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(Muted)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(Primary).SetString("> ")
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(Primary).SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(Muted).SetString("[ ] ")
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(Base).Background(Primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(Primary).Background(Base)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(Muted)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(Muted)
	t.Focused.NoteTitle = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	return t
}

// Frame is the lipgloss style the screen snapshot (printed after a session
// ends) is drawn into.
func Frame() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Text).Background(Base)
}
