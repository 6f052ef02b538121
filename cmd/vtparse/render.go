package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vtparse/vtparse/internal/screen"
	"github.com/vtparse/vtparse/internal/theme"
)

// renderScreen draws scr's visible text through the shared lipgloss frame
// style, the way the wizard frames its own huh forms with theme colors.
func renderScreen(scr *screen.Screen, width int) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1).
		Width(width)

	return border.Render(theme.Frame().Render(scr.Text()))
}

// printScreen writes the rendered screen snapshot to stdout, trimming the
// trailing newline lipgloss's border box leaves behind.
func printScreen(scr *screen.Screen, width int) {
	fmt.Println(strings.TrimRight(renderScreen(scr, width), "\n"))
}
