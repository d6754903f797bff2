package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorStyles maps the board palette to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorBoard:     lipgloss.NewStyle().Foreground(lipgloss.Color("24")),
	core.ColorBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorSnakeHead: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
	core.ColorSnakeBody: lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
	core.ColorFood:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	core.ColorFlash:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	core.ColorDanger:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorAccent:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorMuted:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
