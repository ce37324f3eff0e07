package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nathoo/roadsaga/cli"
)

var title = cases.Title(language.English)

// displayName derives a human-readable name from a location or option id.
// "gas_station" -> "Gas Station", "Town" -> "Town".
func displayName(id string) string {
	return title.String(strings.ReplaceAll(id, "_", " "))
}

// breadcrumb renders the location and the menus descended into,
// e.g. "Town > Casino > Play Slots".
func breadcrumb(location string, path []string) string {
	parts := []string{displayName(location)}
	for _, id := range path {
		parts = append(parts, displayName(id))
	}
	return strings.Join(parts, " > ")
}

// renderStatusBar produces a full-width inverted status line showing where
// the player is on the left and the hero and truck on the right.
func (m Model) renderStatusBar() string {
	s := m.engine.State

	left := " " + breadcrumb(m.engine.Location(), m.engine.Path())
	right := cli.StatusLine(s) + " "

	// Drop the detail when it does not fit.
	if lipgloss.Width(left)+lipgloss.Width(right)+2 > m.width {
		right = fmt.Sprintf("Day %d %s | $%d | Fuel %d ", s.World.Day()+1, s.World.ClockString(), s.Hero.Cash, s.Truck.Fuel)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
