// Package log renders the collapsible debug log panel shown under the
// active screen when logging is toggled on.
package log

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"crypto-widget-tui/helpers"
	"crypto-widget-tui/styles"
)

// Render renders the log panel, sizing it to the remaining screen space.
func Render(width, height int, ready bool, spinnerView string, vp viewport.Model) string {
	title := lipgloss.NewStyle().
		Foreground(styles.CAccent2).
		Bold(true).
		Render("Debug log")

	// Header, nav, panel chrome and margins take roughly ten lines.
	available := helpers.Max(5, height-10)

	// Cap the panel at a third of the screen or 15 lines.
	panelHeight := helpers.Min(available, helpers.Min(height/3, 15))
	vp.Height = panelHeight

	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.CBorder).
		Padding(0, 1).
		Width(helpers.Max(0, width-2)).
		Height(panelHeight + 2)

	if !ready {
		return border.Render(title + "\n\n" + "initializing...\n" + spinnerView)
	}

	scrollInfo := ""
	if vp.TotalLineCount() > vp.Height {
		scrollInfo = lipgloss.NewStyle().
			Foreground(styles.CMuted).
			Render(fmt.Sprintf(" [%d%%]", int(vp.ScrollPercent()*100)))
	}

	return border.Render(title + scrollInfo + "\n\n" + vp.View())
}
