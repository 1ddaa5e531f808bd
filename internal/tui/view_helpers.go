package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const pageWidth = 54

var (
	dividerStyle = lipgloss.NewStyle().Faint(true)
	bodyStyle    = lipgloss.NewStyle().PaddingLeft(2)
)

// renderPage lays out every screen the same way: title, divider, body,
// divider and the hot key hints.
func renderPage(title, body, hotKeys string) string {
	divider := bodyStyle.Render(dividerStyle.Render(strings.Repeat("─", pageWidth)))

	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	hints := []string{}
	if strings.TrimSpace(hotKeys) != "" {
		hints = append(hints, hotKeys)
	}
	hints = append(hints, "ctrl+c: выход")

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		divider,
		"",
		bodyStyle.Render(body),
		"",
		divider,
		bodyStyle.Render(helpStyle.Render(strings.Join(hints, "\n"))),
	)
}

// fitText shortens v to max bytes, marking the cut with "...".
func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
