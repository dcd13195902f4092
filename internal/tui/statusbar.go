package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/headlines/internal/newsapi"
)

func renderTabs(active newsapi.Endpoint, width int) string {
	var parts []string
	for _, e := range newsapi.Endpoints() {
		if e == active {
			parts = append(parts, tabActiveStyle.Render(e.String()))
		} else {
			parts = append(parts, tabInactiveStyle.Render(e.String()))
		}
	}
	bar := strings.Join(parts, " ")
	if lipgloss.Width(bar) > width && width > 0 {
		// Too narrow for every tab; show only the active one.
		return tabActiveStyle.Render("‹ " + active.String() + " ›")
	}
	return bar
}

func renderStatusBar(shown, total int, country newsapi.Country, query string, width int, searching bool) string {
	left := fmt.Sprintf(" %d articles", shown)
	if shown != total {
		left = fmt.Sprintf(" %d of %d articles", shown, total)
	}
	left += " · " + country.Name()
	if query != "" {
		left += fmt.Sprintf(" · %q", query)
	}

	right := " [/] endpoint  c country  / search  ? help  q quit "
	if searching {
		right = " esc cancel  enter search "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right
	return statusBarStyle.Width(width).Render(bar)
}
