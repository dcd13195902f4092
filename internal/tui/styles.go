package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/headlines/internal/render"
)

var (
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(render.ColorPrimary).PaddingLeft(1)
	headerRightStyle = lipgloss.NewStyle().Foreground(render.ColorDim)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(render.ColorBorder)

	itemTitleStyle    = lipgloss.NewStyle().Foreground(render.ColorText)
	itemSelectedStyle = lipgloss.NewStyle().Foreground(render.ColorAccent).Bold(true)
	itemSourceStyle   = lipgloss.NewStyle().Foreground(render.ColorSource)
	itemTimeStyle     = lipgloss.NewStyle().Foreground(render.ColorDim)

	previewTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(render.ColorPrimary).MarginBottom(1)
	previewSourceStyle = lipgloss.NewStyle().Foreground(render.ColorSource).MarginBottom(1)
	previewBodyStyle   = lipgloss.NewStyle().Foreground(render.ColorText)
	previewLinkStyle   = lipgloss.NewStyle().Foreground(render.ColorDim).Italic(true).MarginTop(1)

	// the active tab inverts the bar colors
	tabActiveStyle   = lipgloss.NewStyle().Background(render.ColorPrimary).Foreground(render.ColorBar).Bold(true).Padding(0, 1)
	tabInactiveStyle = lipgloss.NewStyle().Background(render.ColorBar).Foreground(render.ColorText).Padding(0, 1)
	statusBarStyle   = lipgloss.NewStyle().Background(render.ColorBar).Foreground(render.ColorText).Padding(0, 1)

	errorStyle        = lipgloss.NewStyle().Foreground(render.ColorAccent).Bold(true)
	spinnerStyle      = lipgloss.NewStyle().Foreground(render.ColorAccent)
	searchPromptStyle = lipgloss.NewStyle().Foreground(render.ColorAccent).Bold(true)
	helpTitleStyle    = lipgloss.NewStyle().Foreground(render.ColorAccent).Bold(true)
	helpDimStyle      = lipgloss.NewStyle().Foreground(render.ColorDim)

	helpCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(render.ColorPrimary).
			Padding(1, 3)
)
