package render

import "github.com/charmbracelet/lipgloss"

// Colors shared by the printer and the interactive browser.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	ColorText    = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	ColorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#F25D94"}
	ColorBorder  = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	ColorSource  = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}
	ColorBar     = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#23233A"}
)
