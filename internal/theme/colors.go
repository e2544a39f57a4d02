package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "141" // Purple - titles
	ColorSecondary Color = "86"  // Cyan - subtitles
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "229" // Pale yellow - selected row text
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "252" // Default text
	ColorSelected  Color = "57"  // Purple - selected row background
)
