// Package styles defines the visual appearance for the ProxyRun TUI.
// Using Catppuccin Mocha color palette for a modern, aesthetic look.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha color palette
var (
	Mauve    = lipgloss.Color("#CBA6F7")
	Red      = lipgloss.Color("#F38BA8")
	Peach    = lipgloss.Color("#FAB387")
	Yellow   = lipgloss.Color("#F9E2AF")
	Green    = lipgloss.Color("#A6E3A1")
	Teal     = lipgloss.Color("#94E2D5")
	Sapphire = lipgloss.Color("#74C7EC")
	Blue     = lipgloss.Color("#89B4FA")

	Text     = lipgloss.Color("#CDD6F4")
	Subtext0 = lipgloss.Color("#A6ADC8")
	Overlay0 = lipgloss.Color("#6C7086")
	Surface1 = lipgloss.Color("#45475A")
	Surface0 = lipgloss.Color("#313244")
	Base     = lipgloss.Color("#1E1E2E")
	Mantle   = lipgloss.Color("#181825")
)

// Semantic colors (using the palette)
var (
	Primary     = Mauve
	Accent      = Sapphire
	Danger      = Red
	Success     = Green
	Muted       = Overlay0
	SurfaceCol  = Surface0
	TextCol     = Text
	TextMuted   = Subtext0
	Border      = Surface1
	BorderFocus = Mauve
)

// Base styles
var (
	// BorderStyle for panels
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border)

	// FocusedBorderStyle for focused panels
	FocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BorderFocus)
)

// Panel styles
var (
	// PanelTitle for panel headers
	PanelTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextCol).
			Padding(0, 1)

	// PanelTitleFocused for focused panel headers
	PanelTitleFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(Primary).
				Padding(0, 1)

	// PanelTitleIcon for icon prefix
	PanelTitleIcon = lipgloss.NewStyle().
			Foreground(Accent).
			MarginRight(1)
)

// List item styles
var (
	// ListItem for normal list items
	ListItem = lipgloss.NewStyle().
			Foreground(TextCol).
			Padding(0, 1)

	// ListItemSelected for the item under the cursor
	ListItemSelected = lipgloss.NewStyle().
				Foreground(TextCol).
				Background(SurfaceCol).
				Bold(true).
				Padding(0, 1)

	// ListItemDim for inactive/dimmed items
	ListItemDim = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1)

	// Placeholder for empty panes
	Placeholder = lipgloss.NewStyle().
			Foreground(TextMuted).
			Italic(true)
)

// Status styles
var (
	StatusOkStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(Danger).
				Bold(true)
)

// Dialog styles
var (
	DialogBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2).
			Background(SurfaceCol)

	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextCol).
			MarginBottom(1)
)

// Icons
var (
	IconProcess  = "⚙"
	IconProfile  = "★"
	IconLaunch   = "▶"
	IconDot      = "●"
	IconDotEmpty = "○"
)
