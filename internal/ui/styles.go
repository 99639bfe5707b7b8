package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "214" // Orange - titles, primary button
	ColorHighlight = "205" // Magenta - focused control, borders
	ColorTool      = "99"  // Purple - recipe creator chip
	ColorSuccess   = "78"  // Green - success toasts, badges
	ColorDanger    = "196" // Red - error toasts
	ColorMuted     = "241" // Gray - hints, disabled controls
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "243" // Darker gray - very dim text
)

// Styles contains shared style definitions used across the page and toasts.
var Styles = struct {
	// Hero
	Title   lipgloss.Style // Big bold page title
	Tagline lipgloss.Style // Line under the title
	Badge   lipgloss.Style // Feature badges (AI-Powered, ...)
	BadgeOK lipgloss.Style // Green badge (Delicious)

	// Card
	Card      lipgloss.Style // Rounded box around input and result
	Section   lipgloss.Style // Section headers ("Your Recipe:")
	Label     lipgloss.Style // Plain labels ("tools")
	ResultBox lipgloss.Style // Border around the recipe viewport
	Hint      lipgloss.Style // Help/hint text

	// Controls
	Button         lipgloss.Style // Submit / Copy button
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
	Chip           lipgloss.Style // Tool chip
	ChipActive     lipgloss.Style // Selected tool chip
	ChipFocused    lipgloss.Style
	ChipDisabled   lipgloss.Style

	// Toasts
	ToastLoading lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Tagline: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Badge: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	BadgeOK: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(1, 2),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	ResultBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Button: lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(lipgloss.Color("235")).
		Background(lipgloss.Color(ColorText)),
	ButtonFocused: lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(lipgloss.Color("235")).
		Background(lipgloss.Color(ColorHighlight)),
	ButtonDisabled: lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(lipgloss.Color(ColorDim)).
		Background(lipgloss.Color("237")),
	Chip: lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color(ColorAccent)),
	ChipActive: lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorTool)),
	ChipFocused: lipgloss.NewStyle().
		Padding(0, 1).
		Underline(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	ChipDisabled: lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color(ColorDim)),
	ToastLoading: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	ToastSuccess: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorSuccess)).
		Foreground(lipgloss.Color(ColorSuccess)).
		Padding(0, 1),
	ToastError: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Foreground(lipgloss.Color(ColorDanger)).
		Padding(0, 1),
}
