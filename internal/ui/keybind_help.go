package ui

import (
	"recipemaker/internal/recipe"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a help.Model with the page's key styling.
func newHelpModel(width int) help.Model {
	helpModel := help.New()
	helpModel.Width = width
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return helpModel
}

// RenderKeybindHelp produces the transient help box shown after C-x.
// Displays the keys that continue the current sequence, filtered by state.
func RenderKeybindHelp(keyHandler *KeyHandler, state recipe.State) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	km := NewKeyMap(keyHandler.Registry, keyHandler, state)
	helpContent := newHelpModel(0).ShortHelpView(km.ShortHelp())

	// Wrap in box with prefix label
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("86")).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))

	content := labelStyle.Render(keyHandler.CurrentSeq()) + " " + helpContent
	return boxStyle.Render(content)
}

// RenderHelpBar renders the one-line key help shown under the page.
func RenderHelpBar(keyHandler *KeyHandler, state recipe.State, width int) string {
	if keyHandler == nil {
		return ""
	}
	km := NewKeyMap(keyHandler.Registry, keyHandler, state)
	return newHelpModel(width).ShortHelpView(km.ShortHelp())
}
