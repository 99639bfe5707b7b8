package ui

import (
	"fmt"
	"time"

	"recipemaker/internal/logger"
	"recipemaker/internal/recipe"

	tea "github.com/charmbracelet/bubbletea"
)

// generateCmd returns a command that runs the webhook request for t off the
// UI goroutine. The result always comes back as a RecipeGeneratedMsg, even
// if the generator panics, so the loading toast is never left behind.
func generateCmd(gen recipe.Generator, t *recipe.Ticket) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("recipe generator panicked", "panic", r, "generation", t.Generation())
				msg = RecipeGeneratedMsg{Ticket: t, Err: fmt.Errorf("recipe generator panicked: %v", r)}
			}
		}()
		if gen == nil {
			return RecipeGeneratedMsg{Ticket: t, Err: fmt.Errorf("no recipe generator configured")}
		}
		text, err := gen.Generate(t.Context(), t.Dish())
		return RecipeGeneratedMsg{Ticket: t, Text: text, Err: err}
	}
}

// expireToastCmd fires a toastExpiredMsg for id after d.
func expireToastCmd(id recipe.ToastID, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{ID: id}
	})
}

// msgCmd wraps a message in a command.
func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
