package ui

import "recipemaker/internal/recipe"

// SubmitMsg is sent when the user submits the dish (ctrl+s, alt+enter, C-x s or the Submit button).
type SubmitMsg struct{}

// CopyMsg is sent when the user copies the recipe (ctrl+y, C-x c or the Copy button).
type CopyMsg struct{}

// ClearMsg empties the input and the recipe (C-x l).
type ClearMsg struct{}

// CancelMsg abandons the in-flight request (esc while loading).
type CancelMsg struct{}

// SelectToolMsg selects a tool chip by index.
type SelectToolMsg struct {
	Index int
}

// RecipeGeneratedMsg is sent when a webhook request settles, successfully or not.
// Ticket identifies the submission so that stale responses can be discarded.
type RecipeGeneratedMsg struct {
	Ticket *recipe.Ticket
	Text   string
	Err    error
}

// toastExpiredMsg removes a success or error toast once its duration elapses.
type toastExpiredMsg struct {
	ID recipe.ToastID
}

// FocusNextMsg moves focus to the next enabled control (tab).
type FocusNextMsg struct{}

// FocusPrevMsg moves focus to the previous enabled control (shift+tab).
type FocusPrevMsg struct{}
