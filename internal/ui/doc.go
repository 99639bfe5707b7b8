// Package ui is the Bubble Tea front end of the recipe maker.
//
// Core pieces:
//   - View: a screen or major UI region with its own model, update, view (Elm-style)
//   - AppModel: root model owning the recipe.Page; requests run as tea.Cmds
//   - RecipeView: hero header, dish input, tool chips, submit button, recipe viewport
//   - ToastStack: transient notifications; the page's recipe.Notifier
//   - FocusManager: tab order across the page's controls
//   - KeybindRegistry/KeyHandler: single keys plus the C-x leader menu
package ui
