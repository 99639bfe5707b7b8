package ui

import (
	"context"
	"errors"
	"time"

	"recipemaker/internal/logger"
	"recipemaker/internal/recipe"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures NewAppModel.
type Options struct {
	Generator      recipe.Generator
	Clipboard      recipe.Clipboard
	RenderMarkdown bool
	ToastDuration  time.Duration
	// Context is the parent of every request context. Defaults to context.Background().
	Context context.Context
}

// AppModel is the root model. It owns the recipe page and wires its
// notifications to the toast stack and its requests to tea commands.
type AppModel struct {
	Page       *recipe.Page
	Recipe     *RecipeView
	Toasts     *ToastStack
	KeyHandler *KeyHandler
	Generator  recipe.Generator

	ctx context.Context
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Recipe.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SubmitMsg:
		return a, a.handleSubmit()
	case RecipeGeneratedMsg:
		return a, a.handleGenerated(msg)
	case CancelMsg:
		return a, a.handleCancel()
	case CopyMsg:
		_ = a.Page.Copy() // reported through the toast stack
		return a, a.Toasts.Flush()
	case ClearMsg:
		if a.Page.Clear() {
			a.Recipe.Sync()
		}
		return a, nil
	case SelectToolMsg:
		a.Recipe.SelectTool(msg.Index)
		return a, nil
	case FocusNextMsg:
		a.Recipe.Focus.Next()
		return a, nil
	case FocusPrevMsg:
		a.Recipe.Focus.Prev()
		return a, nil
	case toastExpiredMsg:
		a.Toasts.Remove(msg.ID)
		return a, nil
	case tea.KeyMsg:
		// Keybind system (single keys and the C-x leader menu)
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Page.State()); consumed {
				return a, keyCmd
			}
		}
	}

	v, cmd := a.Recipe.Update(msg)
	if r, ok := v.(*RecipeView); ok {
		a.Recipe = r
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	width := a.Recipe.Width()
	base := a.Toasts.View(width, a.Recipe.SpinnerFrame())
	if base != "" {
		base += "\n"
	}
	base += a.Recipe.View()
	if help := RenderKeybindHelp(a.KeyHandler, a.Page.State()); help != "" {
		base += "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, help)
	} else {
		base += "\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderHelpBar(a.KeyHandler, a.Page.State(), width))
	}
	return base
}

func (a *AppModel) handleSubmit() tea.Cmd {
	t, err := a.Page.Begin(a.ctx)
	var verr *recipe.ValidationError
	switch {
	case errors.Is(err, recipe.ErrBusy):
		return nil
	case errors.As(err, &verr):
		logger.Debug("recipe submission rejected", "reason", verr.Message)
		a.Recipe.Sync()
		return nil
	case err != nil:
		logger.Error("recipe submission failed", "err", err)
		return nil
	}
	a.Recipe.Sync()
	return tea.Batch(a.Recipe.SetLoading(true), generateCmd(a.Generator, t))
}

func (a *AppModel) handleGenerated(msg RecipeGeneratedMsg) tea.Cmd {
	if !a.Page.Complete(msg.Ticket, msg.Text, msg.Err) {
		return nil
	}
	a.Recipe.Sync()
	return tea.Batch(a.Recipe.SetLoading(false), a.Toasts.Flush())
}

func (a *AppModel) handleCancel() tea.Cmd {
	if !a.Page.Cancel() {
		return nil
	}
	a.Recipe.Sync()
	return a.Recipe.SetLoading(false)
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	toasts := NewToastStack(opts.ToastDuration)
	page := recipe.NewPage(opts.Generator, toasts, opts.Clipboard)
	return &AppModel{
		Page:       page,
		Recipe:     NewRecipeView(page, opts.RenderMarkdown),
		Toasts:     toasts,
		KeyHandler: NewKeyHandler(newRegistry()),
		Generator:  opts.Generator,
		ctx:        ctx,
	}
}

// newRegistry binds the page's keys.
func newRegistry() *KeybindRegistry {
	idle := []recipe.State{recipe.StateIdle, recipe.StateDone, recipe.StateError}
	loading := []recipe.State{recipe.StateLoading}
	submit := msgCmd(SubmitMsg{})
	copyRecipe := msgCmd(CopyMsg{})

	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDescForStates("ctrl+s", submit, "submit", idle)
	reg.BindWithDescForStates("alt+enter", submit, "", idle)
	reg.BindWithDesc("ctrl+y", copyRecipe, "copy")
	reg.BindWithDescForStates("esc", msgCmd(CancelMsg{}), "cancel", loading)
	reg.BindWithDesc("tab", msgCmd(FocusNextMsg{}), "next")
	reg.Bind("shift+tab", msgCmd(FocusPrevMsg{}))

	reg.BindWithDescForStates("C-x s", submit, "Submit", idle)
	reg.BindWithDesc("C-x c", copyRecipe, "Copy recipe")
	reg.BindWithDescForStates("C-x l", msgCmd(ClearMsg{}), "Clear", idle)
	reg.BindWithDesc("C-x q", tea.Quit, "Quit")
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
