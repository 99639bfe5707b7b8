package ui

import (
	"strings"

	"recipemaker/internal/recipe"
	"recipemaker/internal/ui/mdrender"
	"recipemaker/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	pageTitle        = "Kim's Quick Recipe Maker"
	pageTagline      = "Tell me what you want to eat, and I'll create a personalized recipe just for you! ♥"
	inputPlaceholder = "help me create a healthy recipe for..."
	inputCharLimit   = 2000
	inputHeight      = 4

	defaultPageWidth  = 80
	defaultPageHeight = 40
	maxCardWidth      = 84
	minOutputHeight   = 5
	maxOutputHeight   = 30
)

// Tools are the chips shown next to the dish input.
var Tools = []string{"recipe creator", "meal planner"}

// RecipeView renders the recipe page: hero header, the dish input card with
// tools and submit button, and the generated recipe once there is one.
// It reads page state from Page; all mutations go through the app model.
type RecipeView struct {
	Page           *recipe.Page
	Focus          *FocusManager
	ActiveTool     int
	RenderMarkdown bool

	input   textarea.Model
	output  viewport.Model
	spinner spinner.Model
	width   int
	height  int
	shown   string // raw output currently in the viewport
}

// Ensure RecipeView implements View.
var _ View = (*RecipeView)(nil)

// NewRecipeView creates the page view over page.
func NewRecipeView(page *recipe.Page, renderMarkdown bool) *RecipeView {
	ta := textarea.New()
	ta.Placeholder = inputPlaceholder
	ta.CharLimit = inputCharLimit
	ta.ShowLineNumbers = false
	ta.SetHeight(inputHeight)
	ta.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight))

	v := &RecipeView{
		Page:           page,
		RenderMarkdown: renderMarkdown,
		input:          ta,
		output:         viewport.New(defaultPageWidth, minOutputHeight),
		spinner:        s,
	}
	v.Focus = &FocusManager{
		Current:  FocusInput,
		Order:    []string{FocusInput, FocusRecipeCreator, FocusMealPlanner, FocusSubmit, FocusCopy},
		Enabled:  v.controlEnabled,
		OnChange: v.focusChanged,
	}
	v.resize(defaultPageWidth, defaultPageHeight)
	return v
}

// Init implements View.
func (v *RecipeView) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements View.
func (v *RecipeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.resize(msg.Width, msg.Height)
		return v, nil
	case spinner.TickMsg:
		if !v.Page.Loading() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "pgup", "pgdown":
			var cmd tea.Cmd
			v.output, cmd = v.output.Update(msg)
			return v, cmd
		}
		if !v.Focus.Is(FocusInput) {
			switch msg.String() {
			case "enter", " ":
				return v, v.Activate()
			}
			return v, nil
		}
		if !v.Page.ControlsEnabled() {
			return v, nil
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		v.Page.SetInput(v.input.Value())
		return v, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		v.output, cmd = v.output.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// Activate triggers the focused control, like pressing a button.
func (v *RecipeView) Activate() tea.Cmd {
	switch v.Focus.Current {
	case FocusRecipeCreator:
		return msgCmd(SelectToolMsg{Index: 0})
	case FocusMealPlanner:
		return msgCmd(SelectToolMsg{Index: 1})
	case FocusSubmit:
		return msgCmd(SubmitMsg{})
	case FocusCopy:
		return msgCmd(CopyMsg{})
	}
	return nil
}

// SelectTool marks tool i as active. Ignored while loading.
func (v *RecipeView) SelectTool(i int) bool {
	if !v.Page.ControlsEnabled() || i < 0 || i >= len(Tools) {
		return false
	}
	v.ActiveTool = i
	return true
}

// SetLoading disables or re-enables the input. Returns the spinner tick
// when loading starts, or the cursor blink when the input regains focus.
func (v *RecipeView) SetLoading(loading bool) tea.Cmd {
	if loading {
		v.input.Blur()
		return v.spinner.Tick
	}
	v.Focus.Ensure(FocusInput)
	if v.Focus.Is(FocusInput) {
		return v.input.Focus()
	}
	return nil
}

// Sync pulls page state into the widgets after the page changed.
func (v *RecipeView) Sync() {
	if v.input.Value() != v.Page.Input() {
		v.input.SetValue(v.Page.Input())
	}
	if out := v.Page.Output(); out != v.shown {
		v.shown = out
		v.refreshOutput()
		v.output.GotoTop()
	}
	v.Focus.Ensure(FocusInput)
}

// SpinnerFrame returns the current spinner frame.
func (v *RecipeView) SpinnerFrame() string {
	return v.spinner.View()
}

// Width returns the terminal width the view was last sized to.
func (v *RecipeView) Width() int {
	return v.width
}

// View implements View.
func (v *RecipeView) View() string {
	cardWidth := v.cardWidth()
	inner := cardWidth - Styles.Card.GetHorizontalFrameSize()

	parts := []string{v.input.View(), "", v.controlsRow(inner)}
	if out := v.Page.Output(); out != "" {
		parts = append(parts, "", v.resultHeader(inner), Styles.ResultBox.Render(v.output.View()))
	}
	card := Styles.Card.Width(cardWidth - Styles.Card.GetHorizontalBorderSize()).Render(strings.Join(parts, "\n"))

	footer := Styles.Hint.Render("Made with Dyad")
	sections := []string{v.hero(), card, footer}
	for i, s := range sections {
		sections[i] = lipgloss.PlaceHorizontal(v.width, lipgloss.Center, s)
	}
	return strings.Join(sections, "\n\n")
}

func (v *RecipeView) hero() string {
	badges := strings.Join([]string{
		Styles.Badge.Render("✦ AI-Powered"),
		Styles.Badge.Render("♨ Personalized"),
		Styles.BadgeOK.Render("♥ Delicious"),
	}, "    ")
	tagline := textutil.Truncate(pageTagline, textutil.Clamp(v.width-2, 10, len(pageTagline)+2))
	return lipgloss.JoinVertical(lipgloss.Center,
		Styles.Title.Render(pageTitle),
		Styles.Tagline.Render(tagline),
		"",
		badges,
	)
}

func (v *RecipeView) controlsRow(width int) string {
	enabled := v.Page.ControlsEnabled()
	chips := []string{Styles.Label.Render("tools")}
	for i, name := range Tools {
		style := Styles.Chip
		switch {
		case !enabled:
			style = Styles.ChipDisabled
		case v.Focus.Is(toolFocusID(i)):
			style = Styles.ChipFocused
		case i == v.ActiveTool:
			style = Styles.ChipActive
		}
		chips = append(chips, style.Render(name))
	}
	left := strings.Join(chips, " ")

	label := "Submit ➤"
	style := Styles.Button
	switch {
	case v.Page.Loading():
		label = strings.TrimSpace(v.spinner.View()) + " Generating..."
		style = Styles.ButtonDisabled
	case v.Focus.Is(FocusSubmit):
		style = Styles.ButtonFocused
	}
	right := style.Render(label)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + "\n" + right
	}
	return left + strings.Repeat(" ", gap) + right
}

func (v *RecipeView) resultHeader(width int) string {
	left := Styles.Section.Render("Your Recipe:")
	style := Styles.Button
	if v.Focus.Is(FocusCopy) {
		style = Styles.ButtonFocused
	}
	right := Styles.Hint.Render("ctrl+y ") + style.Render("Copy Recipe")
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (v *RecipeView) cardWidth() int {
	return textutil.Clamp(v.width-2, 30, maxCardWidth)
}

func (v *RecipeView) resize(width, height int) {
	v.width = width
	v.height = height
	inner := v.cardWidth() - Styles.Card.GetHorizontalFrameSize()
	v.input.SetWidth(inner)
	v.output.Width = inner - Styles.ResultBox.GetHorizontalFrameSize()
	// Hero, card chrome, input, controls, result header, footer and help.
	v.output.Height = textutil.Clamp(height-28, minOutputHeight, maxOutputHeight)
	v.refreshOutput()
}

// refreshOutput re-renders the recipe into the viewport at the current width.
func (v *RecipeView) refreshOutput() {
	content := v.shown
	if v.RenderMarkdown && content != "" {
		content = mdrender.Render(content, v.output.Width)
	}
	v.output.SetContent(content)
}

func (v *RecipeView) controlEnabled(id string) bool {
	if id == FocusCopy {
		return v.Page.Output() != ""
	}
	return v.Page.ControlsEnabled()
}

func (v *RecipeView) focusChanged(_, to string) {
	if to == FocusInput && v.Page.ControlsEnabled() {
		v.input.Focus()
		return
	}
	v.input.Blur()
}

func toolFocusID(i int) string {
	if i == 0 {
		return FocusRecipeCreator
	}
	return FocusMealPlanner
}
