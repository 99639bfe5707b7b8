package ui

import (
	"strings"
	"time"

	"recipemaker/internal/recipe"
	"recipemaker/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// ToastKind selects a toast's icon and style.
type ToastKind int

const (
	ToastLoading ToastKind = iota
	ToastSuccess
	ToastError
)

const (
	defaultToastDuration = 3 * time.Second
	maxVisibleToasts     = 3
	maxToastWidth        = 48
)

// Toast is one transient notification.
type Toast struct {
	ID      recipe.ToastID
	Kind    ToastKind
	Message string
}

// ToastStack holds the visible notifications, newest last. It implements
// recipe.Notifier: loading toasts stay until dismissed, success and error
// toasts expire after the configured duration.
type ToastStack struct {
	Stack    []Toast
	Duration time.Duration
	expiring []recipe.ToastID
}

// Ensure ToastStack implements recipe.Notifier.
var _ recipe.Notifier = (*ToastStack)(nil)

// NewToastStack creates an empty stack. A non-positive duration uses 3s.
func NewToastStack(d time.Duration) *ToastStack {
	if d <= 0 {
		d = defaultToastDuration
	}
	return &ToastStack{Duration: d}
}

// Loading implements recipe.Notifier.
func (s *ToastStack) Loading(msg string) recipe.ToastID {
	return s.Push(ToastLoading, msg)
}

// Success implements recipe.Notifier.
func (s *ToastStack) Success(msg string) {
	s.expiring = append(s.expiring, s.Push(ToastSuccess, msg))
}

// Error implements recipe.Notifier.
func (s *ToastStack) Error(msg string) {
	s.expiring = append(s.expiring, s.Push(ToastError, msg))
}

// Dismiss implements recipe.Notifier. Unknown IDs are ignored.
func (s *ToastStack) Dismiss(id recipe.ToastID) {
	s.Remove(id)
}

// Push adds a toast to the top of the stack and returns its handle.
func (s *ToastStack) Push(kind ToastKind, msg string) recipe.ToastID {
	id := recipe.ToastID(uuid.NewString())
	s.Stack = append(s.Stack, Toast{ID: id, Kind: kind, Message: msg})
	return id
}

// Remove deletes the toast with the given handle. Returns false if absent.
func (s *ToastStack) Remove(id recipe.ToastID) bool {
	for i, t := range s.Stack {
		if t.ID == id {
			s.Stack = append(s.Stack[:i], s.Stack[i+1:]...)
			return true
		}
	}
	return false
}

// Peek returns the newest toast without removing it.
func (s *ToastStack) Peek() (Toast, bool) {
	if len(s.Stack) == 0 {
		return Toast{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of toasts in the stack.
func (s *ToastStack) Len() int {
	return len(s.Stack)
}

// Flush returns expiry ticks for toasts posted since the last flush.
// Caller must run the cmd.
func (s *ToastStack) Flush() tea.Cmd {
	if len(s.expiring) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(s.expiring))
	for _, id := range s.expiring {
		cmds = append(cmds, expireToastCmd(id, s.Duration))
	}
	s.expiring = nil
	return tea.Batch(cmds...)
}

// View renders the newest toasts stacked vertically and right-aligned in
// width columns. spin is the current spinner frame for loading toasts.
func (s *ToastStack) View(width int, spin string) string {
	if len(s.Stack) == 0 {
		return ""
	}
	visible := s.Stack
	if len(visible) > maxVisibleToasts {
		visible = visible[len(visible)-maxVisibleToasts:]
	}
	textWidth := maxToastWidth
	if width > 0 {
		textWidth = textutil.Clamp(width-6, 8, maxToastWidth)
	}

	boxes := make([]string, 0, len(visible))
	for _, t := range visible {
		icon, style := toastLook(t.Kind, spin)
		text := textutil.Truncate(textutil.FirstLine(t.Message), textWidth-textutil.VisualWidth(icon)-1)
		boxes = append(boxes, style.Render(icon+" "+text))
	}
	block := lipgloss.JoinVertical(lipgloss.Right, boxes...)
	if width <= 0 {
		return block
	}
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Right, l)
	}
	return strings.Join(lines, "\n")
}

func toastLook(k ToastKind, spin string) (string, lipgloss.Style) {
	switch k {
	case ToastSuccess:
		return "✓", Styles.ToastSuccess
	case ToastError:
		return "✗", Styles.ToastError
	default:
		if spin == "" {
			spin = "●"
		}
		return strings.TrimSpace(spin), Styles.ToastLoading
	}
}
