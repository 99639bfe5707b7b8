package ui

// Focusable controls on the recipe page, in tab order.
const (
	FocusInput         = "input"
	FocusRecipeCreator = "tool:recipe-creator"
	FocusMealPlanner   = "tool:meal-planner"
	FocusSubmit        = "submit"
	FocusCopy          = "copy"
)

// FocusManager tracks and rotates focus across the page's controls.
type FocusManager struct {
	Current string   // ID of the currently focused control
	Order   []string // Tab order for focus rotation
	// Enabled reports whether a control may take focus. Nil means all may.
	Enabled  func(id string) bool
	OnChange func(from, to string)
}

// Next advances focus to the next enabled control in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus to the previous enabled control in order.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(dir int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.index(f.Current)
	if idx < 0 && dir < 0 {
		idx = 0
	}
	for i := 1; i <= n; i++ {
		next := ((idx+dir*i)%n + n) % n
		if f.enabled(f.Order[next]) {
			f.set(f.Order[next])
			return f.Current
		}
	}
	return f.Current
}

// SetFocus sets focus to the given control ID.
// Returns true if the ID exists in order and is enabled.
func (f *FocusManager) SetFocus(id string) bool {
	if f.index(id) < 0 || !f.enabled(id) {
		return false
	}
	f.set(id)
	return true
}

// Is reports whether id currently has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

// Ensure moves focus off a control that has become disabled, falling back
// to fallback.
func (f *FocusManager) Ensure(fallback string) {
	if f.Current != "" && f.enabled(f.Current) {
		return
	}
	f.set(fallback)
}

func (f *FocusManager) index(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) enabled(id string) bool {
	return f.Enabled == nil || f.Enabled(id)
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
