package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFocusManager_NextWraps(t *testing.T) {
	f := &FocusManager{Current: "a", Order: []string{"a", "b", "c"}}
	assert.Equal(t, "b", f.Next())
	assert.Equal(t, "c", f.Next())
	assert.Equal(t, "a", f.Next())
	assert.Equal(t, "c", f.Prev())
}

func TestFocusManager_SkipsDisabled(t *testing.T) {
	disabled := map[string]bool{"b": true}
	f := &FocusManager{
		Current: "a",
		Order:   []string{"a", "b", "c"},
		Enabled: func(id string) bool { return !disabled[id] },
	}
	assert.Equal(t, "c", f.Next())
	assert.Equal(t, "a", f.Next())
	assert.Equal(t, "c", f.Prev())
	assert.False(t, f.SetFocus("b"))
	assert.Equal(t, "c", f.Current)
}

func TestFocusManager_Ensure(t *testing.T) {
	disabled := map[string]bool{}
	f := &FocusManager{
		Current: "b",
		Order:   []string{"a", "b"},
		Enabled: func(id string) bool { return !disabled[id] },
	}
	f.Ensure("a")
	assert.Equal(t, "b", f.Current)

	disabled["b"] = true
	f.Ensure("a")
	assert.Equal(t, "a", f.Current)
}

func TestFocusManager_OnChange(t *testing.T) {
	var changes []string
	f := &FocusManager{
		Current:  "a",
		Order:    []string{"a", "b"},
		OnChange: func(from, to string) { changes = append(changes, from+">"+to) },
	}
	f.Next()
	f.SetFocus("b")
	assert.Equal(t, []string{"a>b"}, changes)
}
