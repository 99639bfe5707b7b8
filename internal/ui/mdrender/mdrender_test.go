package mdrender

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func plain(s string) string { return ansi.Strip(s) }

func TestRender_HeadingsAndLists(t *testing.T) {
	src := `# Spicy Ramen

## Ingredients
- 200g noodles
- 1 tbsp **chili oil**

## Steps
1. Boil water
2. Cook noodles *al dente*
`
	got := plain(Render(src, 0))

	assert.Contains(t, got, "Spicy Ramen")
	assert.NotContains(t, got, "#")
	assert.Contains(t, got, "• 200g noodles")
	assert.Contains(t, got, "• 1 tbsp chili oil")
	assert.NotContains(t, got, "**")
	assert.Contains(t, got, "1. Boil water")
	assert.Contains(t, got, "2. Cook noodles al dente")
}

func TestRender_OrderedListStart(t *testing.T) {
	got := plain(Render("3. third\n4. fourth\n", 0))
	assert.Contains(t, got, "3. third")
	assert.Contains(t, got, "4. fourth")
}

func TestRender_NestedList(t *testing.T) {
	got := plain(Render("- sauce\n  - soy\n  - mirin\n", 0))
	lines := strings.Split(got, "\n")
	assert.Equal(t, "• sauce", lines[0])
	assert.Equal(t, "  • soy", lines[1])
	assert.Equal(t, "  • mirin", lines[2])
}

func TestRender_PlainTextPassesThrough(t *testing.T) {
	got := plain(Render("Mix everything and bake for 20 minutes.", 0))
	assert.Equal(t, "Mix everything and bake for 20 minutes.", got)
}

func TestRender_KeepsSourceLines(t *testing.T) {
	src := "Ingredients:\n2 eggs\n1 cup flour\nMix and bake."
	assert.Equal(t, src, plain(Render(src, 60)))
	assert.Equal(t, src, plain(Render(src, 0)))
}

func TestRender_WrapsToWidth(t *testing.T) {
	src := strings.Repeat("simmer gently ", 20)
	got := plain(Render(src, 30))
	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 30, "line %q", line)
	}
}

func TestRender_CodeQuoteTableAndLinks(t *testing.T) {
	src := "> Serve hot\n\n```\noven 200C\n```\n\n| Item | Qty |\n|---|---|\n| Egg | 2 |\n\nSee [the source](https://example.test).\n"
	got := plain(Render(src, 0))

	assert.Contains(t, got, "│ Serve hot")
	assert.Contains(t, got, "    oven 200C")
	assert.Contains(t, got, "Item | Qty")
	assert.Contains(t, got, "Egg | 2")
	assert.Contains(t, got, "the source (https://example.test)")
}

func TestRender_TaskList(t *testing.T) {
	got := plain(Render("- [x] preheat\n- [ ] chop\n", 0))
	assert.Contains(t, got, "• [x] preheat")
	assert.Contains(t, got, "• [ ] chop")
}
