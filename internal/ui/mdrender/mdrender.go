// Package mdrender renders recipe Markdown as styled terminal text.
//
// Recipes from the webhook are usually Markdown (headings for sections,
// lists for ingredients and steps). Supported constructs:
//   - Headings become bold accent lines
//   - Bullet lists use "•", ordered lists keep their numbers
//   - Emphasis maps to italic/bold, code spans to a highlighted style
//   - Code blocks and block quotes are indented
//   - GFM tables become "a | b" rows
//
// Anything else falls back to its text content.
package mdrender

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Styles used for rendering.
var Styles = struct {
	Heading lipgloss.Style
	Bold    lipgloss.Style
	Italic  lipgloss.Style
	Code    lipgloss.Style
	Quote   lipgloss.Style
	Rule    lipgloss.Style
}{
	Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	Bold:    lipgloss.NewStyle().Bold(true),
	Italic:  lipgloss.NewStyle().Italic(true),
	Code:    lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
	Quote:   lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	Rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// Render converts markdown to terminal text wrapped at width columns.
// width <= 0 disables wrapping.
func Render(markdown string, width int) string {
	source := []byte(markdown)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(source))

	r := &renderer{source: source, width: width}
	r.walkBlock(doc, "")
	return strings.TrimRight(r.buf.String(), "\n ")
}

type renderer struct {
	source []byte
	width  int
	buf    strings.Builder
}

func (r *renderer) walkBlock(n ast.Node, indent string) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.block(c, indent)
	}
}

func (r *renderer) block(node ast.Node, indent string) {
	switch n := node.(type) {
	case *ast.Heading:
		r.writeBlock(Styles.Heading.Render(r.inlineText(n)), indent)
		r.buf.WriteString("\n")

	case *ast.Paragraph:
		r.writeBlock(r.inlineText(n), indent)
		r.buf.WriteString("\n")

	case *ast.TextBlock:
		r.writeBlock(r.inlineText(n), indent)

	case *ast.List:
		r.list(n, indent)
		if n.Parent() != nil && n.Parent().Kind() == ast.KindDocument {
			r.buf.WriteString("\n")
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := node.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			line := strings.TrimRight(string(seg.Value(r.source)), "\n")
			r.buf.WriteString(indent + "    " + Styles.Code.Render(line) + "\n")
		}
		r.buf.WriteString("\n")

	case *ast.Blockquote:
		sub := &renderer{source: r.source, width: r.width - 2}
		sub.walkBlock(n, "")
		for _, line := range strings.Split(strings.TrimRight(sub.buf.String(), "\n "), "\n") {
			r.buf.WriteString(indent + Styles.Quote.Render("│ "+line) + "\n")
		}
		r.buf.WriteString("\n")

	case *ast.ThematicBreak:
		w := r.width
		if w <= 0 || w > 40 {
			w = 40
		}
		r.buf.WriteString(indent + Styles.Rule.Render(strings.Repeat("─", w)) + "\n\n")

	case *ast.HTMLBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			r.buf.WriteString(indent + string(seg.Value(r.source)))
		}
		r.buf.WriteString("\n")

	default:
		if t, ok := node.(*east.Table); ok {
			r.table(t, indent)
			return
		}
		if node.HasChildren() {
			r.walkBlock(node, indent)
		}
	}
}

func (r *renderer) list(n *ast.List, indent string) {
	number := n.Start
	if number == 0 {
		number = 1
	}
	for item := n.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if n.IsOrdered() {
			marker = fmt.Sprintf("%d. ", number)
			number++
		}
		childIndent := indent + strings.Repeat(" ", lipgloss.Width(marker))

		first := true
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if first {
				first = false
				if c.Kind() == ast.KindTextBlock || c.Kind() == ast.KindParagraph {
					r.writeItem(indent+marker, childIndent, r.inlineText(c))
					continue
				}
				r.buf.WriteString(indent + marker + "\n")
			}
			if sub, ok := c.(*ast.List); ok {
				r.list(sub, childIndent)
				continue
			}
			r.block(c, childIndent)
		}
	}
}

func (r *renderer) table(t *east.Table, indent string) {
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, strings.TrimSpace(r.inlineText(cell)))
		}
		line := strings.Join(cells, " | ")
		if row.Kind() == east.KindTableHeader {
			line = Styles.Bold.Render(line)
		}
		r.buf.WriteString(indent + line + "\n")
	}
	r.buf.WriteString("\n")
}

// writeBlock wraps s to the available width and writes it with indent.
func (r *renderer) writeBlock(s, indent string) {
	for _, line := range strings.Split(r.wrap(s, len(indent)), "\n") {
		r.buf.WriteString(indent + line + "\n")
	}
}

// writeItem writes a list item: the first line after marker, the rest
// aligned under the item text.
func (r *renderer) writeItem(marker, contIndent, s string) {
	lines := strings.Split(r.wrap(s, lipgloss.Width(marker)), "\n")
	for i, line := range lines {
		if i == 0 {
			r.buf.WriteString(marker + line + "\n")
			continue
		}
		r.buf.WriteString(contIndent + line + "\n")
	}
}

func (r *renderer) wrap(s string, used int) string {
	w := r.width - used
	if r.width <= 0 || w < 10 {
		return s
	}
	return ansi.Wordwrap(s, w, "")
}

func (r *renderer) inlineText(n ast.Node) string {
	var b strings.Builder
	r.inlines(&b, n)
	return b.String()
}

func (r *renderer) inlines(b *strings.Builder, n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.inline(b, c)
	}
}

func (r *renderer) inline(b *strings.Builder, node ast.Node) {
	switch n := node.(type) {
	case *ast.Text:
		b.Write(n.Segment.Value(r.source))
		// Recipes often put one item per line without Markdown syntax.
		if n.SoftLineBreak() || n.HardLineBreak() {
			b.WriteByte('\n')
		}

	case *ast.String:
		b.Write(n.Value)

	case *ast.Emphasis:
		inner := r.inlineText(n)
		if n.Level == 2 {
			b.WriteString(Styles.Bold.Render(inner))
		} else {
			b.WriteString(Styles.Italic.Render(inner))
		}

	case *ast.CodeSpan:
		b.WriteString(Styles.Code.Render(r.inlineText(n)))

	case *ast.Link:
		label := r.inlineText(n)
		dest := string(n.Destination)
		if label == "" || label == dest {
			b.WriteString(dest)
		} else {
			fmt.Fprintf(b, "%s (%s)", label, dest)
		}

	case *ast.AutoLink:
		b.Write(n.URL(r.source))

	case *ast.Image:
		fmt.Fprintf(b, "[image: %s]", r.inlineText(n))

	case *ast.RawHTML:
		segs := n.Segments
		for i := 0; i < segs.Len(); i++ {
			seg := segs.At(i)
			b.Write(seg.Value(r.source))
		}

	default:
		if cb, ok := node.(*east.TaskCheckBox); ok {
			if cb.IsChecked {
				b.WriteString("[x] ")
			} else {
				b.WriteString("[ ] ")
			}
			return
		}
		if _, ok := node.(*east.Strikethrough); ok {
			b.WriteString(lipgloss.NewStyle().Strikethrough(true).Render(r.inlineText(node)))
			return
		}
		r.inlines(b, node)
	}
}
