package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Text is a block of plain lines.
type Text struct {
	Content string
	Style   lipgloss.Style
	Width   Length
	Height  Length
}

// NewText returns shrink-to-fit text.
func NewText(content string) *Text {
	return &Text{Content: content, Style: lipgloss.NewStyle()}
}

func (t *Text) lines() []string {
	return strings.Split(t.Content, "\n")
}

func (t *Text) Sizing() (Length, Length) { return t.Width, t.Height }

func (t *Text) Layout(limits Limits) *Node {
	lines := t.lines()
	intrinsic := Size{Height: len(lines)}
	for _, line := range lines {
		intrinsic.Width = max(intrinsic.Width, lipgloss.Width(line))
	}
	return NewNode(limits.Resolve(t.Width, t.Height, intrinsic))
}

func (t *Text) Draw(c *Canvas, layout Layout, _ Cursor) {
	b := layout.Bounds()
	for i, line := range t.lines() {
		if i >= b.Size.Height {
			break
		}
		c.Text(Pt(b.Min.X, b.Min.Y+i), line, t.Style, b)
	}
}

func (t *Text) Update(Event, Layout, Cursor, *Shell) Status { return Ignored }

func (t *Text) Interaction(Layout, Cursor) Interaction { return InteractionIdle }

func (t *Text) Operate(layout Layout, op Operation) {
	op.Visit("text", layout.Bounds())
}

func (t *Text) Overlay(Layout) *Overlay { return nil }
