package widget

import (
	"github.com/charmbracelet/lipgloss"
)

// Column stacks children top to bottom. Children with a Fill width stretch
// to the widest sibling when the column itself shrinks.
type Column struct {
	Children []Widget
	Spacing  int
	Padding  Padding
	Width    Length
	Height   Length
	// Style, when set, fills the column bounds before children draw.
	Style *lipgloss.Style
}

// NewColumn returns a shrinking column of children.
func NewColumn(children ...Widget) *Column {
	return &Column{Children: children}
}

// Push appends a child.
func (c *Column) Push(w Widget) *Column {
	c.Children = append(c.Children, w)
	return c
}

func (c *Column) Sizing() (Length, Length) { return c.Width, c.Height }

func (c *Column) Layout(limits Limits) *Node {
	limits = limits.Width(c.Width).Height(c.Height)
	inner := limits.Shrink(c.Padding)

	cross := inner.Max.Width
	if c.Width.kind == lengthShrink || cross >= Infinite {
		widest := 0
		for _, child := range c.Children {
			if w, _ := child.Sizing(); w.IsFill() {
				continue
			}
			n := child.Layout(Limits{Max: Size{Width: inner.Max.Width, Height: Infinite}})
			widest = max(widest, n.Size().Width)
		}
		if widest == 0 {
			for _, child := range c.Children {
				n := child.Layout(Limits{Max: Size{Width: inner.Max.Width, Height: Infinite}})
				widest = max(widest, n.Size().Width)
			}
		}
		cross = clamp(widest, inner.Min.Width, inner.Max.Width)
	}

	nodes := make([]*Node, 0, len(c.Children))
	y := 0
	for i, child := range c.Children {
		if i > 0 {
			y += c.Spacing
		}
		n := child.Layout(Limits{Max: Size{Width: cross, Height: max(0, inner.Max.Height-y)}})
		n.MoveTo(Pt(c.Padding.Left, c.Padding.Top+y))
		y += n.Size().Height
		nodes = append(nodes, n)
	}

	content := Size{
		Width:  cross + c.Padding.Horizontal(),
		Height: y + c.Padding.Vertical(),
	}
	return NewNodeWithChildren(limits.Resolve(c.Width, c.Height, content), nodes...)
}

func (c *Column) Draw(cv *Canvas, layout Layout, cursor Cursor) {
	if c.Style != nil {
		cv.Fill(layout.Bounds(), *c.Style)
	}
	for i, child := range c.Children {
		child.Draw(cv, layout.Child(i), cursor)
	}
}

// Update offers the event to every child and merges their statuses.
func (c *Column) Update(ev Event, layout Layout, cursor Cursor, shell *Shell) Status {
	status := Ignored
	for i, child := range c.Children {
		status = status.Merge(child.Update(ev, layout.Child(i), cursor, shell))
	}
	return status
}

func (c *Column) Interaction(layout Layout, cursor Cursor) Interaction {
	out := InteractionIdle
	for i, child := range c.Children {
		out = max(out, child.Interaction(layout.Child(i), cursor))
	}
	return out
}

func (c *Column) Operate(layout Layout, op Operation) {
	op.Visit("column", layout.Bounds())
	for i, child := range c.Children {
		child.Operate(layout.Child(i), op)
	}
}

func (c *Column) Overlay(layout Layout) *Overlay {
	return overlayOf(c.Children, layout)
}
