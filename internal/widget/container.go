package widget

import (
	"github.com/charmbracelet/lipgloss"
)

// Container wraps one child with a size policy, padding and an optional
// border drawn with lipgloss border runes.
type Container struct {
	Child   Widget
	Width   Length
	Height  Length
	Padding Padding
	// Border, when set, reserves one cell on every side for the frame.
	Border      *lipgloss.Border
	BorderStyle lipgloss.Style
	// Style, when set, fills the container before the child draws.
	Style *lipgloss.Style
}

// NewContainer wraps child in a shrinking container.
func NewContainer(child Widget) *Container {
	return &Container{Child: child, BorderStyle: lipgloss.NewStyle()}
}

func (c *Container) inset() Padding {
	p := c.Padding
	if c.Border != nil {
		p.Top++
		p.Right++
		p.Bottom++
		p.Left++
	}
	return p
}

func (c *Container) Sizing() (Length, Length) { return c.Width, c.Height }

func (c *Container) Layout(limits Limits) *Node {
	limits = limits.Width(c.Width).Height(c.Height)
	inset := c.inset()

	child := c.Child.Layout(limits.Shrink(inset).Loose())
	child.MoveTo(Pt(inset.Left, inset.Top))

	content := Size{
		Width:  child.Size().Width + inset.Horizontal(),
		Height: child.Size().Height + inset.Vertical(),
	}
	return NewNodeWithChildren(limits.Resolve(c.Width, c.Height, content), child)
}

func (c *Container) Draw(cv *Canvas, layout Layout, cursor Cursor) {
	bounds := layout.Bounds()
	if c.Style != nil {
		cv.Fill(bounds, *c.Style)
	}
	c.Child.Draw(cv, layout.Child(0), cursor)
	if c.Border != nil {
		cv.Border(bounds, *c.Border, c.BorderStyle)
	}
}

func (c *Container) Update(ev Event, layout Layout, cursor Cursor, shell *Shell) Status {
	return c.Child.Update(ev, layout.Child(0), cursor, shell)
}

func (c *Container) Interaction(layout Layout, cursor Cursor) Interaction {
	return c.Child.Interaction(layout.Child(0), cursor)
}

func (c *Container) Operate(layout Layout, op Operation) {
	op.Visit("container", layout.Bounds())
	c.Child.Operate(layout.Child(0), op)
}

func (c *Container) Overlay(layout Layout) *Overlay {
	return c.Child.Overlay(layout.Child(0))
}
