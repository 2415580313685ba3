package contextmenu

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/ctxmenu/internal/widget"
)

// menuLayer floats the menu widget at the anchor, outside the layout tree.
type menuLayer struct {
	menu       widget.Widget
	onClose    tea.Msg
	keepInView bool
}

// Layout measures the menu against unbounded limits so it shrinks to its
// natural size regardless of where the decorated content sits.
func (l *menuLayer) Layout(viewport widget.Size, anchor widget.Point) *widget.Node {
	node := l.menu.Layout(widget.Unbounded())
	origin := anchor
	if l.keepInView {
		size := node.Size()
		if origin.X+size.Width > viewport.Width {
			origin.X = max(0, viewport.Width-size.Width)
		}
		if origin.Y+size.Height > viewport.Height {
			origin.Y = max(0, viewport.Height-size.Height)
		}
	}
	return node.MoveTo(origin)
}

func (l *menuLayer) Draw(c *widget.Canvas, layout widget.Layout, cursor widget.Cursor) {
	l.menu.Draw(c, layout, cursor)
}

// Update publishes the close message for a primary or secondary press
// outside the menu and leaves the event unconsumed so whatever sits beneath
// can react to the same press. Presses inside go to the menu.
func (l *menuLayer) Update(ev widget.Event, layout widget.Layout, cursor widget.Cursor, shell *widget.Shell) widget.Status {
	if me, ok := ev.(widget.MouseEvent); ok && me.Pressed(widget.ButtonLeft, widget.ButtonRight) {
		if pos, ok := cursor.Position(); ok && !layout.Bounds().Contains(pos) {
			shell.Publish(l.onClose)
			return widget.Ignored
		}
	}
	return l.menu.Update(ev, layout, cursor, shell)
}

func (l *menuLayer) Interaction(layout widget.Layout, cursor widget.Cursor) widget.Interaction {
	return l.menu.Interaction(layout, cursor)
}

func (l *menuLayer) Operate(layout widget.Layout, op widget.Operation) {
	l.menu.Operate(layout, op)
}

func (l *menuLayer) IsOver(layout widget.Layout, cursor widget.Cursor) bool {
	return cursor.IsOver(layout.Bounds())
}
