// Package contextmenu decorates a widget with a popup that opens on right
// click.
//
// A ContextMenu is rebuilt on every render pass from the current Snapshot of
// a State owned by the application. It never mutates that State: opening and
// closing are requested by publishing the application's own messages, which
// the application applies with State.RequestOpen and State.RequestClose.
// Because the snapshot is taken once per pass, every ContextMenu in a pass
// agrees on which one owns the overlay.
package contextmenu

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/ctxmenu/internal/widget"
)

// OpenFunc builds the message published when a menu asks to open at a
// cursor position.
type OpenFunc func(id ID, at widget.Point) tea.Msg

// ContextMenu shows menu in an overlay when content is right clicked.
type ContextMenu struct {
	id         ID
	active     Snapshot
	onOpen     OpenFunc
	onClose    tea.Msg
	content    widget.Widget
	menu       widget.Widget
	keepInView bool
}

// New returns a ContextMenu identified by id. active is the snapshot for the
// current pass, onOpen builds the open request and onClose is published when
// the open menu is dismissed by a click outside it.
func New(id ID, active Snapshot, onOpen OpenFunc, onClose tea.Msg, content, menu widget.Widget) *ContextMenu {
	return &ContextMenu{
		id:      id,
		active:  active,
		onOpen:  onOpen,
		onClose: onClose,
		content: content,
		menu:    menu,
	}
}

// KeepInView shifts the menu left or up when it would run past the edge of
// the viewport. Without it the menu origin is always the click position.
func (m *ContextMenu) KeepInView(on bool) *ContextMenu {
	m.keepInView = on
	return m
}

// ID returns the menu identity.
func (m *ContextMenu) ID() ID { return m.id }

func (m *ContextMenu) Sizing() (widget.Length, widget.Length) {
	return m.content.Sizing()
}

func (m *ContextMenu) Layout(limits widget.Limits) *widget.Node {
	return m.content.Layout(limits)
}

func (m *ContextMenu) Draw(c *widget.Canvas, layout widget.Layout, cursor widget.Cursor) {
	m.content.Draw(c, layout, cursor)
}

// Update captures a right press over the content and publishes the open
// request. Everything else, including right presses elsewhere, goes to the
// content untouched.
func (m *ContextMenu) Update(ev widget.Event, layout widget.Layout, cursor widget.Cursor, shell *widget.Shell) widget.Status {
	if me, ok := ev.(widget.MouseEvent); ok && me.Pressed(widget.ButtonRight) {
		if pos, ok := cursor.Position(); ok && layout.Bounds().Contains(pos) {
			if m.onOpen != nil {
				shell.Publish(m.onOpen(m.id, pos))
			}
			return widget.Captured
		}
	}
	return m.content.Update(ev, layout, cursor, shell)
}

func (m *ContextMenu) Interaction(layout widget.Layout, cursor widget.Cursor) widget.Interaction {
	return m.content.Interaction(layout, cursor)
}

func (m *ContextMenu) Operate(layout widget.Layout, op widget.Operation) {
	m.content.Operate(layout, op)
}

// Overlay returns the menu layer when the snapshot names this menu. A menu
// that is not open passes through overlays from its content.
func (m *ContextMenu) Overlay(layout widget.Layout) *widget.Overlay {
	if !m.active.Owns(m.id) {
		return m.content.Overlay(layout)
	}
	return widget.NewOverlay(m.active.Anchor(), &menuLayer{
		menu:       m.menu,
		onClose:    m.onClose,
		keepInView: m.keepInView,
	})
}
