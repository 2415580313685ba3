// Package ui runs render passes over a widget tree and its overlay.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/ctxmenu/internal/widget"
)

// UserInterface is one render pass: a root widget laid out for a viewport,
// plus the overlay it produced, if any. Build a new one for every pass.
type UserInterface struct {
	root     widget.Widget
	viewport widget.Size
	base     widget.Layout

	overlay       *widget.Overlay
	overlayLayout widget.Layout
}

// Build lays root out within viewport and collects its overlay.
func Build(root widget.Widget, viewport widget.Size) *UserInterface {
	node := root.Layout(widget.NewLimits(widget.Size{}, viewport))
	ui := &UserInterface{
		root:     root,
		viewport: viewport,
		base:     widget.NewLayout(node),
	}
	if o := root.Overlay(ui.base); o != nil {
		ui.overlay = o
		ui.overlayLayout = widget.NewLayout(o.Layout(viewport))
	}
	return ui
}

// Viewport returns the size the pass was built for.
func (ui *UserInterface) Viewport() widget.Size { return ui.viewport }

// Bounds returns the absolute bounds of the root widget.
func (ui *UserInterface) Bounds() widget.Rect { return ui.base.Bounds() }

// OverlayBounds returns where the overlay sits, if there is one.
func (ui *UserInterface) OverlayBounds() (widget.Rect, bool) {
	if ui.overlay == nil {
		return widget.Rect{}, false
	}
	return ui.overlayLayout.Bounds(), true
}

// baseCursor hides the cursor from the tree while it is over the overlay,
// so nothing underneath reacts to it.
func (ui *UserInterface) baseCursor(cursor widget.Cursor) widget.Cursor {
	if ui.overlay != nil && ui.overlay.Layer.IsOver(ui.overlayLayout, cursor) {
		return widget.CursorUnavailable
	}
	return cursor
}

// Update routes ev to the overlay first and then, unless the overlay
// captured it, to the widget tree. Published messages land in shell.
func (ui *UserInterface) Update(ev widget.Event, cursor widget.Cursor, shell *widget.Shell) widget.Status {
	if ui.overlay != nil {
		if status := ui.overlay.Layer.Update(ev, ui.overlayLayout, cursor, shell); status == widget.Captured {
			return status
		}
	}
	return ui.root.Update(ev, ui.base, ui.baseCursor(cursor), shell)
}

// Draw paints the tree and then the overlay on a fresh canvas.
func (ui *UserInterface) Draw(cursor widget.Cursor) *widget.Canvas {
	c := widget.NewCanvas(ui.viewport)
	ui.root.Draw(c, ui.base, ui.baseCursor(cursor))
	if ui.overlay != nil {
		ui.overlay.Layer.Draw(c, ui.overlayLayout, cursor)
	}
	return c
}

// Interaction returns the pointer affordance under the cursor.
func (ui *UserInterface) Interaction(cursor widget.Cursor) widget.Interaction {
	if ui.overlay != nil && ui.overlay.Layer.IsOver(ui.overlayLayout, cursor) {
		return ui.overlay.Layer.Interaction(ui.overlayLayout, cursor)
	}
	return ui.root.Interaction(ui.base, cursor)
}

// Operate walks the tree and then the overlay.
func (ui *UserInterface) Operate(op widget.Operation) {
	ui.root.Operate(ui.base, op)
	if ui.overlay != nil {
		ui.overlay.Layer.Operate(ui.overlayLayout, op)
	}
}

// Explain outlines every container reported by an Operate pass.
func (ui *UserInterface) Explain(c *widget.Canvas, style lipgloss.Style) {
	border := lipgloss.NormalBorder()
	ui.Operate(widget.OperationFunc(func(kind string, bounds widget.Rect) {
		if kind == "container" {
			c.Border(bounds, border, style)
		}
	}))
}
