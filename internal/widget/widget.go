package widget

// Interaction is the pointer affordance a widget shows under the cursor.
type Interaction int

const (
	InteractionIdle Interaction = iota
	InteractionPointer
)

func (i Interaction) String() string {
	if i == InteractionPointer {
		return "pointer"
	}
	return "idle"
}

// Operation visits widgets for introspection. Containers report themselves
// and then walk their children.
type Operation interface {
	Visit(kind string, bounds Rect)
}

// OperationFunc adapts a function to Operation.
type OperationFunc func(kind string, bounds Rect)

// Visit calls f.
func (f OperationFunc) Visit(kind string, bounds Rect) { f(kind, bounds) }

// Widget is anything that can be laid out, drawn and fed input.
type Widget interface {
	// Sizing reports the width and height policies.
	Sizing() (width, height Length)
	// Layout measures the widget within limits.
	Layout(limits Limits) *Node
	// Draw paints the widget at its layout.
	Draw(c *Canvas, layout Layout, cursor Cursor)
	// Update handles an event and reports whether it was consumed.
	Update(ev Event, layout Layout, cursor Cursor, shell *Shell) Status
	// Interaction is the hit test used for pointer affordances.
	Interaction(layout Layout, cursor Cursor) Interaction
	// Operate runs an introspection pass.
	Operate(layout Layout, op Operation)
	// Overlay returns a layer to float above the tree, or nil.
	Overlay(layout Layout) *Overlay
}

// Layer is content rendered outside the normal layout tree.
type Layer interface {
	// Layout places the layer for the given viewport and anchor.
	Layout(viewport Size, anchor Point) *Node
	Draw(c *Canvas, layout Layout, cursor Cursor)
	Update(ev Event, layout Layout, cursor Cursor, shell *Shell) Status
	Interaction(layout Layout, cursor Cursor) Interaction
	Operate(layout Layout, op Operation)
	// IsOver reports whether the cursor is over the visible part of the layer.
	IsOver(layout Layout, cursor Cursor) bool
}

// Overlay is a Layer anchored at a screen point. Widgets return a fresh one
// from every pass; nothing keeps it alive between passes.
type Overlay struct {
	Anchor Point
	Layer  Layer
}

// NewOverlay anchors layer at p.
func NewOverlay(p Point, layer Layer) *Overlay {
	return &Overlay{Anchor: p, Layer: layer}
}

// Layout lays the layer out at its anchor.
func (o *Overlay) Layout(viewport Size) *Node {
	return o.Layer.Layout(viewport, o.Anchor)
}

// overlayOf returns the first overlay produced by children. At most one
// context menu is open at a time, so there is never more than one to find.
func overlayOf(children []Widget, layout Layout) *Overlay {
	for i, child := range children {
		if o := child.Overlay(layout.Child(i)); o != nil {
			return o
		}
	}
	return nil
}
