package widget

import "fmt"

type lengthKind int

const (
	lengthShrink lengthKind = iota
	lengthFill
	lengthFixed
)

// Length is a sizing policy for one axis.
type Length struct {
	kind  lengthKind
	cells int
}

var (
	// Shrink sizes to the content.
	Shrink = Length{kind: lengthShrink}
	// Fill takes all the space the parent offers.
	Fill = Length{kind: lengthFill}
)

// Fixed is an exact number of cells.
func Fixed(cells int) Length {
	return Length{kind: lengthFixed, cells: max(0, cells)}
}

// IsFill reports whether l is Fill.
func (l Length) IsFill() bool { return l.kind == lengthFill }

func (l Length) String() string {
	switch l.kind {
	case lengthFill:
		return "fill"
	case lengthFixed:
		return fmt.Sprintf("%d", l.cells)
	default:
		return "shrink"
	}
}

// Limits bound the size a widget may take during layout.
type Limits struct {
	Min Size
	Max Size
}

// NewLimits returns limits between min and max.
func NewLimits(min, max Size) Limits {
	return Limits{Min: min, Max: max}
}

// Unbounded returns limits from zero to Infinite on both axes.
func Unbounded() Limits {
	return Limits{Max: Size{Width: Infinite, Height: Infinite}}
}

// Width narrows the horizontal limits to a length policy.
func (l Limits) Width(w Length) Limits {
	if w.kind == lengthFixed {
		n := clamp(w.cells, l.Min.Width, l.Max.Width)
		l.Min.Width, l.Max.Width = n, n
	}
	return l
}

// Height narrows the vertical limits to a length policy.
func (l Limits) Height(h Length) Limits {
	if h.kind == lengthFixed {
		n := clamp(h.cells, l.Min.Height, l.Max.Height)
		l.Min.Height, l.Max.Height = n, n
	}
	return l
}

// Loose drops the minimum size.
func (l Limits) Loose() Limits {
	l.Min = Size{}
	return l
}

// Shrink removes padding from both bounds.
func (l Limits) Shrink(p Padding) Limits {
	return Limits{
		Min: Size{Width: max(0, l.Min.Width-p.Horizontal()), Height: max(0, l.Min.Height-p.Vertical())},
		Max: Size{Width: max(0, l.Max.Width-p.Horizontal()), Height: max(0, l.Max.Height-p.Vertical())},
	}
}

// Resolve picks the final size for a widget with the given policies and
// intrinsic content size. Fill against an unbounded axis falls back to the
// intrinsic size.
func (l Limits) Resolve(w, h Length, intrinsic Size) Size {
	return Size{
		Width:  resolveAxis(w, l.Min.Width, l.Max.Width, intrinsic.Width),
		Height: resolveAxis(h, l.Min.Height, l.Max.Height, intrinsic.Height),
	}
}

func resolveAxis(length Length, lo, hi, intrinsic int) int {
	switch length.kind {
	case lengthFill:
		if hi >= Infinite {
			return clamp(intrinsic, lo, hi)
		}
		return hi
	case lengthFixed:
		return clamp(length.cells, lo, hi)
	default:
		return clamp(intrinsic, lo, hi)
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// Node is the result of laying out one widget. Bounds are relative to the
// parent node.
type Node struct {
	bounds   Rect
	children []*Node
}

// NewNode returns a leaf node of the given size at the origin.
func NewNode(size Size) *Node {
	return &Node{bounds: Rect{Size: size}}
}

// NewNodeWithChildren returns a node of the given size owning children.
func NewNodeWithChildren(size Size, children ...*Node) *Node {
	return &Node{bounds: Rect{Size: size}, children: children}
}

// MoveTo sets the node origin relative to its parent.
func (n *Node) MoveTo(p Point) *Node {
	n.bounds.Min = p
	return n
}

// Bounds returns the bounds relative to the parent.
func (n *Node) Bounds() Rect { return n.bounds }

// Size returns the node size.
func (n *Node) Size() Size { return n.bounds.Size }

// Children returns the child nodes.
func (n *Node) Children() []*Node { return n.children }

// Layout is a Node placed in absolute screen coordinates.
type Layout struct {
	node   *Node
	offset Point
}

// NewLayout wraps a root node.
func NewLayout(n *Node) Layout {
	return Layout{node: n}
}

// Bounds returns the absolute bounds.
func (l Layout) Bounds() Rect {
	if l.node == nil {
		return Rect{}
	}
	return l.node.bounds.Translate(l.offset)
}

// Children returns the absolute layouts of the child nodes.
func (l Layout) Children() []Layout {
	if l.node == nil {
		return nil
	}
	origin := l.Bounds().Min
	out := make([]Layout, len(l.node.children))
	for i, c := range l.node.children {
		out[i] = Layout{node: c, offset: origin}
	}
	return out
}

// Child returns the i-th child layout, or an empty Layout when there is none.
func (l Layout) Child(i int) Layout {
	if l.node == nil || i < 0 || i >= len(l.node.children) {
		return Layout{}
	}
	return Layout{node: l.node.children[i], offset: l.Bounds().Min}
}
