package widget

import "fmt"

// Infinite stands in for an unbounded dimension. It is large enough that no
// terminal gets near it and small enough that adding two never overflows.
const Infinite = 1 << 28

// Point is a cell position, column X and row Y, zero based.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a width and height in cells.
type Size struct {
	Width  int
	Height int
}

// Sz is shorthand for Size{w, h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Rect is an axis aligned box. Min is inclusive.
type Rect struct {
	Min  Point
	Size Size
}

// R builds a Rect from its origin and size.
func R(x, y, w, h int) Rect {
	return Rect{Min: Pt(x, y), Size: Sz(w, h)}
}

// Max returns the exclusive bottom-right corner.
func (r Rect) Max() Point {
	return Point{X: r.Min.X + r.Size.Width, Y: r.Min.Y + r.Size.Height}
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	end := r.Max()
	return p.X >= r.Min.X && p.X < end.X && p.Y >= r.Min.Y && p.Y < end.Y
}

// Intersect returns the overlap of r and s, or the zero Rect.
func (r Rect) Intersect(s Rect) Rect {
	rmax, smax := r.Max(), s.Max()
	lo := Point{X: max(r.Min.X, s.Min.X), Y: max(r.Min.Y, s.Min.Y)}
	hi := Point{X: min(rmax.X, smax.X), Y: min(rmax.Y, smax.Y)}
	if hi.X <= lo.X || hi.Y <= lo.Y {
		return Rect{}
	}
	return Rect{Min: lo, Size: Size{Width: hi.X - lo.X, Height: hi.Y - lo.Y}}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{Min: r.Min.Add(d), Size: r.Size}
}

// Shrink returns r inset by the given padding on every side.
func (r Rect) Shrink(p Padding) Rect {
	return Rect{
		Min: Point{X: r.Min.X + p.Left, Y: r.Min.Y + p.Top},
		Size: Size{
			Width:  max(0, r.Size.Width-p.Horizontal()),
			Height: max(0, r.Size.Height-p.Vertical()),
		},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%v+%dx%d", r.Min, r.Size.Width, r.Size.Height)
}

// Padding is the space reserved inside a box edge.
type Padding struct {
	Top, Right, Bottom, Left int
}

// Pad returns uniform padding.
func Pad(n int) Padding {
	return Padding{Top: n, Right: n, Bottom: n, Left: n}
}

// Horizontal returns the combined left and right padding.
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Vertical returns the combined top and bottom padding.
func (p Padding) Vertical() int { return p.Top + p.Bottom }
