package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell is one terminal cell. A zero rune marks the trailing half of a wide
// rune drawn in the cell to its left.
type cell struct {
	r     rune
	style int
}

// Canvas is a grid of styled cells that renders to a string.
type Canvas struct {
	size    Size
	cells   []cell
	palette []lipgloss.Style
}

// NewCanvas returns a blank canvas.
func NewCanvas(size Size) *Canvas {
	size.Width = max(0, size.Width)
	size.Height = max(0, size.Height)
	c := &Canvas{
		size:    size,
		cells:   make([]cell, size.Width*size.Height),
		palette: []lipgloss.Style{lipgloss.NewStyle()},
	}
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

// Size returns the canvas size.
func (c *Canvas) Size() Size { return c.size }

// Bounds returns the canvas as a Rect at the origin.
func (c *Canvas) Bounds() Rect { return Rect{Size: c.size} }

func (c *Canvas) styleIndex(s lipgloss.Style) int {
	c.palette = append(c.palette, s)
	return len(c.palette) - 1
}

func (c *Canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.size.Width || y >= c.size.Height {
		return nil
	}
	return &c.cells[y*c.size.Width+x]
}

func (c *Canvas) set(x, y int, r rune, style int) {
	cur := c.at(x, y)
	if cur == nil {
		return
	}
	if cur.r == 0 {
		if left := c.at(x-1, y); left != nil {
			left.r = ' '
		}
	} else if runewidth.RuneWidth(cur.r) == 2 {
		if right := c.at(x+1, y); right != nil && right.r == 0 {
			right.r = ' '
		}
	}
	*cur = cell{r: r, style: style}
}

// Fill paints r with blanks in style.
func (c *Canvas) Fill(r Rect, style lipgloss.Style) {
	r = r.Intersect(c.Bounds())
	if r.Empty() {
		return
	}
	idx := c.styleIndex(style)
	for y := r.Min.Y; y < r.Max().Y; y++ {
		for x := r.Min.X; x < r.Max().X; x++ {
			c.set(x, y, ' ', idx)
		}
	}
}

// Text writes a single line of text starting at p, clipped to clip and the
// canvas. It returns the number of columns written.
func (c *Canvas) Text(p Point, s string, style lipgloss.Style, clip Rect) int {
	clip = clip.Intersect(c.Bounds())
	if clip.Empty() {
		return 0
	}
	idx := c.styleIndex(style)
	x := p.X
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > clip.Max().X {
			break
		}
		if x >= clip.Min.X && clip.Contains(Pt(x, p.Y)) {
			c.set(x, p.Y, r, idx)
			if w == 2 {
				c.set(x+1, p.Y, 0, idx)
			}
		}
		x += w
	}
	return x - p.X
}

// Border draws the edge runes of b around r.
func (c *Canvas) Border(r Rect, b lipgloss.Border, style lipgloss.Style) {
	if r.Size.Width < 2 || r.Size.Height < 2 {
		return
	}
	idx := c.styleIndex(style)
	end := r.Max()
	top, bottom := firstRune(b.Top, '-'), firstRune(b.Bottom, '-')
	left, right := firstRune(b.Left, '|'), firstRune(b.Right, '|')
	for x := r.Min.X + 1; x < end.X-1; x++ {
		c.set(x, r.Min.Y, top, idx)
		c.set(x, end.Y-1, bottom, idx)
	}
	for y := r.Min.Y + 1; y < end.Y-1; y++ {
		c.set(r.Min.X, y, left, idx)
		c.set(end.X-1, y, right, idx)
	}
	c.set(r.Min.X, r.Min.Y, firstRune(b.TopLeft, '+'), idx)
	c.set(end.X-1, r.Min.Y, firstRune(b.TopRight, '+'), idx)
	c.set(r.Min.X, end.Y-1, firstRune(b.BottomLeft, '+'), idx)
	c.set(end.X-1, end.Y-1, firstRune(b.BottomRight, '+'), idx)
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// Render returns the canvas as lines of styled text, one per row.
func (c *Canvas) Render() string {
	var sb strings.Builder
	var run strings.Builder
	for y := 0; y < c.size.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		current := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current == 0 {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(c.palette[current].Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.size.Width; x++ {
			cl := c.cells[y*c.size.Width+x]
			if cl.r == 0 {
				continue
			}
			if cl.style != current {
				flush()
				current = cl.style
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return sb.String()
}

// Plain returns the canvas runes without styling. Tests use it to assert on
// what ended up where.
func (c *Canvas) Plain() string {
	var sb strings.Builder
	for y := 0; y < c.size.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.size.Width; x++ {
			if r := c.cells[y*c.size.Width+x].r; r != 0 {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}

// Line returns row y without styling, trailing blanks trimmed.
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= c.size.Height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < c.size.Width; x++ {
		if r := c.cells[y*c.size.Width+x].r; r != 0 {
			sb.WriteRune(r)
		}
	}
	return strings.TrimRight(sb.String(), " ")
}
