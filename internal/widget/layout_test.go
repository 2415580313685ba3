package widget

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimits_Resolve(t *testing.T) {
	limits := NewLimits(Sz(2, 1), Sz(40, 10))
	intrinsic := Sz(12, 3)

	tests := []struct {
		name string
		w, h Length
		want Size
	}{
		{"shrink", Shrink, Shrink, Sz(12, 3)},
		{"fill", Fill, Fill, Sz(40, 10)},
		{"fixed", Fixed(20), Fixed(4), Sz(20, 4)},
		{"fixed_clamped", Fixed(100), Fixed(0), Sz(40, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, limits.Resolve(tt.w, tt.h, intrinsic))
		})
	}
}

func TestLimits_FillUnboundedFallsBackToIntrinsic(t *testing.T) {
	assert.Equal(t, Sz(7, 2), Unbounded().Resolve(Fill, Fill, Sz(7, 2)))
}

func TestLimits_WidthHeightShrink(t *testing.T) {
	l := NewLimits(Size{}, Sz(80, 24)).Width(Fixed(30)).Height(Fixed(5))
	assert.Equal(t, Sz(30, 5), l.Min)
	assert.Equal(t, Sz(30, 5), l.Max)

	inner := l.Shrink(Padding{Top: 1, Right: 2, Bottom: 1, Left: 2})
	assert.Equal(t, Sz(26, 3), inner.Max)
	assert.Equal(t, Size{}, inner.Loose().Min)
}

func TestLayout_AbsoluteChildren(t *testing.T) {
	child := NewNode(Sz(3, 1)).MoveTo(Pt(2, 1))
	root := NewNodeWithChildren(Sz(10, 4), child).MoveTo(Pt(5, 5))

	l := NewLayout(root)
	assert.Equal(t, R(5, 5, 10, 4), l.Bounds())
	require.Len(t, l.Children(), 1)
	assert.Equal(t, R(7, 6, 3, 1), l.Child(0).Bounds())
	assert.Equal(t, Rect{}, l.Child(3).Bounds())
}

func TestColumn_StacksAndStretchesFillChildren(t *testing.T) {
	short := NewButton("Go", nil)
	short.Width = Fill
	col := NewColumn(NewText("a longer label"), short)
	col.Spacing = 1

	node := col.Layout(NewLimits(Size{}, Sz(80, 24)))
	l := NewLayout(node)

	assert.Equal(t, Sz(14, 3), node.Size())
	assert.Equal(t, R(0, 0, 14, 1), l.Child(0).Bounds())
	assert.Equal(t, R(0, 2, 14, 1), l.Child(1).Bounds())
}

func TestColumn_FixedWidth(t *testing.T) {
	foo := NewButton("Foo", "foo")
	foo.Width = Fill
	col := NewColumn(foo)
	col.Width = Fixed(16)

	node := col.Layout(Unbounded())
	assert.Equal(t, Sz(16, 1), node.Size())
	assert.Equal(t, 16, NewLayout(node).Child(0).Bounds().Size.Width)
}

func TestContainer_PaddingAndBorder(t *testing.T) {
	border := lipgloss.NormalBorder()
	c := NewContainer(NewText("hi"))
	c.Padding = Pad(1)
	c.Border = &border

	node := c.Layout(Unbounded())
	l := NewLayout(node)
	assert.Equal(t, Sz(6, 5), node.Size())
	assert.Equal(t, R(2, 2, 2, 1), l.Child(0).Bounds())

	cv := NewCanvas(Sz(6, 5))
	c.Draw(cv, l, CursorUnavailable)
	assert.Equal(t, "┌────┐", cv.Line(0))
	assert.Equal(t, "│ hi │", cv.Line(2))
	assert.Equal(t, "└────┘", cv.Line(4))
}
