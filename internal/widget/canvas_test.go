package widget

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestCanvas_TextClipsToRect(t *testing.T) {
	c := NewCanvas(Sz(10, 2))
	n := c.Text(Pt(2, 0), "hello world", lipgloss.NewStyle(), R(0, 0, 6, 2))

	assert.Equal(t, 4, n)
	assert.Equal(t, "  hell", c.Line(0))
	assert.Equal(t, "", c.Line(1))
}

func TestCanvas_WideRunes(t *testing.T) {
	c := NewCanvas(Sz(6, 1))
	c.Text(Pt(0, 0), "日本", lipgloss.NewStyle(), c.Bounds())
	assert.Equal(t, "日本", c.Line(0))

	// Overwriting the trailing half of a wide rune blanks its leading half.
	c.Text(Pt(1, 0), "x", lipgloss.NewStyle(), c.Bounds())
	assert.Equal(t, " x本", c.Line(0))
}

func TestCanvas_FillOverwrites(t *testing.T) {
	c := NewCanvas(Sz(5, 1))
	c.Text(Pt(0, 0), "abcde", lipgloss.NewStyle(), c.Bounds())
	c.Fill(R(1, 0, 2, 1), lipgloss.NewStyle())
	assert.Equal(t, "a  de", c.Line(0))
}

func TestCanvas_RenderRowsAndPlain(t *testing.T) {
	c := NewCanvas(Sz(3, 2))
	c.Text(Pt(0, 1), "ok", lipgloss.NewStyle().Bold(true), c.Bounds())

	assert.Equal(t, "   \nok ", c.Plain())
	out := c.Render()
	assert.Len(t, strings.Split(out, "\n"), 2)
	assert.Contains(t, out, "ok")
}

func TestCanvas_OutOfBoundsIsIgnored(t *testing.T) {
	c := NewCanvas(Sz(2, 2))
	c.Fill(R(-5, -5, 3, 3), lipgloss.NewStyle())
	c.Text(Pt(10, 10), "x", lipgloss.NewStyle(), R(0, 0, 100, 100))
	assert.Equal(t, "  \n  ", c.Plain())
}
