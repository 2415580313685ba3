package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Button is a one line label that publishes OnPress when clicked with the
// primary button. A nil OnPress disables it.
type Button struct {
	Label      string
	OnPress    tea.Msg
	Width      Length
	Padding    Padding
	Style      lipgloss.Style
	HoverStyle lipgloss.Style
}

// NewButton returns a button with one cell of horizontal padding.
func NewButton(label string, onPress tea.Msg) *Button {
	return &Button{
		Label:      label,
		OnPress:    onPress,
		Padding:    Padding{Left: 1, Right: 1},
		Style:      lipgloss.NewStyle(),
		HoverStyle: lipgloss.NewStyle().Reverse(true),
	}
}

func (b *Button) Sizing() (Length, Length) { return b.Width, Shrink }

func (b *Button) Layout(limits Limits) *Node {
	intrinsic := Size{
		Width:  lipgloss.Width(b.Label) + b.Padding.Horizontal(),
		Height: 1 + b.Padding.Vertical(),
	}
	return NewNode(limits.Resolve(b.Width, Shrink, intrinsic))
}

func (b *Button) Draw(c *Canvas, layout Layout, cursor Cursor) {
	bounds := layout.Bounds()
	style := b.Style
	if b.OnPress != nil && cursor.IsOver(bounds) {
		style = b.HoverStyle
	}
	c.Fill(bounds, style)
	inner := bounds.Shrink(b.Padding)
	c.Text(inner.Min, b.Label, style, inner)
}

func (b *Button) Update(ev Event, layout Layout, cursor Cursor, shell *Shell) Status {
	me, ok := ev.(MouseEvent)
	if !ok || b.OnPress == nil || !me.Pressed(ButtonLeft) {
		return Ignored
	}
	if !cursor.IsOver(layout.Bounds()) {
		return Ignored
	}
	shell.Publish(b.OnPress)
	return Captured
}

func (b *Button) Interaction(layout Layout, cursor Cursor) Interaction {
	if b.OnPress != nil && cursor.IsOver(layout.Bounds()) {
		return InteractionPointer
	}
	return InteractionIdle
}

func (b *Button) Operate(layout Layout, op Operation) {
	op.Visit("button", layout.Bounds())
}

func (b *Button) Overlay(Layout) *Overlay { return nil }
