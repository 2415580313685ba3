package widget

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Event is an input event routed through the widget tree.
type Event interface {
	isEvent()
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonWheel
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonWheel:
		return "wheel"
	default:
		return "none"
	}
}

// MouseAction is what happened to the button.
type MouseAction int

const (
	ActionMotion MouseAction = iota
	ActionPress
	ActionRelease
)

// MouseEvent is a pointer event. The position travels separately in the
// Cursor passed alongside it.
type MouseEvent struct {
	Action MouseAction
	Button MouseButton
}

func (MouseEvent) isEvent() {}

// Pressed reports whether e is a press of one of the given buttons.
func (e MouseEvent) Pressed(buttons ...MouseButton) bool {
	if e.Action != ActionPress {
		return false
	}
	for _, b := range buttons {
		if e.Button == b {
			return true
		}
	}
	return false
}

// KeyEvent is a key press, named the way bubbletea names keys.
type KeyEvent struct {
	Key string
}

func (KeyEvent) isEvent() {}

// Status reports whether a widget consumed an event.
type Status int

const (
	// Ignored lets the event continue to other widgets.
	Ignored Status = iota
	// Captured stops further propagation.
	Captured
)

// Merge returns Captured if either status is Captured.
func (s Status) Merge(other Status) Status {
	if s == Captured || other == Captured {
		return Captured
	}
	return Ignored
}

func (s Status) String() string {
	if s == Captured {
		return "captured"
	}
	return "ignored"
}

// Cursor is the pointer position, if one is known.
type Cursor struct {
	position  Point
	available bool
}

// CursorAt returns a cursor at p.
func CursorAt(p Point) Cursor {
	return Cursor{position: p, available: true}
}

// CursorUnavailable is a cursor without a position. It is never over
// anything.
var CursorUnavailable = Cursor{}

// Position returns the cursor position and whether it is known.
func (c Cursor) Position() (Point, bool) {
	return c.position, c.available
}

// IsOver reports whether the cursor lies inside r.
func (c Cursor) IsOver(r Rect) bool {
	return c.available && r.Contains(c.position)
}

// FromMouseMsg converts a bubbletea mouse message into an event and cursor.
func FromMouseMsg(msg tea.MouseMsg) (MouseEvent, Cursor) {
	ev := MouseEvent{}
	switch msg.Action {
	case tea.MouseActionPress:
		ev.Action = ActionPress
	case tea.MouseActionRelease:
		ev.Action = ActionRelease
	default:
		ev.Action = ActionMotion
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = ButtonLeft
	case tea.MouseButtonMiddle:
		ev.Button = ButtonMiddle
	case tea.MouseButtonRight:
		ev.Button = ButtonRight
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		ev.Button = ButtonWheel
	default:
		ev.Button = ButtonNone
	}

	return ev, CursorAt(Pt(msg.X, msg.Y))
}
