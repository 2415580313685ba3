package contextmenu

import (
	"fmt"

	"github.com/jmylchreest/ctxmenu/internal/widget"
)

// Snapshot is a read-only copy of the activation record. The zero value
// means no menu is open.
type Snapshot struct {
	id     ID
	anchor widget.Point
	open   bool
}

// OpenAt returns a snapshot of id open at anchor.
func OpenAt(id ID, anchor widget.Point) Snapshot {
	return Snapshot{id: id, anchor: anchor, open: true}
}

// Open reports whether a menu is open.
func (s Snapshot) Open() bool { return s.open }

// ID returns the open menu, or the zero ID when closed.
func (s Snapshot) ID() ID { return s.id }

// Anchor returns where the open menu is anchored.
func (s Snapshot) Anchor() widget.Point { return s.anchor }

// Owns reports whether the menu identified by id is the open one.
func (s Snapshot) Owns(id ID) bool {
	return s.open && s.id == id
}

func (s Snapshot) String() string {
	if !s.open {
		return "closed"
	}
	return fmt.Sprintf("open(%s at %s)", s.id, s.anchor)
}

// Transition describes what a request did to the State.
type Transition int

const (
	// Unchanged means the request left the state as it was.
	Unchanged Transition = iota
	// Opened means a menu opened from the closed state.
	Opened
	// Switched means a different menu replaced the open one.
	Switched
	// Closed means the open menu closed.
	Closed
)

func (t Transition) String() string {
	switch t {
	case Opened:
		return "opened"
	case Switched:
		return "switched"
	case Closed:
		return "closed"
	default:
		return "unchanged"
	}
}

// State owns the activation record shared by every ContextMenu in a view.
// At most one menu is open at a time. It is mutated only through
// RequestOpen and RequestClose and is not safe for concurrent use.
type State struct {
	current Snapshot
}

// NewState returns a State with no menu open.
func NewState() *State {
	return &State{}
}

// RequestOpen opens id at p. Requesting the menu that is already open
// closes it; requesting another menu switches to it.
func (s *State) RequestOpen(id ID, p widget.Point) Transition {
	switch {
	case !s.current.open:
		s.current = OpenAt(id, p)
		return Opened
	case s.current.id == id:
		s.current = Snapshot{}
		return Closed
	default:
		s.current = OpenAt(id, p)
		return Switched
	}
}

// RequestClose closes whichever menu is open.
func (s *State) RequestClose() Transition {
	if !s.current.open {
		return Unchanged
	}
	s.current = Snapshot{}
	return Closed
}

// Current returns the activation record for this render pass.
func (s *State) Current() Snapshot {
	return s.current
}
