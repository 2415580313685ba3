package contextmenu

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/ctxmenu/internal/widget"
)

func TestNewState_StartsClosed(t *testing.T) {
	s := NewState()
	assert.False(t, s.Current().Open())
	assert.Equal(t, Snapshot{}, s.Current())
	assert.Equal(t, "closed", s.Current().String())
}

func TestState_RequestOpen(t *testing.T) {
	a, b := NewID("a"), NewID("b")
	pa, pb := widget.Pt(1, 2), widget.Pt(7, 9)

	tests := []struct {
		name       string
		setup      func(s *State)
		id         ID
		at         widget.Point
		want       Snapshot
		transition Transition
	}{
		{
			name:       "closed_opens",
			setup:      func(*State) {},
			id:         a,
			at:         pa,
			want:       OpenAt(a, pa),
			transition: Opened,
		},
		{
			name:       "same_id_toggles_closed",
			setup:      func(s *State) { s.RequestOpen(a, pa) },
			id:         a,
			at:         pb,
			want:       Snapshot{},
			transition: Closed,
		},
		{
			name:       "other_id_switches",
			setup:      func(s *State) { s.RequestOpen(a, pa) },
			id:         b,
			at:         pb,
			want:       OpenAt(b, pb),
			transition: Switched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			tt.setup(s)
			got := s.RequestOpen(tt.id, tt.at)
			assert.Equal(t, tt.transition, got)
			assert.Equal(t, tt.want, s.Current())
		})
	}
}

func TestState_RequestClose(t *testing.T) {
	s := NewState()
	assert.Equal(t, Unchanged, s.RequestClose())

	s.RequestOpen(NewID("a"), widget.Pt(3, 3))
	assert.Equal(t, Closed, s.RequestClose())
	assert.False(t, s.Current().Open())

	// Closing does not care which menu was open.
	s.RequestOpen(NewID("b"), widget.Pt(4, 4))
	assert.Equal(t, Closed, s.RequestClose())
	assert.Equal(t, Snapshot{}, s.Current())
}

func TestState_RoundTrip(t *testing.T) {
	s := NewState()
	id := NewID("menu")
	p := widget.Pt(12, 5)

	s.RequestOpen(id, p)
	cur := s.Current()
	require.True(t, cur.Open())
	assert.Equal(t, id, cur.ID())
	assert.Equal(t, p, cur.Anchor())

	s.RequestClose()
	assert.False(t, s.Current().Open())
}

func TestState_OpenThenOpenOther_OnlyLatestOwns(t *testing.T) {
	s := NewState()
	a, b := NewID("a"), NewID("b")
	s.RequestOpen(a, widget.Pt(0, 0))
	s.RequestOpen(b, widget.Pt(5, 5))

	cur := s.Current()
	assert.False(t, cur.Owns(a))
	assert.True(t, cur.Owns(b))
	assert.Equal(t, widget.Pt(5, 5), cur.Anchor())
}

func TestState_SnapshotIsACopy(t *testing.T) {
	s := NewState()
	a := NewID("a")
	s.RequestOpen(a, widget.Pt(1, 1))

	snap := s.Current()
	s.RequestClose()

	assert.True(t, snap.Owns(a), "snapshot taken before close still names a")
	assert.False(t, s.Current().Open())
}

func TestState_AtMostOneOwner(t *testing.T) {
	ids := []ID{NewID("a"), NewID("b"), NewID("c"), UniqueID()}
	rng := rand.New(rand.NewSource(42))
	s := NewState()

	for i := 0; i < 500; i++ {
		if rng.Intn(4) == 0 {
			s.RequestClose()
		} else {
			s.RequestOpen(ids[rng.Intn(len(ids))], widget.Pt(rng.Intn(80), rng.Intn(24)))
		}

		owners := 0
		cur := s.Current()
		for _, id := range ids {
			if cur.Owns(id) {
				owners++
			}
		}
		if cur.Open() {
			require.Equal(t, 1, owners, "step %d: %s", i, cur)
		} else {
			require.Equal(t, 0, owners, "step %d", i)
		}
	}
}

func TestTransition_String(t *testing.T) {
	assert.Equal(t, "opened", Opened.String())
	assert.Equal(t, "switched", Switched.String())
	assert.Equal(t, "closed", Closed.String())
	assert.Equal(t, "unchanged", Unchanged.String())
}
