package contextmenu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID_StableAcrossCalls(t *testing.T) {
	assert.Equal(t, NewID("context_menu_1"), NewID("context_menu_1"))
	assert.NotEqual(t, NewID("context_menu_1"), NewID("context_menu_2"))
	assert.Equal(t, "context_menu_1", NewID("context_menu_1").String())
}

func TestUniqueID_NeverRepeats(t *testing.T) {
	seen := make(map[ID]bool)
	for i := 0; i < 1000; i++ {
		id := UniqueID()
		assert.False(t, seen[id], "duplicate unique id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, 1000)
}

func TestUniqueID_DiffersFromNamed(t *testing.T) {
	u := UniqueID()
	// A named ID built from the unique key still lives in another namespace.
	assert.NotEqual(t, u, NewID(u.key))
	assert.NotEqual(t, u, NewID(u.String()))
}

func TestID_MapKey(t *testing.T) {
	m := map[ID]string{
		NewID("a"): "first",
	}
	m[NewID("a")] = "second"
	assert.Len(t, m, 1)
	assert.Equal(t, "second", m[NewID("a")])
}

func TestID_Zero(t *testing.T) {
	var id ID
	assert.True(t, id.IsZero())
	assert.False(t, NewID("").IsZero())
	assert.False(t, UniqueID().IsZero())
	assert.Equal(t, "<unset>", id.String())
}
