package contextmenu

import (
	"github.com/oklog/ulid/v2"
)

type idKind uint8

const (
	idNamed idKind = iota + 1
	idUnique
)

// ID identifies one ContextMenu across render passes. IDs are comparable
// and can be used as map keys.
type ID struct {
	kind idKind
	key  string
}

// NewID returns a stable ID derived from name. The same name always yields
// an equal ID, so two menus must not share a name.
func NewID(name string) ID {
	return ID{kind: idNamed, key: name}
}

// UniqueID returns an ID that is not equal to any other ID, including every
// other UniqueID and every NewID.
func UniqueID() ID {
	return ID{kind: idUnique, key: ulid.Make().String()}
}

// IsZero reports whether id was never assigned.
func (id ID) IsZero() bool {
	return id.kind == 0
}

func (id ID) String() string {
	switch id.kind {
	case idNamed:
		return id.key
	case idUnique:
		return "unique:" + id.key
	default:
		return "<unset>"
	}
}
