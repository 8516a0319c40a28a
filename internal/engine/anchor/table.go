package anchor

import (
	"fmt"
)

// ID identifies an anchor within one Table.
type ID uint32

// Reserved anchors present in every table.
const (
	Cursor ID = iota
	Mark

	reserved = 2
)

// Sizer reports the current length of the text a table indexes.
type Sizer interface {
	Len() ByteOffset
}

type slot struct {
	pos  Position
	live bool
}

// Table is the per-view store of anchors.
//
// A Table must be attached to its text (see text.Text.Attach) to receive
// edits; view.New does this.
type Table struct {
	size  Sizer
	slots []slot
	free  []ID
}

// NewTable creates a table over size with Cursor at 0 and Mark unset.
func NewTable(size Sizer) *Table {
	t := &Table{
		size:  size,
		slots: make([]slot, reserved, 8),
	}
	t.slots[Cursor] = slot{pos: At(0), live: true}
	t.slots[Mark] = slot{pos: Unset, live: true}
	return t
}

// Create allocates an anchor at pos and returns its id. Set positions are
// clamped to [0, Len]. Ids of destroyed anchors are reused.
func (t *Table) Create(pos Position) ID {
	pos = t.clamp(pos)

	if n := len(t.free); n > 0 {
		id := t.free[n-1]
		t.free = t.free[:n-1]
		t.slots[id] = slot{pos: pos, live: true}
		return id
	}

	t.slots = append(t.slots, slot{pos: pos, live: true})
	return ID(len(t.slots) - 1)
}

// Get returns the current position of id.
func (t *Table) Get(id ID) Position {
	return t.slot(id).pos
}

// Set assigns pos to id directly, without any adjustment.
// Set positions are clamped to [0, Len].
func (t *Table) Set(id ID, pos Position) {
	t.slot(id).pos = t.clamp(pos)
}

// Destroy releases id so a later Create may reuse it.
// Destroying Cursor or Mark panics.
func (t *Table) Destroy(id ID) {
	if id < reserved {
		panic(fmt.Sprintf("anchor: cannot destroy reserved anchor %d", id))
	}
	s := t.slot(id)
	*s = slot{}
	t.free = append(t.free, id)
}

// Has reports whether id names a live anchor.
func (t *Table) Has(id ID) bool {
	return int(id) < len(t.slots) && t.slots[id].live
}

// Count returns the number of live anchors, including Cursor and Mark.
func (t *Table) Count() int {
	return len(t.slots) - len(t.free)
}

// TextInserted shifts anchors for an insertion of length bytes at offset.
func (t *Table) TextInserted(offset, length ByteOffset) {
	for i := range t.slots {
		s := &t.slots[i]
		if !s.live || !s.pos.set {
			continue
		}
		s.pos.offset = AdjustForInsertion(s.pos.offset, offset, length)
	}
}

// TextDeleted shifts anchors for a deletion of [offset, offset+length).
func (t *Table) TextDeleted(offset, length ByteOffset) {
	for i := range t.slots {
		s := &t.slots[i]
		if !s.live || !s.pos.set {
			continue
		}
		s.pos.offset = AdjustForDeletion(s.pos.offset, offset, length)
	}
}

func (t *Table) slot(id ID) *slot {
	if !t.Has(id) {
		panic(fmt.Sprintf("anchor: invalid id %d", id))
	}
	return &t.slots[id]
}

func (t *Table) clamp(pos Position) Position {
	if !pos.set {
		return pos
	}
	if pos.offset < 0 {
		return At(0)
	}
	if n := t.size.Len(); pos.offset > n {
		return At(n)
	}
	return pos
}
