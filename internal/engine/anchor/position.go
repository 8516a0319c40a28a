package anchor

import (
	"fmt"

	"github.com/dshills/anchorage/internal/engine/text"
)

// ByteOffset is an alias for text.ByteOffset for convenience.
type ByteOffset = text.ByteOffset

// Position is an anchor value: either a byte offset or unset.
// The zero value is Unset.
type Position struct {
	offset ByteOffset
	set    bool
}

// Unset is the position of an anchor that currently has no offset.
var Unset = Position{}

// At returns a position at offset.
func At(offset ByteOffset) Position {
	return Position{offset: offset, set: true}
}

// Offset returns the offset and whether the position is set.
func (p Position) Offset() (ByteOffset, bool) {
	return p.offset, p.set
}

// OffsetOr returns the offset, or def if the position is unset.
func (p Position) OffsetOr(def ByteOffset) ByteOffset {
	if !p.set {
		return def
	}
	return p.offset
}

// IsSet reports whether the position holds an offset.
func (p Position) IsSet() bool {
	return p.set
}

// String returns a string representation of the position.
func (p Position) String() string {
	if !p.set {
		return "Unset"
	}
	return fmt.Sprintf("At(%d)", p.offset)
}
