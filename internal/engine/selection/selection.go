// Package selection derives the current selection of a view from its cursor
// and mark anchors.
package selection

import (
	"fmt"

	"github.com/dshills/anchorage/internal/engine/anchor"
	"github.com/dshills/anchorage/internal/engine/text"
)

// ByteOffset is an alias for text.ByteOffset for convenience.
type ByteOffset = text.ByteOffset

// Target is the view surface the helpers operate on.
type Target interface {
	Cursor() ByteOffset
	Mark() anchor.Position
	ClearMark()
	Len() ByteOffset
	Bytes(start, end ByteOffset) ([]byte, error)
	Delete(offset, length ByteOffset) error
}

// Span is a selected byte range.
type Span struct {
	Start ByteOffset
	Len   ByteOffset
	// Forward is true when the cursor is at or after the mark, so text
	// typed at the cursor extends the selection.
	Forward bool
}

// End returns the exclusive end of the span.
func (s Span) End() ByteOffset {
	return s.Start + s.Len
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Len == 0
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%d:%d)", s.Start, s.End())
}

// Current returns the selection of t. Without a mark the selection is the
// single byte under the cursor, or empty at the end of the text.
func Current(t Target) Span {
	cursor := t.Cursor()
	mark, ok := t.Mark().Offset()
	if !ok {
		mark = cursor
		if cursor < t.Len() {
			mark++
		}
	}

	if mark <= cursor {
		return Span{Start: mark, Len: cursor - mark, Forward: true}
	}
	return Span{Start: cursor, Len: mark - cursor, Forward: false}
}

// Extract returns a copy of the selected bytes, or nil when the selection
// is empty.
func Extract(t Target) ([]byte, error) {
	span := Current(t)
	if span.IsEmpty() {
		return nil, nil
	}
	return t.Bytes(span.Start, span.End())
}

// Delete removes the selected bytes, clears the mark and returns the number
// of bytes removed.
func Delete(t Target) (ByteOffset, error) {
	span := Current(t)
	if err := t.Delete(span.Start, span.Len); err != nil {
		return 0, fmt.Errorf("deleting selection %s: %w", span, err)
	}
	t.ClearMark()
	return span.Len, nil
}
