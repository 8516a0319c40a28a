// Package view binds an anchor table to a shared text.
//
// A View is one window onto a text. Several views may share a text (split
// windows); each owns its own anchors, including the reserved cursor and mark.
package view

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/anchorage/internal/engine/anchor"
	"github.com/dshills/anchorage/internal/engine/text"
)

// ByteOffset is an alias for text.ByteOffset for convenience.
type ByteOffset = text.ByteOffset

// View is a cursor and selection context onto a Text.
type View struct {
	id      uuid.UUID
	text    *text.Text
	anchors *anchor.Table
	onClose []func(*View)
	closed  bool
}

// New creates a view on t with the cursor at 0 and no mark, and attaches
// its anchor table to t.
func New(t *text.Text) *View {
	v := &View{
		id:      uuid.New(),
		text:    t,
		anchors: anchor.NewTable(t),
	}
	t.Attach(v.anchors)
	return v
}

// ID returns the unique identity of the view.
func (v *View) ID() uuid.UUID {
	return v.id
}

// Text returns the text the view edits.
func (v *View) Text() *text.Text {
	return v.text
}

// Anchors returns the view's anchor table.
func (v *View) Anchors() *anchor.Table {
	return v.anchors
}

// String returns a short description for logs.
func (v *View) String() string {
	name := v.text.Name()
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("View(%s %s)", v.id.String()[:8], name)
}

// Cursor and Mark

// Cursor returns the cursor offset.
func (v *View) Cursor() ByteOffset {
	return v.anchors.Get(anchor.Cursor).OffsetOr(0)
}

// SetCursor moves the cursor, clamped to the text.
func (v *View) SetCursor(offset ByteOffset) {
	v.anchors.Set(anchor.Cursor, anchor.At(offset))
}

// Mark returns the selection end, which is Unset when there is no selection.
func (v *View) Mark() anchor.Position {
	return v.anchors.Get(anchor.Mark)
}

// SetMark sets the selection end, clamped to the text.
func (v *View) SetMark(offset ByteOffset) {
	v.anchors.Set(anchor.Mark, anchor.At(offset))
}

// ClearMark removes the selection end.
func (v *View) ClearMark() {
	v.anchors.Set(anchor.Mark, anchor.Unset)
}

// Byte Access

// Len returns the length of the text in bytes.
func (v *View) Len() ByteOffset {
	return v.text.Len()
}

// ByteAt returns the byte at offset, or false past either end.
func (v *View) ByteAt(offset ByteOffset) (byte, bool) {
	return v.text.ByteAt(offset)
}

// Raw returns up to max bytes starting at offset.
func (v *View) Raw(offset ByteOffset, max int) []byte {
	return v.text.Raw(offset, max)
}

// Bytes returns a copy of [start, end).
func (v *View) Bytes(start, end ByteOffset) ([]byte, error) {
	return v.text.Bytes(start, end)
}

// Mutation

// Insert inserts p at offset. Anchors of every view sharing the text are
// adjusted before Insert returns.
func (v *View) Insert(offset ByteOffset, p []byte) (ByteOffset, error) {
	if v.closed {
		return 0, ErrClosed
	}
	return v.text.Insert(offset, p)
}

// Delete removes length bytes at offset. Anchors of every view sharing the
// text are adjusted before Delete returns.
func (v *View) Delete(offset, length ByteOffset) error {
	if v.closed {
		return ErrClosed
	}
	return v.text.Delete(offset, length)
}

// Lifecycle

// OnClose registers fn to run when the view closes, before it detaches from
// its text. Hooks run in registration order.
func (v *View) OnClose(fn func(*View)) {
	v.onClose = append(v.onClose, fn)
}

// Close runs the close hooks and detaches the view from its text. It reports
// whether other views still share the text. Closing twice is a no-op.
func (v *View) Close() (shared bool) {
	if v.closed {
		return v.text.ObserverCount() > 0
	}
	for _, fn := range v.onClose {
		fn(v)
	}
	v.onClose = nil
	v.text.Detach(v.anchors)
	v.closed = true
	return v.text.ObserverCount() > 0
}

// Closed reports whether Close has been called.
func (v *View) Closed() bool {
	return v.closed
}
