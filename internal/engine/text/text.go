package text

import (
	"bytes"
	"errors"
	"io"
	"slices"
)

// ByteOffset is a byte position in a Text.
type ByteOffset = int64

// Errors returned by text mutations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
	ErrReadOnly         = errors.New("text is read-only")
)

// Observer is notified after every mutation of a Text it is attached to.
// Offsets and lengths describe the edit in the coordinates of the text as it
// was before the edit.
type Observer interface {
	TextInserted(offset, length ByteOffset)
	TextDeleted(offset, length ByteOffset)
}

// Text is a mutable byte sequence shared by one or more views.
type Text struct {
	data      []byte
	observers []Observer
	name      string
	readOnly  bool
	normalize bool
}

// New creates an empty text.
func New(opts ...Option) *Text {
	t := &Text{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// FromBytes creates a text holding a copy of p.
func FromBytes(p []byte, opts ...Option) *Text {
	t := New(opts...)
	t.data = t.prepare(p)
	return t
}

// FromString creates a text holding s.
func FromString(s string, opts ...Option) *Text {
	return FromBytes([]byte(s), opts...)
}

// FromReader creates a text from everything r yields.
func FromReader(r io.Reader, opts ...Option) (*Text, error) {
	// Read everything first so CRLF pairs split across reads normalize correctly.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	t := New(opts...)
	t.data = t.prepare(data)
	return t, nil
}

// prepare copies p, normalizing line endings if configured.
func (t *Text) prepare(p []byte) []byte {
	if !t.normalize {
		return slices.Clone(p)
	}
	out := bytes.ReplaceAll(p, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(out, []byte("\r"), []byte("\n"))
}

// Name returns the display name of the text.
func (t *Text) Name() string {
	return t.name
}

// ReadOnly reports whether mutations are rejected.
func (t *Text) ReadOnly() bool {
	return t.readOnly
}

// Read Operations

// Len returns the length of the text in bytes.
func (t *Text) Len() ByteOffset {
	return ByteOffset(len(t.data))
}

// ByteAt returns the byte at offset. The second result is false past
// either end of the text.
func (t *Text) ByteAt(offset ByteOffset) (byte, bool) {
	if offset < 0 || offset >= ByteOffset(len(t.data)) {
		return 0, false
	}
	return t.data[offset], true
}

// Raw returns a copy of up to max bytes starting at offset. Fewer bytes are
// returned near the end of the text, and none when offset is out of range.
func (t *Text) Raw(offset ByteOffset, max int) []byte {
	n := ByteOffset(len(t.data))
	if offset < 0 || offset >= n || max <= 0 {
		return nil
	}
	end := offset + ByteOffset(max)
	if end > n {
		end = n
	}
	return slices.Clone(t.data[offset:end])
}

// Bytes returns a copy of the bytes in [start, end).
func (t *Text) Bytes(start, end ByteOffset) ([]byte, error) {
	if start < 0 || start > end || end > ByteOffset(len(t.data)) {
		return nil, ErrRangeInvalid
	}
	return slices.Clone(t.data[start:end]), nil
}

// String returns the full contents of the text.
func (t *Text) String() string {
	return string(t.data)
}

// WriteTo writes the full contents of the text to w.
func (t *Text) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.data)
	return int64(n), err
}

// Write Operations

// Insert inserts p at offset and returns the number of bytes inserted.
// Attached observers see the insertion before Insert returns.
func (t *Text) Insert(offset ByteOffset, p []byte) (ByteOffset, error) {
	if t.readOnly {
		return 0, ErrReadOnly
	}
	if offset < 0 || offset > ByteOffset(len(t.data)) {
		return 0, ErrOffsetOutOfRange
	}
	if t.normalize {
		p = t.prepare(p)
	}
	if len(p) == 0 {
		return 0, nil
	}

	t.data = slices.Insert(t.data, int(offset), p...)

	length := ByteOffset(len(p))
	for _, obs := range t.observers {
		obs.TextInserted(offset, length)
	}
	return length, nil
}

// Delete removes length bytes starting at offset.
// Attached observers see the deletion before Delete returns.
func (t *Text) Delete(offset, length ByteOffset) error {
	if t.readOnly {
		return ErrReadOnly
	}
	if offset < 0 || length < 0 || offset+length > ByteOffset(len(t.data)) {
		return ErrRangeInvalid
	}
	if length == 0 {
		return nil
	}

	t.data = slices.Delete(t.data, int(offset), int(offset+length))

	for _, obs := range t.observers {
		obs.TextDeleted(offset, length)
	}
	return nil
}

// Observers

// Attach registers obs for mutation notifications. Attaching the same
// observer twice has no effect.
func (t *Text) Attach(obs Observer) {
	if slices.Contains(t.observers, obs) {
		return
	}
	t.observers = append(t.observers, obs)
}

// Detach removes obs. It reports whether obs was attached.
func (t *Text) Detach(obs Observer) bool {
	i := slices.Index(t.observers, obs)
	if i < 0 {
		return false
	}
	t.observers = slices.Delete(t.observers, i, i+1)
	return true
}

// ObserverCount returns the number of attached observers.
func (t *Text) ObserverCount() int {
	return len(t.observers)
}
