package text

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

type recordingObserver struct {
	events []string
}

func (r *recordingObserver) TextInserted(offset, length ByteOffset) {
	r.events = append(r.events, fmt.Sprintf("ins:%d:%d", offset, length))
}

func (r *recordingObserver) TextDeleted(offset, length ByteOffset) {
	r.events = append(r.events, fmt.Sprintf("del:%d:%d", offset, length))
}

func TestNewTextIsEmpty(t *testing.T) {
	txt := New()
	if txt.Len() != 0 {
		t.Errorf("expected length 0, got %d", txt.Len())
	}
	if _, ok := txt.ByteAt(0); ok {
		t.Error("ByteAt(0) on empty text should report false")
	}
}

func TestByteAt(t *testing.T) {
	txt := FromString("abc")

	tests := []struct {
		offset ByteOffset
		want   byte
		ok     bool
	}{
		{-1, 0, false},
		{0, 'a', true},
		{2, 'c', true},
		{3, 0, false},
	}
	for _, tt := range tests {
		got, ok := txt.ByteAt(tt.offset)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ByteAt(%d) = (%q, %v), want (%q, %v)", tt.offset, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRawWindow(t *testing.T) {
	txt := FromString("0123456789")

	if got := string(txt.Raw(2, 4)); got != "2345" {
		t.Errorf("Raw(2, 4) = %q, want %q", got, "2345")
	}
	if got := string(txt.Raw(8, 8)); got != "89" {
		t.Errorf("Raw near end = %q, want %q", got, "89")
	}
	if got := txt.Raw(10, 8); got != nil {
		t.Errorf("Raw past end = %q, want nil", got)
	}

	// Raw must return a copy.
	w := txt.Raw(0, 1)
	w[0] = 'X'
	if txt.String() != "0123456789" {
		t.Errorf("Raw result aliases storage: %q", txt.String())
	}
}

func TestInsertNotifiesObservers(t *testing.T) {
	txt := FromString("Hello World")
	a, b := &recordingObserver{}, &recordingObserver{}
	txt.Attach(a)
	txt.Attach(b)

	n, err := txt.Insert(5, []byte(","))
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 byte inserted, got %d", n)
	}
	if txt.String() != "Hello, World" {
		t.Errorf("expected 'Hello, World', got %q", txt.String())
	}
	for _, obs := range []*recordingObserver{a, b} {
		if len(obs.events) != 1 || obs.events[0] != "ins:5:1" {
			t.Errorf("observer events = %v, want [ins:5:1]", obs.events)
		}
	}
}

func TestDeleteNotifiesObservers(t *testing.T) {
	txt := FromString("Hello, World!")
	obs := &recordingObserver{}
	txt.Attach(obs)

	if err := txt.Delete(5, 2); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if txt.String() != "HelloWorld!" {
		t.Errorf("expected 'HelloWorld!', got %q", txt.String())
	}
	if len(obs.events) != 1 || obs.events[0] != "del:5:2" {
		t.Errorf("observer events = %v, want [del:5:2]", obs.events)
	}
}

func TestZeroLengthEditsDoNotNotify(t *testing.T) {
	txt := FromString("abc")
	obs := &recordingObserver{}
	txt.Attach(obs)

	if _, err := txt.Insert(1, nil); err != nil {
		t.Fatalf("empty insert failed: %v", err)
	}
	if err := txt.Delete(1, 0); err != nil {
		t.Fatalf("empty delete failed: %v", err)
	}
	if len(obs.events) != 0 {
		t.Errorf("expected no events, got %v", obs.events)
	}
}

func TestMutationErrors(t *testing.T) {
	txt := FromString("Hello")

	if _, err := txt.Insert(100, []byte("X")); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
	if _, err := txt.Insert(-1, []byte("X")); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
	if err := txt.Delete(3, 5); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid, got %v", err)
	}
	if err := txt.Delete(-1, 1); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid, got %v", err)
	}
}

func TestReadOnly(t *testing.T) {
	txt := FromString("locked", WithReadOnly())

	if _, err := txt.Insert(0, []byte("x")); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
	if err := txt.Delete(0, 1); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}
	if txt.String() != "locked" {
		t.Errorf("read-only text changed: %q", txt.String())
	}
}

func TestNormalizedLineEndings(t *testing.T) {
	txt, err := FromReader(strings.NewReader("a\r\nb\rc"), WithNormalizedLineEndings())
	if err != nil {
		t.Fatalf("FromReader failed: %v", err)
	}
	if txt.String() != "a\nb\nc" {
		t.Errorf("expected normalized text, got %q", txt.String())
	}

	n, err := txt.Insert(txt.Len(), []byte("\r\nd"))
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 bytes inserted after normalization, got %d", n)
	}
}

func TestAttachDetach(t *testing.T) {
	txt := New()
	obs := &recordingObserver{}

	txt.Attach(obs)
	txt.Attach(obs)
	if txt.ObserverCount() != 1 {
		t.Errorf("expected 1 observer, got %d", txt.ObserverCount())
	}
	if !txt.Detach(obs) {
		t.Error("Detach should report true for an attached observer")
	}
	if txt.Detach(obs) {
		t.Error("Detach should report false for a detached observer")
	}

	txt.Insert(0, []byte("x"))
	if len(obs.events) != 0 {
		t.Errorf("detached observer received %v", obs.events)
	}
}
