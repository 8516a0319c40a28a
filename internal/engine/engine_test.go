package engine

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dshills/anchorage/internal/engine/anchor"
	"github.com/dshills/anchorage/internal/engine/text"
)

type captureLogger struct {
	lines []string
}

func (c *captureLogger) Debug(msg string, args ...any) {
	c.lines = append(c.lines, fmt.Sprintf(msg, args...))
}

func TestOpenAndClose(t *testing.T) {
	s := New()
	v, err := s.Open("a.txt", []byte("hello"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if v.Text().String() != "hello" || v.Text().Name() != "a.txt" {
		t.Errorf("unexpected text %q named %q", v.Text().String(), v.Text().Name())
	}
	if s.TextCount() != 1 || len(s.Views()) != 1 {
		t.Errorf("expected 1 text and 1 view, got %d and %d", s.TextCount(), len(s.Views()))
	}

	s.Close()
	if !v.Closed() {
		t.Error("Close should close every view")
	}
	if _, err := s.Open("b.txt", nil); !errors.Is(err, ErrSessionClosed) {
		t.Errorf("expected ErrSessionClosed, got %v", err)
	}
}

func TestOpenReader(t *testing.T) {
	s := New(WithTextOptions(text.WithNormalizedLineEndings()))
	v, err := s.OpenReader("crlf.txt", strings.NewReader("a\r\nb"))
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	if got := v.Text().String(); got != "a\nb" {
		t.Errorf("text = %q, want normalized %q", got, "a\nb")
	}
}

func TestSplitSharesText(t *testing.T) {
	s := New()
	v, _ := s.Open("shared", []byte("abcdef"))
	v.SetCursor(3)
	v.SetMark(5)

	w, err := s.Split(v)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if w.Text() != v.Text() {
		t.Fatal("split view should share the text")
	}
	if w.Cursor() != 3 || w.Mark() != anchor.At(5) {
		t.Errorf("split view cursor=%d mark=%v, want 3 and At(5)", w.Cursor(), w.Mark())
	}

	w.Insert(0, []byte("__"))
	if v.Cursor() != 5 || w.Cursor() != 5 {
		t.Errorf("cursors = %d, %d; want 5, 5", v.Cursor(), w.Cursor())
	}

	if err := s.CloseView(w); err != nil {
		t.Fatalf("CloseView failed: %v", err)
	}
	if s.TextCount() != 1 {
		t.Errorf("text dropped while still shared")
	}
	if err := s.CloseView(v); err != nil {
		t.Fatalf("CloseView failed: %v", err)
	}
	if s.TextCount() != 0 {
		t.Errorf("text should be dropped with its last view, count = %d", s.TextCount())
	}
}

func TestCloseViewPurgesBookmarks(t *testing.T) {
	s := New()
	v, _ := s.Open("one", []byte("first text"))
	w, _ := s.Open("two", []byte("second text"))

	v.SetCursor(2)
	s.SetBookmark(1, v)
	s.SetBookmark(2, w)
	s.SetBookmark(3, v)

	if err := s.CloseView(v); err != nil {
		t.Fatalf("CloseView failed: %v", err)
	}
	for _, id := range s.Bookmarks().IDs() {
		bm, _ := s.Bookmarks().Get(id)
		if bm.View == v {
			t.Errorf("bookmark %d still references a closed view", id)
		}
	}
	if s.Bookmarks().Len() != 1 {
		t.Errorf("expected 1 bookmark left, got %d", s.Bookmarks().Len())
	}
	if _, err := s.JumpBookmark(1); !errors.Is(err, ErrBookmarkNotFound) {
		t.Errorf("expected ErrBookmarkNotFound, got %v", err)
	}
}

func TestJumpBookmarkRestoresCursorAndMark(t *testing.T) {
	s := New()
	v, _ := s.Open("doc", []byte("0123456789"))
	v.SetCursor(4)
	v.SetMark(6)
	if err := s.SetBookmark(7, v); err != nil {
		t.Fatalf("SetBookmark failed: %v", err)
	}

	v.SetCursor(0)
	v.ClearMark()
	v.Insert(0, []byte("ab"))

	got, err := s.JumpBookmark(7)
	if err != nil {
		t.Fatalf("JumpBookmark failed: %v", err)
	}
	if got != v {
		t.Error("JumpBookmark returned the wrong view")
	}
	if v.Cursor() != 6 || v.Mark() != anchor.At(8) {
		t.Errorf("cursor=%d mark=%v, want 6 and At(8)", v.Cursor(), v.Mark())
	}
}

func TestViewChecks(t *testing.T) {
	s := New()
	other := New()
	foreign, _ := other.Open("x", nil)

	if _, err := s.Split(foreign); !errors.Is(err, ErrViewNotFound) {
		t.Errorf("expected ErrViewNotFound, got %v", err)
	}
	if err := s.CloseView(nil); !errors.Is(err, ErrViewNotFound) {
		t.Errorf("expected ErrViewNotFound for nil, got %v", err)
	}

	v, _ := s.Open("y", nil)
	s.CloseView(v)
	if err := s.SetBookmark(1, v); !errors.Is(err, ErrViewClosed) {
		t.Errorf("expected ErrViewClosed, got %v", err)
	}
}

func TestEraseAndPrintf(t *testing.T) {
	s := New()
	v, _ := s.Open("log", []byte("old"))
	v.SetCursor(2)

	if err := s.Erase(v); err != nil {
		t.Fatalf("Erase failed: %v", err)
	}
	if v.Len() != 0 || v.Cursor() != 0 {
		t.Errorf("after Erase len=%d cursor=%d", v.Len(), v.Cursor())
	}

	n, err := s.Printf(v, "%s=%d\n", "answer", 42)
	if err != nil {
		t.Fatalf("Printf failed: %v", err)
	}
	if n != 10 || v.Text().String() != "answer=42\n" {
		t.Errorf("Printf wrote %d bytes: %q", n, v.Text().String())
	}
}

func TestSessionLogsLifecycle(t *testing.T) {
	log := &captureLogger{}
	s := New(WithLogger(log))
	v, _ := s.Open("logged", []byte("x"))
	s.CloseView(v)

	joined := strings.Join(log.lines, "\n")
	for _, want := range []string{`text "logged" opened`, "closed", `text "logged" dropped`} {
		if !strings.Contains(joined, want) {
			t.Errorf("log missing %q:\n%s", want, joined)
		}
	}
}

func TestDirectViewCloseLeavesSession(t *testing.T) {
	s := New()
	v, _ := s.Open("direct", []byte("abc"))
	w, _ := s.Split(v)
	s.SetBookmark(1, v)

	v.Close()
	if views := s.Views(); len(views) != 1 || views[0] != w {
		t.Errorf("Views() = %v, want only the split view", views)
	}
	if s.TextCount() != 1 {
		t.Errorf("shared text dropped early, count = %d", s.TextCount())
	}
	if s.Bookmarks().Len() != 0 {
		t.Errorf("bookmark on the closed view survived")
	}
	if err := s.SetBookmark(2, v); !errors.Is(err, ErrViewClosed) {
		t.Errorf("SetBookmark on closed view = %v, want ErrViewClosed", err)
	}
	if _, err := s.Split(v); !errors.Is(err, ErrViewClosed) {
		t.Errorf("Split of closed view = %v, want ErrViewClosed", err)
	}

	w.Close()
	if len(s.Views()) != 0 || s.TextCount() != 0 {
		t.Errorf("views = %d texts = %d after closing both", len(s.Views()), s.TextCount())
	}
	s.Close()
}
