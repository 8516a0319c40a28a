package engine

import (
	"fmt"
	"io"
	"slices"

	"github.com/dshills/anchorage/internal/engine/anchor"
	"github.com/dshills/anchorage/internal/engine/bookmark"
	"github.com/dshills/anchorage/internal/engine/text"
	"github.com/dshills/anchorage/internal/engine/view"
)

// Re-export commonly used types for convenience.
type (
	// ByteOffset is a byte position in a text.
	ByteOffset = text.ByteOffset

	// Position is an anchor value that may be unset.
	Position = anchor.Position

	// BookmarkID is a user-visible bookmark number.
	BookmarkID = bookmark.ID
)

// Session owns the texts, views and bookmark registry of one editor run.
type Session struct {
	views     []*view.View
	texts     map[*text.Text]struct{}
	bookmarks *bookmark.Registry
	logger    Logger
	textOpts  []text.Option
	closed    bool
}

// New creates an empty session.
func New(opts ...Option) *Session {
	s := &Session{
		texts:     make(map[*text.Text]struct{}),
		bookmarks: bookmark.New(),
		logger:    nopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Views and Texts

// Open creates a text holding content and returns its first view.
func (s *Session) Open(name string, content []byte) (*view.View, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	t := text.FromBytes(content, s.textOptions(name)...)
	return s.adopt(t), nil
}

// OpenReader creates a text from r and returns its first view.
func (s *Session) OpenReader(name string, r io.Reader) (*view.View, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	t, err := text.FromReader(r, s.textOptions(name)...)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return s.adopt(t), nil
}

// Split opens a second view on v's text with the same cursor and mark.
func (s *Session) Split(v *view.View) (*view.View, error) {
	if err := s.check(v); err != nil {
		return nil, err
	}
	w := s.newView(v.Text())
	w.Anchors().Set(anchor.Cursor, v.Anchors().Get(anchor.Cursor))
	w.Anchors().Set(anchor.Mark, v.Mark())
	return w, nil
}

// CloseView purges v's bookmarks and closes it. The text is dropped when no
// other view shares it.
func (s *Session) CloseView(v *view.View) error {
	if err := s.check(v); err != nil {
		return err
	}
	v.Close()
	return nil
}

// Views returns the open views in creation order.
func (s *Session) Views() []*view.View {
	return slices.Clone(s.views)
}

// TextCount returns the number of open texts.
func (s *Session) TextCount() int {
	return len(s.texts)
}

// Bookmarks returns the session's bookmark registry.
func (s *Session) Bookmarks() *bookmark.Registry {
	return s.bookmarks
}

// Close closes every view. The session cannot be used afterwards.
func (s *Session) Close() {
	if s.closed {
		return
	}
	for len(s.views) > 0 {
		s.views[len(s.views)-1].Close()
	}
	s.bookmarks.Clear()
	s.closed = true
	s.logger.Debug("session closed")
}

// Bookmarks

// SetBookmark records v's cursor and mark under id.
func (s *Session) SetBookmark(id BookmarkID, v *view.View) error {
	if err := s.check(v); err != nil {
		return err
	}
	s.bookmarks.Set(id, v, v.Cursor(), v.Mark())
	s.logger.Debug("bookmark %d set in %s at %d", id, v, v.Cursor())
	return nil
}

// JumpBookmark restores the cursor and mark saved under id into the
// bookmark's view and returns that view.
func (s *Session) JumpBookmark(id BookmarkID) (*view.View, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	bm, ok := s.bookmarks.Get(id)
	if !ok {
		return nil, fmt.Errorf("bookmark %d: %w", id, ErrBookmarkNotFound)
	}
	bm.View.SetCursor(bm.Cursor)
	bm.View.Anchors().Set(anchor.Mark, bm.Mark)
	return bm.View, nil
}

// Editing Helpers

// Erase deletes the whole text of v.
func (s *Session) Erase(v *view.View) error {
	if err := s.check(v); err != nil {
		return err
	}
	return v.Delete(0, v.Len())
}

// Printf appends formatted text to the end of v's text and returns the
// number of bytes written.
func (s *Session) Printf(v *view.View, format string, args ...any) (ByteOffset, error) {
	if err := s.check(v); err != nil {
		return 0, err
	}
	return v.Insert(v.Len(), fmt.Appendf(nil, format, args...))
}

// internal

func (s *Session) textOptions(name string) []text.Option {
	opts := make([]text.Option, 0, len(s.textOpts)+1)
	opts = append(opts, text.WithName(name))
	return append(opts, s.textOpts...)
}

func (s *Session) adopt(t *text.Text) *view.View {
	s.texts[t] = struct{}{}
	s.logger.Debug("text %q opened (%d bytes)", t.Name(), t.Len())
	return s.newView(t)
}

func (s *Session) newView(t *text.Text) *view.View {
	v := view.New(t)
	v.OnClose(s.bookmarks.UnsetView)
	v.OnClose(s.forget)
	s.views = append(s.views, v)
	s.logger.Debug("%s opened", v)
	return v
}

// forget drops v from the session, and its text once no session view
// shares it. It runs as a close hook, so views closed directly through
// view.Close leave the session too.
func (s *Session) forget(v *view.View) {
	s.views = slices.DeleteFunc(s.views, func(w *view.View) bool { return w == v })
	t := v.Text()
	if !slices.ContainsFunc(s.views, func(w *view.View) bool { return w.Text() == t }) {
		delete(s.texts, t)
		s.logger.Debug("text %q dropped", t.Name())
	}
	s.logger.Debug("%s closed", v)
}

func (s *Session) check(v *view.View) error {
	if s.closed {
		return ErrSessionClosed
	}
	if v == nil || !slices.Contains(s.views, v) {
		if v != nil && v.Closed() {
			return ErrViewClosed
		}
		return ErrViewNotFound
	}
	return nil
}
