// Package engine ties texts, views and bookmarks together into an editing
// session.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - text: shared byte storage with a mandatory mutation hook
//   - anchor: per-view anchor tables kept consistent with every edit
//   - view: a cursor and mark over a text, owning one anchor table
//   - bookmark: numbered bookmarks stored as anchor pairs
//   - motion: line, word, sentence, bracket and character boundaries
//   - codepoint: bounded-window UTF-8 decoding
//   - selection: the span between cursor and mark
//
// # Sessions
//
// A Session is the single owner of its texts, views and bookmark registry.
// It is created at editor start and closed at exit:
//
//	s := engine.New(engine.WithLogger(logger))
//	defer s.Close()
//
//	v, _ := s.Open("notes.txt", data)
//	w, _ := s.Split(v)       // second view on the same text
//	s.SetBookmark(1, v)      // remember v's cursor and mark
//	w.Insert(0, []byte(">")) // v's anchors and bookmark 1 shift too
//	s.CloseView(w)
//
// Closing a view purges its bookmarks before it detaches from its text, and
// closing the last view of a text drops the text.
//
// # Concurrency
//
// Nothing in the engine locks. All calls are expected to come from the
// editor's single event loop.
//
// # Error Handling
//
// The package defines several error values:
//
//   - ErrSessionClosed: operation on a closed session
//   - ErrViewNotFound: the view does not belong to the session
//   - ErrViewClosed: the view has already been closed
//   - ErrBookmarkNotFound: no bookmark has the requested id
//
// Motions report "no match" through boolean results rather than errors.
package engine
