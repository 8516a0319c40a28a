package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/anchorage/internal/engine"
	"github.com/dshills/anchorage/internal/engine/anchor"
	"github.com/dshills/anchorage/internal/engine/codepoint"
	"github.com/dshills/anchorage/internal/engine/motion"
	"github.com/dshills/anchorage/internal/engine/selection"
	"github.com/dshills/anchorage/internal/engine/view"
)

// ModuleName is the global the editor module is installed under.
const ModuleName = "ed"

// Editor implements the ed Lua module.
type Editor struct {
	session *engine.Session
	view    *view.View
}

// NewEditor creates an editor module for v.
func NewEditor(sess *engine.Session, v *view.View) *Editor {
	return &Editor{session: sess, view: v}
}

// View returns the current view.
func (m *Editor) View() *view.View {
	return m.view
}

// Register installs the module into the Lua state.
func (m *Editor) Register(L *lua.LState) error {
	mod := L.NewTable()

	// Text
	L.SetField(mod, "len", L.NewFunction(m.length))
	L.SetField(mod, "text", L.NewFunction(m.text))
	L.SetField(mod, "insert", L.NewFunction(m.insert))
	L.SetField(mod, "delete", L.NewFunction(m.delete))

	// Cursor and mark
	L.SetField(mod, "cursor", L.NewFunction(m.cursor))
	L.SetField(mod, "set_cursor", L.NewFunction(m.setCursor))
	L.SetField(mod, "mark", L.NewFunction(m.mark))
	L.SetField(mod, "set_mark", L.NewFunction(m.setMark))
	L.SetField(mod, "clear_mark", L.NewFunction(m.clearMark))

	// Boundaries
	L.SetField(mod, "line_start", L.NewFunction(m.boundary(motion.LineStart)))
	L.SetField(mod, "line_end", L.NewFunction(m.boundary(motion.LineEnd)))
	L.SetField(mod, "word_start", L.NewFunction(m.boundary(motion.WordStart)))
	L.SetField(mod, "word_end", L.NewFunction(m.boundary(motion.WordEnd)))
	L.SetField(mod, "sentence_start", L.NewFunction(m.boundary(motion.SentenceStart)))
	L.SetField(mod, "sentence_end", L.NewFunction(m.boundary(motion.SentenceEnd)))
	L.SetField(mod, "match_bracket", L.NewFunction(m.matchBracket))

	// Steps
	L.SetField(mod, "next_char", L.NewFunction(m.step(motion.NextRune)))
	L.SetField(mod, "prev_char", L.NewFunction(m.step(motion.PrevRune)))
	L.SetField(mod, "next_grapheme", L.NewFunction(m.step(motion.NextGrapheme)))
	L.SetField(mod, "prev_grapheme", L.NewFunction(m.step(motion.PrevGrapheme)))
	L.SetField(mod, "decode", L.NewFunction(m.decode))
	L.SetField(mod, "decode_prior", L.NewFunction(m.decodePrior))

	// Selection
	L.SetField(mod, "selection", L.NewFunction(m.selection))
	L.SetField(mod, "extract", L.NewFunction(m.extract))
	L.SetField(mod, "delete_selection", L.NewFunction(m.deleteSelection))

	// Anchors
	L.SetField(mod, "anchor_create", L.NewFunction(m.anchorCreate))
	L.SetField(mod, "anchor_get", L.NewFunction(m.anchorGet))
	L.SetField(mod, "anchor_set", L.NewFunction(m.anchorSet))
	L.SetField(mod, "anchor_destroy", L.NewFunction(m.anchorDestroy))

	// Bookmarks
	L.SetField(mod, "bookmark_set", L.NewFunction(m.bookmarkSet))
	L.SetField(mod, "bookmark_get", L.NewFunction(m.bookmarkGet))
	L.SetField(mod, "bookmark_unset", L.NewFunction(m.bookmarkUnset))
	L.SetField(mod, "bookmark_jump", L.NewFunction(m.bookmarkJump))

	// Views
	L.SetField(mod, "split", L.NewFunction(m.split))
	L.SetField(mod, "view_id", L.NewFunction(m.viewID))

	L.SetGlobal(ModuleName, mod)
	return nil
}

// offsetArg reads an optional offset argument, defaulting to the cursor.
func (m *Editor) offsetArg(L *lua.LState, n int) engine.ByteOffset {
	if L.Get(n) == lua.LNil {
		return m.view.Cursor()
	}
	return engine.ByteOffset(L.CheckInt64(n))
}

func pushOffset(L *lua.LState, off engine.ByteOffset) {
	L.Push(lua.LNumber(off))
}

func pushPosition(L *lua.LState, pos anchor.Position) {
	if off, ok := pos.Offset(); ok {
		pushOffset(L, off)
		return
	}
	L.Push(lua.LNil)
}

// len() -> n
func (m *Editor) length(L *lua.LState) int {
	pushOffset(L, m.view.Len())
	return 1
}

// text([start[, end]]) -> string
// Returns the bytes in [start, end), the whole text by default.
func (m *Editor) text(L *lua.LState) int {
	start := engine.ByteOffset(L.OptInt64(1, 0))
	end := engine.ByteOffset(L.OptInt64(2, int64(m.view.Len())))

	b, err := m.view.Bytes(start, end)
	if err != nil {
		L.RaiseError("text: %v", err)
		return 0
	}
	L.Push(lua.LString(b))
	return 1
}

// insert(s[, offset]) -> n
// Inserts s at offset and returns the number of bytes inserted.
func (m *Editor) insert(L *lua.LState) int {
	s := L.CheckString(1)
	off := m.offsetArg(L, 2)

	n, err := m.view.Insert(off, []byte(s))
	if err != nil {
		L.RaiseError("insert: %v", err)
		return 0
	}
	pushOffset(L, n)
	return 1
}

// delete(offset, n) -> nil
func (m *Editor) delete(L *lua.LState) int {
	off := engine.ByteOffset(L.CheckInt64(1))
	n := engine.ByteOffset(L.CheckInt64(2))
	if n < 0 {
		L.ArgError(2, "length must be non-negative")
		return 0
	}

	if err := m.view.Delete(off, n); err != nil {
		L.RaiseError("delete: %v", err)
	}
	return 0
}

// cursor() -> offset
func (m *Editor) cursor(L *lua.LState) int {
	pushOffset(L, m.view.Cursor())
	return 1
}

// set_cursor(offset) -> offset
// Moves the cursor and returns where it landed after clamping.
func (m *Editor) setCursor(L *lua.LState) int {
	m.view.SetCursor(engine.ByteOffset(L.CheckInt64(1)))
	pushOffset(L, m.view.Cursor())
	return 1
}

// mark() -> offset or nil
func (m *Editor) mark(L *lua.LState) int {
	pushPosition(L, m.view.Mark())
	return 1
}

// set_mark([offset]) -> offset
func (m *Editor) setMark(L *lua.LState) int {
	m.view.SetMark(m.offsetArg(L, 1))
	pushPosition(L, m.view.Mark())
	return 1
}

// clear_mark() -> nil
func (m *Editor) clearMark(L *lua.LState) int {
	m.view.ClearMark()
	return 0
}

// boundary wraps a boundary query as f([offset]) -> offset.
func (m *Editor) boundary(fn func(motion.ByteSource, motion.ByteOffset) motion.ByteOffset) lua.LGFunction {
	return func(L *lua.LState) int {
		pushOffset(L, fn(m.view, m.offsetArg(L, 1)))
		return 1
	}
}

// step wraps a codepoint or grapheme step as f([offset]) -> offset.
func (m *Editor) step(fn func(motion.RawSource, motion.ByteOffset) motion.ByteOffset) lua.LGFunction {
	return func(L *lua.LState) int {
		pushOffset(L, fn(m.view, m.offsetArg(L, 1)))
		return 1
	}
}

// match_bracket([offset]) -> offset or nil
func (m *Editor) matchBracket(L *lua.LState) int {
	off, ok := motion.MatchBracket(m.view, m.offsetArg(L, 1))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	pushOffset(L, off)
	return 1
}

// decode([offset]) -> codepoint, length or nil
func (m *Editor) decode(L *lua.LState) int {
	r, n := codepoint.DecodeAt(m.view, m.offsetArg(L, 1))
	if r == codepoint.None {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(r))
	L.Push(lua.LNumber(n))
	return 2
}

// decode_prior([offset]) -> codepoint, start or nil
func (m *Editor) decodePrior(L *lua.LState) int {
	r, start := codepoint.DecodePrior(m.view, m.offsetArg(L, 1))
	if r == codepoint.None {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(r))
	pushOffset(L, start)
	return 2
}

// selection() -> start, length, forward or nil
func (m *Editor) selection(L *lua.LState) int {
	span := selection.Current(m.view)
	if span.IsEmpty() {
		L.Push(lua.LNil)
		return 1
	}
	pushOffset(L, span.Start)
	pushOffset(L, span.Len)
	L.Push(lua.LBool(span.Forward))
	return 3
}

// extract() -> string or nil
func (m *Editor) extract(L *lua.LState) int {
	b, err := selection.Extract(m.view)
	if err != nil {
		L.RaiseError("extract: %v", err)
		return 0
	}
	if b == nil {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(b))
	return 1
}

// delete_selection() -> n
func (m *Editor) deleteSelection(L *lua.LState) int {
	n, err := selection.Delete(m.view)
	if err != nil {
		L.RaiseError("delete_selection: %v", err)
		return 0
	}
	pushOffset(L, n)
	return 1
}

// anchorID checks argument n is a live anchor id of the current view.
func (m *Editor) anchorID(L *lua.LState, n int) anchor.ID {
	raw := L.CheckInt64(n)
	if raw < 0 || raw > int64(^uint32(0)) || !m.view.Anchors().Has(anchor.ID(raw)) {
		L.ArgError(n, "invalid anchor id")
		return 0
	}
	return anchor.ID(raw)
}

// writableAnchorID is anchorID for calls that modify the anchor. The
// reserved cursor and mark and the anchors held by bookmarks are rejected.
func (m *Editor) writableAnchorID(L *lua.LState, n int) anchor.ID {
	id := m.anchorID(L, n)
	switch {
	case id == anchor.Cursor || id == anchor.Mark:
		L.ArgError(n, "cannot modify the cursor or mark; use set_cursor or set_mark")
	case m.session.Bookmarks().Owns(m.view, id):
		L.ArgError(n, "anchor belongs to a bookmark")
	}
	return id
}

// anchor_create([offset]) -> id
func (m *Editor) anchorCreate(L *lua.LState) int {
	id := m.view.Anchors().Create(anchor.At(m.offsetArg(L, 1)))
	L.Push(lua.LNumber(id))
	return 1
}

// anchor_get(id) -> offset or nil
func (m *Editor) anchorGet(L *lua.LState) int {
	id := m.anchorID(L, 1)
	pushPosition(L, m.view.Anchors().Get(id))
	return 1
}

// anchor_set(id[, offset]) -> nil
// Without an offset the anchor becomes unset.
func (m *Editor) anchorSet(L *lua.LState) int {
	id := m.writableAnchorID(L, 1)
	pos := anchor.Unset
	if L.Get(2) != lua.LNil {
		pos = anchor.At(engine.ByteOffset(L.CheckInt64(2)))
	}
	m.view.Anchors().Set(id, pos)
	return 0
}

// anchor_destroy(id) -> nil
func (m *Editor) anchorDestroy(L *lua.LState) int {
	id := m.writableAnchorID(L, 1)
	m.view.Anchors().Destroy(id)
	return 0
}

func bookmarkID(L *lua.LState, n int) engine.BookmarkID {
	raw := L.CheckInt64(n)
	if raw < 0 {
		L.ArgError(n, "bookmark id must be non-negative")
		return 0
	}
	return engine.BookmarkID(raw)
}

// bookmark_set(id) -> nil
// Records the current view's cursor and mark.
func (m *Editor) bookmarkSet(L *lua.LState) int {
	if err := m.session.SetBookmark(bookmarkID(L, 1), m.view); err != nil {
		L.RaiseError("bookmark_set: %v", err)
	}
	return 0
}

// bookmark_get(id) -> cursor, mark, view_id or nil
func (m *Editor) bookmarkGet(L *lua.LState) int {
	bm, ok := m.session.Bookmarks().Get(bookmarkID(L, 1))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	pushOffset(L, bm.Cursor)
	pushPosition(L, bm.Mark)
	L.Push(lua.LString(bm.View.ID().String()))
	return 3
}

// bookmark_unset(id) -> nil
func (m *Editor) bookmarkUnset(L *lua.LState) int {
	m.session.Bookmarks().Unset(bookmarkID(L, 1))
	return 0
}

// bookmark_jump(id) -> cursor or nil
// Restores the bookmark and makes its view current.
func (m *Editor) bookmarkJump(L *lua.LState) int {
	v, err := m.session.JumpBookmark(bookmarkID(L, 1))
	if err != nil {
		L.Push(lua.LNil)
		return 1
	}
	m.view = v
	pushOffset(L, v.Cursor())
	return 1
}

// split() -> view_id
// Opens a second view on the current text and makes it current.
func (m *Editor) split(L *lua.LState) int {
	v, err := m.session.Split(m.view)
	if err != nil {
		L.RaiseError("split: %v", err)
		return 0
	}
	m.view = v
	L.Push(lua.LString(v.ID().String()))
	return 1
}

// view_id() -> string
func (m *Editor) viewID(L *lua.LState) int {
	L.Push(lua.LString(m.view.ID().String()))
	return 1
}
