// Package bookmark maps small user-visible ids to saved positions in views.
//
// A bookmark holds two anchors, a cursor and an optional selection end,
// created inside the anchor table of the view it refers to. The anchors
// follow edits like any other, so a bookmark keeps pointing at the same text.
//
// A Registry is owned by the editor session. Before a view is torn down the
// session must call UnsetView so no entry keeps a reference to it.
package bookmark

import (
	"slices"

	"github.com/dshills/anchorage/internal/engine/anchor"
	"github.com/dshills/anchorage/internal/engine/view"
)

// ID is a user-visible bookmark number.
type ID uint

// Bookmark is the resolved state of a registry entry.
type Bookmark struct {
	View   *view.View
	Cursor anchor.ByteOffset
	Mark   anchor.Position
}

type entry struct {
	view   *view.View
	cursor anchor.ID
	mark   anchor.ID
}

// Registry holds at most one bookmark per id.
type Registry struct {
	entries map[ID]entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[ID]entry)}
}

// Set binds id to cursor and mark in v, replacing any previous bookmark
// with the same id. The replaced bookmark's anchors are destroyed first.
func (r *Registry) Set(id ID, v *view.View, cursor anchor.ByteOffset, mark anchor.Position) {
	r.Unset(id)
	tbl := v.Anchors()
	r.entries[id] = entry{
		view:   v,
		cursor: tbl.Create(anchor.At(cursor)),
		mark:   tbl.Create(mark),
	}
}

// Get resolves the bookmark for id through its view's anchor table.
func (r *Registry) Get(id ID) (Bookmark, bool) {
	e, ok := r.entries[id]
	if !ok {
		return Bookmark{}, false
	}
	tbl := e.view.Anchors()
	return Bookmark{
		View:   e.view,
		Cursor: tbl.Get(e.cursor).OffsetOr(0),
		Mark:   tbl.Get(e.mark),
	}, true
}

// Unset removes the bookmark for id, if any.
func (r *Registry) Unset(id ID) {
	e, ok := r.entries[id]
	if !ok {
		return
	}
	delete(r.entries, id)
	e.release()
}

// UnsetView removes every bookmark bound to v.
func (r *Registry) UnsetView(v *view.View) {
	for id, e := range r.entries {
		if e.view != v {
			continue
		}
		delete(r.entries, id)
		e.release()
	}
}

// Owns reports whether id is one of the anchors a bookmark holds in v's
// table. Callers that hand anchor ids to scripts use it to keep bookmark
// anchors out of reach.
func (r *Registry) Owns(v *view.View, id anchor.ID) bool {
	for _, e := range r.entries {
		if e.view == v && (e.cursor == id || e.mark == id) {
			return true
		}
	}
	return false
}

// Len returns the number of live bookmarks.
func (r *Registry) Len() int {
	return len(r.entries)
}

// IDs returns the live bookmark ids in ascending order.
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Clear removes every bookmark.
func (r *Registry) Clear() {
	for id, e := range r.entries {
		delete(r.entries, id)
		e.release()
	}
}

// release destroys the entry's anchors that the table still holds.
func (e entry) release() {
	tbl := e.view.Anchors()
	for _, id := range []anchor.ID{e.cursor, e.mark} {
		if tbl.Has(id) {
			tbl.Destroy(id)
		}
	}
}
