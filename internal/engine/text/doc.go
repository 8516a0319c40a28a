// Package text provides the shared byte storage that views edit.
//
// A Text is a plain mutable byte sequence with byte-level random access
// (ByteAt, Raw) and two mutation primitives (Insert, Delete). It carries no
// positions of its own: cursors, marks and bookmarks live in the anchor
// tables of the views attached to it.
//
// Mutation Hook:
//
// Every successful Insert or Delete notifies each attached Observer before
// returning. Observers are how anchor tables stay consistent with the bytes,
// so a caller can never see a mutation without its matching anchor shift.
//
//	t := text.FromString("hello")
//	t.Attach(table)          // table implements Observer
//	t.Insert(0, []byte(">")) // table.TextInserted(0, 1) runs here
//
// Concurrency:
//
// A Text is not safe for concurrent use. The editor serializes all edits and
// navigation on a single event loop, so no locking is performed.
package text
