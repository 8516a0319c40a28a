// Package script runs Lua edit scripts against a session.
//
// A State owns one gopher-lua interpreter with only the base, table, string
// and math libraries opened. The global table "ed" exposes the editing core
// bound to a current view:
//
//	ed.set_cursor(0)
//	ed.set_mark(ed.word_end())
//	local word = ed.extract()
//	ed.delete_selection()
//	ed.insert(string.upper(word))
//
// # Offsets
//
// Offsets are byte offsets. Functions that take an optional offset default
// to the cursor. Lookups that find nothing (an unmatched bracket, an unset
// mark, a missing bookmark) return nil.
//
// # Limits
//
// Each DoString or DoFile call runs under the State's timeout. gopher-lua
// checks the deadline between instructions, so runaway loops are stopped
// with ErrTimeout.
package script
