// Package anchor keeps byte offsets inside a text valid across edits.
//
// Each view owns one Table. The table is attached to the view's text as a
// text.Observer, so every insertion and deletion shifts the anchors it holds
// before the mutating call returns.
//
// Adjustment rules:
//
//   - Insertion of L bytes at O: anchors at or after O move forward by L.
//     An anchor sitting exactly at O stays with the text that follows it.
//   - Deletion of [O, O+L): anchors before O are unchanged, anchors at or
//     after O+L move back by L, anchors inside the range collapse to O.
//   - Unset anchors carry no offset and are never adjusted.
//
// Two ids are reserved and exist for the whole life of a table: Cursor and
// Mark. Mark is usually Unset, meaning the view has no selection.
//
// Using an id that was never created or has been destroyed panics. Callers
// holding untrusted ids check Has first.
package anchor
