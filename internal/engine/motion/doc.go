// Package motion finds line, word, sentence and bracket boundaries in a text.
//
// Every function is a pure scan from an offset, reading one byte at a time
// through ByteSource.ByteAt. Scans cost time proportional to the distance
// covered, not to the size of the text. Backward scans clamp their starting
// offset, and every result is clamped to [0, Len].
//
// Word and sentence rules work on bytes and use ASCII classification.
// Codepoint and grapheme steps (NextRune, NextGrapheme and friends) decode
// through bounded raw windows instead.
//
// Bracket matching recognizes ()[]{} and gives up beyond 32 levels of
// nesting, which is reported the same way as no match.
package motion
