// Package codepoint decodes UTF-8 codepoints from a text using only bounded
// raw reads, so it never needs the whole text in memory.
//
// Malformed input decodes to utf8.RuneError with a length of one byte, which
// lets callers keep stepping without special cases.
package codepoint

import (
	"unicode/utf8"

	"github.com/dshills/anchorage/internal/engine/text"
)

// ByteOffset is an alias for text.ByteOffset for convenience.
type ByteOffset = text.ByteOffset

// None is returned when there is no codepoint to decode: at the end of the
// text for DecodeAt, or at its start for DecodePrior.
const None rune = -1

// Window is the most bytes read in a single raw access.
const Window = 8

// Source is the raw access the decoder needs.
type Source interface {
	Raw(offset ByteOffset, max int) []byte
}

// DecodeAt decodes the codepoint starting at offset and returns it with its
// length in bytes.
func DecodeAt(src Source, offset ByteOffset) (rune, int) {
	raw := src.Raw(offset, Window)
	if len(raw) == 0 {
		return None, 0
	}
	if raw[0] < utf8.RuneSelf {
		return rune(raw[0]), 1
	}
	return utf8.DecodeRune(raw)
}

// DecodePrior decodes the codepoint that ends just before offset and returns
// it with the offset where it begins.
func DecodePrior(src Source, offset ByteOffset) (rune, ByteOffset) {
	if offset <= 0 {
		return None, 0
	}
	offset--
	last := src.Raw(offset, 1)
	if len(last) == 0 {
		return None, offset + 1
	}
	if last[0] < utf8.RuneSelf {
		return rune(last[0]), offset
	}

	// Look back up to Window-1 more bytes for the lead byte.
	at := max(offset-(Window-1), 0)
	raw := src.Raw(at, int(offset-at+1))
	_, size := utf8.DecodeLastRune(raw)
	start := offset - ByteOffset(size) + 1

	// Decode forward from the lead byte. A lead byte whose sequence does not
	// end exactly at offset means the trailing byte is a stray.
	r, n := DecodeAt(src, start)
	if start+ByteOffset(n) != offset+1 {
		return utf8.RuneError, offset
	}
	return r, start
}
