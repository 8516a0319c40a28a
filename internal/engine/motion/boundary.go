package motion

import (
	"github.com/dshills/anchorage/internal/engine/text"
)

// ByteOffset is an alias for text.ByteOffset for convenience.
type ByteOffset = text.ByteOffset

// ByteSource is the byte-level access motions need.
type ByteSource interface {
	ByteAt(offset ByteOffset) (byte, bool)
	Len() ByteOffset
}

// at returns the byte at offset, or -1 past either end.
func at(src ByteSource, offset ByteOffset) int {
	b, ok := src.ByteAt(offset)
	if !ok {
		return -1
	}
	return int(b)
}

func clamp(src ByteSource, offset ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if n := src.Len(); offset > n {
		return n
	}
	return offset
}

func isSpace(ch int) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlnum(ch int) bool {
	return ch >= '0' && ch <= '9' || ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

// LineStart returns the offset just after the newline preceding offset, or 0.
func LineStart(src ByteSource, offset ByteOffset) ByteOffset {
	offset = clamp(src, offset)
	for {
		offset--
		ch := at(src, offset)
		if ch < 0 || ch == '\n' {
			break
		}
	}
	return clamp(src, offset+1)
}

// LineEnd returns the offset of the first newline at or after offset, or the
// end of the text.
func LineEnd(src ByteSource, offset ByteOffset) ByteOffset {
	for ; ; offset++ {
		ch := at(src, offset)
		if ch < 0 || ch == '\n' {
			break
		}
	}
	return clamp(src, offset)
}

// WordStart moves backward to the start of a word. Whitespace behind offset
// is skipped, the first byte past it is taken unconditionally, and the scan
// continues over alphanumerics.
func WordStart(src ByteSource, offset ByteOffset) ByteOffset {
	offset = clamp(src, offset)
	for {
		offset--
		ch := at(src, offset)
		if ch < 0 {
			break
		}
		if !isSpace(ch) {
			offset--
			break
		}
	}
	for ; ; offset-- {
		ch := at(src, offset)
		if ch < 0 || !isAlnum(ch) {
			break
		}
	}
	return clamp(src, offset+1)
}

// WordEnd moves forward to the end of a word. The scan starts one byte past
// offset, skips whitespace, then runs over alphanumerics. The result is the
// first byte that is not alphanumeric.
func WordEnd(src ByteSource, offset ByteOffset) ByteOffset {
	for offset++; ; offset++ {
		ch := at(src, offset)
		if ch < 0 || !isSpace(ch) {
			break
		}
	}
	for ; ; offset++ {
		ch := at(src, offset)
		if ch < 0 || !isAlnum(ch) {
			break
		}
	}
	return clamp(src, offset)
}

func isSentenceOpen(ch int) bool {
	switch ch {
	case '.', ',', ';', ':', '(', '[', '{':
		return true
	}
	return false
}

func isSentenceClose(ch int) bool {
	switch ch {
	case '.', ',', ';', '!', '?', ')', ']', '}':
		return true
	}
	return false
}

// SentenceStart moves backward to just after the nearest clause punctuation
// or opening bracket. A blank line (two newlines in a row) also stops the
// scan. The byte immediately behind offset is never a stop, so repeated
// calls keep moving.
func SentenceStart(src ByteSource, offset ByteOffset) ByteOffset {
	offset = clamp(src, offset) - 1
	next := at(src, offset)
	if next < 0 {
		return clamp(src, offset)
	}
	for {
		offset--
		ch := at(src, offset)
		if ch < 0 {
			break
		}
		if isSentenceOpen(ch) || ch == '\n' && next == '\n' {
			break
		}
		next = ch
	}
	return clamp(src, offset+1)
}

// SentenceEnd moves forward to the next sentence or clause terminator or
// closing bracket, or to the second newline of a blank line. The scan starts
// one byte past offset.
func SentenceEnd(src ByteSource, offset ByteOffset) ByteOffset {
	last := -1
	for offset++; ; offset++ {
		ch := at(src, offset)
		if ch < 0 {
			break
		}
		if isSentenceClose(ch) || ch == '\n' && last == '\n' {
			break
		}
		last = ch
	}
	return clamp(src, offset)
}
