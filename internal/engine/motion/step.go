package motion

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/anchorage/internal/engine/codepoint"
)

// graphemeWindow bounds the bytes read to find one grapheme cluster.
// Longer clusters are split at the window edge.
const graphemeWindow = 64

// RawSource is the windowed access codepoint and grapheme steps need.
type RawSource interface {
	Raw(offset ByteOffset, max int) []byte
	Len() ByteOffset
}

// NextRune returns the offset just past the codepoint at offset.
func NextRune(src RawSource, offset ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if offset >= src.Len() {
		return src.Len()
	}
	_, n := codepoint.DecodeAt(src, offset)
	return offset + ByteOffset(n)
}

// PrevRune returns the offset where the codepoint before offset begins.
func PrevRune(src RawSource, offset ByteOffset) ByteOffset {
	if offset <= 0 {
		return 0
	}
	if n := src.Len(); offset > n {
		offset = n
	}
	_, start := codepoint.DecodePrior(src, offset)
	return start
}

// NextGrapheme returns the offset just past the user-perceived character
// starting at offset.
func NextGrapheme(src RawSource, offset ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if offset >= src.Len() {
		return src.Len()
	}
	cluster, _, _, _ := uniseg.FirstGraphemeCluster(src.Raw(offset, graphemeWindow), -1)
	if len(cluster) == 0 {
		return NextRune(src, offset)
	}
	return offset + ByteOffset(len(cluster))
}

// PrevGrapheme returns the offset where the user-perceived character ending
// at offset begins.
func PrevGrapheme(src RawSource, offset ByteOffset) ByteOffset {
	if offset <= 0 {
		return 0
	}
	if n := src.Len(); offset > n {
		offset = n
	}

	// Back up whole codepoints so the window starts on a boundary.
	start := offset
	for start > 0 && offset-start < graphemeWindow {
		_, start = codepoint.DecodePrior(src, start)
	}

	rest := src.Raw(start, int(offset-start))
	pos, state := start, -1
	for len(rest) > 0 {
		var cluster []byte
		cluster, rest, _, state = uniseg.FirstGraphemeCluster(rest, state)
		if pos+ByteOffset(len(cluster)) >= offset {
			return pos
		}
		pos += ByteOffset(len(cluster))
	}
	return pos
}
