package motion

// MaxBracketDepth is the deepest nesting MatchBracket resolves.
const MaxBracketDepth = 32

// Bracket pairing, built once. bracketDir is +1 for openers, -1 for closers.
var (
	bracketPeer = [256]byte{
		'(': ')', ')': '(',
		'[': ']', ']': '[',
		'{': '}', '}': '{',
	}
	bracketDir = [256]int8{
		'(': 1, '[': 1, '{': 1,
		')': -1, ']': -1, '}': -1,
	}
)

// bracketStack is a fixed-depth stack of bracket bytes.
type bracketStack struct {
	items [MaxBracketDepth]byte
	n     int
}

func (s *bracketStack) push(b byte) bool {
	if s.n == len(s.items) {
		return false
	}
	s.items[s.n] = b
	s.n++
	return true
}

// popMatches pops the top and reports whether b closes it.
func (s *bracketStack) popMatches(b byte) bool {
	if s.n == 0 {
		return false
	}
	s.n--
	return bracketPeer[s.items[s.n]] == b
}

// MatchBracket finds the bracket that pairs with the one at offset. When the
// byte at offset is not a bracket it finds the nearest bracket enclosing
// offset instead, preferring the one behind on ties. The second result is
// false when nothing matches.
func MatchBracket(src ByteSource, offset ByteOffset) (ByteOffset, bool) {
	ch := at(src, offset)
	if ch < 0 || bracketDir[ch] == 0 {
		return enclosingBracket(src, offset)
	}

	dir := ByteOffset(bracketDir[ch])
	var stack bracketStack
	stack.push(byte(ch))
	for stack.n > 0 {
		offset += dir
		ch = at(src, offset)
		if ch < 0 {
			return 0, false
		}
		switch ByteOffset(bracketDir[ch]) {
		case dir:
			if !stack.push(byte(ch)) {
				return 0, false
			}
		case -dir:
			if !stack.popMatches(byte(ch)) {
				return 0, false
			}
		}
	}
	return offset, true
}

func enclosingBracket(src ByteSource, offset ByteOffset) (ByteOffset, bool) {
	back, backOK := scanEnclosing(src, offset, -1)
	ahead, aheadOK := scanEnclosing(src, offset, 1)

	switch {
	case backOK && (!aheadOK || back <= ahead):
		return offset - back, true
	case aheadOK:
		return offset + ahead, true
	}
	return 0, false
}

// scanEnclosing walks from offset in direction dir looking for an unmatched
// bracket facing offset and returns the distance to it. Brackets pointing in
// the scan direction are stacked and must be closed in order; a mismatched
// pair ends the scan at the offending bracket.
func scanEnclosing(src ByteSource, offset ByteOffset, dir int8) (ByteOffset, bool) {
	var stack bracketStack
	for dist := ByteOffset(1); ; dist++ {
		ch := at(src, offset+ByteOffset(dir)*dist)
		if ch < 0 {
			return 0, false
		}
		switch bracketDir[ch] {
		case dir:
			if !stack.push(byte(ch)) {
				return 0, false
			}
		case -dir:
			if !stack.popMatches(byte(ch)) {
				return dist, true
			}
		}
	}
}
