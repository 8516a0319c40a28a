package motion

import (
	"strings"
	"testing"

	"github.com/dshills/anchorage/internal/engine/text"
)

func TestMatchBracket(t *testing.T) {
	src := text.FromString("(a[b]c)")

	tests := []struct {
		name   string
		offset ByteOffset
		want   ByteOffset
	}{
		{"opener", 0, 6},
		{"closer", 6, 0},
		{"inner opener", 2, 4},
		{"inner closer", 4, 2},
		{"enclosing prefers nearer backward", 1, 0},
		{"enclosing tie prefers backward", 3, 2},
		{"enclosing prefers nearer forward", 5, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchBracket(src, tt.offset)
			if !ok || got != tt.want {
				t.Errorf("MatchBracket(%d) = (%d, %v), want (%d, true)", tt.offset, got, ok, tt.want)
			}
		})
	}
}

func TestMatchBracketNoMatch(t *testing.T) {
	tests := []struct {
		name    string
		content string
		offset  ByteOffset
	}{
		{"unterminated", "(ab", 0},
		{"no brackets", "abc", 1},
		{"mismatched pair", "(]", 0},
		{"mismatched nested", "([)]", 0},
		{"empty text", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := text.FromString(tt.content)
			if got, ok := MatchBracket(src, tt.offset); ok {
				t.Errorf("MatchBracket(%q, %d) = %d, want no match", tt.content, tt.offset, got)
			}
		})
	}
}

func TestMatchBracketAtEndOfText(t *testing.T) {
	src := text.FromString("(ab")
	got, ok := MatchBracket(src, 3)
	if !ok || got != 0 {
		t.Errorf("MatchBracket at end = (%d, %v), want (0, true)", got, ok)
	}
}

func TestMatchBracketDepthLimit(t *testing.T) {
	deep := strings.Repeat("(", MaxBracketDepth) + strings.Repeat(")", MaxBracketDepth)
	src := text.FromString(deep)
	if got, ok := MatchBracket(src, 0); !ok || got != ByteOffset(len(deep)-1) {
		t.Errorf("depth %d: got (%d, %v), want (%d, true)", MaxBracketDepth, got, ok, len(deep)-1)
	}

	tooDeep := strings.Repeat("(", MaxBracketDepth+1) + strings.Repeat(")", MaxBracketDepth+1)
	if _, ok := MatchBracket(text.FromString(tooDeep), 0); ok {
		t.Errorf("depth %d should not resolve", MaxBracketDepth+1)
	}
}

func TestEnclosingScanOverflowIsNoMatch(t *testing.T) {
	s := "x" + strings.Repeat("(", MaxBracketDepth+1) + strings.Repeat(")", MaxBracketDepth+2)
	if got, ok := MatchBracket(text.FromString(s), 0); ok {
		t.Errorf("overflowing forward scan returned %d, want no match", got)
	}
}

func TestMatchBracketSymmetry(t *testing.T) {
	src := text.FromString("f(x, [1, {2: 3}], (y))")
	for off := ByteOffset(0); off < src.Len(); off++ {
		b, _ := src.ByteAt(off)
		if bracketDir[b] == 0 {
			continue
		}
		peer, ok := MatchBracket(src, off)
		if !ok {
			t.Fatalf("bracket at %d has no match", off)
		}
		back, ok := MatchBracket(src, peer)
		if !ok || back != off {
			t.Errorf("MatchBracket(MatchBracket(%d)) = %d, want %d", off, back, off)
		}
	}
}
