package codepoint

import (
	"testing"
	"unicode/utf8"

	"github.com/dshills/anchorage/internal/engine/text"
)

// countingSource records the largest raw window requested.
type countingSource struct {
	*text.Text
	maxWindow int
}

func (c *countingSource) Raw(offset ByteOffset, max int) []byte {
	if max > c.maxWindow {
		c.maxWindow = max
	}
	return c.Text.Raw(offset, max)
}

func TestDecodeAtASCII(t *testing.T) {
	src := text.FromString("abc")
	r, n := DecodeAt(src, 1)
	if r != 'b' || n != 1 {
		t.Errorf("DecodeAt = (%q, %d), want ('b', 1)", r, n)
	}
}

func TestDecodeAtEnd(t *testing.T) {
	src := text.FromString("abc")
	r, n := DecodeAt(src, 3)
	if r != None || n != 0 {
		t.Errorf("DecodeAt(end) = (%d, %d), want (None, 0)", r, n)
	}
}

func TestThreeByteRoundTrip(t *testing.T) {
	// "€" is U+20AC, three bytes, placed at offset 5.
	src := text.FromString("hello€!")

	r, start := DecodePrior(src, 8)
	if r != '€' || start != 5 {
		t.Errorf("DecodePrior(8) = (%q, %d), want ('€', 5)", r, start)
	}

	r, n := DecodeAt(src, 5)
	if r != '€' || n != 3 {
		t.Errorf("DecodeAt(5) = (%q, %d), want ('€', 3)", r, n)
	}
}

func TestDecodeMultiByteWidths(t *testing.T) {
	tests := []struct {
		s    string
		want rune
	}{
		{"é", 'é'},
		{"€", '€'},
		{"😀", '😀'},
	}
	for _, tt := range tests {
		src := text.FromString("x" + tt.s + "y")
		r, n := DecodeAt(src, 1)
		if r != tt.want || n != len(tt.s) {
			t.Errorf("DecodeAt(%q) = (%q, %d), want (%q, %d)", tt.s, r, n, tt.want, len(tt.s))
		}
		end := ByteOffset(1 + len(tt.s))
		r, start := DecodePrior(src, end)
		if r != tt.want || start != 1 {
			t.Errorf("DecodePrior(%q) = (%q, %d), want (%q, 1)", tt.s, r, start, tt.want)
		}
	}
}

func TestDecodePriorAtStart(t *testing.T) {
	src := text.FromString("abc")
	r, start := DecodePrior(src, 0)
	if r != None || start != 0 {
		t.Errorf("DecodePrior(0) = (%d, %d), want (None, 0)", r, start)
	}
}

func TestMalformedInput(t *testing.T) {
	// A lone continuation byte and a truncated three-byte sequence.
	src := text.FromBytes([]byte{'a', 0x80, 'b', 0xE2, 0x82})

	r, n := DecodeAt(src, 1)
	if r != utf8.RuneError || n != 1 {
		t.Errorf("stray continuation = (%q, %d), want (RuneError, 1)", r, n)
	}

	r, n = DecodeAt(src, 3)
	if r != utf8.RuneError || n != 1 {
		t.Errorf("truncated sequence = (%q, %d), want (RuneError, 1)", r, n)
	}

	r, start := DecodePrior(src, 5)
	if r != utf8.RuneError || start != 4 {
		t.Errorf("DecodePrior over truncated = (%q, %d), want (RuneError, 4)", r, start)
	}

	r, start = DecodePrior(src, 2)
	if r != utf8.RuneError || start != 1 {
		t.Errorf("DecodePrior over stray = (%q, %d), want (RuneError, 1)", r, start)
	}
}

func TestWalkBackwardOverMixedText(t *testing.T) {
	s := "aé€😀z"
	src := text.FromString(s)

	var got []rune
	off := src.Len()
	for off > 0 {
		var r rune
		r, off = DecodePrior(src, off)
		got = append(got, r)
	}
	want := []rune{'z', '😀', '€', 'é', 'a'}
	if string(got) != string(want) {
		t.Errorf("backward walk = %q, want %q", string(got), string(want))
	}
}

func TestReadsAreBounded(t *testing.T) {
	src := &countingSource{Text: text.FromString("long prefix text 😀 and more")}
	for off := ByteOffset(0); off <= src.Len(); off++ {
		DecodeAt(src, off)
		DecodePrior(src, off)
	}
	if src.maxWindow > Window {
		t.Errorf("decoder requested a %d-byte window, limit is %d", src.maxWindow, Window)
	}
}
