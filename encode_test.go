package max7219

import (
	"testing"

	"github.com/flavioheleno/max7219/segfont"
	"github.com/stretchr/testify/assert"
)

func TestCodeBIndex(t *testing.T) {
	tests := []struct {
		c    byte
		want byte
	}{
		{'0', 0x00}, {'1', 0x01}, {'9', 0x09},
		{'-', 0x0A},
		{'E', 0x0B}, {'e', 0x0B},
		{'H', 0x0C}, {'h', 0x0C},
		{'L', 0x0D}, {'l', 0x0D},
		{'P', 0x0E}, {'p', 0x0E},
		{' ', CodeBBlank},
		{'A', CodeBBlank}, {'.', CodeBBlank}, {0x00, CodeBBlank},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, codeBIndex(tt.c), "codeBIndex(%q)", tt.c)
	}
}

func TestCodeBRoundTrip(t *testing.T) {
	for _, c := range []byte("0123456789-EHLP ") {
		buf := encodeSevenSegment(string(c), 1, false)
		got, dp := DecodeCodeB(buf[0])
		assert.Equal(t, c, got, "DecodeCodeB(encode(%q))", c)
		assert.False(t, dp, "DecodeCodeB(encode(%q)) decimal point", c)
	}

	blank := encodeSevenSegment(" ", 1, false)[0]
	zero := encodeSevenSegment("0", 1, false)[0]
	assert.NotEqual(t, zero, blank)
}

func TestDecimalPointIsIndependent(t *testing.T) {
	for _, c := range []byte("0123456789-EHLP X") {
		plain := encodeSevenSegment(string([]byte{c}), 1, false)[0]
		dotted := encodeSevenSegment(string([]byte{WithDP(c)}), 1, false)[0]
		assert.Equal(t, SegDP, plain^dotted, "%q: plain 0x%02X, dotted 0x%02X", c, plain, dotted)
	}
}

func TestEncodeSevenSegmentLength(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want []byte
	}{
		{"exact", "12", 2, []byte{1, 2}},
		{"padded", "1", 3, []byte{1, CodeBBlank, CodeBBlank}},
		{"truncated", "1234", 2, []byte{1, 2}},
		{"empty", "", 2, []byte{CodeBBlank, CodeBBlank}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeSevenSegment(tt.text, tt.n, false))
		})
	}
}

func TestMirrorIsInvolution(t *testing.T) {
	for _, text := range []string{"", "1", "12", "123", "1-E4 5HP"} {
		orig := encodeSevenSegment(text, len(text)+1, false)
		mirrored := encodeSevenSegment(text, len(text)+1, true)
		assert.Equal(t, orig[len(orig)-1], mirrored[0], "%q: mirrored first digit", text)
		mirrorBytes(mirrored)
		assert.Equal(t, orig, mirrored, "%q: mirrored twice", text)
	}
}

func TestEncodeBarGraph(t *testing.T) {
	tests := []struct {
		name   string
		values []byte
		dot    bool
		want   []byte
	}{
		{"zero bar", []byte{0}, false, []byte{0x00}},
		{"zero dot", []byte{0}, true, []byte{0x00}},
		{"bar 5", []byte{5}, false, []byte{0b00011111}},
		{"dot 5", []byte{5}, true, []byte{0b00010000}},
		{"bar 1..8", []byte{1, 2, 3, 4, 5, 6, 7, 8}, false, []byte{0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F, 0xFF}},
		{"dot 1..8", []byte{1, 2, 3, 4, 5, 6, 7, 8}, true, []byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80}},
		{"clamped", []byte{9, 200}, false, []byte{0xFF, 0xFF}},
		{"clamped dot", []byte{9}, true, []byte{0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeBarGraph(tt.values, len(tt.values), tt.dot))
		})
	}

	assert.Equal(t, []byte{0x07, 0, 0}, encodeBarGraph([]byte{3}, 3, false), "padding")
}

func TestEncodeFont(t *testing.T) {
	hi, lo := encodeFont("AB", 3, segfont.Sixteen)
	assert.Equal(t, []byte{0xF3, 0xFC, 0x00}, hi)
	assert.Equal(t, []byte{0xC0, 0x52, 0x00}, lo)
}

func TestFill(t *testing.T) {
	assert.Equal(t, []byte{0x0F, 0x0F, 0x0F}, fill(3, CodeBBlank))
}
