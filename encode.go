package max7219

import "github.com/flavioheleno/max7219/segfont"

// Code-B characters, indexed by their decoder value.
const codeB = "0123456789-EHLP "

// WithDP returns c with the decimal point request bit set, for use in the
// text passed to Set7Segment.
func WithDP(c byte) byte {
	return c | SegDP
}

// codeBIndex returns the Code-B decoder value for c. Characters the decoder
// cannot show map to CodeBBlank.
func codeBIndex(c byte) byte {
	if c >= '0' && c <= '9' {
		return c - '0'
	}
	switch c {
	case '-':
		return 0x0A
	case 'E', 'e':
		return 0x0B
	case 'H', 'h':
		return 0x0C
	case 'L', 'l':
		return 0x0D
	case 'P', 'p':
		return 0x0E
	}
	return CodeBBlank
}

// DecodeCodeB returns the character a Code-B register value displays and
// whether its decimal point is lit.
func DecodeCodeB(b byte) (c byte, dp bool) {
	return codeB[b&0x0F], b&SegDP != 0
}

// encodeSevenSegment converts text into n Code-B register values. Bit 7 of a
// character requests its decimal point. Missing characters are blank.
func encodeSevenSegment(text string, n int, mirror bool) []byte {
	buf := make([]byte, n)
	for i := range buf {
		c := byte(' ')
		if i < len(text) {
			c = text[i]
		}
		buf[i] = codeBIndex(c&^SegDP) | c&SegDP
	}
	if mirror {
		mirrorBytes(buf)
	}
	return buf
}

// mirrorBytes reverses b in place.
func mirrorBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// encodeFont looks up n characters of text in f and splits every glyph into
// its high and low register bytes. Missing characters are spaces.
func encodeFont(text string, n int, f *segfont.Font) (hi, lo []byte) {
	hi = make([]byte, n)
	lo = make([]byte, n)
	for i := range hi {
		c := byte(' ')
		if i < len(text) {
			c = text[i]
		}
		hi[i], lo[i] = segfont.Split(f.Glyph(c))
	}
	return hi, lo
}

// encodeBarGraph converts n bar levels (0 to 8) into column bitmasks. In dot
// mode only the segment at the level is lit, otherwise every segment up to
// it. Levels above 8 are shown as 8.
func encodeBarGraph(values []byte, n int, dot bool) []byte {
	buf := make([]byte, n)
	for i := range buf {
		if i >= len(values) || values[i] == 0 {
			continue
		}
		v := min(values[i], 8)
		if dot {
			buf[i] = 1 << (v - 1)
		} else {
			buf[i] = byte(1<<v - 1)
		}
	}
	return buf
}

// fill returns n copies of b.
func fill(n int, b byte) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = b
	}
	return buf
}
