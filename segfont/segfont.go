// Package segfont provides segment fonts for 14- and 16-segment alphanumeric
// displays driven by MAX7219 family chips.
package segfont

// Segment bits of a glyph.
const (
	A1 uint16 = 0x8000
	A2 uint16 = 0x4000
	B  uint16 = 0x2000
	C  uint16 = 0x1000
	D1 uint16 = 0x0800
	D2 uint16 = 0x0400
	E  uint16 = 0x0200
	F  uint16 = 0x0100
	G1 uint16 = 0x0080
	G2 uint16 = 0x0040
	H  uint16 = 0x0020
	I  uint16 = 0x0010
	J  uint16 = 0x0008
	K  uint16 = 0x0004
	L  uint16 = 0x0002
	M  uint16 = 0x0001
)

// Font maps character codes to glyphs. Glyphs[0] is the glyph of Start.
type Font struct {
	Start  byte
	Glyphs []uint16
}

// Glyph returns the glyph for c, or 0 (all segments off) when the font does
// not describe c.
func (f *Font) Glyph(c byte) uint16 {
	if c < f.Start || int(c-f.Start) >= len(f.Glyphs) {
		return 0
	}
	return f.Glyphs[c-f.Start]
}

// Split returns the register bytes of a glyph: hi for the first chip of a
// pair, lo for the second.
func Split(g uint16) (hi, lo byte) {
	return byte(g >> 8), byte(g)
}

// Sixteen is the 16-segment font, ASCII 0x20 to 0x7F.
var Sixteen = &Font{Start: ' ', Glyphs: sixteen[:]}

// Fourteen is the 14-segment font, ASCII 0x20 to 0x7F. The single top and
// bottom bars are driven by the A1 and D1 bits.
var Fourteen = &Font{Start: ' ', Glyphs: fold(sixteen[:])}

// fold merges split top and bottom bars onto A1 and D1.
func fold(glyphs []uint16) []uint16 {
	out := make([]uint16, len(glyphs))
	for i, g := range glyphs {
		if g&(A1|A2) != 0 {
			g |= A1
		}
		if g&(D1|D2) != 0 {
			g |= D1
		}
		out[i] = g &^ (A2 | D2)
	}
	return out
}

const (
	top    = A1 | A2
	bottom = D1 | D2
	middle = G1 | G2
	center = I | L
)

var sixteen = [0x80 - ' ']uint16{
	' ' - ' ':  0,
	'!' - ' ':  B | C,
	'"' - ' ':  B | I,
	'#' - ' ':  B | C | bottom | middle | center,
	'$' - ' ':  top | F | middle | C | bottom | center,
	'%' - ' ':  A1 | F | G1 | I | J | M | L | G2 | C | D1,
	'&' - ' ':  A1 | H | J | G1 | E | bottom | K,
	'\'' - ' ': I,
	'(' - ' ':  J | K,
	')' - ' ':  H | M,
	'*' - ' ':  middle | H | I | J | K | L | M,
	'+' - ' ':  middle | center,
	',' - ' ':  M,
	'-' - ' ':  middle,
	'.' - ' ':  0,
	'/' - ' ':  J | M,
	'0' - ' ':  top | B | C | bottom | E | F | J | M,
	'1' - ' ':  B | C | J,
	'2' - ' ':  top | B | middle | E | bottom,
	'3' - ' ':  top | B | G2 | C | bottom,
	'4' - ' ':  F | middle | B | C,
	'5' - ' ':  top | F | middle | C | bottom,
	'6' - ' ':  top | F | E | bottom | C | middle,
	'7' - ' ':  top | B | C,
	'8' - ' ':  top | B | C | bottom | E | F | middle,
	'9' - ' ':  top | B | C | bottom | F | middle,
	':' - ' ':  center,
	';' - ' ':  I | M,
	'<' - ' ':  J | K,
	'=' - ' ':  middle | bottom,
	'>' - ' ':  H | M,
	'?' - ' ':  top | B | G2 | L,
	'@' - ' ':  top | B | bottom | E | F | G2 | I,
	'A' - ' ':  top | B | C | E | F | middle,
	'B' - ' ':  top | B | C | bottom | G2 | center,
	'C' - ' ':  top | bottom | E | F,
	'D' - ' ':  top | B | C | bottom | center,
	'E' - ' ':  top | bottom | E | F | G1,
	'F' - ' ':  top | E | F | G1,
	'G' - ' ':  top | C | bottom | E | F | G2,
	'H' - ' ':  B | C | E | F | middle,
	'I' - ' ':  top | bottom | center,
	'J' - ' ':  B | C | bottom | E,
	'K' - ' ':  E | F | G1 | J | K,
	'L' - ' ':  bottom | E | F,
	'M' - ' ':  B | C | E | F | H | J,
	'N' - ' ':  B | C | E | F | H | K,
	'O' - ' ':  top | B | C | bottom | E | F,
	'P' - ' ':  top | B | E | F | middle,
	'Q' - ' ':  top | B | C | bottom | E | F | K,
	'R' - ' ':  top | B | E | F | middle | K,
	'S' - ' ':  top | C | bottom | F | middle,
	'T' - ' ':  top | center,
	'U' - ' ':  B | C | bottom | E | F,
	'V' - ' ':  E | F | J | M,
	'W' - ' ':  B | C | E | F | K | M,
	'X' - ' ':  H | J | K | M,
	'Y' - ' ':  H | J | L,
	'Z' - ' ':  top | bottom | J | M,
	'[' - ' ':  A2 | D1 | center,
	'\\' - ' ': H | K,
	']' - ' ':  A1 | D2 | center,
	'^' - ' ':  K | M,
	'_' - ' ':  bottom,
	'`' - ' ':  H,
	'a' - ' ':  D1 | D2 | E | G1 | L,
	'b' - ' ':  D2 | E | F | G1 | L,
	'c' - ' ':  D2 | E | G1,
	'd' - ' ':  B | C | D1 | G2 | L,
	'e' - ' ':  D2 | E | G1 | M,
	'f' - ' ':  A2 | middle | center,
	'g' - ' ':  A1 | F | G1 | center | D2,
	'h' - ' ':  E | F | G1 | L,
	'i' - ' ':  L,
	'j' - ' ':  L | D2,
	'k' - ' ':  center | J | K,
	'l' - ' ':  E | F,
	'm' - ' ':  C | E | middle | L,
	'n' - ' ':  E | G1 | L,
	'o' - ' ':  D2 | E | G1 | L,
	'p' - ' ':  A1 | E | F | G1 | I,
	'q' - ' ':  A1 | F | G1 | center,
	'r' - ' ':  E | G1,
	's' - ' ':  A1 | F | G1 | L | D2,
	't' - ' ':  D2 | E | F | G1,
	'u' - ' ':  D2 | E | L,
	'v' - ' ':  E | M,
	'w' - ' ':  C | E | K | M,
	'x' - ' ':  H | J | K | M,
	'y' - ' ':  B | C | D1 | G2 | I,
	'z' - ' ':  D2 | G1 | M,
	'{' - ' ':  A2 | D1 | G1 | center,
	'|' - ' ':  center,
	'}' - ' ':  A1 | D2 | G2 | center,
	'~' - ' ':  G1 | H | J | G2,
	0x7f - ' ': 0xffff,
}
