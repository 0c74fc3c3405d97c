// Package segfont provides segment fonts for 14- and 16-segment alphanumeric
// displays driven by MAX7219 family chips.
//
// The MAX7219 has no character generator for multi-segment displays, so two
// digit registers drive one display digit. A glyph is a 16-bit word: the high
// byte goes to the first register, the low byte to the paired register.
//
// Bit layout, most significant bit first:
//
//	high byte:  A1  A2  B   C   D1  D2  E   F
//	low byte:   G1  G2  H   I   J   K   L   M
//
// A1/A2 are the left and right halves of the top bar, D1/D2 the right and
// left halves of the bottom bar, G1/G2 the left and right halves of the middle
// bar. H, J, K and M are the diagonals (top-left, top-right, bottom-right,
// bottom-left), I and L the upper and lower center verticals.
//
// Sixteen covers ASCII 0x20 to 0x7F. Fourteen is derived from it for displays
// with a single top and bottom bar, wired to A1 and D1.
//
// Sixteen uses the same bit layout as the 16-segment table of the Arduino
// MAX7219 library and matches it for most of its 36 glyphs (space to 'C').
// Thirteen glyphs differ on purpose:
//
//	'2' '3' '4'      stray I or F segment dropped
//	'<' '>'          stray middle bar half dropped
//	'6' '9'          full top and bottom bars
//	'#'              B and C verticals added
//	'%' '&' '@'      diagonals and center bars redrawn
//	',' '?'          tail on M, hook on B instead of C
//
// Example usage:
//
//	g := segfont.Sixteen.Glyph('A')
//	hi, lo := segfont.Split(g)
package segfont
