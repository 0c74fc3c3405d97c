package max7219

import (
	"errors"
	"fmt"
)

// ElementType is the kind of display unit a topology element drives.
type ElementType byte

const (
	// SevenSegment digits use the chip's Code-B decoder.
	SevenSegment ElementType = 0x01
	// Matrix rows are written raw, one bitmask per digit register.
	Matrix ElementType = 0x02
	// BarGraph columns are written as bars or dots of 0 to 8 segments.
	BarGraph ElementType = 0x03
	// SixteenSegment digits take two registers each: the high byte of the
	// glyph on this element, the low byte on its SecondHalf companion.
	SixteenSegment ElementType = 0x04
	// FourteenSegment is like SixteenSegment with single top and bottom bars.
	FourteenSegment ElementType = 0x05
	// SecondHalf holds the low glyph bytes of a 14- or 16-segment element.
	SecondHalf ElementType = 0x06
	// Off digits are never touched by the driver.
	Off ElementType = 0xFD
	// NC digits are not connected: the chip's scan limit stops before
	// DigitFrom.
	NC ElementType = 0xFE
)

var elementTypeNames = map[ElementType]string{
	SevenSegment:    "seven-segment",
	Matrix:          "matrix",
	BarGraph:        "bargraph",
	SixteenSegment:  "sixteen-segment",
	FourteenSegment: "fourteen-segment",
	SecondHalf:      "second-half",
	Off:             "off",
	NC:              "nc",
}

func (t ElementType) String() string {
	if s, ok := elementTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("ElementType(0x%02X)", byte(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t ElementType) MarshalText() ([]byte, error) {
	s, ok := elementTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("max7219: unknown element type 0x%02X", byte(t))
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ElementType) UnmarshalText(text []byte) error {
	for k, v := range elementTypeNames {
		if v == string(text) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("max7219: unknown element type %q", text)
}

// Element maps one logical display unit onto the chain. It occupies digits
// DigitFrom..7 on ChipFrom, every digit of the chips in between and digits
// 0..DigitTo on ChipTo. A single chip element occupies DigitFrom..DigitTo.
type Element struct {
	Type      ElementType `yaml:"type"`
	ChipFrom  int         `yaml:"chip_from"`
	DigitFrom int         `yaml:"digit_from"`
	ChipTo    int         `yaml:"chip_to"`
	DigitTo   int         `yaml:"digit_to"`
}

// DigitCount returns the number of digit registers the element spans.
func (e Element) DigitCount() int {
	if e.ChipFrom == e.ChipTo {
		return e.DigitTo - e.DigitFrom + 1
	}
	return (8 - e.DigitFrom) + 8*(e.ChipTo-e.ChipFrom-1) + (e.DigitTo + 1)
}

// Chips returns the number of chips the element spans.
func (e Element) Chips() int {
	return e.ChipTo - e.ChipFrom + 1
}

// registers returns the number of digits the element occupies on the j-th
// chip of its span.
func (e Element) registers(j int) int {
	if e.ChipFrom == e.ChipTo {
		return e.DigitTo - e.DigitFrom + 1
	}
	switch j {
	case 0:
		return 8 - e.DigitFrom
	case e.ChipTo - e.ChipFrom:
		return e.DigitTo + 1
	}
	return 8
}

// frames returns the number of frames needed to reach every digit of the
// element, one digit per spanned chip per frame.
func (e Element) frames() int {
	n := 0
	for j := 0; j < e.Chips(); j++ {
		n = max(n, e.registers(j))
	}
	return n
}

// digits calls fn for every (chip, digit) pair of the element, in the order
// the element's bytes are laid out.
func (e Element) digits(fn func(chip, digit int)) {
	for j := 0; j < e.Chips(); j++ {
		first := 0
		if j == 0 {
			first = e.DigitFrom
		}
		for k := 0; k < e.registers(j); k++ {
			fn(e.ChipFrom+j, first+k)
		}
	}
}

// Topology is the ordered list of elements driven by one chain.
type Topology []Element

// DefaultTopology is one 8 digit 7-segment display on chip 0.
func DefaultTopology() Topology {
	return Topology{{Type: SevenSegment, ChipFrom: 0, DigitFrom: 0, ChipTo: 0, DigitTo: 7}}
}

// ChipCount returns the length of the chain: the highest chip index any
// element references, plus one.
func (t Topology) ChipCount() int {
	n := 0
	for _, e := range t {
		n = max(n, e.ChipTo+1)
	}
	return n
}

// decodeModes returns the decode mode register value of every chip: Code-B
// for the digits claimed by 7-segment elements, raw for everything else.
func (t Topology) decodeModes(chips int) []byte {
	masks := make([]byte, chips)
	for _, e := range t {
		if e.Type != SevenSegment {
			continue
		}
		e.digits(func(chip, digit int) {
			masks[chip] |= 1 << digit
		})
	}
	return masks
}

// secondHalf finds the companion of a 14- or 16-segment element: the
// SecondHalf element with the same digit range and span width on the nearest
// higher chip index.
func (t Topology) secondHalf(e Element) (Element, bool) {
	var half Element
	found := false
	for _, c := range t {
		if c.Type != SecondHalf || c.DigitFrom != e.DigitFrom || c.DigitTo != e.DigitTo {
			continue
		}
		if c.ChipTo-c.ChipFrom != e.ChipTo-e.ChipFrom || c.ChipFrom <= e.ChipFrom {
			continue
		}
		if !found || c.ChipFrom < half.ChipFrom {
			half, found = c, true
		}
	}
	return half, found
}

// Validate checks that every element is well formed, that no two elements
// claim the same digit and that every 14- and 16-segment element has a
// SecondHalf companion. Rendering never calls Validate; it is meant for
// topologies loaded from configuration.
func (t Topology) Validate() error {
	if len(t) == 0 {
		return errors.New("max7219: empty topology")
	}
	owner := map[[2]int]int{}
	for i, e := range t {
		if _, ok := elementTypeNames[e.Type]; !ok {
			return fmt.Errorf("max7219: element %d: unknown type 0x%02X", i, byte(e.Type))
		}
		if e.ChipFrom < 0 || e.ChipFrom > e.ChipTo {
			return fmt.Errorf("max7219: element %d: invalid chip range %d..%d", i, e.ChipFrom, e.ChipTo)
		}
		if e.DigitFrom < 0 || e.DigitFrom > 7 || e.DigitTo < 0 || e.DigitTo > 7 {
			return fmt.Errorf("max7219: element %d: digits must be between 0 and 7", i)
		}
		if e.ChipFrom == e.ChipTo && e.DigitFrom > e.DigitTo {
			return fmt.Errorf("max7219: element %d: invalid digit range %d..%d", i, e.DigitFrom, e.DigitTo)
		}
		var err error
		e.digits(func(chip, digit int) {
			if j, ok := owner[[2]int{chip, digit}]; ok && err == nil {
				err = fmt.Errorf("max7219: element %d overlaps element %d at chip %d digit %d", i, j, chip, digit)
			}
			owner[[2]int{chip, digit}] = i
		})
		if err != nil {
			return err
		}
		if e.Type == SixteenSegment || e.Type == FourteenSegment {
			if _, ok := t.secondHalf(e); !ok {
				return fmt.Errorf("max7219: element %d: %w", i, ErrNoSecondHalf)
			}
		}
	}
	return nil
}
