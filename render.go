package max7219

import (
	"fmt"
	"time"

	"github.com/flavioheleno/max7219/segfont"
	"periph.io/x/conn/v3/gpio"
)

// register is one address/data pair. The zero value is a NOOP.
type register struct {
	addr, data byte
}

var noop = register{regNoop, 0x00}

// writeRegister writes one register on a single chip, or on every chip when
// chip is AllChips, in a single frame.
func (d *Dev) writeRegister(addr, value byte, chip int) error {
	regs := make([]register, d.chips)
	if chip == AllChips {
		for i := range regs {
			regs[i] = register{addr, value}
		}
	} else {
		if chip < 0 || chip >= d.chips {
			return fmt.Errorf("%w: %d", ErrChipRange, chip)
		}
		regs[chip] = register{addr, value}
	}
	return d.writeFrame(regs)
}

// writeFrame sends one register pair to every chip of the chain, regs[i]
// going to chip i. Chip 0 sits next to the controller, so its pair is
// shifted last.
func (d *Dev) writeFrame(regs []register) error {
	frame := make([]byte, 2*d.chips)
	for chip, r := range regs {
		i := 2 * (d.chips - 1 - chip)
		frame[i] = r.addr
		frame[i+1] = r.data
	}
	return d.transfer(frame)
}

// transfer shifts a frame out between LOAD going low and LOAD going high.
// Every chip latches its pair on the rising edge, so the frame is atomic.
func (d *Dev) transfer(frame []byte) error {
	if d.load != nil {
		if err := d.load.Out(gpio.Low); err != nil {
			return fmt.Errorf("max7219: failed to pull LOAD low: %w", err)
		}
		time.Sleep(d.settle)
	}

	d.log.Debug().Hex("frame", frame).Msg("max7219: write")
	if err := d.c.Tx(frame, nil); err != nil {
		return fmt.Errorf("max7219: %w", err)
	}

	if d.load != nil {
		if err := d.load.Out(gpio.High); err != nil {
			return fmt.Errorf("max7219: failed to pull LOAD high: %w", err)
		}
	}
	return nil
}

// renderSpan writes raw digit values onto the span of e, one frame per digit
// row. raw holds one contiguous block per spanned chip, in chip order. In each
// frame every spanned chip that still has digits left gets one, every other
// chip a NOOP.
func (d *Dev) renderSpan(raw []byte, e Element) error {
	if len(raw) != e.DigitCount() {
		panic(fmt.Sprintf("max7219: %d values for %d digits", len(raw), e.DigitCount()))
	}

	regs := make([]register, d.chips)
	for row := 0; row < e.frames(); row++ {
		offset := 0
		for j := 0; j < e.Chips(); j++ {
			n := e.registers(j)
			r := noop
			if row < n {
				digit := row
				if j == 0 {
					digit += e.DigitFrom
				}
				r = register{regDigit0 + byte(digit), raw[offset+row]}
			}
			regs[e.ChipFrom+j] = r
			offset += n
		}
		if err := d.writeFrame(regs); err != nil {
			return err
		}
	}
	return nil
}

// renderFont writes text onto a 14- or 16-segment element and its companion.
func (d *Dev) renderFont(text string, e Element, f *segfont.Font) error {
	half, ok := d.topology.secondHalf(e)
	if !ok {
		return ErrNoSecondHalf
	}
	hi, lo := encodeFont(text, e.DigitCount(), f)
	if err := d.renderSpan(hi, e); err != nil {
		return err
	}
	return d.renderSpan(lo, half)
}

// element returns the i-th topology element. d.mu must be held.
func (d *Dev) element(i int) (Element, error) {
	if d.halted {
		return Element{}, ErrHalted
	}
	if i < 0 || i >= len(d.topology) {
		return Element{}, fmt.Errorf("%w: %d", ErrElementRange, i)
	}
	return d.topology[i], nil
}

// ClearDisplay switches off every LED of an element. Off and NC elements
// are left alone.
func (d *Dev) ClearDisplay(element int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, err := d.element(element)
	if err != nil {
		return err
	}
	return d.clear(e)
}

func (d *Dev) clear(e Element) error {
	n := e.DigitCount()
	switch e.Type {
	case Off, NC:
		return nil
	case SevenSegment:
		return d.renderSpan(fill(n, CodeBBlank), e)
	case SixteenSegment, FourteenSegment:
		half, ok := d.topology.secondHalf(e)
		if !ok {
			return ErrNoSecondHalf
		}
		if err := d.renderSpan(make([]byte, n), e); err != nil {
			return err
		}
		return d.renderSpan(make([]byte, n), half)
	}
	return d.renderSpan(make([]byte, n), e)
}

// ZeroDisplay shows a meaningful zero on an element: "0." in the last digit
// of a 7-segment display, "_" in the first digit of a 14- or 16-segment
// display, the bottom segment of every bargraph column, the first pixel of
// a matrix.
func (d *Dev) ZeroDisplay(element int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, err := d.element(element)
	if err != nil {
		return err
	}

	n := e.DigitCount()
	switch e.Type {
	case SevenSegment:
		buf := fill(n, CodeBBlank)
		buf[n-1] = SegDP // '0' with its decimal point
		return d.renderSpan(buf, e)
	case SixteenSegment:
		return d.renderFont("_", e, segfont.Sixteen)
	case FourteenSegment:
		return d.renderFont("_", e, segfont.Fourteen)
	case Matrix:
		buf := make([]byte, n)
		buf[0] = 0x01
		return d.renderSpan(buf, e)
	case BarGraph:
		return d.renderSpan(fill(n, 0x01), e)
	}
	return nil
}

// Set7Segment shows text on a 7-segment element, one character per digit:
// 0-9, '-', E, H, L, P (either case) and space. Other characters are blank.
// Set bit 7 of a character (see WithDP) to light its decimal point. mirror
// reverses the digit order, for displays wired right to left.
//
// It does nothing if the element is not a 7-segment display.
func (d *Dev) Set7Segment(text string, element int, mirror bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, err := d.element(element)
	if err != nil || e.Type != SevenSegment {
		return err
	}
	return d.renderSpan(encodeSevenSegment(text, e.DigitCount(), mirror), e)
}

// Set16Segment shows text on a 16-segment element using segfont.Sixteen.
//
// It does nothing if the element is not a 16-segment display.
func (d *Dev) Set16Segment(text string, element int) error {
	return d.setText(text, element, SixteenSegment, segfont.Sixteen)
}

// Set14Segment shows text on a 14-segment element using segfont.Fourteen.
//
// It does nothing if the element is not a 14-segment display.
func (d *Dev) Set14Segment(text string, element int) error {
	return d.setText(text, element, FourteenSegment, segfont.Fourteen)
}

// SetFromFont shows text on a 14- or 16-segment element using f. The high
// byte of every glyph goes to the element, the low byte to its SecondHalf
// companion.
//
// It does nothing if the element is not a 14- or 16-segment display.
func (d *Dev) SetFromFont(text string, element int, f *segfont.Font) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, err := d.element(element)
	if err != nil || (e.Type != SixteenSegment && e.Type != FourteenSegment) {
		return err
	}
	return d.renderFont(text, e, f)
}

func (d *Dev) setText(text string, element int, t ElementType, f *segfont.Font) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, err := d.element(element)
	if err != nil || e.Type != t {
		return err
	}
	return d.renderFont(text, e, f)
}

// SetBarGraph shows one level (0-8) per column of a bargraph element. dot
// lights only the segment at the level instead of a bar up to it.
//
// It does nothing if the element is not a bargraph.
func (d *Dev) SetBarGraph(values []byte, dot bool, element int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, err := d.element(element)
	if err != nil || e.Type != BarGraph {
		return err
	}
	return d.renderSpan(encodeBarGraph(values, e.DigitCount(), dot), e)
}

// SetMatrix writes one raw bitmask per row of a matrix element. Missing
// rows are cleared.
//
// It does nothing if the element is not a matrix.
func (d *Dev) SetMatrix(rows []byte, element int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, err := d.element(element)
	if err != nil || e.Type != Matrix {
		return err
	}
	buf := make([]byte, e.DigitCount())
	copy(buf, rows)
	return d.renderSpan(buf, e)
}
