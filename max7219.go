// Package max7219 controls chains of MAX7219/MAX7221 LED drivers via SPI.
//
// A chain is described by a Topology: an ordered list of elements, each one
// a 7-segment display, 14- or 16-segment display, dot matrix or bargraph
// mapped onto a span of chips and digit registers.
package max7219

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Register addresses.
const (
	regNoop        byte = 0x00
	regDigit0      byte = 0x01
	regDecodeMode  byte = 0x09
	regIntensity   byte = 0x0A
	regScanLimit   byte = 0x0B
	regShutdown    byte = 0x0C
	regFeature     byte = 0x0E // AS1100/1106/1107 only
	regDisplayTest byte = 0x0F
)

// Segment bits of a raw (not decoded) 7-segment digit register.
const (
	SegDP byte = 0x80
	SegA  byte = 0x40
	SegB  byte = 0x20
	SegC  byte = 0x10
	SegD  byte = 0x08
	SegE  byte = 0x04
	SegF  byte = 0x02
	SegG  byte = 0x01
)

// CodeBBlank is the Code-B value of a blank digit.
const CodeBBlank byte = 0x0F

// Feature register flags (AS1100/1106/1107). See SetFeatureRegister.
const (
	FeatureExternalClock byte = 0x01
	FeatureReset         byte = 0x02
	FeatureDecodeHex     byte = 0x04
	FeatureSPIEnable     byte = 0x08
	FeatureBlink         byte = 0x10
	FeatureBlinkSlow     byte = 0x20
	FeatureBlinkSync     byte = 0x40
	FeatureBlinkStartOn  byte = 0x80
)

const (
	flagNormal      byte = 0x01
	flagSaveFeature byte = 0x80
	flagDisplayTest byte = 0x01
)

// AllChips directs a register write to every chip in the chain.
const AllChips = -1

const (
	defaultIntensity byte = 0x08
	// The datasheet asks for 25ns between LOAD going low and the first clock.
	minSettleDelay = 25 * time.Nanosecond
)

var (
	// ErrHalted is returned by every operation after Halt.
	ErrHalted = errors.New("max7219: halted")
	// ErrElementRange is returned for an element index outside the topology.
	ErrElementRange = errors.New("max7219: element index out of range")
	// ErrChipRange is returned for a chip index outside the chain.
	ErrChipRange = errors.New("max7219: chip index out of range")
	// ErrNoSecondHalf is returned when a 14- or 16-segment element has no
	// SecondHalf companion.
	ErrNoSecondHalf = errors.New("max7219: no second-half element")
)

// LoadPin is the LOAD (#CS) line shared by every chip of the chain.
// gpio.PinOut implements it.
type LoadPin interface {
	Out(l gpio.Level) error
}

// Opts is the configuration for a MAX7219 chain.
type Opts struct {
	// Topology of the chain (default: one 8 digit 7-segment display on chip 0).
	// It is copied; later changes have no effect on the device.
	Topology Topology

	// LOAD line (optional). When nil the SPI port's chip select latches
	// every frame.
	Load LoadPin

	// SPI clock for NewSPI (default and maximum: 10MHz)
	Freq physic.Frequency

	// Initial brightness, 1-15 (default: 8). Use SetIntensity for 0.
	Intensity byte

	// Delay between LOAD going low and the first bit (minimum: 25ns)
	SettleDelay time.Duration

	// Debug trace of every frame written (default: none)
	Logger *zerolog.Logger
}

// Dev is the device handle for a chain of MAX7219 chips.
type Dev struct {
	mu sync.Mutex

	// Communication
	c      conn.Conn
	load   LoadPin
	settle time.Duration
	log    zerolog.Logger

	// Chain geometry, fixed at construction
	topology Topology
	chips    int
	decode   []byte

	// State
	halted bool
}

// NewSPI creates a new MAX7219 chain connected via SPI.
//
// The SPI port is configured for Mode0 (CPOL=0, CPHA=0), 8-bit transfers,
// most significant bit first, at opts.Freq.
//
// opts can be nil to use defaults (a single 8 digit 7-segment display).
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	f := opts.Freq
	if f == 0 {
		f = 10 * physic.MegaHertz
	}
	if f > 10*physic.MegaHertz {
		return nil, errors.New("max7219: clock must be at most 10MHz")
	}

	c, err := p.Connect(f, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("max7219: %w", err)
	}
	return New(c, opts)
}

// New creates a new MAX7219 chain on an established connection, then
// initializes every chip and clears every element.
//
// opts can be nil to use defaults (a single 8 digit 7-segment display).
func New(c conn.Conn, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	if opts.Intensity > 15 {
		return nil, errors.New("max7219: intensity must be between 0 and 15")
	}

	topology := DefaultTopology()
	if len(opts.Topology) != 0 {
		topology = append(Topology(nil), opts.Topology...)
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	chips := topology.ChipCount()
	d := &Dev{
		c:        c,
		load:     opts.Load,
		settle:   max(opts.SettleDelay, minSettleDelay),
		log:      log,
		topology: topology,
		chips:    chips,
		decode:   topology.decodeModes(chips),
	}

	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// init brings every chip to a known state. The MAX7219 has no reset line,
// so every register that matters is written.
func (d *Dev) init(opts *Opts) error {
	d.log.Debug().
		Int("elements", len(d.topology)).
		Int("chips", d.chips).
		Msg("max7219: topology")

	if d.load != nil {
		if err := d.load.Out(gpio.High); err != nil {
			return fmt.Errorf("max7219: failed to pull LOAD high: %w", err)
		}
	}

	intensity := defaultIntensity
	if opts.Intensity != 0 {
		intensity = opts.Intensity
	}

	cmds := []struct{ addr, value byte }{
		{regDisplayTest, 0x00},
		{regScanLimit, 0x07},
		{regIntensity, intensity},
	}
	for _, cmd := range cmds {
		if err := d.writeRegister(cmd.addr, cmd.value, AllChips); err != nil {
			return err
		}
	}

	// Decode masks differ per chip but fit in a single frame.
	regs := make([]register, d.chips)
	for i, mask := range d.decode {
		regs[i] = register{regDecodeMode, mask}
	}
	if err := d.writeFrame(regs); err != nil {
		return err
	}

	for _, e := range d.topology {
		if e.Type != NC {
			continue
		}
		if err := d.writeRegister(regScanLimit, byte(max(e.DigitFrom-1, 0)), e.ChipFrom); err != nil {
			return err
		}
	}

	if err := d.writeRegister(regShutdown, flagNormal, AllChips); err != nil {
		return err
	}

	for _, e := range d.topology {
		if err := d.clear(e); err != nil {
			return err
		}
	}
	return nil
}

// ChipCount returns the number of chips in the chain.
func (d *Dev) ChipCount() int {
	return d.chips
}

// Topology returns a copy of the chain's topology.
func (d *Dev) Topology() Topology {
	return append(Topology(nil), d.topology...)
}

// Shutdown puts a chip (or AllChips) in low power mode. The display goes
// dark but digit registers keep their content. saveFeature keeps the
// AS1106/1107 feature register from being reset.
func (d *Dev) Shutdown(chip int, saveFeature bool) error {
	return d.command(regShutdown, saveFlag(saveFeature), chip)
}

// NoShutdown brings a chip (or AllChips) back to normal operation.
func (d *Dev) NoShutdown(chip int, saveFeature bool) error {
	return d.command(regShutdown, saveFlag(saveFeature)|flagNormal, chip)
}

func saveFlag(save bool) byte {
	if save {
		return flagSaveFeature
	}
	return 0
}

// DisplayTest lights every LED of a chip (or AllChips) at full intensity.
func (d *Dev) DisplayTest(chip int) error {
	return d.command(regDisplayTest, flagDisplayTest, chip)
}

// NoDisplayTest returns a chip (or AllChips) to normal display.
func (d *Dev) NoDisplayTest(chip int) error {
	return d.command(regDisplayTest, 0x00, chip)
}

// SetScanLimit sets the number of digits scanned by a chip (or AllChips),
// minus one (0-7). See the datasheet for its effect on brightness.
func (d *Dev) SetScanLimit(limit byte, chip int) error {
	return d.command(regScanLimit, limit&0x07, chip)
}

// SetIntensity sets the brightness of a chip (or AllChips), 0-15.
func (d *Dev) SetIntensity(level byte, chip int) error {
	return d.command(regIntensity, level&0x0F, chip)
}

// SetDecodeMode sets which digits of a chip (or AllChips) go through the
// Code-B decoder, one bit per digit.
//
// The topology already sets decode modes; changing them under a topology
// element makes its rendering meaningless.
func (d *Dev) SetDecodeMode(mask byte, chip int) error {
	return d.command(regDecodeMode, mask, chip)
}

// SetFeatureRegister writes the AS1100/1106/1107 feature register of a chip
// (or AllChips). MAX7219 chips ignore it.
func (d *Dev) SetFeatureRegister(flags byte, chip int) error {
	return d.command(regFeature, flags, chip)
}

// command writes a control register under the device lock.
func (d *Dev) command(addr, value byte, chip int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return ErrHalted
	}
	return d.writeRegister(addr, value, chip)
}

// Halt clears every element and puts every chip in shutdown.
// After calling Halt, the chain will not respond to further calls until a
// new Dev is created.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return nil
	}

	var errs []error
	for _, e := range d.topology {
		errs = append(errs, d.clear(e))
	}
	for chip := 0; chip < d.chips; chip++ {
		errs = append(errs, d.writeRegister(regShutdown, 0x00, chip))
	}
	d.halted = true
	d.log.Debug().Msg("max7219: halted")
	return errors.Join(errs...)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("max7219.Dev{%d chips, %d elements}", d.chips, len(d.topology))
}

var _ conn.Resource = &Dev{}
