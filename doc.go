// Package max7219 controls chains of MAX7219/MAX7221 LED drivers via SPI.
//
// A MAX7219 multiplexes up to 64 LEDs as eight digit registers of eight
// segments each. Chips are daisy-chained: DOUT of one chip feeds DIN of the
// next, and all chips share CLK and LOAD. The AS1100, AS1106 and AS1107 are
// pin compatible and also supported, including their feature register.
//
// # Chain Characteristics
//
// - 16-bit register writes, address byte first, MSB first
// - Up to 10MHz serial clock, SPI mode 0
// - Code-B decoding for 7-segment digits (0-9, -, E, H, L, P, blank)
// - 16 intensity levels (0-15)
// - Scan limit, shutdown and display test per chip
//
// # Hardware Connection
//
// Connect the first chip of the chain to your system via SPI:
//
//	Chip Pin → System Pin
//	GND      → GND
//	V+       → 5V
//	DIN      → SPI Data (MOSI)
//	CLK      → SPI Clock (SCLK)
//	LOAD/CS  → SPI Chip Select, or any GPIO passed as Opts.Load
//	DOUT     → DIN of the next chip
//
// Chip 0 is the one wired to the controller.
//
// # Topology
//
// A chain is described by a Topology, an ordered list of elements. Each
// element is one logical display unit and occupies a span of digit
// registers: from DigitFrom on ChipFrom to DigitTo on ChipTo. Spans may
// cross chip boundaries:
//
//	max7219.Topology{
//		// 12 digit 7-segment display: digits 4-7 of chip 0 and all of chip 1
//		{Type: max7219.SevenSegment, ChipFrom: 0, DigitFrom: 4, ChipTo: 1, DigitTo: 7},
//		// digits 0-3 of chip 0 are not wired
//		{Type: max7219.Off, ChipFrom: 0, DigitFrom: 0, ChipTo: 0, DigitTo: 3},
//		// 8 digit 16-segment display: high bytes on chip 2, low bytes on chip 3
//		{Type: max7219.SixteenSegment, ChipFrom: 2, DigitFrom: 0, ChipTo: 2, DigitTo: 7},
//		{Type: max7219.SecondHalf, ChipFrom: 3, DigitFrom: 0, ChipTo: 3, DigitTo: 7},
//	}
//
// 14- and 16-segment digits need two registers each. The element holds the
// high glyph bytes and a SecondHalf element with the same digit range, on a
// higher chip, holds the low bytes. See package segfont for the glyph layout.
//
// Topologies can be loaded from YAML; element types marshal as text
// ("seven-segment", "matrix", "bargraph", "sixteen-segment",
// "fourteen-segment", "second-half", "off", "nc"). Call Topology.Validate
// on topologies that come from configuration.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"github.com/flavioheleno/max7219"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Create the chain: two 8 digit displays on two chips
//		dev, _ := max7219.NewSPI(spiBus, &max7219.Opts{
//			Topology: max7219.Topology{
//				{Type: max7219.SevenSegment, ChipFrom: 0, DigitFrom: 0, ChipTo: 0, DigitTo: 7},
//				{Type: max7219.Matrix, ChipFrom: 1, DigitFrom: 0, ChipTo: 1, DigitTo: 7},
//			},
//			Load: gpioreg.ByName("GPIO25"),
//		})
//		defer dev.Halt()
//
//		dev.Set7Segment("-12 HELP", 0, false)
//		dev.SetMatrix([]byte{0x18, 0x3C, 0x7E, 0xFF, 0xFF, 0x7E, 0x3C, 0x18}, 1)
//	}
//
// Every Set call addresses an element by its index in the topology. A call
// on an element of the wrong type does nothing.
//
// # Decimal Points
//
// Set7Segment reads bit 7 of every character as a decimal point request:
//
//	text := []byte("1234")
//	text[1] = max7219.WithDP(text[1]) // "12.34"
//	dev.Set7Segment(string(text), 0, false)
//
// # Frames and LOAD
//
// Every write is one frame: one address/data pair per chip of the chain,
// shifted out between LOAD going low and LOAD going high. Chips that have
// nothing to do in a frame get a NOOP, so a frame never disturbs them.
// Writing an element that spans several chips takes as many frames as the
// largest number of digits it occupies on one chip.
//
// # Control Registers
//
// Intensity, scan limit, decode mode, shutdown, display test and the
// AS1100/1106/1107 feature register can be written per chip, or to every
// chip in a single frame with AllChips:
//
//	dev.SetIntensity(3, max7219.AllChips)
//	dev.DisplayTest(1)
//
// # Debugging
//
// Pass a zerolog.Logger in Opts.Logger to trace every frame written at debug
// level.
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://www.analog.com/media/en/technical-documentation/data-sheets/MAX7219-MAX7221.pdf
package max7219
