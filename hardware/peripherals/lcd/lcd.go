// This file is part of Bensim.
//
// Bensim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bensim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Bensim.  If not, see <https://www.gnu.org/licenses/>.

package lcd

import (
	"fmt"
	"image"
	"strings"

	"github.com/sixfiveohtwo/bensim/logger"
)

// Geometry of the display.
const (
	Columns = 16
	Rows    = 2
)

// Default register addresses.
const (
	DefaultControl = 0x6000
	DefaultData    = 0x6001
)

// the number of DDRAM locations in each row. only the first Columns
// locations are visible without shifting the display.
const rowLength = 40

// DDRAM address of each row.
var rowAddress = [Rows]uint8{0x00, 0x40}

// size of the character generator RAM. eight characters of eight lines.
const cgramSize = 64

// Instruction bits. The highest set bit of an instruction byte identifies the
// instruction.
const (
	instClear        = 0x01
	instHome         = 0x02
	instEntryMode    = 0x04
	instDisplay      = 0x08
	instShift        = 0x10
	instFunctionSet  = 0x20
	instCGRAMAddress = 0x40
	instDDRAMAddress = 0x80
)

// Frame is the state of the display after a redraw. It is passed to every
// Output when the LCD is flushed.
type Frame struct {
	// the visible characters of each row. characters are converted with
	// CharacterRune()
	Lines [Rows]string

	// the visible character codes of each row
	Codes [Rows][Columns]uint8

	// cursor position. Column is -1 if the cursor is not in the visible area
	CursorRow    int
	CursorColumn int

	DisplayOn bool
	CursorOn  bool
	BlinkOn   bool

	// rendered image of the display
	Image *image.RGBA
}

// Output is implemented by types that can present the LCD.
type Output interface {
	PresentLCD(Frame) error
}

// LCD represents the HD44780 controller. It implements the memory.Peripheral
// interface.
type LCD struct {
	ddram [0x80]uint8
	cgram [cgramSize]uint8

	// address counter. whether it refers to DDRAM or CGRAM depends on the
	// most recent address instruction
	addr   uint8
	cgMode bool

	// entry mode
	Increment bool
	Shift     bool

	// display control
	DisplayOn bool
	CursorOn  bool
	BlinkOn   bool

	// function set. recorded but the register interface is always eight bits
	// wide
	EightBit  bool
	TwoLine   bool
	LargeFont bool

	// display shift. the number of positions the display has been shifted to
	// the left
	shift int

	// number of register writes of each kind
	Instructions int
	Characters   int

	renderer *renderer
	frame    Frame
	outputs  []Output
}

// NewLCD is the preferred method of initialisation for the LCD type.
func NewLCD() *LCD {
	lcd := &LCD{
		renderer: newRenderer(),
	}
	lcd.Reset()
	return lcd
}

// Reset the controller to the state after power on. Outputs are not removed.
func (lcd *LCD) Reset() {
	for i := range lcd.ddram {
		lcd.ddram[i] = ' '
	}
	for i := range lcd.cgram {
		lcd.cgram[i] = 0
	}
	lcd.addr = 0
	lcd.cgMode = false
	lcd.Increment = true
	lcd.Shift = false
	lcd.DisplayOn = false
	lcd.CursorOn = false
	lcd.BlinkOn = false
	lcd.EightBit = true
	lcd.TwoLine = true
	lcd.LargeFont = false
	lcd.shift = 0
	lcd.Instructions = 0
	lcd.Characters = 0
	lcd.Redraw()
}

// AddOutput adds an output to the list of outputs that are updated when the
// LCD is flushed.
func (lcd *LCD) AddOutput(o Output) {
	lcd.outputs = append(lcd.outputs, o)
}

// ApplyRegisterWrite implements the memory.Peripheral interface.
func (lcd *LCD) ApplyRegisterWrite(isData bool, value uint8) {
	if isData {
		lcd.Characters++
		lcd.writeData(value)
		return
	}
	lcd.Instructions++
	lcd.instruction(value)
}

func (lcd *LCD) instruction(value uint8) {
	switch {
	case value&instDDRAMAddress == instDDRAMAddress:
		lcd.cgMode = false
		lcd.addr = lcd.normaliseDDRAM(value &^ instDDRAMAddress)

	case value&instCGRAMAddress == instCGRAMAddress:
		lcd.cgMode = true
		lcd.addr = value & (cgramSize - 1)

	case value&instFunctionSet == instFunctionSet:
		lcd.EightBit = value&0x10 == 0x10
		lcd.TwoLine = value&0x08 == 0x08
		lcd.LargeFont = value&0x04 == 0x04
		if !lcd.EightBit {
			logger.Logf(logger.Allow, "lcd", "four bit interface requested (%#02x): register interface remains eight bits wide", value)
		}

	case value&instShift == instShift:
		right := value&0x04 == 0x04
		if value&0x08 == 0x08 {
			lcd.shiftDisplay(right)
		} else {
			lcd.moveCursor(right)
		}

	case value&instDisplay == instDisplay:
		lcd.DisplayOn = value&0x04 == 0x04
		lcd.CursorOn = value&0x02 == 0x02
		lcd.BlinkOn = value&0x01 == 0x01

	case value&instEntryMode == instEntryMode:
		lcd.Increment = value&0x02 == 0x02
		lcd.Shift = value&0x01 == 0x01

	case value&instHome == instHome:
		lcd.cgMode = false
		lcd.addr = 0
		lcd.shift = 0

	case value&instClear == instClear:
		for i := range lcd.ddram {
			lcd.ddram[i] = ' '
		}
		lcd.cgMode = false
		lcd.addr = 0
		lcd.shift = 0
		lcd.Increment = true
	}
}

func (lcd *LCD) writeData(value uint8) {
	if lcd.cgMode {
		lcd.cgram[lcd.addr] = value & 0x1f
		if lcd.Increment {
			lcd.addr = (lcd.addr + 1) & (cgramSize - 1)
		} else {
			lcd.addr = (lcd.addr - 1) & (cgramSize - 1)
		}
		return
	}

	lcd.ddram[lcd.addr] = value
	lcd.moveCursor(lcd.Increment)
	if lcd.Shift {
		lcd.shiftDisplay(!lcd.Increment)
	}
}

// normaliseDDRAM maps an address outside of the two rows to the start of the
// next row.
func (lcd *LCD) normaliseDDRAM(addr uint8) uint8 {
	switch {
	case addr < rowLength:
		return addr
	case addr < rowAddress[1]:
		return rowAddress[1]
	case addr < rowAddress[1]+rowLength:
		return addr
	}
	return 0
}

// moveCursor moves the DDRAM address counter one position. The counter wraps
// from the end of the first row to the start of the second, and from the end
// of the second row to the start of the first.
func (lcd *LCD) moveCursor(right bool) {
	if right {
		switch lcd.addr {
		case rowLength - 1:
			lcd.addr = rowAddress[1]
		case rowAddress[1] + rowLength - 1:
			lcd.addr = 0
		default:
			lcd.addr++
		}
		return
	}

	switch lcd.addr {
	case 0:
		lcd.addr = rowAddress[1] + rowLength - 1
	case rowAddress[1]:
		lcd.addr = rowLength - 1
	default:
		lcd.addr--
	}
}

func (lcd *LCD) shiftDisplay(right bool) {
	if right {
		lcd.shift--
	} else {
		lcd.shift++
	}
	lcd.shift = ((lcd.shift % rowLength) + rowLength) % rowLength
}

// Address returns the value of the address counter and whether it refers to
// CGRAM rather than DDRAM.
func (lcd *LCD) Address() (uint8, bool) {
	return lcd.addr, lcd.cgMode
}

// DisplayShift returns the number of positions the display is shifted to the
// left.
func (lcd *LCD) DisplayShift() int {
	return lcd.shift
}

// Character returns the character code at the visible position.
func (lcd *LCD) Character(row int, column int) uint8 {
	return lcd.ddram[lcd.visibleAddress(row, column)]
}

func (lcd *LCD) visibleAddress(row int, column int) uint8 {
	return rowAddress[row] + uint8((column+lcd.shift)%rowLength)
}

// Pattern returns the eight lines of the user defined character. Only the low
// three bits of the code are used.
func (lcd *LCD) Pattern(code uint8) [8]uint8 {
	var p [8]uint8
	copy(p[:], lcd.cgram[int(code&0x07)*8:])
	return p
}

// Redraw implements the memory.Peripheral interface.
func (lcd *LCD) Redraw() {
	f := Frame{
		DisplayOn:    lcd.DisplayOn,
		CursorOn:     lcd.CursorOn,
		BlinkOn:      lcd.BlinkOn,
		CursorRow:    0,
		CursorColumn: -1,
	}

	for r := 0; r < Rows; r++ {
		s := strings.Builder{}
		for c := 0; c < Columns; c++ {
			code := lcd.Character(r, c)
			f.Codes[r][c] = code
			s.WriteRune(CharacterRune(code))

			if !lcd.cgMode && lcd.visibleAddress(r, c) == lcd.addr {
				f.CursorRow = r
				f.CursorColumn = c
			}
		}
		f.Lines[r] = s.String()
	}

	f.Image = lcd.renderer.render(lcd, f)
	lcd.frame = f
}

// Flush implements the memory.Peripheral interface.
func (lcd *LCD) Flush() {
	for _, o := range lcd.outputs {
		if err := o.PresentLCD(lcd.frame); err != nil {
			logger.Log(logger.Allow, "lcd", err)
		}
	}
}

// Frame returns the most recently redrawn frame.
func (lcd *LCD) Frame() Frame {
	return lcd.frame
}

func (lcd *LCD) String() string {
	s := strings.Builder{}
	for r, l := range lcd.frame.Lines {
		s.WriteString(fmt.Sprintf("%d: |%s|\n", r, l))
	}

	var on = func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	s.WriteString(fmt.Sprintf("display %s, cursor %s, blink %s", on(lcd.DisplayOn), on(lcd.CursorOn), on(lcd.BlinkOn)))

	if lcd.cgMode {
		s.WriteString(fmt.Sprintf(", CGRAM address %02x", lcd.addr))
	} else {
		s.WriteString(fmt.Sprintf(", DDRAM address %02x", lcd.addr))
	}
	if lcd.shift != 0 {
		s.WriteString(fmt.Sprintf(", shift %d", lcd.shift))
	}
	return s.String()
}
