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

package lcd_test

import (
	"testing"

	"github.com/sixfiveohtwo/bensim/hardware/memory"
	"github.com/sixfiveohtwo/bensim/hardware/peripherals/lcd"
	"github.com/sixfiveohtwo/bensim/test"
)

type mockOutput struct {
	frames []lcd.Frame
}

func (o *mockOutput) PresentLCD(f lcd.Frame) error {
	o.frames = append(o.frames, f)
	return nil
}

func instructions(l *lcd.LCD, inst ...uint8) {
	for _, v := range inst {
		l.ApplyRegisterWrite(false, v)
	}
}

func characters(l *lcd.LCD, s string) {
	for _, c := range []byte(s) {
		l.ApplyRegisterWrite(true, c)
	}
}

func TestHello(t *testing.T) {
	l := lcd.NewLCD()

	// function set, display on, entry mode, clear
	instructions(l, 0x38, 0x0e, 0x06, 0x01)
	characters(l, "Hello, world!")
	l.Redraw()

	f := l.Frame()
	test.ExpectEquality(t, f.Lines[0], "Hello, world!   ")
	test.ExpectEquality(t, f.Lines[1], "                ")
	test.ExpectEquality(t, f.CursorRow, 0)
	test.ExpectEquality(t, f.CursorColumn, 13)
	test.ExpectSuccess(t, f.DisplayOn)
	test.ExpectSuccess(t, f.CursorOn)
	test.ExpectFailure(t, f.BlinkOn)
	test.ExpectEquality(t, l.Instructions, 4)
	test.ExpectEquality(t, l.Characters, 13)
}

func TestSecondRow(t *testing.T) {
	l := lcd.NewLCD()
	instructions(l, 0x38, 0x0c, 0x06, 0x01)
	characters(l, "top")
	instructions(l, 0x80|0x40)
	characters(l, "bottom")
	l.Redraw()

	f := l.Frame()
	test.ExpectEquality(t, f.Lines[0], "top             ")
	test.ExpectEquality(t, f.Lines[1], "bottom          ")
	test.ExpectEquality(t, f.CursorRow, 1)
	test.ExpectEquality(t, f.CursorColumn, 6)
}

func TestWrapBetweenRows(t *testing.T) {
	l := lcd.NewLCD()
	instructions(l, 0x38, 0x0c, 0x06, 0x01)

	// last location of the first row
	instructions(l, 0x80|0x27)
	characters(l, "ab")

	a, cg := l.Address()
	test.ExpectFailure(t, cg)
	test.ExpectEquality(t, a, uint8(0x41))
	test.ExpectEquality(t, l.Character(1, 0), uint8('b'))

	// last location of the second row wraps to the first
	instructions(l, 0x80|0x67)
	characters(l, "cd")
	test.ExpectEquality(t, l.Character(0, 0), uint8('d'))
}

func TestHome(t *testing.T) {
	l := lcd.NewLCD()
	instructions(l, 0x38, 0x0c, 0x06, 0x01)
	characters(l, "abc")
	instructions(l, 0x02)
	characters(l, "X")
	l.Redraw()
	test.ExpectEquality(t, l.Frame().Lines[0], "Xbc             ")
}

func TestClear(t *testing.T) {
	l := lcd.NewLCD()
	instructions(l, 0x38, 0x0c, 0x04)
	test.ExpectFailure(t, l.Increment)
	characters(l, "abc")
	instructions(l, 0x01)
	test.ExpectSuccess(t, l.Increment)
	l.Redraw()
	test.ExpectEquality(t, l.Frame().Lines[0], "                ")
	a, _ := l.Address()
	test.ExpectEquality(t, a, uint8(0))
}

func TestDecrement(t *testing.T) {
	l := lcd.NewLCD()
	instructions(l, 0x38, 0x0c, 0x01, 0x04, 0x80|0x02)
	characters(l, "abc")
	l.Redraw()
	test.ExpectEquality(t, l.Frame().Lines[0], "cba             ")
}

func TestCursorShift(t *testing.T) {
	l := lcd.NewLCD()
	instructions(l, 0x38, 0x0c, 0x06, 0x01)

	// cursor right twice, then left once
	instructions(l, 0x14, 0x14, 0x10)
	characters(l, "x")
	test.ExpectEquality(t, l.Character(0, 1), uint8('x'))
	test.ExpectEquality(t, l.DisplayShift(), 0)
}

func TestDisplayShift(t *testing.T) {
	l := lcd.NewLCD()
	instructions(l, 0x38, 0x0c, 0x06, 0x01)
	characters(l, "abcd")

	// shift display left
	instructions(l, 0x18)
	test.ExpectEquality(t, l.DisplayShift(), 1)
	l.Redraw()
	test.ExpectEquality(t, l.Frame().Lines[0], "bcd             ")

	// and back to the right, twice
	instructions(l, 0x1c, 0x1c)
	test.ExpectEquality(t, l.DisplayShift(), 39)
	l.Redraw()
	test.ExpectEquality(t, l.Frame().Lines[0], " abcd           ")

	// home resets the shift
	instructions(l, 0x02)
	test.ExpectEquality(t, l.DisplayShift(), 0)
}

func TestEntryShift(t *testing.T) {
	l := lcd.NewLCD()
	instructions(l, 0x38, 0x0c, 0x01, 0x07)
	characters(l, "ab")
	test.ExpectEquality(t, l.DisplayShift(), 2)
}

func TestCGRAM(t *testing.T) {
	l := lcd.NewLCD()
	instructions(l, 0x38, 0x0c, 0x06, 0x01)

	// character one is a box
	instructions(l, 0x40|0x08)
	for _, v := range []uint8{0x1f, 0x11, 0x11, 0x11, 0x11, 0x11, 0x1f, 0x00} {
		l.ApplyRegisterWrite(true, v)
	}
	a, cg := l.Address()
	test.ExpectSuccess(t, cg)
	test.ExpectEquality(t, a, uint8(0x10))

	p := l.Pattern(0x01)
	test.ExpectEquality(t, p[0], uint8(0x1f))
	test.ExpectEquality(t, p[1], uint8(0x11))

	// codes eight to fifteen are aliases
	test.ExpectEquality(t, l.Pattern(0x09), p)

	// back to DDRAM and place the character
	instructions(l, 0x80)
	l.ApplyRegisterWrite(true, 0x01)
	test.ExpectEquality(t, l.Character(0, 0), uint8(0x01))
	test.ExpectSuccess(t, lcd.IsUserDefined(l.Character(0, 0)))
}

func TestDisplayOff(t *testing.T) {
	l := lcd.NewLCD()
	instructions(l, 0x38, 0x08, 0x06, 0x01)
	characters(l, "abc")
	l.Redraw()
	f := l.Frame()
	test.ExpectFailure(t, f.DisplayOn)
	test.ExpectEquality(t, f.Image.RGBAAt(lcd.ImageWidth/2, lcd.ImageHeight/2), lcd.BackgroundColor)
}

func TestRender(t *testing.T) {
	l := lcd.NewLCD()
	instructions(l, 0x38, 0x0c, 0x06, 0x01)
	l.Redraw()

	// blank display shows the unlit cells
	img := l.Frame().Image
	test.ExpectEquality(t, img.Bounds().Dx(), lcd.ImageWidth)
	test.ExpectEquality(t, img.Bounds().Dy(), lcd.ImageHeight)
	test.ExpectEquality(t, img.RGBAAt(0, 0), lcd.BackgroundColor)
	test.ExpectEquality(t, img.RGBAAt(8, 8), lcd.CellColor)

	// a character lights some of the first cell
	characters(l, "W")
	l.Redraw()
	img = l.Frame().Image
	var lit int
	for y := 6; y < 6+16; y++ {
		for x := 6; x < 6+8; x++ {
			if img.RGBAAt(x, y) == lcd.InkColor {
				lit++
			}
		}
	}
	test.ExpectInequality(t, lit, 0)
}

func TestBusAttachment(t *testing.T) {
	l := lcd.NewLCD()
	out := &mockOutput{}
	l.AddOutput(out)

	bus := memory.NewBus()
	bus.Attach(l, lcd.DefaultControl, lcd.DefaultData)

	bus.Write(lcd.DefaultControl, 0x38)
	bus.Write(lcd.DefaultControl, 0x0c)
	bus.Write(lcd.DefaultControl, 0x01)
	bus.Write(lcd.DefaultData, 'H')

	test.ExpectEquality(t, len(out.frames), 4)
	test.ExpectEquality(t, out.frames[3].Lines[0], "H               ")
	test.ExpectEquality(t, bus.Read(lcd.DefaultData), uint8('H'))
}

func TestCharacterRune(t *testing.T) {
	test.ExpectEquality(t, lcd.CharacterRune('A'), 'A')
	test.ExpectEquality(t, lcd.CharacterRune(0x7e), '→')
	test.ExpectEquality(t, lcd.CharacterRune(0x5c), '¥')
	test.ExpectEquality(t, lcd.CharacterRune(0x01), '▒')
	test.ExpectEquality(t, lcd.CharacterRune(0xb1), '?')
}
