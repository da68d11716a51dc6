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

// Package termlcd presents the LCD as text. It implements the lcd.Output
// interface and is used when no SDL window is wanted, or is possible.
package termlcd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sixfiveohtwo/bensim/curated"
	"github.com/sixfiveohtwo/bensim/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/sixfiveohtwo/bensim/hardware/peripherals/lcd"
)

// Text presents the LCD by writing the display lines to an io.Writer. A
// frame is only written if it differs from the previous frame.
type Text struct {
	output io.Writer

	// use ANSI colours for the display area
	colour bool
	pen    string

	prev  [lcd.Rows]string
	valid bool
}

// NewText is the preferred method of initialisation for the Text type.
func NewText(output io.Writer, colour bool) *Text {
	txt := &Text{
		output: output,
		colour: colour,
	}
	if colour {
		txt.pen, _ = ansi.ColorBuild("white", "blue", "bold", true)
	}
	return txt
}

// PresentLCD implements the lcd.Output interface.
func (txt *Text) PresentLCD(f lcd.Frame) error {
	lines := f.Lines
	if !f.DisplayOn {
		for i := range lines {
			lines[i] = strings.Repeat(" ", lcd.Columns)
		}
	}

	if txt.valid && lines == txt.prev {
		return nil
	}
	txt.prev = lines
	txt.valid = true

	s := strings.Builder{}
	border := fmt.Sprintf("+%s+\n", strings.Repeat("-", lcd.Columns))
	s.WriteString(border)
	for _, l := range lines {
		if txt.colour {
			s.WriteString(fmt.Sprintf("|%s%s%s|\n", txt.pen, l, ansi.NormalPen))
		} else {
			s.WriteString(fmt.Sprintf("|%s|\n", l))
		}
	}
	s.WriteString(border)

	if _, err := io.WriteString(txt.output, s.String()); err != nil {
		return curated.Errorf("termlcd: %v", err)
	}
	return nil
}
