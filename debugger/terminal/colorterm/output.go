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

//go:build !windows

package colorterm

import (
	"github.com/sixfiveohtwo/bensim/debugger/terminal"
	"github.com/sixfiveohtwo/bensim/debugger/terminal/colorterm/easyterm/ansi"
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// user input has already been displayed by TermRead()
	if style == terminal.StyleEcho {
		return
	}

	ct.TermPrint("\r")

	switch style {
	case terminal.StyleHelp:
		ct.TermPrint(ansi.DimPens["white"])
	case terminal.StyleFeedback:
		ct.TermPrint(ansi.DimPens["white"])
	case terminal.StyleCPUStep:
		ct.TermPrint(ansi.Pens["yellow"])
	case terminal.StyleInstrument:
		ct.TermPrint(ansi.DimPens["cyan"])
	case terminal.StyleLog:
		ct.TermPrint(ansi.DimPens["magenta"])
	case terminal.StyleBreak:
		ct.TermPrint(ansi.Pens["green"])
	case terminal.StyleError:
		ct.TermPrint(ansi.Pens["red"])
		ct.TermPrint("* ")
	}

	ct.TermPrint(s)
	ct.TermPrint(ansi.NormalPen)

	// in key mode the terminal does not translate newlines
	if ct.keyMode {
		ct.TermPrint("\r\n")
	} else {
		ct.TermPrint("\n")
	}
}
