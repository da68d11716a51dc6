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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can choose
// to interpret the style however it wants.
type Style int

// List of terminal styles.
const (
	// input from the user being echoed back to the user
	StyleEcho Style = iota

	// information from the help command
	StyleHelp

	// information as a result of an error free command
	StyleFeedback

	// disassembly of the next instruction
	StyleCPUStep

	// register and memory state
	StyleInstrument

	// entries from the central logger
	StyleLog

	// information about the program counter stopping at a breakpoint
	StyleBreak

	// information as a result of an error
	StyleError
)

func (s Style) String() string {
	switch s {
	case StyleEcho:
		return "echo"
	case StyleHelp:
		return "help"
	case StyleFeedback:
		return "feedback"
	case StyleCPUStep:
		return "cpu step"
	case StyleInstrument:
		return "instrument"
	case StyleLog:
		return "log"
	case StyleBreak:
		return "break"
	case StyleError:
		return "error"
	}
	return "unknown style"
}
