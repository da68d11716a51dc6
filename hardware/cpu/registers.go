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

package cpu

import "fmt"

// Status register bits.
const (
	FlagCarry     = 0x01
	FlagZero      = 0x02
	FlagInterrupt = 0x04
	FlagDecimal   = 0x08
	FlagBreak     = 0x10
	FlagUnused    = 0x20
	FlagOverflow  = 0x40
	FlagSign      = 0x80
)

// Registers is a snapshot of the CPU registers.
type Registers struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status uint8
}

// String returns the registers in the format used by the trace log.
func (r Registers) String() string {
	return fmt.Sprintf("PC:%04X A:%02X X:%02X Y:%02X SP:%02X Status:%02X (NV-B DIZC)", r.PC, r.A, r.X, r.Y, r.SP, r.Status)
}

// Flags returns the status register as a string of flag letters. Upper case
// letters indicate a set flag.
func (r Registers) Flags() string {
	const set = "NV-BDIZC"
	const clr = "nv-bdizc"
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		if r.Status&(0x80>>i) != 0 {
			b[i] = set[i]
		} else {
			b[i] = clr[i]
		}
	}
	return string(b)
}
