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

package memory

// CPUBus defines the operations for the memory system when accessed from the
// CPU.
type CPUBus interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// DebugBus defines the meta-operations for the memory system. They are the
// operations used by the debugger.
type DebugBus interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
}

// Peripheral is implemented by devices that react to writes to one or more
// addresses in the memory space.
type Peripheral interface {
	// ApplyRegisterWrite is called with the written value. The isData argument
	// distinguishes the data register from the control register
	ApplyRegisterWrite(isData bool, value uint8)

	// Redraw the peripheral's state to its internal image
	Redraw()

	// Flush the internal image to the output device
	Flush()
}
