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

import (
	"fmt"
	"io"
)

// MemorySize is the size of the address space in bytes.
const MemorySize = 0x10000

// register is an address owned by a peripheral.
type register struct {
	periph Peripheral
	isData bool
}

// Bus is the flat address space of the computer with peripheral dispatch.
type Bus struct {
	image     [MemorySize]uint8
	registers map[uint16]register
}

// NewBus is the preferred method of initialisation for the Bus type.
func NewBus() *Bus {
	return &Bus{
		registers: make(map[uint16]register),
	}
}

// Attach a peripheral to the bus. The control and data addresses will from
// now on forward writes to the peripheral. Attaching to an address that is
// already registered replaces the previous mapping.
func (bus *Bus) Attach(periph Peripheral, control uint16, data uint16) {
	bus.registers[control] = register{periph: periph, isData: false}
	bus.registers[data] = register{periph: periph, isData: true}
}

// IsRegister returns true if address is a peripheral register.
func (bus *Bus) IsRegister(address uint16) bool {
	_, ok := bus.registers[address]
	return ok
}

// Read implements the CPUBus interface.
func (bus *Bus) Read(address uint16) uint8 {
	return bus.image[address]
}

// Write implements the CPUBus interface.
func (bus *Bus) Write(address uint16, data uint8) {
	bus.image[address] = data

	if r, ok := bus.registers[address]; ok {
		r.periph.ApplyRegisterWrite(r.isData, data)
		r.periph.Redraw()
		r.periph.Flush()
	}
}

// Peek implements the DebugBus interface.
func (bus *Bus) Peek(address uint16) uint8 {
	return bus.image[address]
}

// Poke implements the DebugBus interface.
func (bus *Bus) Poke(address uint16, data uint8) {
	bus.Write(address, data)
}

// Load copies data into memory starting at origin. Peripherals are not
// notified. Data that would extend beyond the end of memory is dropped and the
// number of bytes copied is returned.
func (bus *Bus) Load(origin uint16, data []uint8) int {
	return copy(bus.image[origin:], data)
}

// Clear sets every byte in memory to zero. Peripherals are not notified.
func (bus *Bus) Clear() {
	bus.image = [MemorySize]uint8{}
}

// Dump writes the memory between from and to inclusive. Eight bytes are
// written on every line, each line prefixed by the seven digit address.
func (bus *Bus) Dump(w io.Writer, from uint16, to uint16) {
	if to < from {
		return
	}

	// int so that a range ending at 0xffff terminates
	for a := int(from); a <= int(to); a++ {
		if (a-int(from))%8 == 0 {
			io.WriteString(w, fmt.Sprintf("\n%07X:", a))
		}
		io.WriteString(w, fmt.Sprintf(" %02X", bus.image[a]))
	}
	io.WriteString(w, "\n")
}
