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

// The following functions implement the Memory interface of the go6502 cpu
// package. All of them are routed through Read() and Write() so that the CPU
// engine cannot bypass peripheral dispatch.

// LoadByte implements the cpu.Memory interface.
func (bus *Bus) LoadByte(addr uint16) byte {
	return bus.Read(addr)
}

// LoadBytes implements the cpu.Memory interface.
func (bus *Bus) LoadBytes(addr uint16, b []byte) {
	for i := range b {
		b[i] = bus.Read(addr + uint16(i))
	}
}

// LoadAddress implements the cpu.Memory interface. The address is read little
// endian. If addr is the last byte of a page the high byte is read from the
// start of the same page.
func (bus *Bus) LoadAddress(addr uint16) uint16 {
	hi := addr + 1
	if addr&0x00ff == 0x00ff {
		hi = addr & 0xff00
	}
	return uint16(bus.Read(addr)) | uint16(bus.Read(hi))<<8
}

// StoreByte implements the cpu.Memory interface.
func (bus *Bus) StoreByte(addr uint16, v byte) {
	bus.Write(addr, v)
}

// StoreBytes implements the cpu.Memory interface.
func (bus *Bus) StoreBytes(addr uint16, b []byte) {
	for i, v := range b {
		bus.Write(addr+uint16(i), v)
	}
}

// StoreAddress implements the cpu.Memory interface.
func (bus *Bus) StoreAddress(addr uint16, v uint16) {
	bus.Write(addr, uint8(v))
	bus.Write(addr+1, uint8(v>>8))
}

// ReadVector returns the little endian address stored at addr. Unlike
// LoadAddress there is no page wrapping.
func (bus *Bus) ReadVector(addr uint16) uint16 {
	return uint16(bus.Read(addr)) | uint16(bus.Read(addr+1))<<8
}
