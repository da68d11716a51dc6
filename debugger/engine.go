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

package debugger

import (
	"github.com/sixfiveohtwo/bensim/hardware/cpu"
)

// Engine executes instructions on behalf of the debugger. The cpu.CPU type
// satisfies the interface.
type Engine interface {
	Reset()

	// Advance runs whole instructions until at least the number of cycles
	// have elapsed. Returns the number of cycles that actually elapsed.
	Advance(cycles int) int

	// Interrupt requests an interrupt. Returns false if the interrupt was
	// masked.
	Interrupt() bool

	// Cycles returns the number of cycles executed since the engine was
	// created.
	Cycles() uint64

	PC() uint16
	Registers() cpu.Registers
}

// engines that allow registers to be changed by the REGISTERS command.
type registerSetter interface {
	SetRegister(name string, v uint8) bool
}
