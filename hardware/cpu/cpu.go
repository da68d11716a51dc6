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

import (
	go6502 "github.com/beevik/go6502/cpu"
)

// Vectors in the top page of memory.
const (
	NMIVector   = 0xfffa
	ResetVector = 0xfffc
	IRQVector   = 0xfffe
)

// number of cycles taken by the interrupt sequence.
const interruptCycles = 7

// stack pointer value after reset.
const resetSP = 0xfd

// CPU is the engine that executes 6502 instructions.
type CPU struct {
	engine *go6502.CPU
	mem    go6502.Memory

	// number of interrupts that have been accepted
	Interrupts int
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// memory argument will usually be an instance of memory.Bus.
func NewCPU(mem go6502.Memory) *CPU {
	return &CPU{
		engine: go6502.NewCPU(go6502.NMOS, mem),
		mem:    mem,
	}
}

// Reset the CPU. The program counter is loaded from the reset vector, the
// stack pointer is reset and interrupts are disabled. The cycle count is
// not changed.
func (mc *CPU) Reset() {
	reg := &mc.engine.Reg
	reg.A = 0
	reg.X = 0
	reg.Y = 0
	reg.SP = resetSP
	reg.Carry = false
	reg.Zero = false
	reg.InterruptDisable = true
	reg.Decimal = false
	reg.Overflow = false
	reg.Sign = false
	mc.engine.SetPC(mc.vector(ResetVector))
}

// vector reads the address stored at addr without page wrapping.
func (mc *CPU) vector(addr uint16) uint16 {
	return uint16(mc.mem.LoadByte(addr)) | uint16(mc.mem.LoadByte(addr+1))<<8
}

// Advance executes whole instructions until at least the number of cycles
// have elapsed. At least one instruction is always executed. Returns the
// number of cycles that elapsed.
func (mc *CPU) Advance(cycles int) int {
	start := mc.engine.Cycles
	for {
		mc.engine.Step()
		elapsed := int(mc.engine.Cycles - start)
		if elapsed >= cycles {
			return elapsed
		}
	}
}

// Interrupt requests a maskable interrupt. If the interrupt disable flag is
// set the request is ignored and false is returned. Otherwise the program
// counter and status register are pushed to the stack and the program counter
// is loaded from the IRQ vector.
func (mc *CPU) Interrupt() bool {
	if mc.engine.Reg.InterruptDisable {
		return false
	}

	pc := mc.engine.Reg.PC
	mc.push(uint8(pc >> 8))
	mc.push(uint8(pc))
	mc.push(mc.status() &^ FlagBreak)

	mc.engine.Reg.InterruptDisable = true
	mc.engine.SetPC(mc.vector(IRQVector))
	mc.engine.Cycles += interruptCycles
	mc.Interrupts++

	return true
}

func (mc *CPU) push(v uint8) {
	mc.mem.StoreByte(0x0100|uint16(mc.engine.Reg.SP), v)
	mc.engine.Reg.SP--
}

// status builds the status register from the engine's flags.
func (mc *CPU) status() uint8 {
	reg := mc.engine.Reg
	s := uint8(FlagUnused)
	if reg.Carry {
		s |= FlagCarry
	}
	if reg.Zero {
		s |= FlagZero
	}
	if reg.InterruptDisable {
		s |= FlagInterrupt
	}
	if reg.Decimal {
		s |= FlagDecimal
	}
	if reg.Overflow {
		s |= FlagOverflow
	}
	if reg.Sign {
		s |= FlagSign
	}
	return s
}

// PC returns the current value of the program counter.
func (mc *CPU) PC() uint16 {
	return mc.engine.Reg.PC
}

// SetPC changes the program counter.
func (mc *CPU) SetPC(pc uint16) {
	mc.engine.SetPC(pc)
}

// Cycles returns the total number of cycles executed.
func (mc *CPU) Cycles() uint64 {
	return mc.engine.Cycles
}

// Registers returns a snapshot of the CPU registers.
func (mc *CPU) Registers() Registers {
	reg := mc.engine.Reg
	return Registers{
		PC:     reg.PC,
		A:      reg.A,
		X:      reg.X,
		Y:      reg.Y,
		SP:     reg.SP,
		Status: mc.status(),
	}
}

// SetRegister changes the value of an eight bit register. Valid register names
// are A, X, Y and SP. Returns false if the register name is not recognised.
func (mc *CPU) SetRegister(name string, v uint8) bool {
	reg := &mc.engine.Reg
	switch name {
	case "A":
		reg.A = v
	case "X":
		reg.X = v
	case "Y":
		reg.Y = v
	case "SP":
		reg.SP = v
	default:
		return false
	}
	return true
}
