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

package cpu_test

import (
	"testing"

	"github.com/sixfiveohtwo/bensim/hardware/cpu"
	"github.com/sixfiveohtwo/bensim/hardware/memory"
	"github.com/sixfiveohtwo/bensim/test"
)

func newCPU(t *testing.T, program []uint8) (*cpu.CPU, *memory.Bus) {
	t.Helper()
	bus := memory.NewBus()
	bus.Load(0x8000, program)
	bus.StoreAddress(cpu.ResetVector, 0x8000)
	bus.StoreAddress(cpu.IRQVector, 0x0700)
	mc := cpu.NewCPU(bus)
	mc.Reset()
	return mc, bus
}

func TestReset(t *testing.T) {
	mc, _ := newCPU(t, []uint8{0xea})
	r := mc.Registers()
	test.ExpectEquality(t, r.PC, uint16(0x8000))
	test.ExpectEquality(t, r.SP, uint8(0xfd))
	test.ExpectEquality(t, r.Status&cpu.FlagInterrupt, uint8(cpu.FlagInterrupt))
	test.ExpectEquality(t, r.Status&cpu.FlagUnused, uint8(cpu.FlagUnused))
}

func TestAdvance(t *testing.T) {
	// LDA #$48; STA $0200; NOP
	mc, bus := newCPU(t, []uint8{0xa9, 0x48, 0x8d, 0x00, 0x02, 0xea})

	test.ExpectEquality(t, mc.Advance(1), 2)
	test.ExpectEquality(t, mc.PC(), uint16(0x8002))
	test.ExpectEquality(t, mc.Registers().A, uint8(0x48))

	test.ExpectEquality(t, mc.Advance(1), 4)
	test.ExpectEquality(t, bus.Read(0x0200), uint8(0x48))

	test.ExpectEquality(t, mc.Cycles(), uint64(6))
}

func TestAdvanceBudget(t *testing.T) {
	// four NOPs at two cycles each
	mc, _ := newCPU(t, []uint8{0xea, 0xea, 0xea, 0xea})
	test.ExpectEquality(t, mc.Advance(5), 6)
	test.ExpectEquality(t, mc.PC(), uint16(0x8003))
}

func TestInterrupt(t *testing.T) {
	// CLI; NOP
	mc, bus := newCPU(t, []uint8{0x58, 0xea})

	// interrupts are disabled after reset
	test.ExpectFailure(t, mc.Interrupt())
	test.ExpectEquality(t, mc.Interrupts, 0)

	mc.Advance(1)
	test.ExpectEquality(t, mc.PC(), uint16(0x8001))

	cycles := mc.Cycles()
	test.ExpectSuccess(t, mc.Interrupt())
	test.ExpectEquality(t, mc.Interrupts, 1)
	test.ExpectEquality(t, mc.Cycles()-cycles, uint64(7))

	r := mc.Registers()
	test.ExpectEquality(t, r.PC, uint16(0x0700))
	test.ExpectEquality(t, r.SP, uint8(0xfa))
	test.ExpectEquality(t, r.Status&cpu.FlagInterrupt, uint8(cpu.FlagInterrupt))

	// return address and status on the stack
	test.ExpectEquality(t, bus.Read(0x01fd), uint8(0x80))
	test.ExpectEquality(t, bus.Read(0x01fc), uint8(0x01))
	test.ExpectEquality(t, bus.Read(0x01fb)&cpu.FlagBreak, uint8(0))
	test.ExpectEquality(t, bus.Read(0x01fb)&cpu.FlagInterrupt, uint8(0))

	// masked while the handler runs
	test.ExpectFailure(t, mc.Interrupt())
}

func TestRegistersString(t *testing.T) {
	r := cpu.Registers{PC: 0x8008, A: 0xc0, SP: 0xfd, Status: 0xa4}
	test.ExpectEquality(t, r.String(), "PC:8008 A:C0 X:00 Y:00 SP:FD Status:A4 (NV-B DIZC)")
	test.ExpectEquality(t, r.Flags(), "Nv-bdIzc")
}

func TestSetRegister(t *testing.T) {
	mc, _ := newCPU(t, []uint8{0xea})
	test.ExpectSuccess(t, mc.SetRegister("X", 0x10))
	test.ExpectFailure(t, mc.SetRegister("Q", 0x10))
	test.ExpectEquality(t, mc.Registers().X, uint8(0x10))
}
