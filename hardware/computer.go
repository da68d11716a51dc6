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

package hardware

import (
	"fmt"
	"io"

	"github.com/sixfiveohtwo/bensim/hardware/cpu"
	"github.com/sixfiveohtwo/bensim/hardware/irq"
	"github.com/sixfiveohtwo/bensim/hardware/memory"
	"github.com/sixfiveohtwo/bensim/hardware/peripherals/lcd"
	"github.com/sixfiveohtwo/bensim/logger"
)

// DefaultHalt is the opcode that ends emulation when it is about to be
// executed.
const DefaultHalt = 0xff

// NoHalt indicates that no opcode should end emulation.
const NoHalt = -1

// Location of the default interrupt handler.
const (
	IRQHandlerAddress = 0x0700

	// zero page location incremented by the default interrupt handler
	IRQCounterAddress = 0x02
)

// Config specifies the layout of the computer.
type Config struct {
	// addresses of the LCD registers
	LCDControl uint16
	LCDData    uint16

	// cycles between interrupt requests. zero disables interrupts
	IRQInterval uint64

	// opcode that ends emulation. NoHalt if no opcode should end emulation
	Halt int
}

// DefaultConfig returns the configuration of the reference board.
func DefaultConfig() Config {
	return Config{
		LCDControl:  lcd.DefaultControl,
		LCDData:     lcd.DefaultData,
		IRQInterval: irq.DefaultInterval,
		Halt:        DefaultHalt,
	}
}

// Computer is the single board computer: a 6502, 64K of memory and an LCD
// mapped into the address space.
type Computer struct {
	Config Config

	Bus *memory.Bus
	CPU *cpu.CPU
	LCD *lcd.LCD
	IRQ *irq.Scheduler
}

// NewComputer is the preferred method of initialisation for the Computer
// type.
func NewComputer(config Config) *Computer {
	comp := &Computer{
		Config: config,
		Bus:    memory.NewBus(),
		LCD:    lcd.NewLCD(),
		IRQ:    irq.NewScheduler(config.IRQInterval),
	}

	comp.Bus.Attach(comp.LCD, config.LCDControl, config.LCDData)
	comp.CPU = cpu.NewCPU(comp.Bus)

	return comp
}

// IsHalt returns true if the opcode is the halt opcode.
func (comp *Computer) IsHalt(opcode uint8) bool {
	return comp.Config.Halt != NoHalt && int(opcode) == comp.Config.Halt
}

// irqHandler returns the machine code of the default interrupt handler. The
// handler counts interrupts in the zero page. If a halt opcode is configured
// it is placed before the RTI.
func (comp *Computer) irqHandler() []uint8 {
	h := []uint8{
		0x48,                    // PHA
		0xe6, IRQCounterAddress, // INC $02
		0x68, // PLA
	}
	if comp.Config.Halt != NoHalt {
		h = append(h, uint8(comp.Config.Halt))
	}
	return append(h, 0x40) // RTI
}

// InstallDefaults sets the reset vector to origin and installs the default
// interrupt handler. Vectors that are already set by the program image are
// left alone.
func (comp *Computer) InstallDefaults(origin uint16) {
	if comp.Bus.ReadVector(cpu.ResetVector) == 0x0000 {
		comp.Bus.Load(cpu.ResetVector, []uint8{uint8(origin), uint8(origin >> 8)})
		logger.Logf(logger.Allow, "hardware", "reset vector set to %#04x", origin)
	}

	if comp.Bus.ReadVector(cpu.IRQVector) == 0x0000 {
		h := comp.irqHandler()
		comp.Bus.Load(IRQHandlerAddress, h)
		comp.Bus.Load(cpu.IRQVector, []uint8{uint8(IRQHandlerAddress & 0xff), uint8(IRQHandlerAddress >> 8)})
		logger.Logf(logger.Allow, "hardware", "IRQ handler (%d bytes) installed at %#04x", len(h), IRQHandlerAddress)
	}
}

// Reset the CPU and the LCD. Memory is not cleared.
func (comp *Computer) Reset() {
	comp.LCD.Reset()
	comp.IRQ.Reset()
	comp.CPU.Reset()
	logger.Logf(logger.Allow, "hardware", "reset: PC is %#04x", comp.CPU.PC())
}

// Summary writes the state of the computer at the end of a run.
func (comp *Computer) Summary(w io.Writer) {
	io.WriteString(w, fmt.Sprintf("CPU State: %s\n", comp.CPU.Registers()))
	io.WriteString(w, fmt.Sprintf("Total Emulated Cycles: %d\n", comp.CPU.Cycles()))
	io.WriteString(w, fmt.Sprintf("Total IRQs triggered (simulated cycles): %d\n", comp.IRQ.Count))
	io.WriteString(w, fmt.Sprintf("Final Zero Page IRQ Counter ($%02X): %02X\n", IRQCounterAddress, comp.Bus.Peek(IRQCounterAddress)))
}
