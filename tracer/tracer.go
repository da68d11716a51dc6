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

// Package tracer writes the execution trace log. Every executed instruction
// is recorded with the register state after execution, the contents of any
// monitored memory and the cycle timing. The line formats are stable so that
// external tools can follow the log, for example to show the assembler
// listing alongside the program counter.
package tracer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sixfiveohtwo/bensim/curated"
	"github.com/sixfiveohtwo/bensim/disassembly"
	"github.com/sixfiveohtwo/bensim/hardware/cpu"
	"github.com/sixfiveohtwo/bensim/hardware/memory"
)

// Tracer writes to the trace log. The zero value discards everything.
type Tracer struct {
	f *os.File
	w *bufio.Writer
}

// Create the trace log file. Any existing file is truncated.
func Create(filename string) (*Tracer, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("tracer: %v", err)
	}
	tr := &Tracer{
		f: f,
		w: bufio.NewWriter(f),
	}
	tr.Println("--- 6502 Emulation Trace Log ---")
	tr.Println("")
	return tr, nil
}

// NewTracer creates a Tracer that writes to the io.Writer. Close() will flush
// but not close the io.Writer.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: bufio.NewWriter(w)}
}

// Close flushes any buffered output and closes the trace log file.
func (tr *Tracer) Close() error {
	if tr == nil || tr.w == nil {
		return nil
	}
	if err := tr.w.Flush(); err != nil {
		return curated.Errorf("tracer: %v", err)
	}
	if tr.f != nil {
		if err := tr.f.Close(); err != nil {
			return curated.Errorf("tracer: %v", err)
		}
		tr.f = nil
	}
	tr.w = nil
	return nil
}

// Flush buffered output to the trace log.
func (tr *Tracer) Flush() error {
	if tr == nil || tr.w == nil {
		return nil
	}
	return tr.w.Flush()
}

// Println writes a line to the trace log.
func (tr *Tracer) Println(s string) {
	if tr == nil || tr.w == nil {
		return
	}
	tr.w.WriteString(s)
	tr.w.WriteString("\n")
}

// Printf writes a formatted line to the trace log. A newline is added.
func (tr *Tracer) Printf(format string, args ...interface{}) {
	tr.Println(fmt.Sprintf(format, args...))
}

// Instruction writes the disassembly of the instruction about to be
// executed.
func (tr *Tracer) Instruction(e disassembly.Entry) {
	tr.Println(e.String())
}

// CPUState writes the register state.
func (tr *Tracer) CPUState(r cpu.Registers) {
	tr.Printf("CPU State: %s", r)
}

// RAMState writes the contents of a region of memory.
func (tr *Tracer) RAMState(mem memory.DebugBus, address uint16, size int) {
	tr.Println(RAMState(mem, address, size))
}

// RAMState returns the contents of a region of memory in the trace log
// format.
func RAMState(mem memory.DebugBus, address uint16, size int) string {
	s := strings.Builder{}
	s.WriteString("RAM State:")
	for i := 0; i < size; i++ {
		a := address + uint16(i)
		s.WriteString(fmt.Sprintf(" $%04X:%02X", a, mem.Peek(a)))
	}
	return s.String()
}

// Timing writes the cycle count and interrupt timing.
func (tr *Tracer) Timing(current uint64, lastIRQ uint64) {
	var since uint64
	if current >= lastIRQ {
		since = current - lastIRQ
	}
	tr.Printf("Timing: Current Emulated Cycle: %d, Last IRQ Trigger Cycle: %d, Cycles Since Last IRQ: %d", current, lastIRQ, since)
	tr.Printf("Emulated Cycles: %d", current)
	tr.Println("")
}

// IRQ notes that an interrupt has been requested.
func (tr *Tracer) IRQ(interval uint64, accepted bool) {
	tr.Println("")
	tr.Printf("--- %d Emulated Cycles elapsed: Triggering IRQ! ---", interval)
	if !accepted {
		tr.Println("INFO: IRQ masked by interrupt disable flag")
	}
}

// Halt notes that the halt opcode has been reached.
func (tr *Tracer) Halt(opcode uint8) {
	tr.Printf("INFO: magic opcode 0x%02X detected, terminate the simulation", opcode)
}

// Dump writes the memory between from and to inclusive.
func (tr *Tracer) Dump(mem *memory.Bus, from uint16, to uint16) {
	if tr == nil || tr.w == nil {
		return
	}
	tr.w.WriteString(fmt.Sprintf("\nMemory dump from 0x%04X to 0x%04X:", from, to))
	mem.Dump(tr.w, from, to)
}

// Finish writes the end of simulation marker.
func (tr *Tracer) Finish() {
	tr.Println("")
	tr.Println("--- Simulation Finished ---")
}

// Write implements the io.Writer interface. It allows the trace log to be
// used as the destination of other output, for example the end of run
// summary.
func (tr *Tracer) Write(p []byte) (int, error) {
	if tr == nil || tr.w == nil {
		return len(p), nil
	}
	return tr.w.Write(p)
}
