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

package disassembly

import (
	"fmt"
	"io"

	"github.com/sixfiveohtwo/bensim/hardware/cpu/instructions"
	"github.com/sixfiveohtwo/bensim/hardware/memory"
)

// SymbolLookup is used to annotate operands with symbol names. It is
// implemented by symbols.Table.
type SymbolLookup interface {
	NameAt(address uint16) (string, bool)
}

func branchTarget(address uint16, offset uint8) uint16 {
	return uint16(int(address) + 2 + int(int8(offset)))
}

// Disassemble decodes the instruction at the address. The syms argument can
// be nil.
func Disassemble(mem memory.DebugBus, address uint16, syms SymbolLookup) Entry {
	opcode := mem.Peek(address)
	defn := instructions.Lookup(opcode)

	e := Entry{
		Address:  address,
		OpCode:   opcode,
		Defn:     defn,
		Operator: defn.Mnemonic,
		Next:     address + uint16(defn.Bytes),
	}

	if !defn.Defined() {
		e.Operator = "???"
		return e
	}

	for i := 1; i < defn.Bytes; i++ {
		e.Operands = append(e.Operands, mem.Peek(address+uint16(i)))
	}

	v, _ := e.OperandValue()

	switch defn.AddressingMode {
	case instructions.Implied:
	case instructions.Accumulator:
		e.Operand = "A"
	case instructions.Immediate:
		e.Operand = fmt.Sprintf("#$%02X", v)
	case instructions.Relative:
		e.Operand = fmt.Sprintf("$%04X", v)
	case instructions.Absolute:
		e.Operand = fmt.Sprintf("$%04X", v)
	case instructions.ZeroPage:
		e.Operand = fmt.Sprintf("$%02X", v)
	case instructions.Indirect:
		e.Operand = fmt.Sprintf("($%04X)", v)
	case instructions.IndexedIndirect:
		e.Operand = fmt.Sprintf("($%02X,X)", v)
	case instructions.IndirectIndexed:
		e.Operand = fmt.Sprintf("($%02X),Y", v)
	case instructions.AbsoluteIndexedX:
		e.Operand = fmt.Sprintf("$%04X,X", v)
	case instructions.AbsoluteIndexedY:
		e.Operand = fmt.Sprintf("$%04X,Y", v)
	case instructions.ZeroPageIndexedX:
		e.Operand = fmt.Sprintf("$%02X,X", v)
	case instructions.ZeroPageIndexedY:
		e.Operand = fmt.Sprintf("$%02X,Y", v)
	}

	if syms != nil && len(e.Operands) > 0 && defn.AddressingMode != instructions.Immediate {
		if name, ok := syms.NameAt(v); ok {
			e.Annotation = name
		}
	}

	return e
}

// Range disassembles count consecutive instructions starting at address.
func Range(mem memory.DebugBus, address uint16, count int, syms SymbolLookup) []Entry {
	r := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		e := Disassemble(mem, address, syms)
		r = append(r, e)
		address = e.Next
	}
	return r
}

// Block disassembles every instruction that starts in the memory region
// beginning at address and of the given length in bytes.
func Block(mem memory.DebugBus, address uint16, length int, syms SymbolLookup) []Entry {
	var r []Entry
	for n := 0; n < length; {
		e := Disassemble(mem, address, syms)
		r = append(r, e)
		n += e.Defn.Bytes
		address = e.Next
	}
	return r
}

// Write disassembles count consecutive instructions to the io.Writer. Each
// instruction is preceded by the symbol at its address, if there is one.
func Write(w io.Writer, mem memory.DebugBus, address uint16, count int, syms SymbolLookup) error {
	return write(w, Range(mem, address, count, syms), syms)
}

// WriteBlock is like Write but disassembles a region of memory in the same
// way as Block.
func WriteBlock(w io.Writer, mem memory.DebugBus, address uint16, length int, syms SymbolLookup) error {
	return write(w, Block(mem, address, length, syms), syms)
}

func write(w io.Writer, entries []Entry, syms SymbolLookup) error {
	for _, e := range entries {
		if syms != nil {
			if name, ok := syms.NameAt(e.Address); ok {
				if _, err := io.WriteString(w, fmt.Sprintf("%s:\n", name)); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(w, e.Annotated()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
