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
	"strings"

	"github.com/sixfiveohtwo/bensim/hardware/cpu/instructions"
)

// width of the bytecode column, not including the opcode.
const operandColumn = 9

// Entry is a single disassembled instruction.
type Entry struct {
	// address of the opcode
	Address uint16

	// the opcode and any operand bytes. Operands is zero, one or two bytes long
	OpCode   uint8
	Operands []uint8

	// the instruction definition for the opcode
	Defn instructions.Definition

	// address of the next instruction in memory
	Next uint16

	// mnemonic and formatted operand. for undefined opcodes the Operator
	// field is "???"
	Operator string
	Operand  string

	// name of the symbol referred to by the operand. empty if there is no
	// such symbol or if no symbols were supplied
	Annotation string
}

// OperandValue returns the value of the operand bytes. For relative branches
// the value is the address of the branch target. The second return value is
// false if the instruction has no operand bytes.
func (e Entry) OperandValue() (uint16, bool) {
	switch len(e.Operands) {
	case 1:
		if e.Defn.AddressingMode == instructions.Relative {
			return branchTarget(e.Address, e.Operands[0]), true
		}
		return uint16(e.Operands[0]), true
	case 2:
		return uint16(e.Operands[0]) | uint16(e.Operands[1])<<8, true
	}
	return 0, false
}

// IsCall returns true if the instruction is a subroutine call.
func (e Entry) IsCall() bool {
	return e.Defn.IsCall()
}

// IsReturn returns true if the instruction is a return from subroutine.
func (e Entry) IsReturn() bool {
	return e.Defn.IsReturn()
}

// Bytecode returns the opcode and operand bytes as hex.
func (e Entry) Bytecode() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%02X", e.OpCode))
	for _, o := range e.Operands {
		s.WriteString(fmt.Sprintf(" %02X", o))
	}
	return s.String()
}

// Instruction returns the mnemonic and operand.
func (e Entry) Instruction() string {
	if !e.Defn.Defined() {
		return fmt.Sprintf("??? (0x%02X)", e.OpCode)
	}
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}

// String returns the entry in the trace log format. The symbol annotation is
// not included.
func (e Entry) String() string {
	operands := strings.Builder{}
	for i, o := range e.Operands {
		if i > 0 {
			operands.WriteRune(' ')
		}
		operands.WriteString(fmt.Sprintf("%02X", o))
	}
	return fmt.Sprintf("%04X: %02X %-*s%s", e.Address, e.OpCode, operandColumn, operands.String(), e.Instruction())
}

// Annotated returns the entry in the trace log format with the symbol
// annotation appended.
func (e Entry) Annotated() string {
	if e.Annotation == "" {
		return e.String()
	}
	return fmt.Sprintf("%s ; %s", e.String(), e.Annotation)
}
