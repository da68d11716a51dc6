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

// Package instructions defines the 6502 instruction set as a static table
// indexed by opcode. The table is shared by the disassembler and by the
// debugger when it classifies the next instruction.
//
// Only the documented NMOS opcodes are defined. Entries for other opcodes are
// the zero value of the Definition type and can be detected with the
// Defined() function.
package instructions
