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

// Package disassembly decodes 6502 machine code for display. Decoding never
// fails: opcodes that are not part of the documented instruction set are
// shown as unknown and treated as one byte long.
//
// Disassemble() decodes the instruction at a single address. Range() and
// Write() decode a sequence of instructions, each instruction starting at the
// address following the previous instruction. Addresses wrap at the end of
// memory.
//
// The text of a disassembled instruction matches the format of the trace log
// written by the tracer package:
//
//	8006: 85 13       STA $13
//
// If a SymbolLookup is supplied then operands that refer to the address of a
// symbol are annotated with the symbol name.
package disassembly
