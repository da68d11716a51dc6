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

// Package memory implements the 64KiB address space of the computer.
//
// Every access made by the CPU goes through the Bus type and its CPUBus
// interface. Writes to addresses registered by a peripheral are forwarded to
// that peripheral after the value has been stored. The value is always stored
// so the peripheral register can be read back like any other location.
//
//	CPU ---- cpu bus ---- MEMORY ---- register ---- PERIPHERAL
//	                        |
//	                        |
//	                   debugger bus
//	                        |
//	                        |
//	                     DEBUGGER
//
// Dispatch to a peripheral depends only on the address. It does not matter
// which instruction or addressing mode caused the write.
//
// The debugger bus (Peek and Poke) is for access from outside the normal
// operation of the machine. A Poke() is treated like a CPU write and so
// triggers peripheral side effects.
//
// The Bus also implements the Memory interface of the go6502 cpu package so
// that it can be handed directly to the CPU engine.
package memory
