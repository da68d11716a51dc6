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

// Package hardware is the base package for the emulation of the single board
// computer. The Computer type ties together the memory bus, the CPU, the LCD
// and the interrupt scheduler. Execution of instructions is driven by the
// debugger package.
//
// The subpackages contain the emulation of each component. The memory package
// is at the centre of the emulation: every read and write made by the CPU
// goes through the memory bus and writes to peripheral registers are
// forwarded to the attached peripheral.
package hardware
