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

// Package cpu adapts the 6502 engine of the go6502 module for use by the
// debugger. The engine decodes and executes instructions. This package adds
// the operations the engine does not provide directly: reset through the
// reset vector, interrupt injection and a cycle budget for each call to
// Advance().
//
// All memory access made by the engine goes through the memory.Bus given to
// NewCPU(). This includes stack operations and vector reads.
package cpu
