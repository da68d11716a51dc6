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

// Package script runs Lua scripts against a debugging session. Scripts can be
// run at startup, with the -script flag, or from the debugger's SCRIPT
// command.
//
// The following functions are available to a script:
//
//	peek(address)           value of memory at the address
//	poke(address, value)    write to memory. peripheral registers are affected
//	breakpoint(address)     toggle a breakpoint
//	monitor(address, size)  add or remove a monitored memory region
//	symbol(name)            address of a symbol, or nil
//	registers()             table with fields pc, a, x, y, sp and status
//	print(...)              print to the debugger's terminal
//
// Addresses can be numbers or symbol names. Lua's hexadecimal notation (eg.
// 0x8000) is the most convenient way of specifying literal addresses.
package script
