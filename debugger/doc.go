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

// Package debugger implements the interactive debugger for the emulated
// computer. Features include:
//
//   - instruction stepping
//   - breakpoints, including stepping out of the current subroutine
//   - a shadow call stack built from JSR and RTS instructions
//   - memory peek and poke
//   - monitored memory regions
//   - symbol search
//   - Lua scripting
//
// Initialisation of the debugger is done with the NewDebugger() function
//
//	dbg, _ := debugger.NewDebugger(computer, symbols, term, debugger.Options{})
//
// The term argument must satisfy the terminal.Terminal interface. The
// plainterm and colorterm sub-packages of the terminal package are reference
// implementations.
//
// Once initialised, the debugger is started with the Start() function. The
// function returns when the session ends: the halt opcode has been reached,
// the user has quit or the QuitFlag has been set.
//
//	err := dbg.Start(initScript)
//
// The debugger has two states. In the running state instructions are executed
// continuously until a breakpoint is reached. In the stepping state the
// debugger waits for a command before every instruction. An empty command
// steps forward one instruction.
//
// Every executed instruction is written to the trace log, if one has been
// specified in the Options.
package debugger
