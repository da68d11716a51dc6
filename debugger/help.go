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

package debugger

// Help contains the help text for the debugger's commands.
var Help = map[string]string{
	cmdStep:        "Execute the next instruction. An empty command also steps",
	cmdContinue:    "Run until a breakpoint is reached",
	cmdRead:        "Read memory. The count is decimal unless it has a $ or 0x prefix",
	cmdWrite:       "Write a byte to memory. Writes to peripheral registers affect the peripheral",
	cmdUp:          "Run until the current subroutine returns. The return address is taken from the call stack",
	cmdCallStack:   "List the subroutines that have been called but have not returned",
	cmdBreakpoints: "List breakpoints",
	cmdBreakpoint:  "Add a breakpoint, or remove it if one already exists at the address",
	cmdSearch:      "Search symbols. The pattern can contain the * and ? wildcards",
	cmdMonitor:     "Monitor a region of memory, or stop monitoring it. Without arguments the monitored regions are listed",
	cmdHelp:        "List commands or show help for an individual command",
	cmdQuit:        "End the debugging session",
	cmdRegisters:   "Show the CPU registers or change the value of one of the A, X, Y or SP registers",
	cmdDisasm:      "Disassemble memory. The default address is the program counter",
	cmdDump:        "Dump memory in the format of the trace log",
	cmdLCD:         "Show the state of the LCD",
	cmdScript:      "Run a Lua script",
	cmdMemviz:      "Write a graphviz description of the debugger's state to a file",
	cmdLog:         "Show the most recent log entries",
}

// Usage contains the usage template for the debugger's commands.
var Usage = map[string]string{
	cmdStep:        "STEP",
	cmdContinue:    "CONTINUE",
	cmdRead:        "READ <address> [count]",
	cmdWrite:       "WRITE <address> <byte>",
	cmdUp:          "UP",
	cmdCallStack:   "CALL-STACK",
	cmdBreakpoints: "BREAKPOINTS",
	cmdBreakpoint:  "BREAKPOINT <address or symbol>",
	cmdSearch:      "SEARCH <pattern>",
	cmdMonitor:     "MONITOR [<address> [size]]",
	cmdHelp:        "HELP [command]",
	cmdQuit:        "QUIT",
	cmdRegisters:   "REGISTERS [<register> <byte>]",
	cmdDisasm:      "DISASM [address] [count]",
	cmdDump:        "DUMP <from> <to>",
	cmdLCD:         "LCD",
	cmdScript:      "SCRIPT <file>",
	cmdMemviz:      "MEMVIZ <file>",
	cmdLog:         "LOG [count]",
}
