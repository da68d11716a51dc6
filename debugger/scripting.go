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

import (
	"github.com/sixfiveohtwo/bensim/debugger/script"
	"github.com/sixfiveohtwo/bensim/debugger/terminal"
	"github.com/sixfiveohtwo/bensim/hardware/cpu"
)

// scriptTarget exposes the debugger to Lua scripts.
type scriptTarget struct {
	dbg *Debugger
}

func (trg scriptTarget) Peek(address uint16) uint8 {
	return trg.dbg.bus.Peek(address)
}

func (trg scriptTarget) Poke(address uint16, value uint8) {
	trg.dbg.bus.Poke(address, value)
}

func (trg scriptTarget) ToggleBreakpoint(address uint16) error {
	return trg.dbg.toggleBreakpoint(address, trg.dbg.syms.Label(address))
}

func (trg scriptTarget) ToggleMonitor(address uint16, size int) error {
	return trg.dbg.toggleMonitor(address, size)
}

func (trg scriptTarget) LookupSymbol(name string) (uint16, bool) {
	return trg.dbg.syms.LookupByName(name)
}

func (trg scriptTarget) Registers() cpu.Registers {
	return trg.dbg.engine.Registers()
}

func (trg scriptTarget) Print(s string) {
	trg.dbg.printLine(terminal.StyleFeedback, "%s", s)
}

// runScript runs the Lua script in the named file.
func (dbg *Debugger) runScript(filename string) error {
	return script.Run(scriptTarget{dbg: dbg}, filename)
}
