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

package script

import (
	"fmt"
	"os"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/sixfiveohtwo/bensim/curated"
	"github.com/sixfiveohtwo/bensim/hardware/cpu"
)

// Sentinal errors.
const (
	ScriptError = "script: %v"
	NoSuchFile  = "script: no such file: %s"
)

// Target is the debugging session being scripted.
type Target interface {
	Peek(address uint16) uint8
	Poke(address uint16, value uint8)
	ToggleBreakpoint(address uint16) error
	ToggleMonitor(address uint16, size int) error
	LookupSymbol(name string) (uint16, bool)
	Registers() cpu.Registers
	Print(s string)
}

// Script is a Lua state bound to a Target.
type Script struct {
	L      *lua.LState
	target Target
}

// NewScript is the preferred method of initialisation for the Script type.
func NewScript(target Target) *Script {
	scr := &Script{
		L:      lua.NewState(),
		target: target,
	}

	scr.L.SetGlobal("peek", scr.L.NewFunction(scr.peek))
	scr.L.SetGlobal("poke", scr.L.NewFunction(scr.poke))
	scr.L.SetGlobal("breakpoint", scr.L.NewFunction(scr.breakpoint))
	scr.L.SetGlobal("monitor", scr.L.NewFunction(scr.monitor))
	scr.L.SetGlobal("symbol", scr.L.NewFunction(scr.symbol))
	scr.L.SetGlobal("registers", scr.L.NewFunction(scr.registers))
	scr.L.SetGlobal("print", scr.L.NewFunction(scr.print))

	return scr
}

// Close the Lua state. The Script should not be used after Close().
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile runs the Lua script in the named file.
func (scr *Script) RunFile(filename string) error {
	if _, err := os.Stat(filename); err != nil {
		if os.IsNotExist(err) {
			return curated.Errorf(NoSuchFile, filename)
		}
		return curated.Errorf(ScriptError, err)
	}
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs Lua source code.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// Run is a convenience function that creates a Script, runs the named file
// and closes the Script.
func Run(target Target, filename string) error {
	scr := NewScript(target)
	defer scr.Close()
	return scr.RunFile(filename)
}

// address argument may be a number or a symbol name.
func (scr *Script) address(L *lua.LState, n int) uint16 {
	switch v := L.CheckAny(n).(type) {
	case lua.LNumber:
		return uint16(v)
	case lua.LString:
		if a, ok := scr.target.LookupSymbol(string(v)); ok {
			return a
		}
		L.ArgError(n, fmt.Sprintf("unknown symbol (%s)", string(v)))
	default:
		L.ArgError(n, "address expected")
	}
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	L.Push(lua.LNumber(scr.target.Peek(scr.address(L, 1))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	addr := scr.address(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, "value must be a byte")
	}
	scr.target.Poke(addr, uint8(v))
	return 0
}

func (scr *Script) breakpoint(L *lua.LState) int {
	if err := scr.target.ToggleBreakpoint(scr.address(L, 1)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) monitor(L *lua.LState) int {
	addr := scr.address(L, 1)
	size := L.OptInt(2, 1)
	if err := scr.target.ToggleMonitor(addr, size); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) symbol(L *lua.LState) int {
	a, ok := scr.target.LookupSymbol(L.CheckString(1))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(a))
	return 1
}

func (scr *Script) registers(L *lua.LState) int {
	r := scr.target.Registers()
	tbl := L.NewTable()
	tbl.RawSetString("pc", lua.LNumber(r.PC))
	tbl.RawSetString("a", lua.LNumber(r.A))
	tbl.RawSetString("x", lua.LNumber(r.X))
	tbl.RawSetString("y", lua.LNumber(r.Y))
	tbl.RawSetString("sp", lua.LNumber(r.SP))
	tbl.RawSetString("status", lua.LNumber(r.Status))
	L.Push(tbl)
	return 1
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.Get(i).String())
	}
	scr.target.Print(strings.Join(s, "\t"))
	return 0
}
