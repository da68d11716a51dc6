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

package script_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sixfiveohtwo/bensim/curated"
	"github.com/sixfiveohtwo/bensim/debugger/script"
	"github.com/sixfiveohtwo/bensim/hardware/cpu"
	"github.com/sixfiveohtwo/bensim/test"
)

type mockTarget struct {
	mem         [0x10000]uint8
	breakpoints []uint16
	monitors    []string
	printed     []string
}

func (trg *mockTarget) Peek(address uint16) uint8 {
	return trg.mem[address]
}

func (trg *mockTarget) Poke(address uint16, value uint8) {
	trg.mem[address] = value
}

func (trg *mockTarget) ToggleBreakpoint(address uint16) error {
	if len(trg.breakpoints) >= 2 {
		return fmt.Errorf("too many breakpoints")
	}
	trg.breakpoints = append(trg.breakpoints, address)
	return nil
}

func (trg *mockTarget) ToggleMonitor(address uint16, size int) error {
	trg.monitors = append(trg.monitors, fmt.Sprintf("%04x:%d", address, size))
	return nil
}

func (trg *mockTarget) LookupSymbol(name string) (uint16, bool) {
	if name == "main" {
		return 0x8010, true
	}
	return 0, false
}

func (trg *mockTarget) Registers() cpu.Registers {
	return cpu.Registers{PC: 0x8000, A: 0x12, SP: 0xfd}
}

func (trg *mockTarget) Print(s string) {
	trg.printed = append(trg.printed, s)
}

func TestMemory(t *testing.T) {
	trg := &mockTarget{}
	scr := script.NewScript(trg)
	defer scr.Close()

	test.ExpectSuccess(t, scr.RunString(`
		poke(0x0300, 0x41)
		poke("main", peek(0x0300) + 1)
		print(peek(0x8010), "done")
	`))
	test.ExpectEquality(t, trg.mem[0x0300], 0x41)
	test.ExpectEquality(t, trg.mem[0x8010], 0x42)
	test.DemandEquality(t, len(trg.printed), 1)
	test.ExpectEquality(t, trg.printed[0], "66\tdone")

	test.ExpectFailure(t, scr.RunString(`poke(0x0300, 256)`))
	test.ExpectEquality(t, trg.mem[0x0300], 0x41)
}

func TestDebugging(t *testing.T) {
	trg := &mockTarget{}
	scr := script.NewScript(trg)
	defer scr.Close()

	test.ExpectSuccess(t, scr.RunString(`
		breakpoint("main")
		monitor(0x0300, 4)
		monitor(0x0002)
		if symbol("nothing") ~= nil then
			error("unexpected symbol")
		end
		local r = registers()
		print(r.pc, r.a, r.sp)
	`))
	test.DemandEquality(t, len(trg.breakpoints), 1)
	test.ExpectEquality(t, trg.breakpoints[0], 0x8010)
	test.DemandEquality(t, len(trg.monitors), 2)
	test.ExpectEquality(t, trg.monitors[0], "0300:4")
	test.ExpectEquality(t, trg.monitors[1], "0002:1")
	test.DemandEquality(t, len(trg.printed), 1)
	test.ExpectEquality(t, trg.printed[0], "32768\t18\t253")

	// unknown symbol
	test.ExpectFailure(t, scr.RunString(`breakpoint("nothing")`))

	// error from target is raised in the script
	test.ExpectSuccess(t, scr.RunString(`breakpoint(0x9000)`))
	test.ExpectFailure(t, scr.RunString(`breakpoint(0x9001)`))
}

func TestFiles(t *testing.T) {
	trg := &mockTarget{}

	err := script.Run(trg, filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectSuccess(t, curated.Is(err, script.NoSuchFile))

	fn := filepath.Join(t.TempDir(), "init.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("poke(2, 99)\n"), 0o644))
	test.ExpectSuccess(t, script.Run(trg, fn))
	test.ExpectEquality(t, trg.mem[2], 99)

	test.DemandSuccess(t, os.WriteFile(fn, []byte("poke(2,\n"), 0o644))
	err = script.Run(trg, fn)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}
