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

package debugger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sixfiveohtwo/bensim/curated"
	"github.com/sixfiveohtwo/bensim/debugger"
	"github.com/sixfiveohtwo/bensim/debugger/terminal"
	"github.com/sixfiveohtwo/bensim/hardware"
	"github.com/sixfiveohtwo/bensim/symbols"
	"github.com/sixfiveohtwo/bensim/test"
	"github.com/sixfiveohtwo/bensim/tracer"
	"github.com/sixfiveohtwo/bensim/userinput"
)

// mockTerm supplies a fixed sequence of input lines. the session is aborted
// when there are no more lines.
type mockTerm struct {
	input   []string
	output  []string
	prompts []terminal.Prompt
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) Silence(silenced bool) {
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermRead(prompt terminal.Prompt, _ *terminal.ReadEvents) (string, error) {
	trm.prompts = append(trm.prompts, prompt)
	if len(trm.input) == 0 {
		return "", curated.Errorf(terminal.UserAbort)
	}
	s := trm.input[0]
	trm.input = trm.input[1:]
	return s, nil
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleEcho {
		return
	}
	trm.output = append(trm.output, s)
}

// contains returns true if any line of output contains the string.
func (trm *mockTerm) contains(s string) bool {
	for _, o := range trm.output {
		if strings.Contains(o, s) {
			return true
		}
	}
	return false
}

func newComputer(t *testing.T, program []uint8) *hardware.Computer {
	t.Helper()
	cfg := hardware.DefaultConfig()
	cfg.IRQInterval = 0
	comp := hardware.NewComputer(cfg)
	test.DemandEquality(t, comp.Bus.Load(0x8000, program), len(program))
	comp.InstallDefaults(0x8000)
	comp.Reset()
	return comp
}

// LDX #$00, fourteen NOPs, INX at $8010, then the halt opcode
func breakProgram() []uint8 {
	p := []uint8{0xa2, 0x00}
	for i := 0; i < 14; i++ {
		p = append(p, 0xea)
	}
	return append(p, 0xe8, 0xff)
}

func TestBreakpoint(t *testing.T) {
	comp := newComputer(t, breakProgram())
	trm := &mockTerm{input: []string{"registers", "continue"}}

	dbg, err := debugger.NewDebugger(comp, nil, trm, debugger.Options{})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.ToggleBreakpoint(0x8010, ""))

	test.DemandSuccess(t, dbg.Start(""))

	// the first prompt is at the breakpoint
	test.DemandSuccess(t, len(trm.prompts) > 0)
	test.ExpectEquality(t, trm.prompts[0].PC, 0x8010)
	test.ExpectSuccess(t, trm.contains("break at $8010"))

	// the REGISTERS command does not advance the emulation
	test.ExpectEquality(t, len(trm.prompts), 2)
	test.ExpectEquality(t, trm.prompts[1].PC, 0x8010)

	test.ExpectEquality(t, dbg.Instructions(), 16)
	test.ExpectEquality(t, comp.CPU.Registers().X, 1)
	test.ExpectEquality(t, comp.CPU.PC(), 0x8011)
	test.ExpectEquality(t, dbg.Ended(), "halt opcode")
}

func TestStepping(t *testing.T) {
	comp := newComputer(t, breakProgram())
	trm := &mockTerm{input: []string{"", "s", "", "nonsense", "read $8000 3"}}

	dbg, err := debugger.NewDebugger(comp, nil, trm, debugger.Options{Stepping: true})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(""))

	test.ExpectEquality(t, dbg.Instructions(), 3)
	test.ExpectSuccess(t, trm.contains("unknown command: nonsense"))
	test.ExpectSuccess(t, trm.contains("$8000: A2 00 EA"))
	test.ExpectEquality(t, dbg.Ended(), terminal.UserAbort)
	test.ExpectEquality(t, dbg.State(), debugger.Stepping)
}

func TestUp(t *testing.T) {
	program := make([]uint8, 0x13)
	copy(program, []uint8{
		0x20, 0x10, 0x80, // JSR $8010
		0xe8, // INX
		0xff, // halt
	})
	copy(program[0x10:], []uint8{
		0xea, // NOP
		0xea, // NOP
		0x60, // RTS
	})

	syms := symbols.NewTable()
	syms.Add("main", 0x8000)
	syms.Add("sub", 0x8010)

	comp := newComputer(t, program)
	trm := &mockTerm{input: []string{"call-stack", "up", "call-stack"}}

	dbg, err := debugger.NewDebugger(comp, syms, trm, debugger.Options{})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.ToggleBreakpoint(0x8010, "sub"))
	test.DemandSuccess(t, dbg.Start(""))

	test.ExpectSuccess(t, trm.contains("$8000 main -> $8010 sub"))
	test.ExpectSuccess(t, trm.contains("returned to $8003 main+3"))
	test.ExpectSuccess(t, trm.contains("call stack is empty"))

	test.DemandEquality(t, len(trm.prompts), 4)
	test.ExpectEquality(t, trm.prompts[2].PC, 0x8003)
	test.ExpectEquality(t, trm.prompts[2].Label, "main+3")

	// JSR, NOP, NOP, RTS
	test.ExpectEquality(t, dbg.Instructions(), 4)
}

func TestUpWithEmptyStack(t *testing.T) {
	comp := newComputer(t, breakProgram())
	trm := &mockTerm{input: []string{"up"}}

	dbg, err := debugger.NewDebugger(comp, nil, trm, debugger.Options{Stepping: true})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(""))

	test.ExpectSuccess(t, trm.contains("call stack: empty"))
	test.ExpectEquality(t, dbg.Instructions(), 0)
}

func TestPeripheralWrite(t *testing.T) {
	program := []uint8{
		0xa9, 0x48, // LDA #$48
		0x8d, 0x01, 0x60, // STA $6001
		0xff,
	}
	comp := newComputer(t, program)
	trm := &mockTerm{}

	dbg, err := debugger.NewDebugger(comp, nil, trm, debugger.Options{})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(""))

	test.ExpectEquality(t, comp.Bus.Peek(0x6001), 0x48)
	test.ExpectEquality(t, comp.LCD.Character(0, 0), 'H')
	test.ExpectEquality(t, comp.LCD.Characters, 1)
}

func TestWriteCommand(t *testing.T) {
	comp := newComputer(t, breakProgram())
	trm := &mockTerm{input: []string{"write $6001 48", "write 0300 zz", "quit"}}

	dbg, err := debugger.NewDebugger(comp, nil, trm, debugger.Options{Stepping: true})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(""))

	test.ExpectEquality(t, comp.LCD.Character(0, 0), 'H')
	test.ExpectSuccess(t, trm.contains("not a byte value: zz"))
	test.ExpectSuccess(t, trm.contains("usage: WRITE <address> <byte>"))
	test.ExpectEquality(t, dbg.Ended(), "quit command")
	test.ExpectEquality(t, dbg.Instructions(), 0)
}

func TestSearch(t *testing.T) {
	syms := symbols.NewTable()
	syms.Add("lcd_init", 0x8040)
	syms.Add("lcd_print", 0x8060)
	syms.Add("main", 0x8000)

	comp := newComputer(t, breakProgram())
	trm := &mockTerm{input: []string{"search lcd_*", "search nothing*", "breakpoint lcd_print", "breakpoints"}}

	dbg, err := debugger.NewDebugger(comp, syms, trm, debugger.Options{Stepping: true})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(""))

	test.ExpectSuccess(t, trm.contains("lcd_init  $8040"))
	test.ExpectSuccess(t, trm.contains("lcd_print $8060"))
	test.ExpectSuccess(t, trm.contains("no symbols match nothing*"))
	test.ExpectSuccess(t, trm.contains("breakpoint added at $8060 lcd_print"))
	test.ExpectSuccess(t, trm.contains(" 0: $8060 lcd_print"))
}

func TestMonitorAndTrace(t *testing.T) {
	program := []uint8{
		0xa9, 0x41, // LDA #$41
		0x8d, 0x00, 0x03, // STA $0300
		0xff,
	}
	comp := newComputer(t, program)
	trm := &mockTerm{input: []string{"monitor $0300 2", "", "monitor", "continue"}}

	out := &test.CompareWriter{}
	tr := tracer.NewTracer(out)

	dbg, err := debugger.NewDebugger(comp, nil, trm, debugger.Options{Stepping: true, Trace: tr})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(""))
	test.DemandSuccess(t, tr.Close())

	test.ExpectSuccess(t, trm.contains("monitoring $0300 (2 bytes)"))
	test.ExpectSuccess(t, trm.contains(" 0: $0300 (2 bytes)"))

	s := out.String()
	test.ExpectSuccess(t, strings.Contains(s, "8000: A9 41       LDA #$41\n"))
	test.ExpectSuccess(t, strings.Contains(s, "RAM State: $0300:00 $0301:00\n"))
	test.ExpectSuccess(t, strings.Contains(s, "RAM State: $0300:41 $0301:00\n"))
	test.ExpectSuccess(t, strings.Contains(s, "Timing: Current Emulated Cycle: 2, Last IRQ Trigger Cycle: 0, Cycles Since Last IRQ: 2\n"))
	test.ExpectSuccess(t, strings.Contains(s, "INFO: magic opcode 0xFF detected, terminate the simulation\n"))
}

func TestEvents(t *testing.T) {
	comp := newComputer(t, breakProgram())
	trm := &mockTerm{input: []string{""}}

	events := make(chan userinput.Event, 10)
	events <- userinput.EventKeyboard{Char: 'a', Down: true}
	events <- userinput.EventKeyboard{Key: userinput.KeyReturn, Down: true}

	dbg, err := debugger.NewDebugger(comp, nil, trm, debugger.Options{
		Stepping:       true,
		Events:         events,
		KeyboardBuffer: userinput.DefaultKeyboardBuffer,
	})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(""))

	// the most recent key press is in the keyboard buffer
	test.ExpectEquality(t, comp.Bus.Peek(userinput.DefaultKeyboardBuffer), 0x0d)

	// a quit event ends the session
	events <- userinput.EventQuit{}
	trm.input = []string{"", ""}
	test.DemandSuccess(t, dbg.Start(""))
	test.ExpectEquality(t, dbg.Ended(), "quit requested")
}

func TestQuitFlag(t *testing.T) {
	comp := newComputer(t, breakProgram())
	trm := &mockTerm{input: []string{"", ""}}

	quit := debugger.NewQuitFlag()
	quit.Set()
	quit.Set()
	test.ExpectSuccess(t, quit.IsSet())

	dbg, err := debugger.NewDebugger(comp, nil, trm, debugger.Options{Quit: quit})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(""))
	test.ExpectEquality(t, dbg.Instructions(), 0)
	test.ExpectEquality(t, dbg.Ended(), "quit requested")
}

func TestDisasmAndQuit(t *testing.T) {
	comp := newComputer(t, breakProgram())
	trm := &mockTerm{input: []string{"disasm $8000 2", "d", "quit", "step"}}

	dbg, err := debugger.NewDebugger(comp, nil, trm, debugger.Options{Stepping: true})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start(""))

	test.ExpectSuccess(t, trm.contains("8000: A2 00       LDX #$00"))
	test.ExpectSuccess(t, trm.contains("8002: EA          NOP"))

	// commands after QUIT are never read
	test.ExpectEquality(t, len(trm.input), 1)
	test.ExpectEquality(t, dbg.Ended(), "quit command")
	test.ExpectEquality(t, dbg.Instructions(), 0)
}

func TestInspectionCommands(t *testing.T) {
	dir := t.TempDir()
	setup := filepath.Join(dir, "setup.lua")
	state := filepath.Join(dir, "state.dot")
	test.DemandSuccess(t, os.WriteFile(setup, []byte("poke(0x0300, 0x5a)\nprint(\"ready\")\n"), 0o644))

	comp := newComputer(t, breakProgram())
	trm := &mockTerm{input: []string{
		"script " + setup,
		"dump $0300 $0301",
		"dump $0301 $0300",
		"lcd",
		"memviz " + state,
	}}

	dbg, err := debugger.NewDebugger(comp, nil, trm, debugger.Options{Stepping: true})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.ToggleBreakpoint(0x8010, "inx"))
	test.DemandSuccess(t, dbg.Start(""))

	test.ExpectSuccess(t, trm.contains("ready"))
	test.ExpectEquality(t, comp.Bus.Peek(0x0300), uint8(0x5a))

	test.ExpectSuccess(t, trm.contains("0000300:"))
	test.ExpectSuccess(t, trm.contains(" 5A"))
	test.ExpectSuccess(t, trm.contains("is before the start"))

	test.ExpectSuccess(t, trm.contains("display off, cursor off, blink off"))

	test.ExpectSuccess(t, trm.contains("debugger state written to "+state))
	info, err := os.Stat(state)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.Size() > 0)

	// none of the commands advance the emulation
	test.ExpectEquality(t, dbg.Instructions(), 0)
}
