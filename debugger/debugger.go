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
	"github.com/sixfiveohtwo/bensim/curated"
	"github.com/sixfiveohtwo/bensim/debugger/terminal"
	"github.com/sixfiveohtwo/bensim/disassembly"
	"github.com/sixfiveohtwo/bensim/hardware"
	"github.com/sixfiveohtwo/bensim/hardware/irq"
	"github.com/sixfiveohtwo/bensim/hardware/memory"
	"github.com/sixfiveohtwo/bensim/logger"
	"github.com/sixfiveohtwo/bensim/symbols"
	"github.com/sixfiveohtwo/bensim/tracer"
	"github.com/sixfiveohtwo/bensim/userinput"
)

// State of the debugger.
type State int

// List of valid State values.
const (
	Running State = iota
	Stepping
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stepping:
		return "stepping"
	}
	return "unknown state"
}

// Options for a debugging session.
type Options struct {
	// begin the session in the stepping state
	Stepping bool

	// address to which key presses are written
	KeyboardBuffer uint16

	// events from the LCD window. may be nil
	Events <-chan userinput.Event

	// trace log. may be nil
	Trace *tracer.Tracer

	// set from outside the debugger to end the session. may be nil
	Quit *QuitFlag
}

// Debugger is the debugging session. All debugger state is only ever
// touched by the goroutine running Start().
type Debugger struct {
	comp   *hardware.Computer
	engine Engine
	bus    *memory.Bus
	irq    *irq.Scheduler
	syms   *symbols.Table
	term   terminal.Terminal
	trace  *tracer.Tracer

	opts Options

	state State

	breakpoints *breakpoints

	// breakpoint set by the UP command. cleared whenever it stops execution
	volatile *breakpoints

	stack    *callStack
	monitors *monitors

	// the number of instructions executed in the session
	instructions int

	// set by the QUIT command
	quitting bool

	// reason for the end of the session
	ended string
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(comp *hardware.Computer, syms *symbols.Table, term terminal.Terminal, opts Options) (*Debugger, error) {
	if comp == nil {
		return nil, curated.Errorf("debugger: no computer")
	}
	if term == nil {
		return nil, curated.Errorf("debugger: no terminal")
	}
	if syms == nil {
		syms = symbols.NewTable()
	}

	dbg := &Debugger{
		comp:        comp,
		engine:      comp.CPU,
		bus:         comp.Bus,
		irq:         comp.IRQ,
		syms:        syms,
		term:        term,
		trace:       opts.Trace,
		opts:        opts,
		breakpoints: newBreakpoints(maxBreakpoints),
		volatile:    newBreakpoints(1),
		stack:       newCallStack(syms),
		monitors:    newMonitors(maxMonitors),
	}

	if opts.Stepping {
		dbg.state = Stepping
	}

	return dbg, nil
}

// State returns the current state of the debugger.
func (dbg *Debugger) State() State {
	return dbg.state
}

// Instructions returns the number of instructions executed in the session.
func (dbg *Debugger) Instructions() int {
	return dbg.instructions
}

// Ended returns the reason the most recent session ended.
func (dbg *Debugger) Ended() string {
	return dbg.ended
}

// Start the debugging session. The terminal is initialised and the optional
// Lua script is run before the first instruction.
func (dbg *Debugger) Start(initScript string) error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	if initScript != "" {
		if err := dbg.runScript(initScript); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	dbg.comp.LCD.Redraw()
	dbg.comp.LCD.Flush()

	dbg.setKeyMode()

	err := dbg.loop()

	// leave the terminal in line mode
	if kp, ok := dbg.term.(terminal.KeyPoller); ok {
		kp.KeyMode(false)
	}

	logger.Logf(logger.Allow, "debugger", "session ended after %d instructions: %s", dbg.instructions, dbg.ended)

	return err
}

// the main loop of the debugger. returns when the session ends.
func (dbg *Debugger) loop() error {
	for {
		if dbg.opts.Quit.IsSet() {
			dbg.ended = "quit requested"
			return nil
		}

		if dbg.drainEvents() {
			dbg.ended = "quit requested"
			return nil
		}

		pc := dbg.engine.PC()

		if dbg.state == Running {
			dbg.checkBreakpoints(pc)
		}

		entry := disassembly.Disassemble(dbg.bus, pc, dbg.syms)

		if dbg.state == Stepping {
			end, err := dbg.commandLoop(entry)
			if err != nil {
				return err
			}
			if end {
				return nil
			}
		}

		if dbg.comp.IsHalt(entry.OpCode) {
			dbg.trace.Instruction(entry)
			dbg.trace.Halt(entry.OpCode)
			dbg.printLine(terminal.StyleFeedback, "halt opcode $%02X at $%04X", entry.OpCode, pc)
			dbg.ended = "halt opcode"
			return nil
		}

		dbg.step(entry)
	}
}

// checkBreakpoints moves the debugger into the stepping state if there is a
// breakpoint at the address.
func (dbg *Debugger) checkBreakpoints(pc uint16) {
	if dbg.volatile.contains(pc) {
		dbg.volatile.clear()
		dbg.printLine(terminal.StyleBreak, "returned to $%04X %s", pc, dbg.syms.Label(pc))
		dbg.setState(Stepping)
		return
	}

	if dbg.breakpoints.contains(pc) {
		dbg.printLine(terminal.StyleBreak, "break at $%04X %s", pc, dbg.syms.Label(pc))
		dbg.setState(Stepping)
	}
}

// commandLoop prompts for and runs commands until a command causes the
// emulation to advance. returns true if the session should end.
func (dbg *Debugger) commandLoop(entry disassembly.Entry) (bool, error) {
	dbg.printLine(terminal.StyleCPUStep, "%s", entry.Annotated())

	for {
		prompt := terminal.Prompt{
			Type:  terminal.PromptTypeStep,
			PC:    entry.Address,
			Label: dbg.syms.Label(entry.Address),
		}

		input, err := dbg.term.TermRead(prompt, &terminal.ReadEvents{
			UserInput:        dbg.opts.Events,
			UserInputHandler: dbg.handleUserInput,
			Quit:             dbg.opts.Quit.Done(),
		})
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) || curated.Is(err, terminal.UserAbort) {
				dbg.ended = err.Error()
				return true, nil
			}
			return true, curated.Errorf("debugger: %v", err)
		}

		dbg.printLine(terminal.StyleEcho, "%s", input)

		advance, err := dbg.parseCommand(input)
		if err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
			continue // for loop
		}

		if dbg.quitting {
			dbg.ended = "quit command"
			return true, nil
		}

		if advance {
			return false, nil
		}
	}
}

// step executes one instruction and reports the result.
func (dbg *Debugger) step(entry disassembly.Entry) {
	switch {
	case entry.IsCall():
		target, _ := entry.OperandValue()
		if err := dbg.stack.onCall(entry.Address, target); err != nil {
			dbg.warning(err)
		}
	case entry.IsReturn():
		if err := dbg.stack.onReturn(); err != nil {
			dbg.warning(err)
		}
	}

	dbg.trace.Instruction(entry)
	dbg.engine.Advance(1)
	dbg.instructions++

	dbg.report()

	if dbg.irq.Check(dbg.engine.Cycles()) {
		accepted := dbg.engine.Interrupt()
		dbg.trace.IRQ(dbg.irq.Interval, accepted)
		if dbg.state == Stepping {
			if accepted {
				dbg.printLine(terminal.StyleInstrument, "IRQ")
			} else {
				dbg.printLine(terminal.StyleInstrument, "IRQ (masked)")
			}
		}
	}
}

// report the state of the CPU and the monitored memory to the trace log and,
// when stepping, to the terminal.
func (dbg *Debugger) report() {
	regs := dbg.engine.Registers()
	cycles := dbg.engine.Cycles()

	dbg.trace.CPUState(regs)
	for _, r := range dbg.monitors.regions {
		dbg.trace.RAMState(dbg.bus, r.address, r.size)
	}
	dbg.trace.Timing(cycles, dbg.irq.Last())

	if dbg.state == Stepping {
		dbg.printLine(terminal.StyleInstrument, "%s", regs)
		dbg.monitors.write(dbg.printStyle(terminal.StyleInstrument), dbg.bus)
	}
}

// setState changes the state of the debugger and the input mode of the
// terminal.
func (dbg *Debugger) setState(state State) {
	dbg.state = state
	dbg.setKeyMode()
}

// terminals that can poll for single key presses do so while running.
func (dbg *Debugger) setKeyMode() {
	if kp, ok := dbg.term.(terminal.KeyPoller); ok && dbg.term.IsInteractive() {
		kp.KeyMode(dbg.state == Running)
	}
}

// drainEvents handles all pending events from the LCD window and, while
// running, key presses from the terminal. returns true if the session
// should end.
func (dbg *Debugger) drainEvents() bool {
	if userinput.Drain(dbg.opts.Events, dbg.bus, dbg.opts.KeyboardBuffer) {
		return true
	}

	if dbg.state == Running {
		if kp, ok := dbg.term.(terminal.KeyPoller); ok && dbg.term.IsInteractive() {
			if ev, ok := kp.TermPollKey(); ok {
				return dbg.handleUserInput(ev)
			}
		}
	}

	return false
}

// handleUserInput writes key presses to the keyboard buffer. returns true if
// the event requests the end of the session.
func (dbg *Debugger) handleUserInput(ev userinput.Event) bool {
	return userinput.HandleUserInput(ev, dbg.bus, dbg.opts.KeyboardBuffer)
}

// warning is printed to the terminal and added to the log.
func (dbg *Debugger) warning(err error) {
	logger.Log(logger.Allow, "debugger", err)
	dbg.printLine(terminal.StyleError, "%v", err)
}
