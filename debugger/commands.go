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
	"fmt"
	"sort"
	"strings"

	"github.com/sixfiveohtwo/bensim/curated"
	"github.com/sixfiveohtwo/bensim/debugger/terminal"
	"github.com/sixfiveohtwo/bensim/debugger/terminal/commandline"
	"github.com/sixfiveohtwo/bensim/disassembly"
	"github.com/sixfiveohtwo/bensim/logger"
)

// debugger keywords.
const (
	cmdStep        = "STEP"
	cmdContinue    = "CONTINUE"
	cmdRead        = "READ"
	cmdWrite       = "WRITE"
	cmdUp          = "UP"
	cmdCallStack   = "CALL-STACK"
	cmdBreakpoints = "BREAKPOINTS"
	cmdBreakpoint  = "BREAKPOINT"
	cmdSearch      = "SEARCH"
	cmdMonitor     = "MONITOR"
	cmdHelp        = "HELP"
	cmdQuit        = "QUIT"
	cmdRegisters   = "REGISTERS"
	cmdDisasm      = "DISASM"
	cmdDump        = "DUMP"
	cmdLCD         = "LCD"
	cmdScript      = "SCRIPT"
	cmdMemviz      = "MEMVIZ"
	cmdLog         = "LOG"
)

// short forms of the keywords.
var aliases = map[string]string{
	"S":     cmdStep,
	"C":     cmdContinue,
	"R":     cmdRead,
	"W":     cmdWrite,
	"U":     cmdUp,
	"CS":    cmdCallStack,
	"BT":    cmdCallStack,
	"BS":    cmdBreakpoints,
	"B":     cmdBreakpoint,
	"BREAK": cmdBreakpoint,
	"F":     cmdSearch,
	"M":     cmdMonitor,
	"H":     cmdHelp,
	"?":     cmdHelp,
	"Q":     cmdQuit,
	"EXIT":  cmdQuit,
	"REGS":  cmdRegisters,
	"D":     cmdDisasm,
}

// Sentinal errors.
const (
	UnknownCommand = "unknown command: %s (try HELP)"
	CommandUsage   = "%s (usage: %s)"
)

// the number of bytes shown on each line by the READ command.
const readLineLength = 8

// the default number of instructions shown by the DISASM command.
const disasmDefault = 10

// keyword returns the normalised keyword for the command. returns false if
// the command is not recognised.
func keyword(command string) (string, bool) {
	command = strings.ToUpper(command)
	if k, ok := aliases[command]; ok {
		return k, true
	}
	if _, ok := Help[command]; ok {
		return command, true
	}
	return "", false
}

// parseCommand runs the command in the input string. returns true if the
// command causes the emulation to move forward. the empty string is the same
// as the STEP command.
func (dbg *Debugger) parseCommand(input string) (bool, error) {
	tokens := commandline.TokeniseInput(input)

	command, ok := tokens.Get()
	if !ok {
		return true, nil
	}

	kw, ok := keyword(command)
	if !ok {
		return false, curated.Errorf(UnknownCommand, command)
	}

	advance, err := dbg.processTokens(kw, tokens)
	if err != nil {
		return false, curated.Errorf(CommandUsage, err, Usage[kw])
	}

	return advance, nil
}

func (dbg *Debugger) processTokens(kw string, tokens *commandline.Tokens) (bool, error) {
	switch kw {
	case cmdStep:
		if err := noMoreArgs(tokens); err != nil {
			return false, err
		}
		return true, nil

	case cmdContinue:
		if err := noMoreArgs(tokens); err != nil {
			return false, err
		}
		dbg.setState(Running)
		return true, nil

	case cmdRead:
		address, _, err := dbg.addressArg(tokens, "address")
		if err != nil {
			return false, err
		}
		count, err := countArg(tokens, 1)
		if err != nil {
			return false, err
		}
		if err := noMoreArgs(tokens); err != nil {
			return false, err
		}
		dbg.read(address, count)

	case cmdWrite:
		address, _, err := dbg.addressArg(tokens, "address")
		if err != nil {
			return false, err
		}
		arg, ok := tokens.Get()
		if !ok {
			return false, curated.Errorf(MissingArgument, "value")
		}
		v, err := parseByte(arg)
		if err != nil {
			return false, err
		}
		if err := noMoreArgs(tokens); err != nil {
			return false, err
		}
		dbg.bus.Poke(address, v)
		dbg.printLine(terminal.StyleFeedback, "$%04X <- $%02X", address, v)

	case cmdUp:
		if err := noMoreArgs(tokens); err != nil {
			return false, err
		}
		address, err := dbg.stack.returnAddress()
		if err != nil {
			return false, err
		}
		dbg.volatile.clear()
		if _, err := dbg.volatile.toggle(address, ""); err != nil {
			return false, err
		}
		dbg.printLine(terminal.StyleFeedback, "running until $%04X %s", address, dbg.syms.Label(address))
		dbg.setState(Running)
		return true, nil

	case cmdCallStack:
		if err := noMoreArgs(tokens); err != nil {
			return false, err
		}
		dbg.stack.write(dbg.printStyle(terminal.StyleFeedback))

	case cmdBreakpoints:
		if err := noMoreArgs(tokens); err != nil {
			return false, err
		}
		dbg.breakpoints.list(dbg.printStyle(terminal.StyleFeedback), dbg.syms)

	case cmdBreakpoint:
		address, label, err := dbg.addressArg(tokens, "address or symbol")
		if err != nil {
			return false, err
		}
		if err := noMoreArgs(tokens); err != nil {
			return false, err
		}
		if err := dbg.toggleBreakpoint(address, label); err != nil {
			dbg.warning(err)
		}

	case cmdSearch:
		pattern, ok := tokens.Get()
		if !ok {
			return false, curated.Errorf(MissingArgument, "pattern")
		}
		if err := noMoreArgs(tokens); err != nil {
			return false, err
		}
		found := dbg.syms.Search(pattern)
		if len(found) == 0 {
			dbg.printLine(terminal.StyleFeedback, "no symbols match %s", pattern)
		} else {
			dbg.syms.Write(dbg.printStyle(terminal.StyleFeedback), found)
		}

	case cmdMonitor:
		if tokens.Remaining() == 0 {
			dbg.monitors.list(dbg.printStyle(terminal.StyleFeedback))
			break // switch
		}
		address, _, err := dbg.addressArg(tokens, "address")
		if err != nil {
			return false, err
		}
		size, err := countArg(tokens, 1)
		if err != nil {
			return false, err
		}
		if err := noMoreArgs(tokens); err != nil {
			return false, err
		}
		if err := dbg.toggleMonitor(address, size); err != nil {
			dbg.warning(err)
		}

	case cmdHelp:
		arg, ok := tokens.Get()
		if !ok {
			dbg.printLine(terminal.StyleHelp, listCommands())
			break // switch
		}
		k, ok := keyword(arg)
		if !ok {
			dbg.printLine(terminal.StyleHelp, fmt.Sprintf("no help for %s", strings.ToUpper(arg)))
			break // switch
		}
		dbg.printLine(terminal.StyleHelp, fmt.Sprintf("%s\n  usage: %s", Help[k], Usage[k]))

	case cmdQuit:
		dbg.quitting = true
		return true, nil

	case cmdRegisters:
		if tokens.Remaining() == 0 {
			dbg.printLine(terminal.StyleInstrument, "%s", dbg.engine.Registers())
			dbg.printLine(terminal.StyleInstrument, "flags: %s", dbg.engine.Registers().Flags())
			break // switch
		}
		reg, _ := tokens.Get()
		arg, ok := tokens.Get()
		if !ok {
			return false, curated.Errorf(MissingArgument, "value")
		}
		v, err := parseByte(arg)
		if err != nil {
			return false, err
		}
		if err := noMoreArgs(tokens); err != nil {
			return false, err
		}
		rs, ok := dbg.engine.(registerSetter)
		if !ok || !rs.SetRegister(strings.ToUpper(reg), v) {
			return false, curated.Errorf("cannot set register %s", reg)
		}
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.engine.Registers())

	case cmdDisasm:
		address := dbg.engine.PC()
		if tokens.Remaining() > 0 {
			var err error
			address, _, err = dbg.addressArg(tokens, "address")
			if err != nil {
				return false, err
			}
		}
		count, err := countArg(tokens, disasmDefault)
		if err != nil {
			return false, err
		}
		if err := noMoreArgs(tokens); err != nil {
			return false, err
		}
		err = disassembly.Write(dbg.printStyle(terminal.StyleCPUStep), dbg.bus, address, count, dbg.syms)
		if err != nil {
			return false, err
		}

	case cmdDump:
		from, _, err := dbg.addressArg(tokens, "from")
		if err != nil {
			return false, err
		}
		to, _, err := dbg.addressArg(tokens, "to")
		if err != nil {
			return false, err
		}
		if err := noMoreArgs(tokens); err != nil {
			return false, err
		}
		if to < from {
			return false, curated.Errorf("end of range ($%04X) is before the start ($%04X)", to, from)
		}
		dbg.bus.Dump(dbg.printStyle(terminal.StyleFeedback), from, to)

	case cmdLCD:
		if err := noMoreArgs(tokens); err != nil {
			return false, err
		}
		dbg.printLine(terminal.StyleInstrument, "%s", dbg.comp.LCD)

	case cmdScript:
		filename, ok := tokens.Get()
		if !ok {
			return false, curated.Errorf(MissingArgument, "file")
		}
		if err := noMoreArgs(tokens); err != nil {
			return false, err
		}
		if err := dbg.runScript(filename); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}

	case cmdMemviz:
		filename, ok := tokens.Get()
		if !ok {
			return false, curated.Errorf(MissingArgument, "file")
		}
		if err := noMoreArgs(tokens); err != nil {
			return false, err
		}
		if err := dbg.memviz(filename); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
			break // switch
		}
		dbg.printLine(terminal.StyleFeedback, "debugger state written to %s", filename)

	case cmdLog:
		count, err := countArg(tokens, 10)
		if err != nil {
			return false, err
		}
		if err := noMoreArgs(tokens); err != nil {
			return false, err
		}
		logger.Tail(dbg.printStyle(terminal.StyleLog), count)
	}

	return false, nil
}

// read memory and print in rows.
func (dbg *Debugger) read(address uint16, count int) {
	s := strings.Builder{}
	for i := 0; i < count; i++ {
		a := address + uint16(i)
		if i%readLineLength == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("$%04X:", a))
		}
		s.WriteString(fmt.Sprintf(" %02X", dbg.bus.Peek(a)))
	}
	dbg.printLine(terminal.StyleFeedback, "%s", s.String())
}

// toggleBreakpoint and print the result.
func (dbg *Debugger) toggleBreakpoint(address uint16, label string) error {
	added, err := dbg.breakpoints.toggle(address, label)
	if err != nil {
		return err
	}
	if label == "" {
		label = dbg.syms.Label(address)
	}
	if added {
		dbg.printLine(terminal.StyleFeedback, "breakpoint added at $%04X %s", address, label)
	} else {
		dbg.printLine(terminal.StyleFeedback, "breakpoint removed from $%04X %s", address, label)
	}
	return nil
}

// toggleMonitor and print the result.
func (dbg *Debugger) toggleMonitor(address uint16, size int) error {
	added, err := dbg.monitors.toggle(address, size)
	if err != nil {
		return err
	}
	if added {
		dbg.printLine(terminal.StyleFeedback, "monitoring $%04X (%d bytes)", address, size)
	} else {
		dbg.printLine(terminal.StyleFeedback, "no longer monitoring $%04X", address)
	}
	return nil
}

// listCommands returns the sorted list of keywords.
func listCommands() string {
	kws := make([]string, 0, len(Help))
	for k := range Help {
		kws = append(kws, k)
	}
	sort.Strings(kws)

	s := strings.Builder{}
	for i, k := range kws {
		if i > 0 && i%6 == 0 {
			s.WriteString("\n")
		} else if i > 0 {
			s.WriteString("  ")
		}
		s.WriteString(k)
	}
	return s.String()
}

// ToggleBreakpoint adds or removes a breakpoint. Used to set breakpoints
// before the session starts.
func (dbg *Debugger) ToggleBreakpoint(address uint16, label string) error {
	return dbg.toggleBreakpoint(address, label)
}
