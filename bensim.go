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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/sixfiveohtwo/bensim/curated"
	"github.com/sixfiveohtwo/bensim/debugger"
	"github.com/sixfiveohtwo/bensim/debugger/terminal"
	"github.com/sixfiveohtwo/bensim/debugger/terminal/colorterm"
	"github.com/sixfiveohtwo/bensim/debugger/terminal/plainterm"
	"github.com/sixfiveohtwo/bensim/disassembly"
	"github.com/sixfiveohtwo/bensim/gui/sdllcd"
	"github.com/sixfiveohtwo/bensim/gui/termlcd"
	"github.com/sixfiveohtwo/bensim/hardware"
	"github.com/sixfiveohtwo/bensim/hardware/irq"
	"github.com/sixfiveohtwo/bensim/hardware/memory"
	"github.com/sixfiveohtwo/bensim/hardware/peripherals/lcd"
	"github.com/sixfiveohtwo/bensim/imageloader"
	"github.com/sixfiveohtwo/bensim/logger"
	"github.com/sixfiveohtwo/bensim/modalflag"
	"github.com/sixfiveohtwo/bensim/paths"
	"github.com/sixfiveohtwo/bensim/performance"
	"github.com/sixfiveohtwo/bensim/statsview"
	"github.com/sixfiveohtwo/bensim/symbols"
	"github.com/sixfiveohtwo/bensim/tracer"
	"github.com/sixfiveohtwo/bensim/userinput"
	"github.com/sixfiveohtwo/bensim/version"
)

// script run at the start of a session if no other script is specified. it
// is looked for in the resource directory.
const defaultInitScript = "init.lua"

// the rate at which the main thread services the gui.
const serviceRate = time.Second / 60

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// There is no Create() function. Instead the creator is a channel which
// accepts a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error

	// set by the main thread on the first interrupt signal. the emulation
	// checks it once per instruction
	quit *debugger.QuitFlag
}

// #mainthread
func main() {
	runtime.LockOSThread()

	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
		quit:          debugger.NewQuitFlag(),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc the first interrupt asks the emulation to stop. a second
	// interrupt ends the program immediately
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// rate at which the gui is serviced
	service := time.NewTicker(serviceRate)
	defer service.Stop()

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. the service ticker, which calls the Service() function of the most
	//     recently created GUI
	//
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			if sync.quit.IsSet() {
				fmt.Println("\r")
				if gui != nil {
					gui.Destroy(os.Stderr)
				}
				exitVal = 30
				done = true
			} else {
				sync.quit.Set()
			}

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// a nil *Window returned as a GuiCreator is not a nil interface
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		case <-service.C:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("DEBUG", "RUN", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		// 10
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "DEBUG":
		err = emulate(md, sync, true)

	case "RUN":
		err = emulate(md, sync, false)

	case "DISASM":
		err = disasm(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// emulate runs the program image in the debugger. the session begins in the
// stepping state if stepping is true and no initial breakpoint is requested.
func emulate(md *modalflag.Modes, sync *mainSync, stepping bool) error {
	md.NewMode()

	symbolsFile := md.AddString("symbols", "", "symbol definition file")
	breakSymbol := md.AddString("break", "", "symbol at which to set a breakpoint")
	traceFile := md.AddString("log", "trace.log", "trace log file")
	interval := md.AddUint64("irq", irq.DefaultInterval, "emulated cycles between interrupt requests (0 disables)")
	halt := md.AddInt("halt", hardware.DefaultHalt, "opcode that ends emulation (-1 disables)")
	load := md.AddAddress("load", imageloader.DefaultOrigin, "address at which the program image is placed")
	keys := md.AddAddress("keys", userinput.DefaultKeyboardBuffer, "address of the keyboard buffer")
	lcdControl := md.AddAddress("lcdctl", lcd.DefaultControl, "address of the LCD control register")
	lcdData := md.AddAddress("lcddata", lcd.DefaultData, "address of the LCD data register")
	dump := md.AddRange("dump", "memory range to dump to the trace log at the end of emulation (from:to)")
	lcdType := md.AddString("lcd", "SDL", "LCD presentation: SDL, TERM, NONE")
	termType := md.AddString("term", "COLOR", "terminal type: COLOR, PLAIN")
	initScript := md.AddString("script", "", fmt.Sprintf("Lua script to run before the first instruction (default %s in the resource directory)", defaultInitScript))
	echo := md.AddBool("echo", false, "echo log to stdout")
	profile := md.AddBool("profile", false, "run emulation through the cpu profiler")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *echo {
		if strings.ToUpper(*termType) == "COLOR" {
			logger.SetEcho(logger.NewColorizer(os.Stdout))
		} else {
			logger.SetEcho(os.Stdout)
		}
	} else {
		logger.SetEcho(nil)
	}

	if stats != nil && *stats {
		statsview.Launch(md.Output)
	}

	if *halt < hardware.NoHalt || *halt > 0xff {
		return curated.Errorf("halt opcode must be between 0 and 255, or -1 (%d)", *halt)
	}

	if *lcdControl == *lcdData {
		return curated.Errorf("LCD registers must be at different addresses ($%04X)", *lcdControl)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program image required for %s mode (see -help)", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	ld := imageloader.NewLoader(md.GetArg(0), *load)
	if err := ld.Load(); err != nil {
		return err
	}

	comp := hardware.NewComputer(hardware.Config{
		LCDControl:  *lcdControl,
		LCDData:     *lcdData,
		IRQInterval: *interval,
		Halt:        *halt,
	})

	n := ld.Place(comp.Bus)
	logger.Logf(logger.Allow, "bensim", "%d bytes from %s placed at %#04x", n, ld.ShortName(), ld.Origin)

	comp.InstallDefaults(ld.Origin)
	comp.Reset()

	syms := symbols.NewTable()
	if *symbolsFile != "" {
		syms, err = symbols.ReadSymbolsFile(*symbolsFile)
		if err != nil {
			logger.Log(logger.Allow, "bensim", err)
			fmt.Printf("! %v\n", err)
			syms = symbols.NewTable()
		}
	}

	var trace *tracer.Tracer
	if *traceFile != "" {
		trace, err = tracer.Create(*traceFile)
		if err != nil {
			return err
		}
		defer trace.Close()
	}

	events := make(chan userinput.Event, 64)

	switch strings.ToUpper(*lcdType) {
	case "SDL":
		sync.creator <- func() (GuiCreator, error) {
			return sdllcd.NewWindow(sdllcd.DefaultScale, events)
		}

		select {
		case g := <-sync.creation:
			comp.LCD.AddOutput(g.(lcd.Output))
		case err := <-sync.creationError:
			return err
		}

	case "TERM":
		comp.LCD.AddOutput(termlcd.NewText(md.Output, strings.ToUpper(*termType) == "COLOR"))

	case "NONE":

	default:
		return curated.Errorf("unknown LCD presentation (%s)", *lcdType)
	}

	var term terminal.Terminal
	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	if *breakSymbol != "" {
		stepping = false
	}

	dbg, err := debugger.NewDebugger(comp, syms, term, debugger.Options{
		Stepping:       stepping,
		KeyboardBuffer: *keys,
		Events:         events,
		Trace:          trace,
		Quit:           sync.quit,
	})
	if err != nil {
		return err
	}

	if *breakSymbol != "" {
		if address, ok := syms.LookupByName(*breakSymbol); ok {
			if err := dbg.ToggleBreakpoint(address, *breakSymbol); err != nil {
				return err
			}
		} else {
			logger.Logf(logger.Allow, "bensim", "breakpoint symbol not found: %s", *breakSymbol)
			fmt.Printf("! breakpoint symbol not found: %s\n", *breakSymbol)
		}
	}

	if *initScript == "" {
		if pth, err := paths.ResourcePath("", defaultInitScript); err == nil {
			if _, err := os.Stat(pth); err == nil {
				*initScript = pth
			}
		}
	}

	dbgRun := func() error {
		return dbg.Start(*initScript)
	}

	if *profile {
		err = performance.ProfileCPU("bensim.cpu.profile", dbgRun)
		if err != nil {
			return err
		}
		err = performance.ProfileMem("bensim.mem.profile")
		if err != nil {
			return err
		}
	} else {
		err = dbgRun()
		if err != nil {
			return err
		}
	}

	if dump.Specified {
		trace.Dump(comp.Bus, dump.From, dump.To)
	}
	trace.Finish()
	comp.Summary(trace)

	fmt.Println()
	fmt.Println("--- Simulation Finished ---")
	fmt.Printf("%s after %d instructions\n", dbg.Ended(), dbg.Instructions())
	comp.Summary(os.Stdout)

	return nil
}

// disasm prints the disassembly of the program image.
func disasm(md *modalflag.Modes) error {
	md.NewMode()

	load := md.AddAddress("load", imageloader.DefaultOrigin, "address at which the program image is placed")
	symbolsFile := md.AddString("symbols", "", "symbol definition file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program image required for %s mode (see -help)", md)
	case 1:
		ld := imageloader.NewLoader(md.GetArg(0), *load)
		if err := ld.Load(); err != nil {
			return err
		}

		bus := memory.NewBus()
		n := ld.Place(bus)

		var syms disassembly.SymbolLookup
		if *symbolsFile != "" {
			tbl, err := symbols.ReadSymbolsFile(*symbolsFile)
			if err != nil {
				return err
			}
			syms = tbl
		}

		err = disassembly.WriteBlock(md.Output, bus, ld.Origin, n, syms)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintln(md.Output, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
