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

//go:build !windows

// Package easyterm is a wrapper for posix terminals. It switches the input
// terminal between canonical mode, for line input, and cbreak mode, for
// single key input, and keeps track of the geometry of the output terminal.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TermGeometry contains the dimensions of a terminal in characters.
type TermGeometry struct {
	Rows int
	Cols int
}

// EasyTerm is the main container for posix terminals. Usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *os.File

	Geometry TermGeometry

	canAttr    unix.Termios
	cbreakAttr unix.Termios
	rawAttr    unix.Termios

	// the terminal mode most recently set
	cbreak bool

	// signal handler for window size changes
	sigwinch  chan os.Signal
	terminate chan bool
	done      chan bool

	crit sync.Mutex
}

// Initialise the fields in the EasyTerm struct.
func (et *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: requires an output file")
	}

	et.input = inputFile
	et.output = outputFile

	// prepare the attributes for the different terminal modes. cbreak and raw
	// attributes are derived from the canonical attributes
	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)
	et.rawAttr = et.canAttr
	termios.Cfmakeraw(&et.rawAttr)

	_ = et.UpdateGeometry()

	et.sigwinch = make(chan os.Signal, 1)
	et.terminate = make(chan bool)
	et.done = make(chan bool)
	signal.Notify(et.sigwinch, syscall.SIGWINCH)

	go func() {
		defer func() {
			et.done <- true
		}()
		for {
			select {
			case <-et.sigwinch:
				_ = et.UpdateGeometry()
			case <-et.terminate:
				return
			}
		}
	}()

	return nil
}

// CleanUp returns the terminal to canonical mode and stops the signal
// handler.
func (et *EasyTerm) CleanUp() {
	if et.terminate == nil {
		return
	}
	et.CanonicalMode()
	signal.Stop(et.sigwinch)
	et.terminate <- true
	<-et.done
	et.terminate = nil
}

// TermPrint writes the string to the output terminal.
func (et *EasyTerm) TermPrint(s string) {
	et.output.WriteString(s)
}

// TermPrintf writes the formatted string to the output terminal.
func (et *EasyTerm) TermPrintf(s string, a ...interface{}) {
	et.output.WriteString(fmt.Sprintf(s, a...))
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (et *EasyTerm) UpdateGeometry() error {
	cols, rows, err := term.GetSize(int(et.output.Fd()))
	if err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}

	et.crit.Lock()
	defer et.crit.Unlock()
	et.Geometry.Cols = cols
	et.Geometry.Rows = rows

	return nil
}

// GetGeometry returns the most recent dimensions of the output terminal.
func (et *EasyTerm) GetGeometry() TermGeometry {
	et.crit.Lock()
	defer et.crit.Unlock()
	return et.Geometry
}

// CanonicalMode puts the terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.canAttr)
	et.cbreak = false
}

// CBreakMode puts the terminal into cbreak mode. Key presses are available
// immediately and are not echoed.
func (et *EasyTerm) CBreakMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.cbreakAttr)
	et.cbreak = true
}

// RawMode puts the terminal into raw mode.
func (et *EasyTerm) RawMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.rawAttr)
	et.cbreak = false
}

// IsCBreak returns true if the terminal was most recently put into cbreak
// mode.
func (et *EasyTerm) IsCBreak() bool {
	return et.cbreak
}

// Flush makes sure the terminal's input and output buffers are empty.
func (et *EasyTerm) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	if err := termios.Tcflush(et.output.Fd(), termios.TCOFLUSH); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}
