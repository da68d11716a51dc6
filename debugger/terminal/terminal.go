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

package terminal

import (
	"github.com/sixfiveohtwo/bensim/userinput"
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns a line of input. The implementation should monitor the
	// ReadEvents channels while waiting for input.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// IsInteractive should return true for implementations that require user
	// interaction.
	IsInteractive() bool
}

// Sentinal errors. Returned by TermRead() if caught whilst waiting for input.
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// ReadEvents should be monitored during a TermRead().
type ReadEvents struct {
	// user input from the LCD window
	UserInput        <-chan userinput.Event
	UserInputHandler func(userinput.Event) bool

	// closed when the session should end, for example on receipt of an
	// interrupt signal
	Quit <-chan struct{}
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()

	// Silence all output except error messages.
	Silence(silenced bool)
}

// KeyPoller is implemented by terminals that can provide single key presses
// without blocking.
type KeyPoller interface {
	// KeyMode switches the terminal between line input (false) and single
	// key input (true)
	KeyMode(enable bool)

	// TermPollKey returns the next key press, if there is one
	TermPollKey() (userinput.EventKeyboard, bool)
}
