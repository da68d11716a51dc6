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

package userinput

import "github.com/sixfiveohtwo/bensim/logger"

// KeyboardBuffer is the location that key presses are written to. It is
// implemented by memory.Bus.
type KeyboardBuffer interface {
	Write(address uint16, data uint8)
}

// DefaultKeyboardBuffer is the address of the keyboard buffer on the
// reference board.
const DefaultKeyboardBuffer = 0x0300

// HandleUserInput writes key presses to the keyboard buffer at the address.
// Returns true if the event is a request to quit.
func HandleUserInput(ev Event, buf KeyboardBuffer, address uint16) bool {
	switch ev := ev.(type) {
	case EventQuit:
		return true
	case EventKeyboard:
		if b, ok := KeyByte(ev); ok {
			buf.Write(address, b)
		}
	default:
		logger.Logf(logger.Allow, "userinput", "unhandled event type (%T)", ev)
	}
	return false
}

// Drain handles every event pending in the channel without blocking. Returns
// true if any of the events is a request to quit. Events after a quit event
// are left in the channel.
func Drain(events <-chan Event, buf KeyboardBuffer, address uint16) bool {
	for {
		select {
		case ev := <-events:
			if HandleUserInput(ev, buf, address) {
				return true
			}
		default:
			return false
		}
	}
}
