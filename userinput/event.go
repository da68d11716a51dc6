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

// Event represents all the different types of events that can occur.
type Event interface{}

// EventQuit is sent when the user wants to end the session, for example by
// closing the LCD window.
type EventQuit struct{}

// KeyMod identifies the modifier key held down during a key press.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// Named keys used in the Key field of EventKeyboard.
const (
	KeyReturn    = "Return"
	KeyBackspace = "Backspace"
	KeyDelete    = "Delete"
	KeyEscape    = "Escape"
	KeyTab       = "Tab"
	KeyUp        = "Up"
	KeyDown      = "Down"
	KeyLeft      = "Left"
	KeyRight     = "Right"
)

// EventKeyboard is sent for key presses. For printable characters the Char
// field is the character and the Key field is empty. For other keys the Key
// field is one of the named keys.
type EventKeyboard struct {
	Key  string
	Char rune
	Down bool
	Mod  KeyMod
}
