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

// Byte values written to the keyboard buffer for the named keys.
const (
	ByteReturn    = 0x0d
	ByteBackspace = 0x08
	ByteEscape    = 0x1b
	ByteTab       = 0x09

	// the program scrolls the LCD with the bracket characters. the cursor
	// keys are mapped to them
	ByteUp   = '['
	ByteDown = ']'
)

// KeyByte returns the byte that should be written to the keyboard buffer for
// the key event. The second return value is false if there is no suitable
// value or if the event is for a key release.
func KeyByte(ev EventKeyboard) (uint8, bool) {
	if !ev.Down {
		return 0, false
	}

	switch ev.Key {
	case "":
	case KeyReturn:
		return ByteReturn, true
	case KeyBackspace, KeyDelete:
		return ByteBackspace, true
	case KeyEscape:
		return ByteEscape, true
	case KeyTab:
		return ByteTab, true
	case KeyUp:
		return ByteUp, true
	case KeyDown:
		return ByteDown, true
	default:
		return 0, false
	}

	c := ev.Char
	if ev.Mod == KeyModCtrl {
		switch {
		case c >= 'a' && c <= 'z':
			return uint8(c-'a') + 1, true
		case c >= 'A' && c <= 'Z':
			return uint8(c-'A') + 1, true
		}
		return 0, false
	}

	if c >= 0x20 && c < 0x7f {
		return uint8(c), true
	}

	return 0, false
}
