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

package colorterm

import (
	"unicode"

	"github.com/sixfiveohtwo/bensim/debugger/terminal/colorterm/easyterm"
	"github.com/sixfiveohtwo/bensim/userinput"
)

// keyEvent translates runes received from the terminal in cbreak mode into a
// keyboard event. The next function is called for the remaining runes of an
// escape sequence and should return false if no rune is forthcoming.
func keyEvent(r rune, next func() (rune, bool)) (userinput.EventKeyboard, bool) {
	ev := userinput.EventKeyboard{Down: true}

	switch r {
	case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
		ev.Key = userinput.KeyReturn
	case easyterm.KeyBackspace, easyterm.KeyDelete:
		ev.Key = userinput.KeyBackspace
	case easyterm.KeyTab:
		ev.Key = userinput.KeyTab
	case easyterm.KeyEsc:
		ev.Key = userinput.KeyEscape

		r, ok := next()
		if !ok || r != easyterm.EscCursor {
			return ev, true
		}

		r, ok = next()
		if !ok {
			return ev, true
		}

		switch r {
		case easyterm.CursorUp:
			ev.Key = userinput.KeyUp
		case easyterm.CursorDown:
			ev.Key = userinput.KeyDown
		case easyterm.CursorForward:
			ev.Key = userinput.KeyRight
		case easyterm.CursorBackward:
			ev.Key = userinput.KeyLeft
		case easyterm.EscDelete:
			// consume the tilde that ends the sequence
			next()
			ev.Key = userinput.KeyDelete
		default:
			return ev, false
		}
	default:
		switch {
		case r > 0 && r < 27:
			ev.Char = 'a' + r - 1
			ev.Mod = userinput.KeyModCtrl
		case unicode.IsPrint(r):
			ev.Char = r
			if unicode.IsUpper(r) {
				ev.Mod = userinput.KeyModShift
			}
		default:
			return ev, false
		}
	}

	return ev, true
}
