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

package sdllcd

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sixfiveohtwo/bensim/userinput"
)

// keyboardEvent converts a key down event to a userinput.EventKeyboard.
// Printable keys arrive as text input events and are ignored here unless the
// control key is held.
func keyboardEvent(ev *sdl.KeyboardEvent) (userinput.EventKeyboard, bool) {
	kev := userinput.EventKeyboard{Down: true}

	mod := sdl.GetModState()
	switch {
	case mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT:
		kev.Mod = userinput.KeyModAlt
	case mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT:
		kev.Mod = userinput.KeyModShift
	case mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL:
		kev.Mod = userinput.KeyModCtrl
	}

	switch ev.Keysym.Sym {
	case sdl.K_RETURN, sdl.K_KP_ENTER:
		kev.Key = userinput.KeyReturn
	case sdl.K_BACKSPACE:
		kev.Key = userinput.KeyBackspace
	case sdl.K_DELETE:
		kev.Key = userinput.KeyDelete
	case sdl.K_ESCAPE:
		kev.Key = userinput.KeyEscape
	case sdl.K_TAB:
		kev.Key = userinput.KeyTab
	case sdl.K_UP:
		kev.Key = userinput.KeyUp
	case sdl.K_DOWN:
		kev.Key = userinput.KeyDown
	case sdl.K_LEFT:
		kev.Key = userinput.KeyLeft
	case sdl.K_RIGHT:
		kev.Key = userinput.KeyRight
	default:
		if kev.Mod != userinput.KeyModCtrl {
			return kev, false
		}
		if ev.Keysym.Sym < sdl.K_a || ev.Keysym.Sym > sdl.K_z {
			return kev, false
		}
		kev.Char = rune(ev.Keysym.Sym)
	}

	return kev, true
}
