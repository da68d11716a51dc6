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
	"testing"

	"github.com/sixfiveohtwo/bensim/test"
	"github.com/sixfiveohtwo/bensim/userinput"
)

func sequence(runes ...rune) func() (rune, bool) {
	return func() (rune, bool) {
		if len(runes) == 0 {
			return 0, false
		}
		r := runes[0]
		runes = runes[1:]
		return r, true
	}
}

func TestKeyEvent(t *testing.T) {
	ev, ok := keyEvent('a', sequence())
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev.Char, 'a')

	ev, ok = keyEvent('\r', sequence())
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev.Key, userinput.KeyReturn)

	ev, _ = keyEvent(127, sequence())
	test.ExpectEquality(t, ev.Key, userinput.KeyBackspace)

	ev, _ = keyEvent(27, sequence('[', 'A'))
	test.ExpectEquality(t, ev.Key, userinput.KeyUp)

	ev, _ = keyEvent(27, sequence('[', 'B'))
	test.ExpectEquality(t, ev.Key, userinput.KeyDown)

	ev, _ = keyEvent(27, sequence('[', '3', '~'))
	test.ExpectEquality(t, ev.Key, userinput.KeyDelete)

	ev, _ = keyEvent(27, sequence())
	test.ExpectEquality(t, ev.Key, userinput.KeyEscape)

	ev, _ = keyEvent(1, sequence())
	test.ExpectEquality(t, ev.Char, 'a')
	test.ExpectEquality(t, ev.Mod, userinput.KeyModCtrl)

	_, ok = keyEvent(0, sequence())
	test.ExpectFailure(t, ok)
}
