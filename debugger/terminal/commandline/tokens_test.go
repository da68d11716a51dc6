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

package commandline_test

import (
	"testing"

	"github.com/sixfiveohtwo/bensim/debugger/terminal/commandline"
	"github.com/sixfiveohtwo/bensim/test"
)

func TestTokens(t *testing.T) {
	toks := commandline.TokeniseInput("  read   $0300 4 ")
	test.ExpectEquality(t, toks.String(), "read   $0300 4")
	test.ExpectEquality(t, toks.Len(), 3)

	s, ok := toks.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "read")

	s, ok = toks.Peek()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "0x0300")
	test.ExpectEquality(t, toks.Remaining(), 2)
	test.ExpectEquality(t, toks.Remainder(), "0x0300 4")

	toks.Get()
	toks.Get()
	test.ExpectSuccess(t, toks.IsEnd())
	_, ok = toks.Get()
	test.ExpectFailure(t, ok)

	toks.Unget()
	s, _ = toks.Get()
	test.ExpectEquality(t, s, "4")

	toks.Reset()
	s, _ = toks.Get()
	test.ExpectEquality(t, s, "read")
}

func TestEmptyInput(t *testing.T) {
	toks := commandline.TokeniseInput("   ")
	test.ExpectEquality(t, toks.Len(), 0)
	test.ExpectSuccess(t, toks.IsEnd())
	_, ok := toks.Peek()
	test.ExpectFailure(t, ok)
}

func TestLoneDollar(t *testing.T) {
	toks := commandline.TokeniseInput("search $")
	toks.Get()
	s, _ := toks.Get()
	test.ExpectEquality(t, s, "$")
}
