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

package debugger

import (
	"testing"

	"github.com/sixfiveohtwo/bensim/curated"
	"github.com/sixfiveohtwo/bensim/symbols"
	"github.com/sixfiveohtwo/bensim/test"
)

func TestCallStack(t *testing.T) {
	syms := symbols.NewTable()
	syms.Add("main", 0x8000)
	syms.Add("lcd_init", 0x8040)

	cs := newCallStack(syms)
	test.ExpectEquality(t, cs.depth(), 0)

	test.ExpectSuccess(t, cs.onCall(0x8005, 0x8040))
	test.ExpectSuccess(t, cs.onCall(0x8045, 0x9000))
	test.ExpectEquality(t, cs.depth(), 2)

	f, ok := cs.frame(0)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, f.CallSite, 0x8045)
	test.ExpectEquality(t, f.Label, "lcd_init+5")
	test.ExpectEquality(t, f.String(), "$8045 lcd_init+5 -> $9000 lcd_init+4032")

	f, ok = cs.frame(1)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, f.Label, "main+5")
	test.ExpectEquality(t, f.TargetLabel, "lcd_init")

	_, ok = cs.frame(2)
	test.ExpectFailure(t, ok)

	a, err := cs.returnAddress()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, 0x8048)

	test.ExpectSuccess(t, cs.onReturn())
	test.ExpectSuccess(t, cs.onReturn())
	test.ExpectEquality(t, cs.depth(), 0)

	_, err = cs.returnAddress()
	test.ExpectSuccess(t, curated.Is(err, CallStackEmpty))
}

func TestCallStackUnderflow(t *testing.T) {
	cs := newCallStack(symbols.NewTable())
	err := cs.onReturn()
	test.ExpectSuccess(t, curated.Is(err, CallStackUnderflow))
	test.ExpectEquality(t, cs.depth(), 0)

	// a matched call and return leaves the depth unchanged
	test.ExpectSuccess(t, cs.onCall(0x8000, 0x8100))
	test.ExpectSuccess(t, cs.onCall(0x8100, 0x8200))
	test.ExpectSuccess(t, cs.onReturn())
	test.ExpectEquality(t, cs.depth(), 1)
}

func TestCallStackOverflow(t *testing.T) {
	cs := newCallStack(symbols.NewTable())
	for i := 0; i < maxCallDepth; i++ {
		test.DemandSuccess(t, cs.onCall(uint16(i), 0x8000))
	}
	err := cs.onCall(0x1000, 0x8000)
	test.ExpectSuccess(t, curated.Is(err, CallStackOverflow))
	test.ExpectEquality(t, cs.depth(), maxCallDepth)

	f, _ := cs.frame(0)
	test.ExpectEquality(t, f.CallSite, uint16(maxCallDepth-1))
}

func TestCallStackWrite(t *testing.T) {
	cs := newCallStack(symbols.NewTable())
	out := &test.CompareWriter{}
	cs.write(out)
	test.ExpectEquality(t, out.String(), "call stack is empty\n")

	cs.onCall(0x8000, 0x8100)
	cs.onCall(0x8105, 0x8200)
	out.Clear()
	cs.write(out)
	test.ExpectEquality(t, out.String(), "#0  $8105 -> $8200\n#1  $8000 -> $8100\n")
}
