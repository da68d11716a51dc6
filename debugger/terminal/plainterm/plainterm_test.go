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

package plainterm_test

import (
	"strings"
	"testing"

	"github.com/sixfiveohtwo/bensim/curated"
	"github.com/sixfiveohtwo/bensim/debugger/terminal"
	"github.com/sixfiveohtwo/bensim/debugger/terminal/plainterm"
	"github.com/sixfiveohtwo/bensim/test"
)

func TestPlainTerminal(t *testing.T) {
	out := &test.CompareWriter{}
	pt := &plainterm.PlainTerminal{
		Input:  strings.NewReader("read $0300\n"),
		Output: out,
	}
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectFailure(t, pt.IsInteractive())

	s, err := pt.TermRead(terminal.Prompt{PC: 0x8000}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "read $0300")

	_, err = pt.TermRead(terminal.Prompt{PC: 0x8000}, nil)
	test.ExpectSuccess(t, curated.Is(err, terminal.UserAbort))

	// prompt is not printed because output is not a real terminal
	test.ExpectSuccess(t, out.Compare(""))

	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleError, "bad")
	pt.TermPrintLine(terminal.StyleEcho, "echo")
	test.ExpectSuccess(t, out.Compare("hello\n* bad\necho\n"))

	out.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectSuccess(t, out.Compare("* bad\n"))
}
