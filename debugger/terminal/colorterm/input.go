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

//go:build !windows

package colorterm

import (
	"unicode"

	"github.com/sixfiveohtwo/bensim/curated"
	"github.com/sixfiveohtwo/bensim/debugger/terminal"
	"github.com/sixfiveohtwo/bensim/debugger/terminal/colorterm/easyterm"
	"github.com/sixfiveohtwo/bensim/debugger/terminal/colorterm/easyterm/ansi"
	"github.com/sixfiveohtwo/bensim/userinput"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if events == nil {
		events = &terminal.ReadEvents{}
	}

	// line editing is done in cbreak mode. the mode in effect before the
	// call is restored on return
	if !ct.keyMode {
		ct.CBreakMode()
		defer ct.CanonicalMode()
	}

	var input []rune
	cursor := 0
	history := len(ct.history)

	// input is kept when scrolling through the history so that the user can
	// return to it
	var pending []rune

	p := prompt.String()

	for {
		ct.TermPrint("\r")
		ct.TermPrint(ansi.ClearLine)
		ct.TermPrint(ansi.PenStyles["bold"])
		ct.TermPrint(p)
		ct.TermPrint(ansi.NormalPen)
		ct.TermPrint(string(input))
		ct.TermPrint(ansi.CursorMove(cursor - len(input)))

		var rr readRune
		select {
		case rr = <-ct.runes:
		case <-events.Quit:
			ct.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)
		case ev := <-events.UserInput:
			if events.UserInputHandler != nil && events.UserInputHandler(ev) {
				ct.TermPrint("\n")
				return "", curated.Errorf(terminal.UserAbort)
			}
			continue
		}

		if rr.err != nil {
			ct.TermPrint("\n")
			return "", curated.Errorf(terminal.UserAbort)
		}

		switch rr.r {
		case easyterm.KeyInterrupt:
			ct.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeySuspend:
			ct.CanonicalMode()
			_ = easyterm.SuspendProcess()
			ct.CBreakMode()

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.TermPrint("\n")
			s := string(input)
			if s != "" && (len(ct.history) == 0 || ct.history[len(ct.history)-1] != s) {
				ct.history = append(ct.history, s)
			}
			return s, nil

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				history = len(ct.history)
			}

		case easyterm.KeyEsc:
			ev, ok := keyEvent(rr.r, ct.nextRune)
			if !ok {
				continue
			}
			switch ev.Key {
			case userinput.KeyUp:
				if history > 0 {
					if history == len(ct.history) {
						pending = append([]rune{}, input...)
					}
					history--
					input = []rune(ct.history[history])
					cursor = len(input)
				}
			case userinput.KeyDown:
				if history < len(ct.history) {
					history++
					if history == len(ct.history) {
						input = append([]rune{}, pending...)
					} else {
						input = []rune(ct.history[history])
					}
					cursor = len(input)
				}
			case userinput.KeyRight:
				if cursor < len(input) {
					cursor++
				}
			case userinput.KeyLeft:
				if cursor > 0 {
					cursor--
				}
			case userinput.KeyDelete:
				if cursor < len(input) {
					input = append(input[:cursor], input[cursor+1:]...)
					history = len(ct.history)
				}
			}

		default:
			if unicode.IsPrint(rr.r) {
				input = append(input[:cursor], append([]rune{rr.r}, input[cursor:]...)...)
				cursor++
				history = len(ct.history)
			}
		}
	}
}
