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

// Package colorterm implements the Terminal interface for the debugger. It
// supports color output, line editing and a command history. While the
// emulation is running the terminal can forward single key presses to the
// emulated keyboard.
package colorterm

import (
	"bufio"
	"os"
	"time"

	"github.com/sixfiveohtwo/bensim/curated"
	"github.com/sixfiveohtwo/bensim/debugger/terminal/colorterm/easyterm"
	"github.com/sixfiveohtwo/bensim/userinput"
)

// how long to wait for the remainder of an escape sequence.
const escapeTimeout = 20 * time.Millisecond

type readRune struct {
	r   rune
	err error
}

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	runes   chan readRune
	history []string

	keyMode  bool
	silenced bool
}

// Initialise perfoms any setting up required for the terminal.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout); err != nil {
		return curated.Errorf("colorterm: %v", err)
	}

	ct.runes = make(chan readRune)
	go func() {
		r := bufio.NewReader(os.Stdin)
		for {
			c, _, err := r.ReadRune()
			ct.runes <- readRune{r: c, err: err}
			if err != nil {
				return
			}
		}
	}()

	return nil
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// KeyMode implements the terminal.KeyPoller interface.
func (ct *ColorTerminal) KeyMode(enable bool) {
	if enable == ct.keyMode {
		return
	}
	ct.keyMode = enable
	if enable {
		ct.CBreakMode()
	} else {
		ct.CanonicalMode()
	}
}

// TermPollKey implements the terminal.KeyPoller interface.
func (ct *ColorTerminal) TermPollKey() (userinput.EventKeyboard, bool) {
	select {
	case rr := <-ct.runes:
		if rr.err != nil {
			return userinput.EventKeyboard{}, false
		}
		return keyEvent(rr.r, ct.nextRune)
	default:
	}
	return userinput.EventKeyboard{}, false
}

// nextRune waits a short time for the next rune of an escape sequence.
func (ct *ColorTerminal) nextRune() (rune, bool) {
	select {
	case rr := <-ct.runes:
		return rr.r, rr.err == nil
	case <-time.After(escapeTimeout):
	}
	return 0, false
}
