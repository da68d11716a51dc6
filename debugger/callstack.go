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
	"fmt"
	"io"

	"github.com/sixfiveohtwo/bensim/curated"
	"github.com/sixfiveohtwo/bensim/symbols"
)

// Sentinal errors.
const (
	CallStackOverflow  = "call stack: overflow (maximum depth is %d)"
	CallStackUnderflow = "call stack: return with an empty call stack"
	CallStackEmpty     = "call stack: empty"
)

// the maximum depth of the call stack.
const maxCallDepth = 64

// the length of the JSR instruction.
const callLength = 3

// callFrame records a JSR instruction.
type callFrame struct {
	// address of the JSR instruction and its label
	CallSite uint16
	Label    string

	// subroutine being called
	Target      uint16
	TargetLabel string
}

func (f callFrame) String() string {
	s := fmt.Sprintf("$%04X", f.CallSite)
	if f.Label != "" {
		s = fmt.Sprintf("%s %s", s, f.Label)
	}
	t := fmt.Sprintf("$%04X", f.Target)
	if f.TargetLabel != "" {
		t = fmt.Sprintf("%s %s", t, f.TargetLabel)
	}
	return fmt.Sprintf("%s -> %s", s, t)
}

// callStack is the shadow call stack. it is built by observing JSR and RTS
// instructions and is not checked against the stack in memory. it can be
// wrong if a program manipulates the stack directly.
type callStack struct {
	frames []callFrame
	syms   *symbols.Table
}

func newCallStack(syms *symbols.Table) *callStack {
	return &callStack{
		frames: make([]callFrame, 0, maxCallDepth),
		syms:   syms,
	}
}

// onCall pushes a new frame. the frame is not pushed if the stack is full.
func (cs *callStack) onCall(callSite uint16, target uint16) error {
	if len(cs.frames) >= maxCallDepth {
		return curated.Errorf(CallStackOverflow, maxCallDepth)
	}
	cs.frames = append(cs.frames, callFrame{
		CallSite:    callSite,
		Label:       cs.syms.Label(callSite),
		Target:      target,
		TargetLabel: cs.syms.Label(target),
	})
	return nil
}

// onReturn pops the top frame.
func (cs *callStack) onReturn() error {
	if len(cs.frames) == 0 {
		return curated.Errorf(CallStackUnderflow)
	}
	cs.frames = cs.frames[:len(cs.frames)-1]
	return nil
}

func (cs *callStack) depth() int {
	return len(cs.frames)
}

// frame returns the frame n places from the top of the stack. the top of the
// stack is frame zero.
func (cs *callStack) frame(n int) (callFrame, bool) {
	if n < 0 || n >= len(cs.frames) {
		return callFrame{}, false
	}
	return cs.frames[len(cs.frames)-1-n], true
}

// returnAddress is the address of the instruction following the JSR in the
// top frame. the value is only correct if the shadow stack matches what the
// program has actually done.
func (cs *callStack) returnAddress() (uint16, error) {
	f, ok := cs.frame(0)
	if !ok {
		return 0, curated.Errorf(CallStackEmpty)
	}
	return f.CallSite + callLength, nil
}

func (cs *callStack) clear() {
	cs.frames = cs.frames[:0]
}

// write the call stack, top frame first.
func (cs *callStack) write(output io.Writer) {
	if len(cs.frames) == 0 {
		io.WriteString(output, "call stack is empty\n")
		return
	}
	for n := 0; n < len(cs.frames); n++ {
		f, _ := cs.frame(n)
		io.WriteString(output, fmt.Sprintf("#%-2d %s\n", n, f))
	}
}
