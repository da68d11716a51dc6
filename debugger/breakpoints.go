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
	BreakpointsFull = "breakpoints: no room for breakpoint at $%04X (maximum is %d)"
)

// the maximum number of permanent breakpoints.
const maxBreakpoints = 32

type breakpoint struct {
	address uint16
	label   string
}

// breakpoints is an ordered list of unique addresses. the list is small
// enough that a linear search is preferable to a map.
type breakpoints struct {
	breaks []breakpoint
	max    int
}

// newBreakpoints is the preferred method of initialisation for the
// breakpoints type.
func newBreakpoints(limit int) *breakpoints {
	return &breakpoints{
		breaks: make([]breakpoint, 0, limit),
		max:    limit,
	}
}

func (bp *breakpoints) find(address uint16) int {
	for i := range bp.breaks {
		if bp.breaks[i].address == address {
			return i
		}
	}
	return -1
}

// toggle removes the breakpoint at the address if it exists, otherwise it
// is added. the label is ignored when removing. returns true if the
// breakpoint was added.
//
// the set of addresses is restored by a second toggle. a breakpoint that is
// removed and added again is placed at the end of the list with the label
// given when it was added.
func (bp *breakpoints) toggle(address uint16, label string) (bool, error) {
	if i := bp.find(address); i >= 0 {
		bp.breaks = append(bp.breaks[:i], bp.breaks[i+1:]...)
		return false, nil
	}

	if len(bp.breaks) >= bp.max {
		return false, curated.Errorf(BreakpointsFull, address, bp.max)
	}

	bp.breaks = append(bp.breaks, breakpoint{address: address, label: label})
	return true, nil
}

// contains is called for every instruction while running.
func (bp *breakpoints) contains(address uint16) bool {
	for i := range bp.breaks {
		if bp.breaks[i].address == address {
			return true
		}
	}
	return false
}

func (bp *breakpoints) clear() {
	bp.breaks = bp.breaks[:0]
}

func (bp *breakpoints) len() int {
	return len(bp.breaks)
}

// list breakpoints in the order they were added. breakpoints without a label
// are described with the nearest symbol.
func (bp *breakpoints) list(output io.Writer, syms *symbols.Table) {
	if len(bp.breaks) == 0 {
		io.WriteString(output, "no breakpoints\n")
		return
	}

	for i, b := range bp.breaks {
		label := b.label
		if label == "" {
			label = syms.Label(b.address)
		}
		if label == "" {
			io.WriteString(output, fmt.Sprintf("%2d: $%04X\n", i, b.address))
		} else {
			io.WriteString(output, fmt.Sprintf("%2d: $%04X %s\n", i, b.address, label))
		}
	}
}
