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
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/sixfiveohtwo/bensim/curated"
)

// the debugger state written by the MEMVIZ command. fields are exported so
// that they are visible to the graph writer.
type vizState struct {
	State        string
	Instructions int
	Breakpoints  []vizBreakpoint
	Volatile     []vizBreakpoint
	CallStack    []callFrame
	Monitors     []vizMonitor
}

type vizBreakpoint struct {
	Address uint16
	Label   string
}

type vizMonitor struct {
	Address uint16
	Size    int
}

func vizBreakpoints(bp *breakpoints) []vizBreakpoint {
	v := make([]vizBreakpoint, 0, len(bp.breaks))
	for _, b := range bp.breaks {
		v = append(v, vizBreakpoint{Address: b.address, Label: b.label})
	}
	return v
}

// memviz writes a graphviz representation of the debugger's bookkeeping to
// the named file.
func (dbg *Debugger) memviz(filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("memviz: %v", err)
		}
	}()

	viz := &vizState{
		State:        dbg.state.String(),
		Instructions: dbg.instructions,
		Breakpoints:  vizBreakpoints(dbg.breakpoints),
		Volatile:     vizBreakpoints(dbg.volatile),
		CallStack:    dbg.stack.frames,
	}
	for _, r := range dbg.monitors.regions {
		viz.Monitors = append(viz.Monitors, vizMonitor{Address: r.address, Size: r.size})
	}
	memviz.Map(f, viz)

	return nil
}
