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
	"github.com/sixfiveohtwo/bensim/hardware/memory"
	"github.com/sixfiveohtwo/bensim/tracer"
)

// Sentinal errors.
const (
	MonitorsFull   = "monitor: no room for monitor at $%04X (maximum is %d)"
	MonitorBadSize = "monitor: size must be between 1 and %d"
)

// limits of the monitor list.
const (
	maxMonitors    = 8
	maxMonitorSize = 256
)

// monitorRegion is a region of memory that is reported every time the state
// of the CPU is reported.
type monitorRegion struct {
	address uint16
	size    int
}

type monitors struct {
	regions []monitorRegion
	max     int
}

func newMonitors(limit int) *monitors {
	return &monitors{
		regions: make([]monitorRegion, 0, limit),
		max:     limit,
	}
}

// toggle removes the region starting at the address if it exists, otherwise
// a new region is added. the size is ignored when removing. returns true if
// the region was added.
func (mon *monitors) toggle(address uint16, size int) (bool, error) {
	for i := range mon.regions {
		if mon.regions[i].address == address {
			mon.regions = append(mon.regions[:i], mon.regions[i+1:]...)
			return false, nil
		}
	}

	if size < 1 || size > maxMonitorSize {
		return false, curated.Errorf(MonitorBadSize, maxMonitorSize)
	}

	if len(mon.regions) >= mon.max {
		return false, curated.Errorf(MonitorsFull, address, mon.max)
	}

	mon.regions = append(mon.regions, monitorRegion{address: address, size: size})
	return true, nil
}

func (mon *monitors) len() int {
	return len(mon.regions)
}

// write the current contents of every monitored region.
func (mon *monitors) write(output io.Writer, mem memory.DebugBus) {
	for _, r := range mon.regions {
		io.WriteString(output, tracer.RAMState(mem, r.address, r.size))
		io.WriteString(output, "\n")
	}
}

// list the monitored regions.
func (mon *monitors) list(output io.Writer) {
	if len(mon.regions) == 0 {
		io.WriteString(output, "no monitors\n")
		return
	}
	for i, r := range mon.regions {
		io.WriteString(output, fmt.Sprintf("%2d: $%04X (%d bytes)\n", i, r.address, r.size))
	}
}
