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
	"github.com/sixfiveohtwo/bensim/hardware/memory"
	"github.com/sixfiveohtwo/bensim/test"
)

func TestMonitors(t *testing.T) {
	mon := newMonitors(maxMonitors)

	added, err := mon.toggle(0x0300, 4)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, added)

	_, err = mon.toggle(0x0400, 0)
	test.ExpectSuccess(t, curated.Is(err, MonitorBadSize))

	bus := memory.NewBus()
	bus.Load(0x0300, []uint8{0x41, 0x42, 0x43, 0x44, 0x45})

	out := &test.CompareWriter{}
	mon.write(out, bus)
	test.ExpectEquality(t, out.String(), "RAM State: $0300:41 $0301:42 $0302:43 $0303:44\n")

	out.Clear()
	mon.list(out)
	test.ExpectEquality(t, out.String(), " 0: $0300 (4 bytes)\n")

	// removing ignores the size
	added, err = mon.toggle(0x0300, 100)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, added)
	test.ExpectEquality(t, mon.len(), 0)
}

func TestMonitorsFull(t *testing.T) {
	mon := newMonitors(maxMonitors)
	for i := 0; i < maxMonitors; i++ {
		_, err := mon.toggle(uint16(i*16), 1)
		test.DemandSuccess(t, err)
	}
	_, err := mon.toggle(0x1000, 1)
	test.ExpectSuccess(t, curated.Is(err, MonitorsFull))
	test.ExpectEquality(t, mon.len(), maxMonitors)
}
