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

package memory_test

import (
	"testing"

	"github.com/sixfiveohtwo/bensim/hardware/memory"
	"github.com/sixfiveohtwo/bensim/test"
)

type registerWrite struct {
	isData bool
	value  uint8
}

type mockPeripheral struct {
	writes  []registerWrite
	redraws int
	flushes int
}

func (p *mockPeripheral) ApplyRegisterWrite(isData bool, value uint8) {
	p.writes = append(p.writes, registerWrite{isData: isData, value: value})
}

func (p *mockPeripheral) Redraw() {
	p.redraws++
}

func (p *mockPeripheral) Flush() {
	p.flushes++
}

func TestReadWrite(t *testing.T) {
	bus := memory.NewBus()

	bus.Write(0x0300, 0x41)
	test.ExpectEquality(t, bus.Read(0x0300), uint8(0x41))
	test.ExpectEquality(t, bus.Peek(0x0300), uint8(0x41))

	// top of memory
	bus.Write(0xffff, 0x07)
	test.ExpectEquality(t, bus.Read(0xffff), uint8(0x07))
}

func TestPeripheralDispatch(t *testing.T) {
	bus := memory.NewBus()
	periph := &mockPeripheral{}
	bus.Attach(periph, 0x6000, 0x6001)

	test.ExpectSuccess(t, bus.IsRegister(0x6000))
	test.ExpectSuccess(t, bus.IsRegister(0x6001))
	test.ExpectFailure(t, bus.IsRegister(0x6002))

	// writing to the data register
	bus.Write(0x6001, 0x48)
	test.DemandEquality(t, len(periph.writes), 1)
	test.ExpectEquality(t, periph.writes[0], registerWrite{isData: true, value: 0x48})
	test.ExpectEquality(t, bus.Read(0x6001), uint8(0x48))
	test.ExpectEquality(t, periph.redraws, 1)
	test.ExpectEquality(t, periph.flushes, 1)

	// writing to the control register
	bus.Write(0x6000, 0x01)
	test.DemandEquality(t, len(periph.writes), 2)
	test.ExpectEquality(t, periph.writes[1], registerWrite{isData: false, value: 0x01})

	// writes to other addresses do not reach the peripheral
	bus.Write(0x6002, 0xff)
	test.ExpectEquality(t, len(periph.writes), 2)

	// reads never reach the peripheral
	_ = bus.Read(0x6001)
	test.ExpectEquality(t, len(periph.writes), 2)

	// a poke from the debugger is a write like any other
	bus.Poke(0x6001, 0x49)
	test.DemandEquality(t, len(periph.writes), 3)
	test.ExpectEquality(t, periph.writes[2], registerWrite{isData: true, value: 0x49})
}

func TestEngineInterface(t *testing.T) {
	bus := memory.NewBus()
	periph := &mockPeripheral{}
	bus.Attach(periph, 0x6000, 0x6001)

	// stores through the engine interface are dispatched
	bus.StoreBytes(0x5fff, []byte{0x01, 0x02, 0x03})
	test.DemandEquality(t, len(periph.writes), 2)
	test.ExpectEquality(t, periph.writes[0], registerWrite{isData: false, value: 0x02})
	test.ExpectEquality(t, periph.writes[1], registerWrite{isData: true, value: 0x03})

	bus.StoreAddress(0xfffc, 0x8000)
	test.ExpectEquality(t, bus.LoadAddress(0xfffc), uint16(0x8000))
	test.ExpectEquality(t, bus.ReadVector(0xfffc), uint16(0x8000))

	b := make([]byte, 2)
	bus.LoadBytes(0xfffc, b)
	test.ExpectEquality(t, b[0], byte(0x00))
	test.ExpectEquality(t, b[1], byte(0x80))

	// page wrap of indirect address
	bus.StoreByte(0x02ff, 0x34)
	bus.StoreByte(0x0200, 0x12)
	bus.StoreByte(0x0300, 0x56)
	test.ExpectEquality(t, bus.LoadAddress(0x02ff), uint16(0x1234))
}

func TestLoad(t *testing.T) {
	bus := memory.NewBus()
	periph := &mockPeripheral{}
	bus.Attach(periph, 0x6000, 0x6001)

	n := bus.Load(0x6000, []uint8{0x01, 0x02})
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, len(periph.writes), 0)

	n = bus.Load(0xfffe, []uint8{0x01, 0x02, 0x03})
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, bus.Read(0xffff), uint8(0x02))
}

func TestDump(t *testing.T) {
	bus := memory.NewBus()
	bus.Load(0xbb00, []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8})

	w := &test.CompareWriter{}
	bus.Dump(w, 0xbb00, 0xbb09)
	test.ExpectEquality(t, w.String(), "\n000BB00: 00 01 02 03 04 05 06 07\n000BB08: 08 00\n")

	w.Clear()
	bus.Dump(w, 0xfffe, 0xffff)
	test.ExpectEquality(t, w.String(), "\n000FFFE: 00 00\n")
}
