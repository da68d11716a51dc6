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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/sixfiveohtwo/bensim/disassembly"
	"github.com/sixfiveohtwo/bensim/hardware/memory"
	"github.com/sixfiveohtwo/bensim/test"
)

type mockSymbols map[uint16]string

func (m mockSymbols) NameAt(address uint16) (string, bool) {
	n, ok := m[address]
	return n, ok
}

func busWith(address uint16, data ...uint8) *memory.Bus {
	bus := memory.NewBus()
	bus.Load(address, data)
	return bus
}

func TestFormats(t *testing.T) {
	var cases = []struct {
		data     []uint8
		expected string
	}{
		{[]uint8{0xea}, "8000: EA          NOP"},
		{[]uint8{0x0a}, "8000: 0A          ASL A"},
		{[]uint8{0xa9, 0x11}, "8000: A9 11       LDA #$11"},
		{[]uint8{0x85, 0x13}, "8000: 85 13       STA $13"},
		{[]uint8{0xb5, 0x13}, "8000: B5 13       LDA $13,X"},
		{[]uint8{0xb6, 0x13}, "8000: B6 13       LDX $13,Y"},
		{[]uint8{0x8d, 0x01, 0x60}, "8000: 8D 01 60    STA $6001"},
		{[]uint8{0xbd, 0x00, 0x03}, "8000: BD 00 03    LDA $0300,X"},
		{[]uint8{0xb9, 0x00, 0x03}, "8000: B9 00 03    LDA $0300,Y"},
		{[]uint8{0x6c, 0xfc, 0xff}, "8000: 6C FC FF    JMP ($FFFC)"},
		{[]uint8{0xa1, 0x20}, "8000: A1 20       LDA ($20,X)"},
		{[]uint8{0xb1, 0x20}, "8000: B1 20       LDA ($20),Y"},
		{[]uint8{0xd0, 0xfe}, "8000: D0 FE       BNE $8000"},
		{[]uint8{0x90, 0x10}, "8000: 90 10       BCC $8012"},
		{[]uint8{0xff}, "8000: FF          ??? (0xFF)"},
	}

	for _, c := range cases {
		e := disassembly.Disassemble(busWith(0x8000, c.data...), 0x8000, nil)
		test.ExpectEquality(t, e.String(), c.expected)
		test.ExpectEquality(t, len(e.Operands), len(c.data)-1, c.expected)
		test.ExpectEquality(t, e.Next, uint16(0x8000+len(c.data)), c.expected)
	}
}

func TestUndefined(t *testing.T) {
	e := disassembly.Disassemble(busWith(0x8000, 0x02, 0xa9, 0x00), 0x8000, nil)
	test.ExpectEquality(t, e.Operator, "???")
	test.ExpectEquality(t, e.Next, uint16(0x8001))
	test.ExpectFailure(t, e.Defn.Defined())
	test.ExpectEquality(t, e.Instruction(), "??? (0x02)")
}

func TestWrapAround(t *testing.T) {
	bus := busWith(0xfffe, 0x20, 0x34)
	bus.Load(0x0000, []uint8{0x12})

	e := disassembly.Disassemble(bus, 0xfffe, nil)
	test.ExpectEquality(t, e.Instruction(), "JSR $1234")
	test.ExpectEquality(t, e.Next, uint16(0x0001))
}

func TestBranchWrap(t *testing.T) {
	e := disassembly.Disassemble(busWith(0x0000, 0xd0, 0xf0), 0x0000, nil)
	test.ExpectEquality(t, e.Operand, "$FFF2")
	v, ok := e.OperandValue()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, uint16(0xfff2))
}

func TestClassification(t *testing.T) {
	bus := busWith(0x8000, 0x20, 0x10, 0x80, 0x60, 0x4c, 0x00, 0x80)
	r := disassembly.Range(bus, 0x8000, 3, nil)
	test.DemandEquality(t, len(r), 3)

	test.ExpectSuccess(t, r[0].IsCall())
	test.ExpectFailure(t, r[0].IsReturn())
	v, _ := r[0].OperandValue()
	test.ExpectEquality(t, v, uint16(0x8010))

	test.ExpectSuccess(t, r[1].IsReturn())
	test.ExpectEquality(t, r[1].Address, uint16(0x8003))

	test.ExpectFailure(t, r[2].IsCall())
	test.ExpectFailure(t, r[2].IsReturn())
	test.ExpectEquality(t, r[2].Bytecode(), "4C 00 80")
}

func TestAnnotation(t *testing.T) {
	syms := mockSymbols{0x8010: "lcd_init", 0x0011: "counter"}
	bus := busWith(0x8000, 0x20, 0x10, 0x80, 0xa9, 0x11, 0xe6, 0x11)

	r := disassembly.Range(bus, 0x8000, 3, syms)
	test.ExpectEquality(t, r[0].Annotated(), "8000: 20 10 80    JSR $8010 ; lcd_init")

	// immediate values are not addresses
	test.ExpectEquality(t, r[1].Annotation, "")

	test.ExpectEquality(t, r[2].Annotation, "counter")
}

func TestWrite(t *testing.T) {
	syms := mockSymbols{0x8000: "reset"}
	bus := busWith(0x8000, 0xa2, 0xff, 0x9a)

	s := &strings.Builder{}
	test.ExpectSuccess(t, disassembly.Write(s, bus, 0x8000, 2, syms))
	test.ExpectEquality(t, s.String(), "reset:\n8000: A2 FF       LDX #$FF\n8002: 9A          TXS\n")
}

func TestBlock(t *testing.T) {
	// the final instruction starts inside the block but extends beyond it
	bus := busWith(0x8000, 0xa2, 0xff, 0x02, 0x8d, 0x01, 0x60)

	r := disassembly.Block(bus, 0x8000, 4, nil)
	test.DemandEquality(t, len(r), 3)
	test.ExpectEquality(t, r[1].Instruction(), "??? (0x02)")
	test.ExpectEquality(t, r[2].Instruction(), "STA $6001")

	s := &strings.Builder{}
	test.ExpectSuccess(t, disassembly.WriteBlock(s, bus, 0x8000, 2, nil))
	test.ExpectEquality(t, s.String(), "8000: A2 FF       LDX #$FF\n")
}
