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

package instructions_test

import (
	"testing"

	"github.com/sixfiveohtwo/bensim/hardware/cpu/instructions"
	"github.com/sixfiveohtwo/bensim/test"
)

func TestTable(t *testing.T) {
	n := 0
	for i, defn := range instructions.Definitions {
		if !defn.Defined() {
			continue
		}
		n++

		// opcode field matches index
		test.ExpectEquality(t, int(defn.OpCode), i)

		// instruction length is consistent with the addressing mode
		switch defn.AddressingMode {
		case instructions.Implied, instructions.Accumulator:
			test.ExpectEquality(t, defn.Bytes, 1, defn.Mnemonic)
		case instructions.Absolute, instructions.Indirect, instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
			test.ExpectEquality(t, defn.Bytes, 3, defn.Mnemonic)
		default:
			test.ExpectEquality(t, defn.Bytes, 2, defn.Mnemonic)
		}
	}

	// the number of documented 6502 opcodes
	test.ExpectEquality(t, n, 151)
}

func TestClassification(t *testing.T) {
	test.ExpectSuccess(t, instructions.Definitions[0x20].IsCall())
	test.ExpectFailure(t, instructions.Definitions[0x20].IsReturn())
	test.ExpectSuccess(t, instructions.Definitions[0x60].IsReturn())
	test.ExpectFailure(t, instructions.Definitions[0x60].IsCall())
	test.ExpectSuccess(t, instructions.Definitions[0xd0].IsBranch())
	test.ExpectFailure(t, instructions.Definitions[0x4c].IsBranch())
	test.ExpectFailure(t, instructions.Definitions[0x40].IsReturn())
}

func TestLookupUndefined(t *testing.T) {
	defn := instructions.Lookup(0xff)
	test.ExpectFailure(t, defn.Defined())
	test.ExpectEquality(t, defn.OpCode, uint8(0xff))
	test.ExpectEquality(t, defn.Bytes, 1)

	defn = instructions.Lookup(0xa9)
	test.ExpectEquality(t, defn.Mnemonic, "LDA")
}
