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

package modalflag_test

import (
	"testing"

	"github.com/sixfiveohtwo/bensim/modalflag"
	"github.com/sixfiveohtwo/bensim/test"
)

func TestParseAddress(t *testing.T) {
	a, err := modalflag.ParseAddress("8000")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, 0x8000)

	a, err = modalflag.ParseAddress("$6001")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, 0x6001)

	a, err = modalflag.ParseAddress("0x0300")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, 0x0300)

	_, err = modalflag.ParseAddress("")
	test.ExpectFailure(t, err)
	_, err = modalflag.ParseAddress("$")
	test.ExpectFailure(t, err)
	_, err = modalflag.ParseAddress("10000")
	test.ExpectFailure(t, err)
	_, err = modalflag.ParseAddress("main")
	test.ExpectFailure(t, err)
}

func TestAddressFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-load", "$C000", "-dump", "BB00:0xCFFF", "image.hex"})
	md.NewMode()

	load := md.AddAddress("load", 0x8000, "")
	keys := md.AddAddress("keys", 0x0300, "")
	dump := md.AddRange("dump", "")
	none := md.AddRange("none", "")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)

	test.ExpectEquality(t, *load, 0xc000)
	test.ExpectEquality(t, *keys, 0x0300)
	test.ExpectEquality(t, *dump, modalflag.Range{From: 0xbb00, To: 0xcfff, Specified: true})
	test.ExpectEquality(t, none.Specified, false)
	test.ExpectEquality(t, md.GetArg(0), "image.hex")
}

func TestBadAddressFlags(t *testing.T) {
	for _, args := range [][]string{
		{"-load", "main"},
		{"-dump", "0200"},
		{"-dump", "0300:0200"},
		{"-dump", "0200:zz"},
	} {
		md := modalflag.Modes{Output: &test.CompareWriter{}}
		md.NewArgs(args)
		md.NewMode()
		md.AddAddress("load", 0x8000, "")
		md.AddRange("dump", "")

		p, err := md.Parse()
		test.ExpectFailure(t, err, args)
		test.ExpectEquality(t, p, modalflag.ParseError, args)
	}
}
