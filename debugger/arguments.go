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
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/sixfiveohtwo/bensim/curated"
	"github.com/sixfiveohtwo/bensim/debugger/terminal/commandline"
)

// Sentinal errors.
const (
	MissingArgument = "missing argument: %s"
	BadAddress      = "not an address or symbol: %s"
	BadValue        = "not a byte value: %s"
	BadCount        = "not a number: %s"
	TooManyArgs     = "too many arguments: %s"
)

// trimHex removes the hexadecimal prefix, if present.
func trimHex(s string) (string, bool) {
	switch {
	case strings.HasPrefix(s, "$"):
		return s[1:], true
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return s[2:], true
	}
	return s, false
}

// parseNumber parses the string in the base. the value must fit in T.
func parseNumber[T constraints.Unsigned](s string, base int) (T, bool) {
	var z T
	v, err := strconv.ParseUint(s, base, int(unsafe.Sizeof(z))*8)
	if err != nil {
		return 0, false
	}
	return T(v), true
}

// parseAddress interprets the argument as a symbol or as a hexadecimal
// number with or without a prefix. symbols are checked first. the label is
// the name of the symbol if the argument was a symbol.
func (dbg *Debugger) parseAddress(arg string) (address uint16, label string, err error) {
	if a, ok := dbg.syms.LookupByName(arg); ok {
		return a, arg, nil
	}

	s, _ := trimHex(arg)
	v, ok := parseNumber[uint16](s, 16)
	if !ok {
		return 0, "", curated.Errorf(BadAddress, arg)
	}
	return v, "", nil
}

// parseByte interprets the argument as a hexadecimal byte with or without a
// prefix.
func parseByte(arg string) (uint8, error) {
	s, _ := trimHex(arg)
	v, ok := parseNumber[uint8](s, 16)
	if !ok {
		return 0, curated.Errorf(BadValue, arg)
	}
	return v, nil
}

// parseCount interprets the argument as a decimal number, or a hexadecimal
// number if it has a prefix.
func parseCount(arg string) (int, error) {
	s, hex := trimHex(arg)
	base := 10
	if hex {
		base = 16
	}
	v, ok := parseNumber[uint16](s, base)
	if !ok {
		return 0, curated.Errorf(BadCount, arg)
	}
	return int(v), nil
}

// addressArg gets the next token and interprets it as an address.
func (dbg *Debugger) addressArg(tokens *commandline.Tokens, what string) (uint16, string, error) {
	arg, ok := tokens.Get()
	if !ok {
		return 0, "", curated.Errorf(MissingArgument, what)
	}
	return dbg.parseAddress(arg)
}

// countArg gets the next token, if there is one, and interprets it as a
// count. the default value is returned if there are no more tokens.
func countArg(tokens *commandline.Tokens, def int) (int, error) {
	arg, ok := tokens.Get()
	if !ok {
		return def, nil
	}
	return parseCount(arg)
}

// noMoreArgs returns an error if there are unused tokens.
func noMoreArgs(tokens *commandline.Tokens) error {
	if tokens.Remaining() > 0 {
		return curated.Errorf(TooManyArgs, tokens.Remainder())
	}
	return nil
}
