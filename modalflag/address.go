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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sixfiveohtwo/bensim/curated"
)

// ParseAddress accepts a sixteen bit address in hexadecimal, with an
// optional $ or 0x prefix.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "$"):
		s = s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
	}
	if s == "" {
		return 0, curated.Errorf("not an address")
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, curated.Errorf("not an address: %s", s)
	}
	return uint16(v), nil
}

// addressValue implements the flag.Value interface.
type addressValue struct {
	v *uint16
}

func (a addressValue) String() string {
	if a.v == nil {
		return ""
	}
	return fmt.Sprintf("$%04X", *a.v)
}

func (a addressValue) Set(s string) error {
	v, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a.v = v
	return nil
}

// AddAddress flag for next call to Parse(). The value is given in hexadecimal
// on the command line.
func (md *Modes) AddAddress(name string, value uint16, usage string) *uint16 {
	v := value
	md.flags.Var(addressValue{v: &v}, name, usage)
	return &v
}

// Range is an inclusive range of addresses. A Range flag is given on the
// command line in the form from:to.
type Range struct {
	From uint16
	To   uint16

	// whether the flag appeared on the command line
	Specified bool
}

// rangeValue implements the flag.Value interface.
type rangeValue struct {
	r *Range
}

func (rv rangeValue) String() string {
	if rv.r == nil || !rv.r.Specified {
		return ""
	}
	return fmt.Sprintf("$%04X:$%04X", rv.r.From, rv.r.To)
}

func (rv rangeValue) Set(s string) error {
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return curated.Errorf("range must be in the form from:to")
	}

	f, err := ParseAddress(from)
	if err != nil {
		return err
	}
	t, err := ParseAddress(to)
	if err != nil {
		return err
	}
	if t < f {
		return curated.Errorf("range ends before it begins: %s", s)
	}

	rv.r.From = f
	rv.r.To = t
	rv.r.Specified = true
	return nil
}

// AddRange flag for next call to Parse().
func (md *Modes) AddRange(name string, usage string) *Range {
	r := &Range{}
	md.flags.Var(rangeValue{r: r}, name, usage)
	return r
}
