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

package symbols

import (
	"fmt"
	"io"
	"strings"
)

// Entry is a single symbol.
type Entry struct {
	Name    string
	Address uint16

	// the type character from the symbol file. zero if the symbol was not
	// read from a file
	Kind byte
}

func (e Entry) String() string {
	return fmt.Sprintf("$%04X %s", e.Address, e.Name)
}

// Table is a list of symbols in the order in which they were added.
type Table struct {
	entries []Entry

	// length of the longest symbol name
	maxWidth int
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{}
}

// Add a symbol to the table.
func (tbl *Table) Add(name string, address uint16) {
	tbl.add(Entry{Name: name, Address: address})
}

func (tbl *Table) add(e Entry) {
	tbl.entries = append(tbl.entries, e)
	if len(e.Name) > tbl.maxWidth {
		tbl.maxWidth = len(e.Name)
	}
}

// Len returns the number of symbols in the table.
func (tbl *Table) Len() int {
	return len(tbl.entries)
}

// Entries returns a copy of every symbol in the order in which they were
// added.
func (tbl *Table) Entries() []Entry {
	e := make([]Entry, len(tbl.entries))
	copy(e, tbl.entries)
	return e
}

// LookupByName returns the address of the named symbol. Names are case
// sensitive. If there is more than one symbol with the name then the most
// recently added is used.
func (tbl *Table) LookupByName(name string) (uint16, bool) {
	for i := len(tbl.entries) - 1; i >= 0; i-- {
		if tbl.entries[i].Name == name {
			return tbl.entries[i].Address, true
		}
	}
	return 0, false
}

// NameAt returns the name of the symbol at exactly the address. It satisfies
// the disassembly.SymbolLookup interface.
func (tbl *Table) NameAt(address uint16) (string, bool) {
	for i := len(tbl.entries) - 1; i >= 0; i-- {
		if tbl.entries[i].Address == address {
			return tbl.entries[i].Name, true
		}
	}
	return "", false
}

// Nearest returns the symbol with the highest address that is not greater
// than the address. The second return value is false if there is no such
// symbol.
func (tbl *Table) Nearest(address uint16) (Entry, bool) {
	idx := -1
	for i, e := range tbl.entries {
		if e.Address > address {
			continue
		}
		if idx == -1 || e.Address >= tbl.entries[idx].Address {
			idx = i
		}
	}
	if idx == -1 {
		return Entry{}, false
	}
	return tbl.entries[idx], true
}

// Label returns the address in terms of the nearest symbol. The result is
// the symbol name if the address is exactly that of the symbol, or the name
// followed by the decimal offset, for example "lcd_init+3". An empty string
// is returned if there is no nearest symbol.
func (tbl *Table) Label(address uint16) string {
	e, ok := tbl.Nearest(address)
	if !ok {
		return ""
	}
	if e.Address == address {
		return e.Name
	}
	return fmt.Sprintf("%s+%d", e.Name, address-e.Address)
}

// Write a list of symbols to the io.Writer.
func (tbl *Table) Write(output io.Writer, entries []Entry) {
	for _, e := range entries {
		output.Write([]byte(fmt.Sprintf("%-*s $%04X\n", tbl.maxWidth, e.Name, e.Address)))
	}
}

func (tbl *Table) String() string {
	s := strings.Builder{}
	tbl.Write(&s, tbl.entries)
	return s.String()
}
