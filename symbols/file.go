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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sixfiveohtwo/bensim/curated"
)

// Sentinal errors returned by ReadSymbolsFile().
const (
	FileError = "symbols: %v"
)

// isMarker returns true if the line is the line that comes immediately before
// the list of symbols.
func isMarker(line string) bool {
	if strings.HasPrefix(line, "---") {
		return true
	}
	f := strings.Fields(line)
	return len(f) > 0 && f[0] == "Symbols"
}

// parseEntry parses a line of the form:
//
//	<name> <type>:<hex address>
func parseEntry(line string) (Entry, bool) {
	f := strings.Fields(line)
	if len(f) != 2 {
		return Entry{}, false
	}

	v := f[1]
	if len(v) < 3 || v[1] != ':' {
		return Entry{}, false
	}

	a, err := strconv.ParseUint(v[2:], 16, 16)
	if err != nil {
		return Entry{}, false
	}

	return Entry{Name: f[0], Address: uint16(a), Kind: v[0]}, true
}

// Parse symbols from the io.Reader. Lines up to and including the marker line
// are ignored. The marker line is either a line beginning with "---" or a line
// with the first word "Symbols". If there is no marker line then every line is
// considered. Lines that do not describe a symbol are ignored.
func Parse(r io.Reader) (*Table, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(FileError, err)
	}

	for i, l := range lines {
		if isMarker(l) {
			lines = lines[i+1:]
			break
		}
	}

	tbl := NewTable()
	for _, l := range lines {
		if e, ok := parseEntry(l); ok {
			tbl.add(e)
		}
	}

	return tbl, nil
}

// ReadSymbolsFile parses the symbol file. An empty filename results in an
// empty table and no error.
func ReadSymbolsFile(filename string) (*Table, error) {
	if filename == "" {
		return NewTable(), nil
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}
	defer f.Close()

	return Parse(f)
}
