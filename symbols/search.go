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

// Match returns true if the name matches the pattern. The pattern can contain
// the wildcards '*', matching any sequence of characters including the empty
// sequence, and '?', matching exactly one character. A '*' in the pattern is
// always a wildcard, even when the name contains a '*'. Matching is case
// sensitive.
func Match(pattern string, name string) bool {
	var p, n int

	// the position of the most recent star in the pattern and the position in
	// the name that the star has consumed up to. the star can be extended by
	// one character when a mismatch occurs
	star := -1
	mark := 0

	for n < len(name) {
		switch {
		case p < len(pattern) && pattern[p] == '*':
			star = p
			mark = n
			p++
		case p < len(pattern) && (pattern[p] == '?' || pattern[p] == name[n]):
			p++
			n++
		case star != -1:
			p = star + 1
			mark++
			n = mark
		default:
			return false
		}
	}

	for p < len(pattern) && pattern[p] == '*' {
		p++
	}

	return p == len(pattern)
}

// Search returns the symbols whose names match the pattern. See Match() for
// the pattern syntax. Symbols are returned in the order in which they were
// added to the table.
func (tbl *Table) Search(pattern string) []Entry {
	var r []Entry
	for _, e := range tbl.entries {
		if Match(pattern, e.Name) {
			r = append(r, e)
		}
	}
	return r
}
