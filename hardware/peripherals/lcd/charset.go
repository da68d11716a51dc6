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

package lcd

// the character generator ROM of the HD44780A00. the printable ASCII range is
// the same as the ROM except for the following codes. codes 0x00 to 0x0f
// refer to the character generator RAM.
var romDifferences = map[uint8]rune{
	0x5c: '¥',
	0x7e: '→',
	0x7f: '←',
	0xa5: '·',
	0xdf: '°',
	0xe4: 'µ',
	0xf4: 'Ω',
	0xf7: 'π',
	0xfd: '÷',
	0xff: '█',
}

// CharacterRune returns the rune that best represents the character code.
// Characters drawn from the character generator RAM are returned as a
// replacement rune, as are characters in the Katakana range.
func CharacterRune(code uint8) rune {
	if r, ok := romDifferences[code]; ok {
		return r
	}
	if code < 0x10 {
		return '▒'
	}
	if code >= 0x20 && code < 0x80 {
		return rune(code)
	}
	if code == 0xa0 {
		return ' '
	}
	return '?'
}

// IsUserDefined returns true if the character code is drawn from character
// generator RAM.
func IsUserDefined(code uint8) bool {
	return code < 0x10
}
