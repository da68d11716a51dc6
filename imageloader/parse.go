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

package imageloader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sixfiveohtwo/bensim/curated"
)

// length of the address prefix without the colon
const prefixLen = 7

// Image is the result of parsing a program image.
type Image struct {
	// the bytes in the order they are to be placed in memory
	Data []uint8

	// warnings produced during parsing. one entry per abandoned line plus
	// one entry if loading was stopped early
	Warnings []string

	// true if loading was stopped by the byte limit
	Truncated bool
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	}
	return c - 'A' + 10
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f'
}

// skipSpace returns the index of the first non-space character in s at or
// after i.
func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

// skipPrefix returns the index of the first character after the optional
// address prefix.
func skipPrefix(s string) int {
	i := skipSpace(s, 0)
	if len(s)-i <= prefixLen {
		return i
	}
	for j := i; j < i+prefixLen; j++ {
		if !isHex(s[j]) {
			return i
		}
	}
	if s[i+prefixLen] != ':' {
		return i
	}
	return skipSpace(s, i+prefixLen+1)
}

// Parse reads a program image from r. No more than limit bytes will be
// returned. A negative limit means no limit.
//
// The returned error is only for problems with the reader. Malformed data
// is reported in the Warnings field of the returned Image.
func Parse(r io.Reader, limit int) (Image, error) {
	var img Image

	rd := bufio.NewReader(r)
	for {
		s, err := rd.ReadString('\n')
		if len(s) > 0 {
			if stop := img.parseLine(s, limit); stop {
				return img, nil
			}
		}
		if err != nil {
			if err == io.EOF {
				return img, nil
			}
			return img, curated.Errorf("imageloader: %v", err)
		}
	}
}

// parseLine adds the bytes in a single line to the image. Returns true if
// loading should stop.
func (img *Image) parseLine(s string, limit int) bool {
	i := skipPrefix(s)

	for {
		i = skipSpace(s, i)
		if i >= len(s) {
			return false
		}

		if !isHex(s[i]) {
			img.warn("non-hex character %q at byte %d: skipping rest of line", s[i], len(img.Data))
			return false
		}
		hi := hexValue(s[i])

		i = skipSpace(s, i+1)
		if i >= len(s) || !isHex(s[i]) {
			img.warn("expected second hex digit at byte %d: skipping rest of line", len(img.Data))
			return false
		}
		lo := hexValue(s[i])
		i++

		if limit >= 0 && len(img.Data) >= limit {
			img.warn("reached end of memory or maximum size after %d bytes: stopping", len(img.Data))
			img.Truncated = true
			return true
		}

		img.Data = append(img.Data, hi<<4|lo)
	}
}

func (img *Image) warn(pattern string, args ...interface{}) {
	img.Warnings = append(img.Warnings, strings.TrimSpace(fmt.Sprintf(pattern, args...)))
}
