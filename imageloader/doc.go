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

// Package imageloader reads the program image that is to be placed in the
// memory of the emulated computer.
//
// Program images are text files containing hexadecimal byte pairs. They are
// usually produced by piping the output of an assembler through a hex dump
// tool:
//
//	0000000: a9ff 8d02 60a9 e08d 0060 a938 2032 80a9
//	0000010: 0e20 3280 a906 2032 80a9 0120 3280 a200
//
// The seven digit address prefix and colon are optional and are skipped when
// present. Pairs may be separated by any amount of white space, including
// none. White space between the two digits of a pair is also allowed.
//
// A character that is not a hex digit ends the current line with a warning
// but loading continues with the next line. Loading stops entirely if the
// image would extend past the end of memory or past the maximum number of
// bytes specified by the Loader.
//
// Warnings are added to the central logger.
//
// The Load() function handles loading of data from different sources. Local
// files and data over HTTP are supported.
//
//	ld := imageloader.NewLoader("roms/hello.hex", 0x8000)
//	err := ld.Load()
package imageloader
