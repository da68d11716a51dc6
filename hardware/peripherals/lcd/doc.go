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

// Package lcd is a model of the HD44780 character LCD controller, configured
// as a 16 column, 2 row display. The LCD is attached to the memory bus with a
// control register and a data register. Writes to the control register are
// instructions and writes to the data register are characters (or character
// generator patterns, depending on the address mode).
//
// The model implements the memory.Peripheral interface. After every register
// write the display is redrawn to an internal image and then flushed to any
// number of Output implementations. The gui/sdllcd and gui/termlcd packages
// provide outputs.
//
// Reading of the busy flag and the address counter is not modelled. Instructions
// complete immediately.
package lcd
