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

// Package sdllcd presents the LCD in an SDL window. It implements the
// lcd.Output interface.
//
// SDL must be driven from the main thread. PresentLCD() can be called from
// any goroutine and only copies the frame. The window is updated by
// Service(), which must be called from the same thread that called
// NewWindow().
//
// Keyboard events and the closing of the window are forwarded as
// userinput.Event values.
package sdllcd
