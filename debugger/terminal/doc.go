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

// Package terminal defines the operations required for command-line
// interaction with the debugger. The plainterm and colorterm subpackages
// provide implementations. The commandline subpackage provides tokenisation
// of user input.
//
// The debugger reads a line of input with TermRead() whenever execution is
// stepping. While execution is running, terminals that also implement the
// KeyPoller interface forward single key presses to the emulated keyboard.
package terminal
