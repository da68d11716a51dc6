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

// Package commandline divides user input into tokens for the debugger's
// command processor. Hex values written with a leading '$' are normalised to
// the '0x' form during tokenisation so that the command processor need only
// deal with one notation.
//
// The Tokens type is used to walk through the input:
//
//	toks := commandline.TokeniseInput("read $0300 4")
//	cmd, _ := toks.Get()   // "read"
//	addr, _ := toks.Get()  // "0x0300"
//	n, _ := toks.Get()     // "4"
package commandline
