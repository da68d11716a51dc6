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

// Package symbols maps symbol names to addresses. The symbol table is usually
// created from the symbol file written by the assembler with
// ReadSymbolsFile(). A table created without a symbol file is empty but
// valid.
//
// Symbol names are not required to be unique. When more than one symbol has
// the same name, or more than one symbol has the same address, the symbol
// that was added most recently is preferred.
//
// The Label() function is the formatter used throughout the debugger to show
// an address in terms of the nearest preceding symbol.
package symbols
