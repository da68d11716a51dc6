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

// Package modalflag wraps the flag package of the standard library so that a
// program can be invoked in one of several modes, each mode with its own set
// of flags.
//
// Arguments are given to NewArgs() and flags are then added before calling
// Parse(), which takes no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("DEBUG", "RUN", "DISASM")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After parsing, the selected mode is returned by Mode(). The first sub-mode
// in the list is the default and is selected if the first non-flag argument is
// not a recognised mode. Mode comparisons are case insensitive.
//
// Flags for the selected mode are added after a call to NewMode() and parsed
// with a second call to Parse():
//
//	md.NewMode()
//	symbols := md.AddString("symbols", "", "symbols file")
//	_, _ = md.Parse()
//
//	image := md.GetArg(0)
//
// The Path() function returns every mode selected so far, separated by a
// slash. This is useful for error and help messages.
package modalflag
