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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern doubles as the identity of the error. Packages declare their
// sentinel patterns as constants and callers test for them with Is() or Has():
//
//	const NoSymbol = "symbols: no symbol named %s"
//
//	err := curated.Errorf(NoSymbol, "reset")
//
//	if curated.Is(err, NoSymbol) {
//		fmt.Println("true")
//	}
//
// Has() checks the entire chain. In the following, Is(f, NoSymbol) is false
// but Has(f, NoSymbol) is true:
//
//	f := curated.Errorf("breakpoint: %v", err)
//
// Chains are composed of parts separated by the sub-string ": ". The Error()
// implementation removes duplicate adjacent parts so that wrapping an error
// with a pattern of the same prefix does not stutter:
//
//	curated.Errorf("loader: %v", curated.Errorf("loader: file not found"))
//
// prints as
//
//	loader: file not found
//
// Curated errors also implement Unwrap() so the errors package of the
// standard library can find wrapped errors, os.ErrNotExist for example.
package curated
