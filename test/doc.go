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

// Package test bundles helper functions that remove common boilerplate from
// tests written for the standard go test harness.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report a failure with t.Fatalf() and are
// useful when the value being tested is used in further tests and so must be
// correct.
//
// Success and failure are judged according to the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil type is considered a success because of how errors usually work in
// Go (nil to indicate no error).
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output for comparison.
package test
