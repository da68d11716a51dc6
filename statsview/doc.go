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

// Package statsview is an optional package that is built only when the
// statsview build constraint is present.
//
// It runs a local HTTP server offering runtime statistics of the emulator
// process. The charts are provided by "github.com/go-echarts/statsview".
//
// After launch, the statistics are viewable at:
//
//	localhost:16502/debug/statsview
//
// Without the build constraint, Available() returns false and Launch() does
// nothing.
package statsview
