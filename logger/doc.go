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

// Package logger is the central log of the application. Any part of the
// program can add an entry to it without needing a reference to anything.
//
//	logger.Log(logger.Allow, "loader", "image loaded")
//	logger.Logf(logger.Allow, "irq", "interval set to %d cycles", n)
//
// The first argument is a Permission. The Allow value can be used when the
// entry should always be logged. Other implementations of the Permission
// interface allow the caller to decide at the point of logging.
//
// The detail argument of Log() can be a string, an error or anything that
// implements the fmt.Stringer interface.
//
// Consecutive entries with the same tag and detail are collapsed into one
// entry with a repeat count. The log holds a maximum number of entries, after
// which the oldest entries are dropped.
//
// The contents of the log can be written to any io.Writer with the Write() and
// Tail() functions. SetEcho() causes new entries to be written to an io.Writer
// as they are added.
//
// Separate instances of the log can be created with NewLogger(). This is
// useful for testing.
package logger
