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

package debugger

import (
	"sync"
	"sync/atomic"
)

// QuitFlag requests the end of a debugging session. It is safe to set from
// any goroutine, including a signal handler goroutine.
//
// The zero value is not usable. Use NewQuitFlag().
type QuitFlag struct {
	flag atomic.Bool
	once sync.Once
	done chan struct{}
}

// NewQuitFlag is the preferred method of initialisation for the QuitFlag
// type.
func NewQuitFlag() *QuitFlag {
	return &QuitFlag{
		done: make(chan struct{}),
	}
}

// Set the flag. Setting the flag more than once has no additional effect.
func (q *QuitFlag) Set() {
	q.once.Do(func() {
		q.flag.Store(true)
		close(q.done)
	})
}

// IsSet returns true if the flag has been set.
func (q *QuitFlag) IsSet() bool {
	if q == nil {
		return false
	}
	return q.flag.Load()
}

// Done returns a channel that is closed when the flag is set.
func (q *QuitFlag) Done() <-chan struct{} {
	if q == nil {
		return nil
	}
	return q.done
}
