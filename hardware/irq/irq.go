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

// Package irq requests maskable interrupts at a regular interval of emulated
// CPU cycles. Wall clock time is never consulted.
package irq

import "math"

// Disabled is the interval value that prevents any interrupt request.
const Disabled = math.MaxUint64

// DefaultInterval is the number of cycles between interrupt requests.
const DefaultInterval = 1000

// Scheduler decides when an interrupt should be requested.
type Scheduler struct {
	// number of cycles between requests. a value of zero is treated the same
	// as Disabled
	Interval uint64

	// cycle count at the most recent request
	last uint64

	// number of requests made
	Count int
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler(interval uint64) *Scheduler {
	if interval == 0 {
		interval = Disabled
	}
	return &Scheduler{Interval: interval}
}

// Check should be called with the total number of cycles executed. It returns
// true if an interrupt should be requested.
func (s *Scheduler) Check(totalCycles uint64) bool {
	if s.Interval == 0 || s.Interval == Disabled {
		return false
	}
	if totalCycles < s.last || totalCycles-s.last < s.Interval {
		return false
	}
	s.last = totalCycles
	s.Count++
	return true
}

// Last returns the cycle count of the most recent request.
func (s *Scheduler) Last() uint64 {
	return s.last
}

// Since returns the number of cycles since the most recent request.
func (s *Scheduler) Since(totalCycles uint64) uint64 {
	if totalCycles < s.last {
		return 0
	}
	return totalCycles - s.last
}

// Reset forgets the most recent request and the count.
func (s *Scheduler) Reset() {
	s.last = 0
	s.Count = 0
}
