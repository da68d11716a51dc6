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

package terminal

import (
	"bufio"
	"io"
	"strings"

	"github.com/sixfiveohtwo/bensim/curated"
)

type line struct {
	s   string
	err error
}

// LineReader reads lines from an io.Reader in a separate goroutine so that
// waiting for input can be interrupted by events. The goroutine is started on
// the first call to Read().
type LineReader struct {
	input   io.Reader
	lines   chan line
	started bool
}

// NewLineReader is the preferred method of initialisation for the LineReader
// type.
func NewLineReader(input io.Reader) *LineReader {
	return &LineReader{
		input: input,
		lines: make(chan line),
	}
}

func (lr *LineReader) run() {
	r := bufio.NewReader(lr.input)
	for {
		s, err := r.ReadString('\n')
		if err != nil {
			// a final line without a newline is still a line
			if s != "" {
				lr.lines <- line{s: s}
			}
			lr.lines <- line{err: err}
			return
		}
		lr.lines <- line{s: s}
	}
}

// Read waits for the next line of input, while servicing the ReadEvents.
// Returns the UserAbort error at the end of input or if a user input event
// requests it. Returns the UserInterrupt error if the Quit channel is closed.
func (lr *LineReader) Read(events *ReadEvents) (string, error) {
	if !lr.started {
		lr.started = true
		go lr.run()
	}

	if events == nil {
		events = &ReadEvents{}
	}

	for {
		select {
		case l := <-lr.lines:
			if l.err != nil {
				// put the error back so that subsequent reads see it
				go func() { lr.lines <- l }()
				if l.err == io.EOF {
					return "", curated.Errorf(UserAbort)
				}
				return "", curated.Errorf("terminal: %v", l.err)
			}
			return strings.TrimRight(l.s, "\r\n"), nil

		case <-events.Quit:
			return "", curated.Errorf(UserInterrupt)

		case ev := <-events.UserInput:
			if events.UserInputHandler != nil && events.UserInputHandler(ev) {
				return "", curated.Errorf(UserAbort)
			}
		}
	}
}
