// This file is part of cvideo.
//
// cvideo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cvideo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cvideo.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
)

// RingWriter is an io.Writer that keeps only the most recent bytes written to
// it. Useful for capturing the tail of a long running output.
type RingWriter struct {
	buffer  []byte
	cursor  int
	wrapped bool
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("ring writer: invalid size (%d)", size)
	}
	return &RingWriter{
		buffer: make([]byte, size),
	}, nil
}

// Write implements the io.Writer interface.
func (r *RingWriter) Write(p []byte) (int, error) {
	n := len(p)

	// only the tail of a write larger than the ring is of interest
	if len(p) >= len(r.buffer) {
		copy(r.buffer, p[len(p)-len(r.buffer):])
		r.cursor = 0
		r.wrapped = true
		return n, nil
	}

	c := copy(r.buffer[r.cursor:], p)
	if c < len(p) {
		copy(r.buffer, p[c:])
		r.wrapped = true
	}
	r.cursor = (r.cursor + len(p)) % len(r.buffer)
	if r.cursor == 0 {
		r.wrapped = true
	}

	return n, nil
}

// Reset empties the ring.
func (r *RingWriter) Reset() {
	r.cursor = 0
	r.wrapped = false
}

func (r *RingWriter) String() string {
	if !r.wrapped {
		return string(r.buffer[:r.cursor])
	}
	return string(r.buffer[r.cursor:]) + string(r.buffer[:r.cursor])
}
