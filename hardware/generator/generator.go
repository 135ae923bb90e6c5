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

package generator

import (
	"sync/atomic"

	"github.com/jetsetilly/cvideo/hardware/waveform"
)

// clock is a generator clock expressed as a divisor of the system clock.
type clock struct {
	divisor atomic.Value // float64
}

func (c *clock) SetClockDivisor(d float64) {
	c.divisor.Store(d)
}

func (c *clock) ClockDivisor() float64 {
	if d, ok := c.divisor.Load().(float64); ok {
		return d
	}
	return 1.0
}

// Sync is the sync generator.
type Sync struct {
	clock
	enc waveform.Encoding
	rcv Receiver

	// the number of pass-through gaps met
	gaps atomic.Uint64
}

// NewSync is the preferred method of initialisation for the Sync type.
func NewSync(enc waveform.Encoding) *Sync {
	return &Sync{enc: enc}
}

// SetReceiver sets the destination of the generator output. A nil Receiver
// discards the output.
func (gen *Sync) SetReceiver(rcv Receiver) {
	gen.rcv = rcv
}

// Line consumes the codes for one scanline. The gate function is called at the
// start of every contiguous run of pass-through codes.
func (gen *Sync) Line(codes []waveform.Code, gate func()) {
	var inGap bool

	for i := range codes {
		lvl, col, border := gen.enc.Decode(waveform.Load(&codes[i]))

		if gen.rcv != nil {
			gen.rcv.Signal(SignalAttributes{
				Slot:   i,
				Level:  lvl,
				Colour: col,
				Border: border,
			})
		}

		if lvl == waveform.LevelPassThrough {
			if !inGap {
				inGap = true
				gen.gaps.Add(1)
				if gate != nil {
					gate()
				}
			}
		} else {
			inGap = false
		}
	}
}

// Gaps returns the number of pass-through gaps met by the generator.
func (gen *Sync) Gaps() uint64 {
	return gen.gaps.Load()
}

// Picture is the picture generator.
type Picture struct {
	clock
	rcv Receiver

	// the number of pixels clocked out
	pixels atomic.Uint64
}

// NewPicture is the preferred method of initialisation for the Picture type.
func NewPicture() *Picture {
	return &Picture{}
}

// SetReceiver sets the destination of the generator output. A nil Receiver
// discards the output.
func (gen *Picture) SetReceiver(rcv Receiver) {
	gen.rcv = rcv
}

// Row clocks out a row of pixels.
func (gen *Picture) Row(pixels []uint8) {
	gen.pixels.Add(uint64(len(pixels)))
	if gen.rcv != nil {
		gen.rcv.Picture(pixels)
	}
}

// Pixels returns the number of pixels clocked out by the generator.
func (gen *Picture) Pixels() uint64 {
	return gen.pixels.Load()
}
