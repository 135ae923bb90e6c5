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

package specification

import (
	"time"

	"github.com/jetsetilly/cvideo/hardware/waveform"
)

// SysClock is the frequency of the system clock in Hz. Generator clocks are
// derived from this value with a divisor.
const SysClock = 125_000_000

// Geometry of a frame.
const (
	// the number of scanlines in a frame
	ScanlinesTotal = 312

	// the first scanline of the picture
	ActiveTop = 37

	// the height of the picture in scanlines. this is fixed for all modes
	Height = 256

	// the last scanline before the bottom vertical sync lines
	BorderBottom = 309
)

// Timings of a scanline and a frame.
const (
	SlotDuration  = 2 * time.Microsecond
	LineDuration  = SlotDuration * waveform.SlotsPerLine
	FrameDuration = LineDuration * ScanlinesTotal
)

// RefreshRate is the number of frames per second of the signal.
const RefreshRate = float32(time.Second) / float32(FrameDuration)

// SyncClock is the rate, in Hz, at which the sync generator consumes codes.
const SyncClock = int(time.Second / SlotDuration)

// SyncClockDivisor is the divisor applied to SysClock to produce SyncClock.
const SyncClockDivisor = float64(SysClock) / float64(SyncClock)

// GapDuration returns the duration of the pass-through gap for the gap
// placement.
func GapDuration(gap waveform.Gap) time.Duration {
	return SlotDuration * time.Duration(gap.Length)
}
