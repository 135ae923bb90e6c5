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

package transfer

import (
	"context"
	"sync/atomic"

	"github.com/jetsetilly/cvideo/hardware/generator"
	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/hardware/television/limiter"
	"github.com/jetsetilly/cvideo/hardware/waveform"
	"github.com/jetsetilly/cvideo/logger"
)

// Engine simulates the transfer hardware and the generators it feeds.
type Engine struct {
	sync    *DMAChannel[waveform.Code]
	picture *DMAChannel[uint8]

	syncGen    *generator.Sync
	pictureGen *generator.Picture

	lmtr *limiter.Limiter

	// the number of scanlines simulated
	lines atomic.Uint64

	// the number of scanlines where the sync channel had nothing to send
	idle atomic.Uint64

	// the number of interrupts that were not acknowledged by the handler.
	// reported by Run() and not by the handler itself
	spurious atomic.Uint32
	reported uint32
}

// NewEngine is the preferred method of initialisation for the Engine type.
// The encoding is the encoding of the board the generators are driving.
func NewEngine(enc waveform.Encoding) *Engine {
	eng := &Engine{
		sync:       newDMAChannel[waveform.Code]("sync"),
		picture:    newDMAChannel[uint8]("picture"),
		syncGen:    generator.NewSync(enc),
		pictureGen: generator.NewPicture(),
		lmtr:       limiter.NewLimiter(),
	}
	eng.syncGen.SetClockDivisor(specification.SyncClockDivisor)
	return eng
}

// SyncChannel returns the channel that feeds the sync generator.
func (eng *Engine) SyncChannel() Channel[waveform.Code] {
	return eng.sync
}

// PictureChannel returns the channel that feeds the picture generator.
func (eng *Engine) PictureChannel() Channel[uint8] {
	return eng.picture
}

// Sync returns the simulated sync channel. Useful for inspection.
func (eng *Engine) Sync() *DMAChannel[waveform.Code] {
	return eng.sync
}

// Picture returns the simulated picture channel. Useful for inspection.
func (eng *Engine) Picture() *DMAChannel[uint8] {
	return eng.picture
}

// SetSyncClock sets the clock divisor of the sync generator.
func (eng *Engine) SetSyncClock(divisor float64) {
	eng.syncGen.SetClockDivisor(divisor)
}

// SetPictureClock sets the clock divisor of the picture generator.
func (eng *Engine) SetPictureClock(divisor float64) {
	eng.pictureGen.SetClockDivisor(divisor)
}

// PictureClock returns the clock divisor of the picture generator.
func (eng *Engine) PictureClock() float64 {
	return eng.pictureGen.ClockDivisor()
}

// SetReceiver sets the destination of both generators' output. It should be
// called before Run().
func (eng *Engine) SetReceiver(rcv generator.Receiver) {
	eng.syncGen.SetReceiver(rcv)
	eng.pictureGen.SetReceiver(rcv)
}

// Limiter returns the limiter used by Run().
func (eng *Engine) Limiter() *limiter.Limiter {
	return eng.lmtr
}

// Lines returns the number of scanlines simulated.
func (eng *Engine) Lines() uint64 {
	return eng.lines.Load()
}

// Idle returns the number of scanlines where the sync channel was idle.
func (eng *Engine) Idle() uint64 {
	return eng.idle.Load()
}

// Spurious returns the number of interrupts that were not acknowledged.
func (eng *Engine) Spurious() uint32 {
	return eng.spurious.Load()
}

// gate is called by the sync generator at the start of a pass-through gap
func (eng *Engine) gate() {
	row, ok := eng.picture.take()
	if !ok {
		return
	}
	eng.pictureGen.Row(row)
	if eng.picture.complete() {
		eng.spurious.Add(1)
	}
}

// Scanline simulates one horizontal period. The pending sync transfer is
// consumed by the sync generator, which in turn triggers the picture channel
// at the pass-through gap. Completion handlers are called before the function
// returns.
func (eng *Engine) Scanline() {
	eng.lines.Add(1)

	codes, ok := eng.sync.take()
	if !ok {
		eng.idle.Add(1)
		return
	}

	eng.syncGen.Line(codes, eng.gate)
	if eng.sync.complete() {
		eng.spurious.Add(1)
	}
}

// Frame simulates a frame's worth of scanlines. There is no guarantee that the
// scanlines are aligned with the start of the frame.
func (eng *Engine) Frame() {
	for range specification.ScanlinesTotal {
		eng.Scanline()
	}
}

// Run simulates frames in real time until the context is cancelled. The
// speed of the simulation is governed by the limiter.
func (eng *Engine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		eng.Frame()
		eng.lmtr.CheckFrame()
		eng.lmtr.MeasureActual()

		if s := eng.spurious.Load(); s != eng.reported {
			logger.Logf(logger.Allow, "transfer", "%d unacknowledged interrupts", s-eng.reported)
			eng.reported = s
		}
	}
}
