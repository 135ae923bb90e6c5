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

// Package feeder hands framebuffer rows to the picture transfer channel.
//
// The feeder's Handler() is the completion interrupt of the picture channel.
// The picture channel only completes when the sync generator meets the
// pass-through gap of an active line, so in the steady state the feeder runs
// once per active scanline in lockstep with the dispatch engine.
//
// The completion after the last active line finds every row handed over and
// wraps to row zero, which then waits for the first active line of the next
// frame. This is the normal end of frame and is counted by Wraps(). Resync()
// puts the feeder back in step at a frame boundary and is counted separately
// by Resyncs().
package feeder

import (
	"sync/atomic"

	"github.com/jetsetilly/cvideo/hardware/framebuffer"
	"github.com/jetsetilly/cvideo/hardware/transfer"
)

// Feeder is the picture data feeder.
type Feeder struct {
	ch     transfer.Channel[uint8]
	handle *framebuffer.Handle

	// the next row of the framebuffer to hand to the channel
	bline atomic.Uint32

	// the number of times bline has wrapped
	wraps atomic.Uint32

	// the number of calls to Resync()
	resyncs atomic.Uint32
}

// NewFeeder is the preferred method of initialisation for the Feeder type.
func NewFeeder(ch transfer.Channel[uint8], handle *framebuffer.Handle) *Feeder {
	return &Feeder{
		ch:     ch,
		handle: handle,
	}
}

// Arm installs the handler on the channel and hands over the first row.
func (fdr *Feeder) Arm() {
	fdr.ch.OnComplete(fdr.Handler)
	fdr.Handler()
}

// Handler is the completion interrupt handler of the picture channel.
//
// If every row of the framebuffer has been handed over then bline wraps to
// zero. The wrapping firing still hands over row zero because an idle channel
// never completes and the handler would never be called again.
func (fdr *Feeder) Handler() {
	fb := fdr.handle.Current()
	if fb == nil {
		fdr.ch.Acknowledge()
		return
	}

	bline := fdr.bline.Load()
	if int(bline) >= fb.Height() {
		bline = 0
		fdr.wraps.Add(1)
	}

	fdr.ch.Start(fb.Row(int(bline)), fb.Width())
	fdr.bline.Store(bline + 1)

	fdr.ch.Acknowledge()
}

// Reset the feeder so that the next row is the first row of the framebuffer.
func (fdr *Feeder) Reset() {
	fdr.bline.Store(0)
}

// Resync hands over the first row of the current framebuffer, replacing any
// row that is waiting in the channel. It must only be called from interrupt
// context at a frame boundary, when the picture channel is not in use.
func (fdr *Feeder) Resync() {
	fdr.resyncs.Add(1)
	fdr.Reset()
	fdr.Handler()
}

// InStep returns true if the next active line will be given the first row of
// the framebuffer. Only meaningful at a frame boundary.
func (fdr *Feeder) InStep() bool {
	return fdr.bline.Load() == 1
}

// BLine returns the next row of the framebuffer to be handed to the channel.
func (fdr *Feeder) BLine() int {
	return int(fdr.bline.Load())
}

// Wraps returns the number of times the feeder has wrapped to the first row.
// In the steady state this is once per frame.
func (fdr *Feeder) Wraps() uint32 {
	return fdr.wraps.Load()
}

// Resyncs returns the number of calls to Resync().
func (fdr *Feeder) Resyncs() uint32 {
	return fdr.resyncs.Load()
}
