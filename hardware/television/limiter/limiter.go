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

// Package limiter paces the simulated hardware so that frames are produced at
// the rate of the video signal rather than as fast as the host allows.
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/cvideo/hardware/specification"
)

// Display implementations report the refresh rate of the host display. If the
// second return value is true then the limiter will quantise a requested rate
// that is close to the display's rate.
type Display interface {
	DisplayRefreshRate() (float32, bool)
}

// MatchRefreshRate can be used with SetLimit() to indicate that the limit
// should equal the refresh rate.
const MatchRefreshRate float32 = -1.0

// Limiter blocks in CheckFrame() until it is time for the next frame.
type Limiter struct {
	// whether to wait in CheckFrame(). when false the limiter only measures
	Active atomic.Bool

	// the refresh rate of the signal
	RefreshRate atomic.Value // float32

	// the rate that the limiter is trying to achieve, after quantisation
	IdealFPS atomic.Value // float32

	// the most recent argument to SetLimit()
	requested atomic.Value // float32

	// the measured number of frames per second
	Measured atomic.Value // float32

	// nudge the limiter so that it doesn't wait for the specified number of
	// frames
	Nudge atomic.Int32

	// waiting on a ticker every frame is expensive for the host so the wait
	// is batched: the ticker period covers pulseLimit frames and we wait on
	// every pulseLimit'th frame
	pulse      *time.Ticker
	pulseCt    int
	pulseLimit int

	measurePulse *time.Ticker
	measureTime  time.Time
	measureCt    int

	display Display
}

// NewLimiter is the preferred method of initialising a new instance of the
// Limiter type. The refresh rate is that of the video signal and the limit is
// set to match it.
func NewLimiter() *Limiter {
	lmtr := &Limiter{
		pulse:        time.NewTicker(time.Second),
		measurePulse: time.NewTicker(time.Second),
	}
	lmtr.Active.Store(true)
	lmtr.Measured.Store(float32(0.0))
	lmtr.requested.Store(MatchRefreshRate)
	lmtr.RefreshRate.Store(specification.RefreshRate)
	lmtr.SetLimit(MatchRefreshRate)
	return lmtr
}

// SetDisplay sets the display the limiter is working for. The limit is
// recalculated.
func (lmtr *Limiter) SetDisplay(display Display) {
	lmtr.display = display
	lmtr.SetLimit(lmtr.requested.Load().(float32))
}

// SetRefreshRate changes the refresh rate of the signal. If the limit was set
// with MatchRefreshRate then the limit changes too.
func (lmtr *Limiter) SetRefreshRate(hz float32) {
	lmtr.RefreshRate.Store(hz)
	if lmtr.requested.Load().(float32) <= 0.0 {
		lmtr.SetLimit(MatchRefreshRate)
	}
}

// SetLimit sets the number of frames per second. Any value less than or equal
// to zero is treated as MatchRefreshRate.
func (lmtr *Limiter) SetLimit(fps float32) {
	lmtr.requested.Store(fps)
	if fps <= 0.0 {
		fps = lmtr.RefreshRate.Load().(float32)
	}
	if fps <= 0.0 {
		return
	}

	if lmtr.display != nil {
		if hz, quantise := lmtr.display.DisplayRefreshRate(); quantise {
			if fps >= hz*0.96 && fps <= hz*1.04 {
				fps = hz
			}
		}
	}

	lmtr.IdealFPS.Store(fps)

	lmtr.pulseCt = 0
	lmtr.pulseLimit = 1 + int(fps/20)
	lmtr.pulse.Reset(time.Duration(float32(time.Second) / fps * float32(lmtr.pulseLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called once per frame. It blocks until it is time for
// the next frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if n := lmtr.Nudge.Load(); n > 0 {
		lmtr.Nudge.Store(n - 1)
		return
	}

	if !lmtr.Active.Load() {
		return
	}

	lmtr.pulseCt++
	if lmtr.pulseCt >= lmtr.pulseLimit {
		lmtr.pulseCt = 0
		<-lmtr.pulse.C
	}
}

// MeasureActual updates the Measured field once per second. It is cheap to
// call every frame.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measurePulse.C:
		t := time.Now()
		lmtr.Measured.Store(float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds()))
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop releases the limiter's tickers. The limiter must not be used after
// Stop() has been called.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measurePulse.Stop()
}
