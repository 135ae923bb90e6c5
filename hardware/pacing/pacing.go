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

// Package pacing allows foreground code to synchronise with the frame rate of
// the video signal.
package pacing

import (
	"context"
	"time"
)

// DefaultInterval is the polling interval used by WaitForFrame().
const DefaultInterval = time.Millisecond

// Counter returns the current value of a frame counter.
type Counter func() uint32

// WaitForFrame blocks until the value returned by the counter changes. The
// counter is polled with a short sleep between each poll. There is no timeout.
//
// WaitForFrame must never be called from interrupt context.
func WaitForFrame(counter Counter, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	start := counter()
	for counter() == start {
		time.Sleep(interval)
	}
}

// WaitForFrameContext is the same as WaitForFrame() except that it returns
// early with the context's error if the context is done.
func WaitForFrameContext(ctx context.Context, counter Counter, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultInterval
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	start := counter()
	for counter() == start {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}

	return nil
}
