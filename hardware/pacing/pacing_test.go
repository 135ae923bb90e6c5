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

package pacing_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jetsetilly/cvideo/hardware/pacing"
	"github.com/jetsetilly/cvideo/test"
)

func TestWaitForFrame(t *testing.T) {
	var frames atomic.Uint32

	go func() {
		time.Sleep(20 * time.Millisecond)
		frames.Add(1)
	}()

	start := time.Now()
	pacing.WaitForFrame(frames.Load, pacing.DefaultInterval)
	test.ExpectEquality(t, frames.Load(), uint32(1))
	test.ExpectSuccess(t, time.Since(start) >= 20*time.Millisecond)
}

func TestWaitForFrameContext(t *testing.T) {
	var frames atomic.Uint32

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// the counter never changes so the context must end the wait
	err := pacing.WaitForFrameContext(ctx, frames.Load, 0)
	test.ExpectSuccess(t, errors.Is(err, context.DeadlineExceeded))

	go func() {
		time.Sleep(5 * time.Millisecond)
		frames.Add(1)
	}()
	err = pacing.WaitForFrameContext(context.Background(), frames.Load, 0)
	test.ExpectSuccess(t, err)
}
