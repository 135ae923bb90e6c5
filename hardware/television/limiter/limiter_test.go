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

package limiter_test

import (
	"testing"

	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/hardware/television/limiter"
	"github.com/jetsetilly/cvideo/test"
)

// tolerance of measurement. frames are waited for in batches so the measured
// rate at any instant can be a few frames out
const measurementTolerance = 0.1
const numSecondsPerTest = 2

func TestTicker(t *testing.T) {
	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()

	hz := lmtr.IdealFPS.Load().(float32)
	test.ExpectEquality(t, hz, specification.RefreshRate)

	for range int(hz * numSecondsPerTest) {
		lmtr.CheckFrame()
		lmtr.MeasureActual()
	}
	rate := lmtr.Measured.Load().(float32)
	test.ExpectApproximate(t, rate, hz, measurementTolerance)
}

type display struct{}

func (_ display) DisplayRefreshRate() (float32, bool) {
	return 50.0, true
}

func TestQuantisation(t *testing.T) {
	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()

	lmtr.SetDisplay(display{})
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), 50.0)

	// a limit too far from the display refresh rate is not quantised
	lmtr.SetLimit(30.0)
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), 30.0)

	// changing the refresh rate does not affect an explicit limit
	lmtr.SetRefreshRate(60.0)
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), 30.0)

	lmtr.SetLimit(limiter.MatchRefreshRate)
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), 60.0)
}

func TestNudge(t *testing.T) {
	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()

	lmtr.SetLimit(1.0)
	lmtr.Nudge.Store(3)
	for range 3 {
		// would block for a second each time if not for the nudge
		lmtr.CheckFrame()
	}
	test.ExpectEquality(t, lmtr.Nudge.Load(), int32(0))
}
