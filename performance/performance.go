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

package performance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/cvideo/demos"
	"github.com/jetsetilly/cvideo/hardware"
	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/hardware/television"
	"github.com/jetsetilly/cvideo/hardware/transfer"
)

// DefaultLeadtime is the time the hardware is run before measurement begins,
// to allow the frame rate to settle.
const DefaultLeadtime = 2 * time.Second

// Check runs the video hardware for the duration and writes the measured frame
// rate to output. The hardware is run for the leadtime before the measurement
// period begins.
//
// If uncapped is true then the frame limiter is disabled and the hardware runs
// as quickly as possible.
func Check(output io.Writer, profile Profile, board specification.Board, uncapped bool, leadtime time.Duration, duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("performance: duration must be positive")
	}

	eng := transfer.NewEngine(board.Encoding)
	tv := television.NewTelevision(board)
	defer tv.End()
	eng.SetReceiver(tv)

	vid, err := hardware.NewVideo(board, eng)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	err = vid.Initialise()
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	demos.RenderMandelbrot(vid.Framebuffer(), board)

	eng.Limiter().Active.Store(!uncapped)

	var startFrame uint32
	var endFrame uint32

	runner := func() error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// the frame count is sampled at the end of the leadtime and again at
		// the end of the measurement period
		go func() {
			time.Sleep(leadtime)
			startFrame = vid.Frames()
			time.Sleep(duration)
			endFrame = vid.Frames()
			cancel()
		}()

		err := eng.Run(ctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	numFrames := int(endFrame - startFrame)
	fps, accuracy := CalcFPS(numFrames, duration.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy)

	return nil
}
