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

package digest_test

import (
	"image/color"
	"testing"

	"github.com/jetsetilly/cvideo/digest"
	"github.com/jetsetilly/cvideo/hardware"
	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/hardware/television"
	"github.com/jetsetilly/cvideo/hardware/transfer"
	"github.com/jetsetilly/cvideo/raster"
	"github.com/jetsetilly/cvideo/test"
)

// run the signal path for a number of frames and return the digest. the draw
// function is called after initialisation
func run(t *testing.T, frames int, draw func(vid *hardware.Video)) string {
	t.Helper()

	board := specification.Monochrome
	eng := transfer.NewEngine(board.Encoding)
	vid, err := hardware.NewVideo(board, eng)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, vid.Initialise())

	tv := television.NewTelevision(board)
	eng.SetReceiver(tv)
	dig := digest.NewVideo(tv)

	if draw != nil {
		draw(vid)
	}

	for range frames {
		eng.Frame()
	}

	// the last frame is digested when the next frame starts
	eng.Scanline()
	eng.Scanline()
	test.ExpectEquality(t, dig.Frames(), frames)
	test.ExpectSuccess(t, tv.LastError())

	return dig.Hash()
}

func TestDigest(t *testing.T) {
	circle := func(vid *hardware.Video) {
		raster.Circle(vid.Framebuffer(), 128, 128, 50, 15, true)
	}

	a := run(t, 2, circle)
	b := run(t, 2, circle)
	test.ExpectEquality(t, a, b)

	// different picture
	c := run(t, 2, nil)
	test.ExpectInequality(t, a, c)

	// digests are chained so the number of frames changes the digest
	d := run(t, 3, circle)
	test.ExpectInequality(t, a, d)
}

func TestReset(t *testing.T) {
	tv := television.NewTelevision(specification.Monochrome)
	dig := digest.NewVideo(tv)
	zero := dig.Hash()

	// frames with nothing drawn are not digested
	test.ExpectSuccess(t, dig.NewFrame(1))
	test.ExpectEquality(t, dig.Hash(), zero)

	test.ExpectSuccess(t, dig.SetPixel(0, 0, color.RGBA{R: 255, A: 255}))
	test.ExpectSuccess(t, dig.NewFrame(2))
	test.ExpectInequality(t, dig.Hash(), zero)
	test.ExpectEquality(t, dig.Frames(), 1)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), zero)
	test.ExpectEquality(t, dig.Frames(), 0)

	test.ExpectFailure(t, dig.Resize(0, 10))
}
