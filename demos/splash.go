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

package demos

import (
	"context"

	"github.com/jetsetilly/cvideo/raster"
)

// the colour index used to clear the screen for the splash
const splashBackground = 7

// Splash draws a frame around the picture with a circle in the middle and
// holds it for the number of frames.
func Splash(ctx context.Context, vid Video, frames int) error {
	board := vid.Board()
	vid.SetBorder(int(board.Colours.Black))

	fb := vid.Framebuffer()
	w := fb.Width()
	h := fb.Height()

	raster.Clear(fb, splashBackground)
	raster.Line(fb, 0, 0, w-1, 0, board.Colours.White)
	raster.Line(fb, w-1, 0, w-1, h-1, board.Colours.White)
	raster.Line(fb, w-1, h-1, 0, h-1, board.Colours.White)
	raster.Line(fb, 0, h-1, 0, 0, board.Colours.White)
	raster.Circle(fb, w/2, h/2, h/2-10, board.Colours.Black, false)

	return hold(ctx, vid, frames)
}
