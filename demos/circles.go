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

// Circles draws concentric circles in alternating colours, in outline on the
// left of the picture and filled on the right.
func Circles(ctx context.Context, vid Video, frames int) error {
	board := vid.Board()
	c := board.Colours
	vid.SetBorder(int(c.Grey))

	fb := vid.Framebuffer()
	raster.Clear(fb, c.Black)

	cols := []uint8{c.White, c.Red, c.Green, c.Blue, c.Yellow, c.Magenta, c.Cyan}

	w := fb.Width()
	h := fb.Height()
	r := min(w/4, h/2) - 4

	for i := 0; r-i*6 > 0; i++ {
		raster.Circle(fb, w/4, h/2, r-i*6, cols[i%len(cols)], false)
	}
	for i := 0; r-i*6 > 0; i++ {
		raster.Circle(fb, w*3/4, h/2, r-i*6, cols[i%len(cols)], true)
	}

	return hold(ctx, vid, frames)
}
