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

// ColourBars draws vertical bars of the named colours of the board, in order
// of brightness, and holds them for the number of frames.
func ColourBars(ctx context.Context, vid Video, frames int) error {
	board := vid.Board()
	c := board.Colours
	vid.SetBorder(int(c.Black))

	bars := []uint8{c.White, c.Yellow, c.Cyan, c.Green, c.Magenta, c.Red, c.Blue, c.Black}

	fb := vid.Framebuffer()
	raster.Clear(fb, c.Black)

	w := fb.Width() / len(bars)
	h := fb.Height() * 3 / 4
	for i, col := range bars {
		raster.Rect(fb, i*w, 0, (i+1)*w-1, h-1, col, true)
	}

	// a greyscale ramp below the bars
	steps := min(board.PaletteSize, 16)
	sw := fb.Width() / steps
	for i := range steps {
		col := uint8(i * board.PaletteSize / steps)
		raster.Rect(fb, i*sw, h, (i+1)*sw-1, fb.Height()-17, col, true)
	}

	raster.PrintString(fb, 0, fb.Height()-12, board.ID, c.White, c.Black)

	return hold(ctx, vid, frames)
}
