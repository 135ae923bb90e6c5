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

// dimensions of the pattern bitmap
const (
	patternWidth  = 256
	patternHeight = 192
)

// PatternBitmap creates a bitmap of colour indexes for the palette size. The
// bitmap is patternWidth by patternHeight pixels in row order.
func PatternBitmap(paletteSize int) []uint8 {
	b := make([]uint8, patternWidth*patternHeight)
	for y := range patternHeight {
		for x := range patternWidth {
			b[y*patternWidth+x] = uint8(((x ^ y) >> 3) % paletteSize)
		}
	}
	return b
}

// Pattern copies a bitmap to the middle of the picture and holds it for the
// number of frames.
func Pattern(ctx context.Context, vid Video, frames int) error {
	board := vid.Board()
	vid.SetBorder(int(board.Colours.Black))

	fb := vid.Framebuffer()
	raster.Clear(fb, board.Colours.Black)

	x := (fb.Width() - patternWidth) / 2
	y := (fb.Height() - patternHeight) / 2
	raster.Blit(fb, x, y, patternWidth, patternHeight, PatternBitmap(board.PaletteSize))

	return hold(ctx, vid, frames)
}
