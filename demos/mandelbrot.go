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

	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/raster"
)

// the maximum number of iterations for a point of the mandelbrot set
const mandelbrotIterations = 15

// mandelbrotPalette returns the colours for each iteration count
func mandelbrotPalette(board specification.Board) [mandelbrotIterations + 1]uint8 {
	var pal [mandelbrotIterations + 1]uint8
	for i := range pal {
		if board.ID == specification.MonochromeID {
			pal[i] = uint8(i)
		} else if i < 8 {
			pal[i] = specification.RGB(uint8(i), 0, 0)
		} else {
			pal[i] = specification.RGB(7, uint8(i-8), 0)
		}
	}
	return pal
}

// RenderMandelbrot draws the mandelbrot set to fill the surface.
func RenderMandelbrot(s raster.Surface, board specification.Board) {
	pal := mandelbrotPalette(board)

	for y := range s.Height() {
		row := s.Row(y)
		for x := range row {
			var i, r float64
			var k int
			for {
				j := r*r - i*i - 2 + float64(x)/100
				i = 2*r*i + float64(y-96)/70
				if j*j+i*i >= 11 || k >= mandelbrotIterations {
					break
				}
				k++
				r = j
			}
			row[x] = pal[k]
		}
	}
}

// Mandelbrot draws the mandelbrot set and holds it for the number of frames.
func Mandelbrot(ctx context.Context, vid Video, frames int) error {
	board := vid.Board()
	vid.SetBorder(int(board.Colours.Black))

	fb := vid.Framebuffer()
	raster.Clear(fb, board.Colours.Black)
	RenderMandelbrot(fb, board)

	fg, bg := board.Colours.Red, board.Colours.White
	if board.ID == specification.MonochromeID {
		fg, bg = 15, 0
	}
	raster.PrintString(fb, 16, 180, "Pico-mposite Mandelbrot Demo", fg, bg)

	return hold(ctx, vid, frames)
}
