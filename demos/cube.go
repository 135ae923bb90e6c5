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
	"math"

	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/raster"
)

// corners of the cube
var cubePoints = [8][3]float64{
	{-20, 20, 20},
	{20, 20, 20},
	{-20, -20, 20},
	{20, -20, 20},
	{-20, 20, -20},
	{20, 20, -20},
	{-20, -20, -20},
	{20, -20, -20},
}

// faces of the cube as indexes into cubePoints. the corners are in drawing
// order
var cubeFaces = [6][4]int{
	{0, 1, 3, 2},
	{6, 7, 5, 4},
	{1, 5, 7, 3},
	{2, 6, 4, 0},
	{2, 3, 7, 6},
	{0, 4, 5, 1},
}

// projection of the cube
const (
	cubeScreenDistance = 512.0
	cubeObjectDistance = 256.0
	cubeCentreX        = 128
	cubeCentreY        = 96
)

// faceColours returns the colour of each face for the board
func faceColours(board specification.Board) [6]uint8 {
	if board.ID == specification.MonochromeID {
		return [6]uint8{1, 2, 3, 4, 5, 6}
	}
	c := board.Colours
	return [6]uint8{c.Red, c.Green, c.Blue, c.Magenta, c.Cyan, c.Yellow}
}

// RenderCube draws the cube rotated by the three angles. Only the faces that
// face the viewer are drawn.
func RenderCube(s raster.Surface, board specification.Board, the, psi, phi float64, filled bool) {
	var pts [8]raster.Point

	for i, p := range cubePoints {
		xx, yy, zz := p[0], p[1], p[2]

		y := yy*math.Cos(phi) - zz*math.Sin(phi)
		zz = yy*math.Sin(phi) + zz*math.Cos(phi)
		x := xx*math.Cos(the) - zz*math.Sin(the)
		zz = xx*math.Sin(the) + zz*math.Cos(the)
		xx = x*math.Cos(psi) - y*math.Sin(psi)
		yy = x*math.Sin(psi) + y*math.Cos(psi)

		pts[i].X = int(cubeCentreX + xx*cubeScreenDistance/(cubeObjectDistance-zz))
		pts[i].Y = int(cubeCentreY + yy*cubeScreenDistance/(cubeObjectDistance-zz))
	}

	cols := faceColours(board)

	for i, f := range cubeFaces {
		p1 := pts[f[0]]
		p2 := pts[f[1]]
		p3 := pts[f[2]]

		// back face culling
		if p1.X*(p2.Y-p3.Y)+p2.X*(p3.Y-p1.Y)+p3.X*(p1.Y-p2.Y) > 0 {
			continue
		}

		raster.Polygon(s, [4]raster.Point{p1, p2, p3, pts[f[3]]}, cols[i], filled)
	}
}

// Cube draws a spinning cube in front of a circle. The cube is drawn in outline
// for the first half of the demo and filled for the second half.
func Cube(ctx context.Context, vid Video, frames int) error {
	board := vid.Board()
	vid.SetBorder(int(board.Colours.White))

	fg, bg := board.Colours.White, board.Colours.Blue
	if board.ID == specification.MonochromeID {
		fg, bg = 0, 15
	}

	var the, psi, phi float64

	for i := range frames {
		if err := vid.WaitForFrameContext(ctx); err != nil {
			return err
		}

		filled := i >= frames/2
		circle := board.Colours.Black
		if filled {
			circle = board.Colours.Grey
		}

		fb := vid.Framebuffer()
		raster.Clear(fb, board.Colours.White)
		raster.PrintString(fb, 0, 180, "Pico-mposite Graphics Primitives", fg, bg)
		raster.Circle(fb, cubeCentreX, cubeCentreY, 80, circle, filled)
		RenderCube(fb, board, the, psi, phi, filled)

		the += 0.01
		psi += 0.03
		phi -= 0.02
	}

	return nil
}
