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

package raster

import "math"

// Surface is a rectangular buffer of colour indexes.
type Surface interface {
	Width() int
	Height() int

	// Row returns the pixels of row y. Returns nil if y is out of range
	Row(y int) []uint8
}

// Point is a position on a Surface.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Clear sets every pixel of the surface to colour c.
func Clear(s Surface, c uint8) {
	for y := range s.Height() {
		fill(s.Row(y), c)
	}
}

func fill(row []uint8, c uint8) {
	for i := range row {
		row[i] = c
	}
}

// Plot sets the pixel at x, y to colour c. Coordinates outside the surface are
// ignored.
func Plot(s Surface, x, y int, c uint8) {
	if x < 0 || x >= s.Width() {
		return
	}
	if row := s.Row(y); row != nil {
		row[x] = c
	}
}

// Line draws a line from x1, y1 to x2, y2 inclusive. A line with no length
// plots a single point.
func Line(s Surface, x1, y1, x2, y2 int, c uint8) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := sign(x2 - x1)
	sy := sign(y2 - y1)

	x, y := x1, y1

	if dx > dy {
		e := dx / 2
		for range dx + 1 {
			Plot(s, x, y, c)
			e -= dy
			if e < 0 {
				y += sy
				e += dx
			}
			x += sx
		}
		return
	}

	e := dy / 2
	for range dy + 1 {
		Plot(s, x, y, c)
		e -= dx
		if e < 0 {
			x += sx
			e += dy
		}
		y += sy
	}
}

// HLine draws a horizontal line on row y from x1 to x2 inclusive. The end
// points can be in any order.
func HLine(s Surface, y, x1, x2 int, c uint8) {
	row := s.Row(y)
	if row == nil {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	x1 = max(x1, 0)
	x2 = min(x2, len(row)-1)
	if x1 > x2 {
		return
	}
	fill(row[x1:x2+1], c)
}

// Rect draws a rectangle with corners x1, y1 and x2, y2.
func Rect(s Surface, x1, y1, x2, y2 int, c uint8, filled bool) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if !filled {
		HLine(s, y1, x1, x2, c)
		HLine(s, y2, x1, x2, c)
		Line(s, x1, y1, x1, y2, c)
		Line(s, x2, y1, x2, y2, c)
		return
	}
	y1 = max(y1, 0)
	y2 = min(y2, s.Height()-1)
	for y := y1; y <= y2; y++ {
		HLine(s, y, x1, x2, c)
	}
}

// Circle draws a circle of radius r centred on cx, cy. A negative radius
// draws nothing.
func Circle(s Surface, cx, cy, r int, c uint8, filled bool) {
	if r < 0 {
		return
	}
	if cx+r < 0 || cx-r >= s.Width() || cy+r < 0 || cy-r >= s.Height() {
		return
	}
	if r > s.Width()+s.Height() {
		largeCircle(s, cx, cy, r, c, filled)
		return
	}

	x := 0
	y := r
	d := 3 - 2*r

	for y >= x {
		if filled {
			HLine(s, cy+y, cx-x, cx+x, c)
			HLine(s, cy-y, cx-x, cx+x, c)
			HLine(s, cy+x, cx-y, cx+y, c)
			HLine(s, cy-x, cx-y, cx+y, c)
		} else {
			Plot(s, cx+x, cy+y, c)
			Plot(s, cx+x, cy-y, c)
			Plot(s, cx-x, cy+y, c)
			Plot(s, cx-x, cy-y, c)
			Plot(s, cx+y, cy+x, c)
			Plot(s, cx+y, cy-x, c)
			Plot(s, cx-y, cy+x, c)
			Plot(s, cx-y, cy-x, c)
		}

		x++
		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*x + 6
		}
	}
}

// largeCircle draws a circle that is much larger than the surface by
// visiting the rows and columns of the surface rather than every step of the
// radius
func largeCircle(s Surface, cx, cy, r int, c uint8, filled bool) {
	rr := float64(r) * float64(r)

	for y := range s.Height() {
		dy := float64(y - cy)
		if dy*dy > rr {
			continue
		}
		dx := int(math.Sqrt(rr - dy*dy))
		if filled {
			HLine(s, y, cx-dx, cx+dx, c)
		} else {
			Plot(s, cx-dx, y, c)
			Plot(s, cx+dx, y, c)
		}
	}
	if filled {
		return
	}

	// the rows alone leave gaps where the outline is closer to horizontal
	for x := range s.Width() {
		dx := float64(x - cx)
		if dx*dx > rr {
			continue
		}
		dy := int(math.Sqrt(rr - dx*dx))
		Plot(s, x, cy-dy, c)
		Plot(s, x, cy+dy, c)
	}
}

// edge tracks the x coordinate of a triangle edge one scanline at a time
type edge struct {
	x  int
	dx int
	dy int
	sx int
	e  int
}

// newEdge creates an edge tracker for an edge from a to b. b must not be above
// a
func newEdge(a, b Point) edge {
	dy := b.Y - a.Y
	return edge{
		x:  a.X,
		dx: abs(b.X - a.X),
		dy: dy,
		sx: sign(b.X - a.X),
		e:  dy / 2,
	}
}

// step advances the edge to the next scanline
func (ed *edge) step() {
	if ed.dy == 0 {
		return
	}

	// edges that are longer than they are tall move by one or more pixels
	// every scanline. edges that are taller than they are long move by at
	// most one pixel
	if ed.dx > ed.dy {
		ed.x += ed.sx * (ed.dx / ed.dy)
		ed.e += ed.dx % ed.dy
	} else {
		ed.e += ed.dx
	}
	if ed.e >= ed.dy {
		ed.x += ed.sx
		ed.e -= ed.dy
	}
}

// skip advances the edge by n scanlines
func (ed *edge) skip(n int) {
	if ed.dy == 0 || n <= 0 {
		return
	}
	t := ed.e + ed.dx*n
	ed.x += ed.sx * (t / ed.dy)
	ed.e = t % ed.dy
}

// Triangle draws a triangle with the corners p1, p2 and p3.
func Triangle(s Surface, p1, p2, p3 Point, c uint8, filled bool) {
	if !filled {
		Line(s, p1.X, p1.Y, p2.X, p2.Y, c)
		Line(s, p2.X, p2.Y, p3.X, p3.Y, c)
		Line(s, p3.X, p3.Y, p1.X, p1.Y, c)
		return
	}

	// sort by y
	if p2.Y < p1.Y {
		p1, p2 = p2, p1
	}
	if p3.Y < p1.Y {
		p1, p3 = p3, p1
	}
	if p3.Y < p2.Y {
		p2, p3 = p3, p2
	}

	// all corners on one row
	if p1.Y == p3.Y {
		HLine(s, p1.Y, min(p1.X, p2.X, p3.X), max(p1.X, p2.X, p3.X), c)
		return
	}

	// only the rows of the surface are visited
	top := max(p1.Y, 0)
	bottom := min(p3.Y, s.Height()-1)
	if top > bottom {
		return
	}

	long := newEdge(p1, p3)
	long.skip(top - p1.Y)

	var short edge
	if top < p2.Y {
		short = newEdge(p1, p2)
		short.skip(top - p1.Y)
	} else {
		short = newEdge(p2, p3)
		short.skip(top - p2.Y)
	}

	for y := top; y <= bottom; y++ {
		if y == p2.Y {
			short = newEdge(p2, p3)
		}
		HLine(s, y, long.x, short.x, c)
		long.step()
		short.step()
	}
}

// Polygon draws a four sided polygon. The points are connected in order and
// the last point is connected to the first. A filled polygon is drawn as two
// triangles that share the diagonal from the first to the third point, so the
// polygon should be convex.
func Polygon(s Surface, p [4]Point, c uint8, filled bool) {
	if !filled {
		for i := range p {
			n := p[(i+1)%len(p)]
			Line(s, p[i].X, p[i].Y, n.X, n.Y, c)
		}
		return
	}
	Triangle(s, p[0], p[1], p[2], c, true)
	Triangle(s, p[0], p[2], p[3], c, true)
}

// ScrollUp moves the content of the surface up by the number of rows. The
// rows that are uncovered at the bottom are filled with colour c.
func ScrollUp(s Surface, c uint8, rows int) {
	if rows <= 0 {
		return
	}
	h := s.Height()
	for y := 0; y+rows < h; y++ {
		copy(s.Row(y), s.Row(y+rows))
	}
	for y := max(h-rows, 0); y < h; y++ {
		fill(s.Row(y), c)
	}
}

// Blit copies a bitmap of w by h colour indexes to the surface with its top
// left corner at x, y. The bitmap is in row order.
func Blit(s Surface, x, y, w, h int, src []uint8) {
	if w <= 0 || h <= 0 || len(src) < w*h {
		return
	}
	for by := range h {
		row := s.Row(y + by)
		if row == nil {
			continue
		}
		line := src[by*w : (by+1)*w]

		// clip left and right
		l := max(0, -x)
		r := min(w, len(row)-x)
		if l >= r {
			continue
		}
		copy(row[x+l:x+r], line[l:r])
	}
}
