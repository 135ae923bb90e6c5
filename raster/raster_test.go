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

package raster_test

import (
	"math"
	"testing"

	"github.com/jetsetilly/cvideo/hardware/framebuffer"
	"github.com/jetsetilly/cvideo/raster"
	"github.com/jetsetilly/cvideo/test"
)

const ink = 0x0f

func newSurface(t *testing.T, w, h int) *framebuffer.Framebuffer {
	t.Helper()
	fb, err := framebuffer.New(w, h)
	test.DemandSuccess(t, err)
	return fb
}

// set returns the coordinates of all pixels of colour c
func set(fb *framebuffer.Framebuffer, c uint8) map[raster.Point]bool {
	m := make(map[raster.Point]bool)
	for y := range fb.Height() {
		for x, v := range fb.Row(y) {
			if v == c {
				m[raster.Pt(x, y)] = true
			}
		}
	}
	return m
}

func TestPlot(t *testing.T) {
	fb := newSurface(t, 32, 16)

	raster.Plot(fb, -1, 0, ink)
	raster.Plot(fb, 0, -1, ink)
	raster.Plot(fb, 32, 0, ink)
	raster.Plot(fb, 0, 16, ink)
	test.ExpectEquality(t, len(set(fb, ink)), 0)

	raster.Plot(fb, 31, 15, ink)
	raster.Plot(fb, 0, 0, ink)
	s := set(fb, ink)
	test.ExpectEquality(t, len(s), 2)
	test.ExpectSuccess(t, s[raster.Pt(31, 15)])
	test.ExpectSuccess(t, s[raster.Pt(0, 0)])

	raster.Clear(fb, ink)
	test.ExpectEquality(t, len(set(fb, ink)), 32*16)
}

func TestLine(t *testing.T) {
	fb := newSurface(t, 32, 32)

	raster.Line(fb, 0, 0, 4, 0, ink)
	s := set(fb, ink)
	test.ExpectEquality(t, len(s), 5)
	for x := range 5 {
		test.ExpectSuccess(t, s[raster.Pt(x, 0)], x)
	}

	// a line with no length is a single point
	fb.Clear(0)
	raster.Line(fb, 2, 2, 2, 2, ink)
	s = set(fb, ink)
	test.ExpectEquality(t, len(s), 1)
	test.ExpectSuccess(t, s[raster.Pt(2, 2)])

	// diagonal
	fb.Clear(0)
	raster.Line(fb, 3, 3, 0, 0, ink)
	s = set(fb, ink)
	test.ExpectEquality(t, len(s), 4)
	for i := range 4 {
		test.ExpectSuccess(t, s[raster.Pt(i, i)], i)
	}

	// steep line has one pixel per row and includes both end points
	fb.Clear(0)
	raster.Line(fb, 1, 0, 5, 20, ink)
	s = set(fb, ink)
	test.ExpectEquality(t, len(s), 21)
	test.ExpectSuccess(t, s[raster.Pt(1, 0)])
	test.ExpectSuccess(t, s[raster.Pt(5, 20)])

	// lines leaving the surface are clipped
	fb.Clear(0)
	raster.Line(fb, -10, 5, 40, 5, ink)
	test.ExpectEquality(t, len(set(fb, ink)), 32)
}

func TestHLine(t *testing.T) {
	fb := newSurface(t, 16, 4)

	raster.HLine(fb, 1, 10, 5, ink)
	test.ExpectEquality(t, len(set(fb, ink)), 6)

	fb.Clear(0)
	raster.HLine(fb, 2, -5, 100, ink)
	test.ExpectEquality(t, len(set(fb, ink)), 16)

	fb.Clear(0)
	raster.HLine(fb, 2, 20, 30, ink)
	raster.HLine(fb, 2, -30, -20, ink)
	raster.HLine(fb, 4, 0, 10, ink)
	test.ExpectEquality(t, len(set(fb, ink)), 0)
}

func TestCircle(t *testing.T) {
	fb := newSurface(t, 100, 100)
	const cx, cy = 50, 50

	raster.Circle(fb, cx, cy, 20, ink, false)
	s := set(fb, ink)
	test.ExpectSuccess(t, len(s) > 0)

	for p := range s {
		x := p.X - cx
		y := p.Y - cy
		for _, q := range []raster.Point{
			{x, y}, {x, -y}, {-x, y}, {-x, -y},
			{y, x}, {y, -x}, {-y, x}, {-y, -x},
		} {
			test.ExpectSuccess(t, s[raster.Pt(cx+q.X, cy+q.Y)], p, q)
		}

		// every point is close to the radius
		d := math.Hypot(float64(x), float64(y))
		test.ExpectApproximate(t, d, 20.0, 0.06)
	}

	test.ExpectSuccess(t, s[raster.Pt(cx, cy+20)])
	test.ExpectSuccess(t, s[raster.Pt(cx+20, cy)])

	// filled circle covers the centre and is bounded by the radius
	fb.Clear(0)
	raster.Circle(fb, cx, cy, 10, ink, true)
	s = set(fb, ink)
	test.ExpectSuccess(t, s[raster.Pt(cx, cy)])
	for p := range s {
		test.ExpectSuccess(t, math.Hypot(float64(p.X-cx), float64(p.Y-cy)) <= 10.5, p)
	}

	// partly outside the surface
	fb.Clear(0)
	raster.Circle(fb, 0, 0, 30, ink, true)
	raster.Circle(fb, 99, 99, 30, ink, false)
	test.ExpectSuccess(t, len(set(fb, ink)) > 0)

	// zero radius is a single point
	fb.Clear(0)
	raster.Circle(fb, cx, cy, 0, ink, false)
	test.ExpectEquality(t, len(set(fb, ink)), 1)
}

// extent returns the horizontal extent of the triangle at row y
func extent(p [3]raster.Point, y int) (float64, float64) {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for i := range p {
		a := p[i]
		b := p[(i+1)%3]
		if a.Y > b.Y {
			a, b = b, a
		}
		if y < a.Y || y > b.Y {
			continue
		}
		var x float64
		if a.Y == b.Y {
			lo = math.Min(lo, float64(min(a.X, b.X)))
			hi = math.Max(hi, float64(max(a.X, b.X)))
			continue
		}
		x = float64(a.X) + float64(y-a.Y)*float64(b.X-a.X)/float64(b.Y-a.Y)
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	return lo, hi
}

func TestTriangle(t *testing.T) {
	triangles := [][3]raster.Point{
		{{10, 5}, {60, 30}, {25, 70}},
		{{90, 10}, {5, 12}, {50, 90}},
		{{50, 0}, {0, 99}, {99, 60}},
		{{40, 40}, {45, 41}, {10, 80}},
	}

	for _, tri := range triangles {
		fb := newSurface(t, 100, 100)
		raster.Triangle(fb, tri[0], tri[1], tri[2], ink, true)

		top := min(tri[0].Y, tri[1].Y, tri[2].Y)
		bottom := max(tri[0].Y, tri[1].Y, tri[2].Y)

		for y := range fb.Height() {
			row := fb.Row(y)

			var filled int
			lo, hi := extent(tri, y)
			for x, v := range row {
				if v != ink {
					continue
				}
				filled++
				test.ExpectSuccess(t, float64(x) >= lo-1 && float64(x) <= hi+1, tri, x, y)
			}

			if y > top && y < bottom {
				test.ExpectSuccess(t, filled > 0, tri, y)
			} else if y < top || y > bottom {
				test.ExpectEquality(t, filled, 0, tri, y)
			}
		}
	}
}

func TestTriangleFlat(t *testing.T) {
	fb := newSurface(t, 32, 16)

	// the third corner is outside of the span of the first two
	raster.Triangle(fb, raster.Pt(10, 5), raster.Pt(20, 5), raster.Pt(2, 5), ink, true)
	s := set(fb, ink)
	test.ExpectEquality(t, len(s), 19)
	for x := 2; x <= 20; x++ {
		test.ExpectSuccess(t, s[raster.Pt(x, 5)], x)
	}
}

func TestTriangleClipped(t *testing.T) {
	// the triangle starts above the surface. the visible part must match the
	// same triangle drawn on a taller surface
	const off = 40
	tri := [3]raster.Point{{50, -off}, {0, 99}, {99, 60}}

	clipped := newSurface(t, 100, 100)
	raster.Triangle(clipped, tri[0], tri[1], tri[2], ink, true)

	tall := newSurface(t, 100, 100+off)
	raster.Triangle(tall, raster.Pt(tri[0].X, tri[0].Y+off), raster.Pt(tri[1].X, tri[1].Y+off),
		raster.Pt(tri[2].X, tri[2].Y+off), ink, true)

	for y := range clipped.Height() {
		test.ExpectEquality(t, string(clipped.Row(y)), string(tall.Row(y+off)), y)
	}

	// extreme coordinates only visit the rows of the surface
	fb := newSurface(t, 100, 100)
	raster.Triangle(fb, raster.Pt(0, -1000000000), raster.Pt(10, 1000000000), raster.Pt(-10, 1000000000), ink, true)
	test.ExpectEquality(t, fb.Row(50)[0], uint8(ink))
	test.ExpectEquality(t, fb.Row(50)[4], uint8(ink))
	test.ExpectEquality(t, fb.Row(50)[10], uint8(0))
}

func TestLargeCircle(t *testing.T) {
	fb := newSurface(t, 100, 100)

	// a filled circle that encloses the surface
	raster.Circle(fb, 50, 50, 1000000000, ink, true)
	test.ExpectEquality(t, len(set(fb, ink)), 100*100)

	// the top of an outline that is much larger than the surface is a
	// near horizontal line across every column
	fb.Clear(0)
	raster.Circle(fb, 50, 1000050, 1000000, ink, false)
	s := set(fb, ink)
	cols := make(map[int]bool)
	for p := range s {
		test.ExpectSuccess(t, p.Y >= 49 && p.Y <= 51, p)
		cols[p.X] = true
	}
	test.ExpectEquality(t, len(cols), 100)

	// entirely off the surface
	fb.Clear(0)
	raster.Circle(fb, -5000, 50, 100, ink, true)
	raster.Circle(fb, 50, 5000000, 1000000, ink, false)
	test.ExpectEquality(t, len(set(fb, ink)), 0)
}

func TestTriangleOutline(t *testing.T) {
	fb := newSurface(t, 32, 32)
	raster.Triangle(fb, raster.Pt(0, 0), raster.Pt(10, 0), raster.Pt(0, 10), ink, false)
	s := set(fb, ink)
	test.ExpectSuccess(t, s[raster.Pt(0, 0)])
	test.ExpectSuccess(t, s[raster.Pt(10, 0)])
	test.ExpectSuccess(t, s[raster.Pt(0, 10)])
	test.ExpectSuccess(t, s[raster.Pt(5, 5)])
	test.ExpectFailure(t, s[raster.Pt(2, 2)])
}

func TestPolygon(t *testing.T) {
	fb := newSurface(t, 32, 32)
	quad := [4]raster.Point{{4, 4}, {20, 4}, {20, 20}, {4, 20}}

	raster.Polygon(fb, quad, ink, true)
	s := set(fb, ink)
	test.ExpectEquality(t, len(s), 17*17)

	fb.Clear(0)
	raster.Polygon(fb, quad, ink, false)
	s = set(fb, ink)
	test.ExpectEquality(t, len(s), 16*4)
	test.ExpectFailure(t, s[raster.Pt(10, 10)])
}

func TestRect(t *testing.T) {
	fb := newSurface(t, 32, 32)
	raster.Rect(fb, 2, 2, 5, 5, ink, true)
	test.ExpectEquality(t, len(set(fb, ink)), 16)

	fb.Clear(0)
	raster.Rect(fb, 5, 5, 2, 2, ink, false)
	test.ExpectEquality(t, len(set(fb, ink)), 12)

	fb.Clear(0)
	raster.Rect(fb, -10, -10, 100, 100, ink, true)
	test.ExpectEquality(t, len(set(fb, ink)), 32*32)
}

func TestScrollUp(t *testing.T) {
	fb := newSurface(t, 8, 32)
	for y := range fb.Height() {
		fb.Row(y)[0] = uint8(y)
	}

	raster.ScrollUp(fb, 0xff, 8)
	test.ExpectEquality(t, fb.Row(0)[0], uint8(8))
	test.ExpectEquality(t, fb.Row(23)[0], uint8(31))
	for y := 24; y < 32; y++ {
		for _, v := range fb.Row(y) {
			test.ExpectEquality(t, v, uint8(0xff))
		}
	}

	raster.ScrollUp(fb, 0x01, 100)
	test.ExpectEquality(t, len(set(fb, 0x01)), 8*32)

	raster.ScrollUp(fb, 0x02, 0)
	test.ExpectEquality(t, len(set(fb, 0x02)), 0)
}

func TestBlit(t *testing.T) {
	fb := newSurface(t, 8, 8)
	src := []uint8{
		1, 2, 3,
		4, 5, 6,
	}

	raster.Blit(fb, 1, 1, 3, 2, src)
	test.ExpectEquality(t, fb.Row(1)[1], uint8(1))
	test.ExpectEquality(t, fb.Row(2)[3], uint8(6))

	// clipped on the left and bottom
	fb.Clear(0)
	raster.Blit(fb, -1, 7, 3, 2, src)
	test.ExpectEquality(t, fb.Row(7)[0], uint8(2))
	test.ExpectEquality(t, fb.Row(7)[1], uint8(3))
	test.ExpectEquality(t, fb.Row(7)[2], uint8(0))

	// clipped on the right
	fb.Clear(0)
	raster.Blit(fb, 6, 0, 3, 2, src)
	test.ExpectEquality(t, fb.Row(0)[6], uint8(1))
	test.ExpectEquality(t, fb.Row(1)[7], uint8(5))

	// source too small
	fb.Clear(0)
	raster.Blit(fb, 0, 0, 4, 4, src)
	test.ExpectEquality(t, len(set(fb, 0)), 64)
}
