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
	"testing"

	"github.com/jetsetilly/cvideo/raster"
	"github.com/jetsetilly/cvideo/test"
)

func TestGlyph(t *testing.T) {
	_, ok := raster.Glyph(31)
	test.ExpectFailure(t, ok)
	_, ok = raster.Glyph(128)
	test.ExpectFailure(t, ok)

	g, ok := raster.Glyph('A')
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, len(g), raster.GlyphSize)
	test.ExpectEquality(t, g[1], uint8(0x3c))
}

func TestPrintChar(t *testing.T) {
	fb := newSurface(t, 16, 16)

	raster.PrintChar(fb, 4, 2, 'A', ink, 0x01)

	// the first row of A is empty
	for x := 4; x < 12; x++ {
		test.ExpectEquality(t, fb.Row(2)[x], uint8(0x01))
	}

	// second row is 0x3c
	row := fb.Row(3)
	for x := 4; x < 12; x++ {
		if x >= 6 && x <= 9 {
			test.ExpectEquality(t, row[x], uint8(ink), x)
		} else {
			test.ExpectEquality(t, row[x], uint8(0x01), x)
		}
	}

	// outside the glyph is untouched
	test.ExpectEquality(t, fb.Row(3)[3], uint8(0))
	test.ExpectEquality(t, fb.Row(10)[4], uint8(0))

	// characters without a glyph are ignored
	fb.Clear(0)
	raster.PrintChar(fb, 0, 0, 0x0d, ink, 0x01)
	raster.PrintChar(fb, 0, 0, 200, ink, 0x01)
	test.ExpectEquality(t, len(set(fb, 0)), 16*16)

	// clipped at the edge of the surface
	raster.PrintChar(fb, 12, 12, '_', ink, 0x01)
	test.ExpectEquality(t, len(set(fb, 0x01)), 4*4)
}

func TestPrintString(t *testing.T) {
	fb := newSurface(t, 64, 8)
	raster.PrintString(fb, 0, 0, "____", ink, 0x01)
	test.ExpectEquality(t, len(set(fb, ink)), 32)
	test.ExpectEquality(t, len(set(fb, 0x01)), 32*7)
}
