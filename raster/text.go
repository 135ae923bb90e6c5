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

// Dimensions of the character set.
const (
	GlyphSize  = 8
	GlyphFirst = 32
	GlyphCount = 96
)

// Glyph returns the rows of the glyph for character ch. Returns false if
// there is no glyph for the character.
func Glyph(ch byte) ([]uint8, bool) {
	if ch < GlyphFirst || int(ch) >= GlyphFirst+GlyphCount {
		return nil, false
	}
	i := int(ch-GlyphFirst) * GlyphSize
	return glyphs[i : i+GlyphSize : i+GlyphSize], true
}

// PrintChar draws character ch with the top left corner at x, y. Set bits of
// the glyph are drawn in colour fg and clear bits in colour bg. Characters
// without a glyph are ignored.
func PrintChar(s Surface, x, y int, ch byte, fg, bg uint8) {
	g, ok := Glyph(ch)
	if !ok {
		return
	}
	for r, data := range g {
		for b := range GlyphSize {
			c := bg
			if data&(0x80>>b) != 0 {
				c = fg
			}
			Plot(s, x+b, y+r, c)
		}
	}
}

// PrintString draws the string from left to right starting at x, y. The
// string is treated as a sequence of bytes and there is no wrapping.
func PrintString(s Surface, x, y int, str string, fg, bg uint8) {
	for i := 0; i < len(str); i++ {
		PrintChar(s, x+i*GlyphSize, y, str[i], fg, bg)
	}
}
