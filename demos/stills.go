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
	"sort"
	"strings"

	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/raster"
)

// Still draws a single picture that does not depend on timing. Stills are
// used to produce repeatable output.
type Still func(s raster.Surface, board specification.Board)

var stills = map[string]Still{
	"mandelbrot": func(s raster.Surface, board specification.Board) {
		raster.Clear(s, board.Colours.Black)
		RenderMandelbrot(s, board)
	},
	"cube": func(s raster.Surface, board specification.Board) {
		raster.Clear(s, board.Colours.White)
		raster.Circle(s, cubeCentreX, cubeCentreY, 80, board.Colours.Grey, true)
		RenderCube(s, board, 0.6, 0.4, 0.2, true)
	},
	"pattern": func(s raster.Surface, board specification.Board) {
		raster.Clear(s, board.Colours.Black)
		x := (s.Width() - patternWidth) / 2
		y := (s.Height() - patternHeight) / 2
		raster.Blit(s, x, y, patternWidth, patternHeight, PatternBitmap(board.PaletteSize))
	},
}

// GetStill returns the named still. The name is case insensitive.
func GetStill(name string) (Still, bool) {
	s, ok := stills[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// StillNames returns the names of all stills in alphabetical order.
func StillNames() []string {
	n := make([]string, 0, len(stills))
	for k := range stills {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}
