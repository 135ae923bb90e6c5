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

package specification

import (
	"image/color"
	"strings"

	"github.com/jetsetilly/cvideo/hardware/waveform"
)

// Colours is the set of named colours used by the demo programs.
type Colours struct {
	Black   uint8
	Grey    uint8
	White   uint8
	Red     uint8
	Green   uint8
	Blue    uint8
	Yellow  uint8
	Magenta uint8
	Cyan    uint8
}

// TerminalColours is the colour scheme for the terminal program.
type TerminalColours struct {
	Background uint8
	Foreground uint8
	Border     uint8
	Cursor     uint8
}

// Board describes a video output board. The board is chosen at startup.
type Board struct {
	ID string

	// the number of colour indexes. colour indexes outside of the range are
	// rejected by SetBorder()
	PaletteSize int

	// the number of output pins driven by the generators
	Pins int

	Encoding waveform.Encoding

	// colour index to RGB for renderers
	Palette []color.RGBA

	Colours  Colours
	Terminal TerminalColours
}

// the ID values of the supported boards
const (
	MonochromeID = "mono"
	ColourID     = "colour"
)

// BoardList is the list of supported board IDs.
var BoardList = []string{MonochromeID, ColourID}

// Monochrome is the 16 level greyscale board.
var Monochrome Board

// Colour is the 256 colour (RGB332) board.
var Colour Board

// RGB returns the colour index for the colour board from 3 bit red, green and
// blue components. The blue component is reduced to 2 bits.
func RGB(r, g, b uint8) uint8 {
	return (r&0x07)<<5 | (g&0x07)<<2 | (b&0x07)>>1
}

// brightness expands a component of n bits to 8 bits
func brightness(v uint8, bits int) uint8 {
	mx := uint8(1<<bits) - 1
	return uint8(int(v&mx) * 255 / int(mx))
}

func init() {
	Monochrome = Board{
		ID:          MonochromeID,
		PaletteSize: 16,
		Pins:        5,
		Encoding: waveform.Encoding{
			Sync:        0x00,
			Black:       0x0c,
			ColourBase:  0x10,
			BorderFlag:  0x100,
			PassThrough: 0xffffffff,
		},

		// colours are defined by their monochrome brightness according to
		// Y = 0.21R + 0.71G + 0.072B
		Colours: Colours{
			Black: 0x00,
			Grey:  0x0c,
			White: 0x0f,
			Red:   3,
			Green: 11,
			Blue:  1,
		},
		Terminal: TerminalColours{
			Background: 15,
			Foreground: 0,
			Border:     7,
			Cursor:     0,
		},
	}
	Monochrome.Colours.Yellow = Monochrome.Colours.Red + Monochrome.Colours.Green
	Monochrome.Colours.Magenta = Monochrome.Colours.Red + Monochrome.Colours.Blue
	Monochrome.Colours.Cyan = Monochrome.Colours.Blue + Monochrome.Colours.Green

	Monochrome.Palette = make([]color.RGBA, Monochrome.PaletteSize)
	for i := range Monochrome.Palette {
		v := brightness(uint8(i), 4)
		Monochrome.Palette[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}

	Colour = Board{
		ID:          ColourID,
		PaletteSize: 256,
		Pins:        9,
		Encoding: waveform.Encoding{
			Sync:        0x000,
			Black:       0x100,
			ColourBase:  0x100,
			BorderFlag:  0x1000,
			PassThrough: 0xffffffff,
		},
		Colours: Colours{
			Black:   RGB(0, 0, 0),
			Grey:    RGB(6, 6, 6),
			White:   RGB(7, 7, 7),
			Red:     RGB(7, 0, 0),
			Green:   RGB(0, 7, 0),
			Blue:    RGB(0, 0, 7),
			Yellow:  RGB(7, 7, 0),
			Magenta: RGB(7, 0, 7),
			Cyan:    RGB(0, 7, 7),
		},
		Terminal: TerminalColours{
			Background: RGB(0, 0, 0),
			Foreground: RGB(7, 7, 0),
			Border:     RGB(0, 0, 2),
			Cursor:     RGB(7, 7, 7),
		},
	}

	Colour.Palette = make([]color.RGBA, Colour.PaletteSize)
	for i := range Colour.Palette {
		c := uint8(i)
		Colour.Palette[i] = color.RGBA{
			R: brightness(c>>5, 3),
			G: brightness(c>>2, 3),
			B: brightness(c, 2),
			A: 255,
		}
	}
}

// GetBoard returns the board for the ID. The ID is case insensitive. The
// monochrome board is returned if the ID is not recognised.
func GetBoard(id string) (Board, bool) {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case MonochromeID, "monochrome":
		return Monochrome, true
	case ColourID, "color":
		return Colour, true
	}
	return Monochrome, false
}

// ValidColour returns true if the colour index is valid for the board.
func (b Board) ValidColour(c int) bool {
	return c >= 0 && c < b.PaletteSize
}

// RGBA returns the display colour for the colour index.
func (b Board) RGBA(c uint8) color.RGBA {
	if int(c) >= len(b.Palette) {
		return color.RGBA{A: 255}
	}
	return b.Palette[c]
}
