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

package waveform

import (
	"fmt"
	"sync/atomic"
)

// Code is a single generator word. It describes the output level for one
// slot of a scanline.
type Code uint32

// Load returns the code at the address using an atomic load. Codes in the
// border and active tables can change while they are being read.
func Load(c *Code) Code {
	return Code(atomic.LoadUint32((*uint32)(c)))
}

// store the code at the address using an atomic store
func store(c *Code, v Code) {
	atomic.StoreUint32((*uint32)(c), uint32(v))
}

// Encoding describes how levels map onto generator codes for a board.
type Encoding struct {
	// the sync tip level
	Sync Code

	// the blanking level
	Black Code

	// colour index c is encoded as ColourBase+c
	ColourBase Code

	// added to colour codes that are part of the border. SetBorder() only
	// rewrites codes with this flag
	BorderFlag Code

	// the sentinel value that cedes the output to the picture generator
	PassThrough Code
}

// Colour returns the code for the colour index.
func (e Encoding) Colour(c uint8) Code {
	return e.ColourBase + Code(c)
}

// Border returns the border flagged code for the colour index.
func (e Encoding) Border(c uint8) Code {
	return e.Colour(c) | e.BorderFlag
}

// IsBorder returns true if the code is flagged as border.
func (e Encoding) IsBorder(c Code) bool {
	return c != e.PassThrough && c&e.BorderFlag == e.BorderFlag
}

// Level is the decoded meaning of a Code.
type Level int

// List of valid Level values.
const (
	LevelSync Level = iota
	LevelBlack
	LevelColour
	LevelPassThrough
)

func (l Level) String() string {
	switch l {
	case LevelSync:
		return "sync"
	case LevelBlack:
		return "black"
	case LevelColour:
		return "colour"
	case LevelPassThrough:
		return "pass-through"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Decode a code into its level and, for LevelColour, the colour index. The
// second return value is true if the code is flagged as border.
func (e Encoding) Decode(c Code) (Level, uint8, bool) {
	if c == e.PassThrough {
		return LevelPassThrough, 0, false
	}

	border := e.IsBorder(c)
	if border {
		c &^= e.BorderFlag
	}

	// on some boards the black level is the same as colour zero. black is
	// preferred in that case
	switch {
	case c == e.Sync:
		return LevelSync, 0, border
	case c == e.Black:
		return LevelBlack, 0, border
	case c >= e.ColourBase:
		return LevelColour, uint8(c - e.ColourBase), border
	}

	return LevelBlack, 0, border
}
