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

package generator

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/cvideo/hardware/waveform"
)

// SignalAttributes describe the output of the sync generator for one slot.
type SignalAttributes struct {
	Slot   int
	Level  waveform.Level
	Colour uint8
	Border bool
}

func (a SignalAttributes) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%02d %s", a.Slot, a.Level))
	if a.Level == waveform.LevelColour {
		s.WriteString(fmt.Sprintf(" %d", a.Colour))
	}
	if a.Border {
		s.WriteString(" BORDER")
	}
	return s.String()
}

// Receiver implementations accept the output of the generators.
type Receiver interface {
	// Signal is called for every slot of every scanline
	Signal(SignalAttributes)

	// Picture is called when the picture generator clocks out a row. it is
	// called after the Signal() for the first pass-through slot of the gap.
	// the slice must not be retained
	Picture(pixels []uint8)
}
