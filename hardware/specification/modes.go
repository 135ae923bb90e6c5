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
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/cvideo/hardware/waveform"
)

// ModeID identifies a display mode preset.
type ModeID int

// List of valid ModeID values.
const (
	Mode256 ModeID = iota
	Mode320
	Mode640
)

// DefaultMode is the mode selected on initialisation and when an unknown
// mode is requested.
const DefaultMode = Mode256

// Mode is a display mode preset.
type Mode struct {
	ID     ModeID
	Width  int
	Height int

	// divisor applied to SysClock to produce the picture generator clock. the
	// picture clock is such that Width pixels occupy the pass-through gap
	ClockDivisor float64
}

func (m Mode) String() string {
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

// PictureClock returns the frequency of the picture generator in Hz.
func (m Mode) PictureClock() float64 {
	return SysClock / m.ClockDivisor
}

// the list of mode presets in ModeID order
var modes []Mode

func newMode(id ModeID, width int) Mode {
	gap := GapDuration(waveform.DefaultGap).Seconds()
	clk := float64(width) / gap
	return Mode{
		ID:           id,
		Width:        width,
		Height:       Height,
		ClockDivisor: SysClock / clk,
	}
}

func init() {
	modes = []Mode{
		newMode(Mode256, 256),
		newMode(Mode320, 320),
		newMode(Mode640, 640),
	}
}

// Modes returns a copy of the list of mode presets.
func Modes() []Mode {
	m := make([]Mode, len(modes))
	copy(m, modes)
	return m
}

// GetMode returns the preset for the ModeID. Unknown IDs return the default
// mode and false.
func GetMode(id ModeID) (Mode, bool) {
	if id < 0 || int(id) >= len(modes) {
		return modes[DefaultMode], false
	}
	return modes[id], true
}

// SearchMode looks for a mode by its width ("320") or by its dimensions
// ("320x256"). Returns the default mode and false if no mode matches.
func SearchMode(s string) (Mode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	w, _, _ := strings.Cut(s, "x")
	width, err := strconv.Atoi(w)
	if err == nil {
		for _, m := range modes {
			if m.Width == width {
				return m, true
			}
		}
	}
	return modes[DefaultMode], false
}
