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

package main

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/paths"
	"github.com/jetsetilly/cvideo/prefs"
	"github.com/jetsetilly/cvideo/terminal"
)

// preferences for the video hardware and the windows that show it.
type preferences struct {
	dsk *prefs.Disk

	Board  prefs.String
	Mode   prefs.String
	Border prefs.Int
	FPSCap prefs.Bool
	Scale  prefs.Float
	Baud   prefs.Int
}

func (p *preferences) String() string {
	return p.dsk.String()
}

// newPreferences is the preferred method of initialisation for the preferences
// type. Values are loaded from the file at path. The empty string selects the
// default preferences file.
func newPreferences(path string) (*preferences, error) {
	p := &preferences{}
	p.SetDefaults()

	p.Board.SetHookPre(func(v prefs.Value) error {
		if _, ok := specification.GetBoard(v.(string)); !ok {
			return fmt.Errorf("unknown board: %s", v)
		}
		return nil
	})
	p.Mode.SetHookPre(func(v prefs.Value) error {
		if _, ok := specification.SearchMode(v.(string)); !ok {
			return fmt.Errorf("unknown mode: %s", v)
		}
		return nil
	})
	p.Scale.SetHookPre(func(v prefs.Value) error {
		if s := v.(float64); s < 1.0 || s > 4.0 {
			return fmt.Errorf("scale out of range: %.1f", s)
		}
		return nil
	})
	p.Baud.SetHookPre(func(v prefs.Value) error {
		if b := v.(int); b <= 0 {
			return fmt.Errorf("illegal baud rate: %d", b)
		}
		return nil
	})

	if path == "" {
		path = paths.ResourcePath("", prefs.DefaultPrefsFile)
	}

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		p   prefValue
	}{
		{"video.board", &p.Board},
		{"video.mode", &p.Mode},
		{"video.border", &p.Border},
		{"video.fpscap", &p.FPSCap},
		{"sdl.scale", &p.Scale},
		{"terminal.baud", &p.Baud},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load()
	if err != nil && !errors.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// the methods shared by the prefs types
type prefValue interface {
	fmt.Stringer
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
}

// SetDefaults reverts all preferences to their default values.
func (p *preferences) SetDefaults() {
	_ = p.Board.Set(specification.MonochromeID)
	_ = p.Mode.Set(specification.Modes()[specification.DefaultMode].String())
	_ = p.Border.Set(0)
	_ = p.FPSCap.Set(true)
	_ = p.Scale.Set(2.0)
	_ = p.Baud.Set(terminal.DefaultBaud)
}

// Save preferences to disk.
func (p *preferences) Save() error {
	return p.dsk.Save()
}

// board returns the board selected by the preferences.
func (p *preferences) board() specification.Board {
	b, _ := specification.GetBoard(p.Board.String())
	return b
}

// mode returns the mode selected by the preferences.
func (p *preferences) mode() specification.Mode {
	m, _ := specification.SearchMode(p.Mode.String())
	return m
}
