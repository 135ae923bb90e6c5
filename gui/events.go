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

package gui

// KeyMod identifies the modifier key held down during a keyboard event.
type KeyMod int

// list of valid key modifiers
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// Event represents all the different type of events that can occur in the gui.
type Event interface{}

// EventQuit is sent when the gui window has been closed or the quit key has
// been pressed.
type EventQuit struct{}

// EventKeyboard is sent on a keypress. The Key field is the SDL name of the
// key.
type EventKeyboard struct {
	Key  string
	Mod  KeyMod
	Down bool
}

