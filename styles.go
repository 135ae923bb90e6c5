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
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	mode    lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	err     lipgloss.Style
	warning lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White

func newStyles() styles {
	return styles{
		mode:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)),
		label:   lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)),
		value:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		err:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(1)),
	}
}

// field renders a label and value pair
func (s styles) field(label string, value any) string {
	return s.label.Render(label+":") + " " + s.value.Render(fmt.Sprint(value))
}
