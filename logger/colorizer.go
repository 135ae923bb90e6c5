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

package logger

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	tagStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6))
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(7))
)

// Colorizer applies basic coloring rules to logging output. Use it as the
// output for SetEcho() when the output is a terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface. Each line is expected to be in the
// "tag: detail" form of a log Entry. Lines not in that form are written
// unstyled.
func (c Colorizer) Write(p []byte) (n int, err error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		tag, detail, ok := strings.Cut(l, ": ")
		if ok {
			l = tagStyle.Render(tag) + ": " + detailStyle.Render(detail)
		}
		_, err = io.WriteString(c.out, l+"\n")
		if err != nil {
			return n, err
		}
	}
	return len(p), nil
}
