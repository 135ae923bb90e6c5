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

// Package demos contains the demonstration programs. The demonstrations draw
// with the raster package and pace themselves with the frame rate of the
// video signal.
package demos

import (
	"context"
	"fmt"
	"strings"

	"github.com/jetsetilly/cvideo/hardware/framebuffer"
	"github.com/jetsetilly/cvideo/hardware/specification"
)

// Video is the subset of the hardware.Video type used by the demos.
type Video interface {
	Board() specification.Board
	Framebuffer() *framebuffer.Framebuffer
	SetBorder(c int)
	SetModeContext(ctx context.Context, id specification.ModeID) error
	WaitForFrameContext(ctx context.Context) error
}

// Demo is a single demonstration program.
type Demo struct {
	Name string

	// the number of frames the demo runs for
	Frames int

	run func(ctx context.Context, vid Video, frames int) error
}

func (d Demo) String() string {
	return fmt.Sprintf("%s (%d frames)", d.Name, d.Frames)
}

// Run the demo. Returns the context's error if the context is done before the
// demo completes.
func (d Demo) Run(ctx context.Context, vid Video) error {
	return d.run(ctx, vid, d.Frames)
}

// List of demos in the order they are run by Sequence().
var List = []Demo{
	{Name: "splash", Frames: 500, run: Splash},
	{Name: "cube", Frames: 1000, run: Cube},
	{Name: "bars", Frames: 250, run: ColourBars},
	{Name: "mandelbrot", Frames: 500, run: Mandelbrot},
	{Name: "circles", Frames: 250, run: Circles},
	{Name: "pattern", Frames: 250, run: Pattern},
}

// Names returns the names of all demos.
func Names() []string {
	n := make([]string, len(List))
	for i, d := range List {
		n[i] = d.Name
	}
	return n
}

// Get returns the named demo. The name is case insensitive.
func Get(name string) (Demo, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range List {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

// Sequence runs the demos one after the other, starting again from the first
// demo after the last, until the context is done.
func Sequence(ctx context.Context, vid Video, demos ...Demo) error {
	if len(demos) == 0 {
		return fmt.Errorf("demos: empty sequence")
	}
	for {
		for _, d := range demos {
			if err := d.Run(ctx, vid); err != nil {
				return err
			}
		}
	}
}

// hold waits for the number of frames
func hold(ctx context.Context, vid Video, frames int) error {
	for range frames {
		if err := vid.WaitForFrameContext(ctx); err != nil {
			return err
		}
	}
	return nil
}
