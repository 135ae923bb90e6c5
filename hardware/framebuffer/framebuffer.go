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

// Package framebuffer contains the pixel buffer read by the picture feeder and
// written by the raster package, and the Handle type that allows the buffer to
// be replaced safely while the feeder is running.
package framebuffer

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Sentinel errors returned by New().
var (
	ErrDimensions = errors.New("framebuffer: illegal dimensions")
)

// Framebuffer is a rectangular buffer of colour indexes, one byte per pixel.
type Framebuffer struct {
	width  int
	height int
	pixels []uint8
}

// New is the preferred method of initialisation for the Framebuffer type.
func New(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]uint8, width*height),
	}, nil
}

func (fb *Framebuffer) String() string {
	return fmt.Sprintf("%dx%d", fb.width, fb.height)
}

// Width of framebuffer in pixels.
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height of framebuffer in pixels.
func (fb *Framebuffer) Height() int {
	return fb.height
}

// Row returns the pixels of row y. The returned slice shares memory with the
// framebuffer. Returns nil if y is out of range.
func (fb *Framebuffer) Row(y int) []uint8 {
	if y < 0 || y >= fb.height {
		return nil
	}
	return fb.pixels[y*fb.width : (y+1)*fb.width : (y+1)*fb.width]
}

// Pixels returns the entire pixel buffer in row order.
func (fb *Framebuffer) Pixels() []uint8 {
	return fb.pixels
}

// Clear sets every pixel to the colour index.
func (fb *Framebuffer) Clear(c uint8) {
	for i := range fb.pixels {
		fb.pixels[i] = c
	}
}

// Handle holds the current framebuffer and a pending replacement.
//
// The current framebuffer is read by the feeder from interrupt context. The
// pending framebuffer is staged by the foreground and installed with Swap()
// at a frame boundary, which happens in interrupt context.
type Handle struct {
	current atomic.Pointer[Framebuffer]
	pending atomic.Pointer[Framebuffer]
}

// Current returns the framebuffer currently in use. Returns nil if no
// framebuffer has been installed.
func (h *Handle) Current() *Framebuffer {
	return h.current.Load()
}

// Stage a framebuffer to be installed on the next call to Swap().
func (h *Handle) Stage(fb *Framebuffer) {
	h.pending.Store(fb)
}

// Swap installs the pending framebuffer and returns the framebuffer that it
// replaced. The returned framebuffer should be released by the caller. If
// there is no pending framebuffer then Swap() does nothing and returns nil.
func (h *Handle) Swap() *Framebuffer {
	fb := h.pending.Swap(nil)
	if fb == nil {
		return nil
	}
	return h.current.Swap(fb)
}
