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

// Package television rebuilds a picture from the output of the waveform
// generators, in the way that a real television would from the composite
// signal.
//
// The television knows nothing about the framebuffer or the dispatch engine.
// It finds the start of a frame by looking for the first line with a long
// sync pulse in its first half, and counts scanlines from there. Pixels are
// forwarded to any number of PixelRenderer implementations.
package television

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/jetsetilly/cvideo/hardware/generator"
	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/hardware/waveform"
	"github.com/jetsetilly/cvideo/logger"
)

// Margin is the number of border pixels shown on each side of the picture.
// The same number of border scanlines is shown above and below.
const Margin = 16

// the number of sync slots in the first half of a line that indicates a long
// sync pulse. a short pulse or a line sync has only two sync slots
const longPulseThreshold = waveform.SlotsPerLine / 4

// the first scanline that is forwarded to the renderers
const visibleTop = specification.ActiveTop - Margin

// Television is an implementation of the generator.Receiver interface.
type Television struct {
	board specification.Board

	crit      sync.Mutex
	renderers []PixelRenderer
	triggers  []FrameTrigger

	// the line currently being received
	started   bool
	syncFirst int
	border    uint8
	hasBorder bool
	picture   []uint8

	// true if the previous line started with a long sync pulse
	prevLong bool

	// synced is true once the first frame start has been seen
	synced   bool
	frameNum int
	scanline int

	// dimensions of the picture sent to the renderers. the width follows
	// the length of the picture data
	width  int
	height int

	// the most recent error returned by a renderer
	lastErr error
}

// NewTelevision is the preferred method of initialisation for the Television
// type. Colour indexes are converted with the board's palette.
func NewTelevision(board specification.Board) *Television {
	mode, _ := specification.GetMode(specification.DefaultMode)
	return &Television{
		board:  board,
		width:  mode.Width + Margin*2,
		height: specification.Height + Margin*2,
	}
}

func (tv *Television) String() string {
	return fmt.Sprintf("frame %d, scanline %d", tv.frameNum, tv.scanline)
}

// AddPixelRenderer registers an (additional) implementation of PixelRenderer.
func (tv *Television) AddPixelRenderer(r PixelRenderer) {
	tv.crit.Lock()
	defer tv.crit.Unlock()
	tv.renderers = append(tv.renderers, r)
	tv.check(r.Resize(tv.width, tv.height))
}

// AddFrameTrigger registers an (additional) implementation of FrameTrigger.
func (tv *Television) AddFrameTrigger(f FrameTrigger) {
	tv.crit.Lock()
	defer tv.crit.Unlock()
	tv.triggers = append(tv.triggers, f)
}

// End calls EndRendering() on every registered PixelRenderer. The television
// should not be used after End() has been called.
func (tv *Television) End() error {
	tv.crit.Lock()
	defer tv.crit.Unlock()

	var err error
	for _, r := range tv.renderers {
		if e := r.EndRendering(); e != nil && err == nil {
			err = fmt.Errorf("television: %w", e)
		}
	}
	tv.renderers = nil
	tv.triggers = nil

	return err
}

// FrameNum returns the number of frames seen by the television.
func (tv *Television) FrameNum() int {
	tv.crit.Lock()
	defer tv.crit.Unlock()
	return tv.frameNum
}

// Dimensions returns the size of the picture sent to the renderers.
func (tv *Television) Dimensions() (int, int) {
	tv.crit.Lock()
	defer tv.crit.Unlock()
	return tv.width, tv.height
}

// LastError returns the most recent error returned by a renderer.
func (tv *Television) LastError() error {
	tv.crit.Lock()
	defer tv.crit.Unlock()
	return tv.lastErr
}

// Signal implements the generator.Receiver interface.
func (tv *Television) Signal(sig generator.SignalAttributes) {
	if sig.Slot == 0 {
		if tv.started {
			tv.endLine()
		}
		tv.started = true
		tv.syncFirst = 0
		tv.hasBorder = false
		tv.picture = nil
	}

	if sig.Level == waveform.LevelSync && sig.Slot < waveform.SlotsPerLine/2 {
		tv.syncFirst++
	}

	if sig.Border {
		tv.border = sig.Colour
		tv.hasBorder = true
	}
}

// Picture implements the generator.Receiver interface.
func (tv *Television) Picture(pixels []uint8) {
	tv.picture = pixels
}

// check logs and records a renderer error. must be called with the critical
// section locked
func (tv *Television) check(err error) {
	if err == nil {
		return
	}
	if tv.lastErr == nil || tv.lastErr.Error() != err.Error() {
		logger.Logf(logger.Allow, "television", "renderer: %v", err)
	}
	tv.lastErr = err
}

// endLine is called at the start of a line to conclude the previous line
func (tv *Television) endLine() {
	tv.crit.Lock()
	defer tv.crit.Unlock()

	long := tv.syncFirst >= longPulseThreshold
	if long && !tv.prevLong {
		tv.synced = true
		tv.frameNum++
		tv.scanline = 1
		for _, r := range tv.renderers {
			tv.check(r.NewFrame(tv.frameNum))
		}
		for _, f := range tv.triggers {
			tv.check(f.NewFrame(tv.frameNum))
		}
	} else if tv.synced {
		tv.scanline++
	}
	tv.prevLong = long

	if !tv.synced {
		return
	}

	y := tv.scanline - visibleTop
	if y < 0 || y >= specification.Height+Margin*2 {
		return
	}

	if tv.picture != nil {
		w := len(tv.picture) + Margin*2
		if w != tv.width {
			tv.width = w
			for _, r := range tv.renderers {
				tv.check(r.Resize(tv.width, tv.height))
			}
		}
	}

	for _, r := range tv.renderers {
		tv.check(r.NewScanline(y))
	}

	bg := color.RGBA{A: 255}
	if tv.hasBorder {
		bg = tv.board.RGBA(tv.border)
	}

	for x := range tv.width {
		col := bg
		if tv.picture != nil {
			if px := x - Margin; px >= 0 && px < len(tv.picture) {
				col = tv.board.RGBA(tv.picture[px])
			}
		}
		for _, r := range tv.renderers {
			tv.check(r.SetPixel(x, y, col))
		}
	}
}
