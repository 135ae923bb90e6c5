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

// Package dispatch is the scanline dispatch engine. Once per scanline the
// Handler() selects the waveform table for the next line and hands it to the
// sync transfer channel.
//
// Handler() runs in interrupt context and must complete well within one
// scanline. It never allocates, blocks or logs.
package dispatch

import (
	"fmt"
	"sync/atomic"

	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/hardware/transfer"
	"github.com/jetsetilly/cvideo/hardware/waveform"
)

// Selection is the waveform table selected for a scanline.
type Selection int

// List of valid Selection values.
const (
	LongLong Selection = iota
	LongShort
	ShortShort
	Border
	Active
	numSelections
)

func (sel Selection) String() string {
	switch sel {
	case LongLong:
		return "long/long"
	case LongShort:
		return "long/short"
	case ShortShort:
		return "short/short"
	case Border:
		return "border"
	case Active:
		return "active"
	}
	return fmt.Sprintf("selection(%d)", int(sel))
}

// Classify returns the selection for the scanline. The picture is
// specification.Height lines starting at specification.ActiveTop.
//
// Scanlines outside of the range 1 to specification.ScanlinesTotal are
// classified as ShortShort.
func Classify(vline int) Selection {
	switch {
	case vline >= 1 && vline <= 2:
		return LongLong
	case vline == 3:
		return LongShort
	case vline >= 4 && vline <= 5:
		return ShortShort
	case vline >= 6 && vline < specification.ActiveTop:
		return Border
	case vline >= specification.ActiveTop && vline < specification.ActiveTop+specification.Height:
		return Active
	case vline >= specification.ActiveTop+specification.Height && vline <= specification.BorderBottom:
		return Border
	}
	return ShortShort
}

// Stats is a count of the lines dispatched for each selection.
type Stats [numSelections]uint64

func (s Stats) String() string {
	return fmt.Sprintf("ll=%d ls=%d ss=%d border=%d active=%d",
		s[LongLong], s[LongShort], s[ShortShort], s[Border], s[Active])
}

// Engine is the scanline dispatch engine.
type Engine struct {
	ch     transfer.Channel[waveform.Code]
	tables *waveform.Tables

	// pre-selected slices of the waveform tables, indexed by Selection. the
	// handler only needs to index this array
	lines [numSelections][]waveform.Code

	// the scanline that will be dispatched by the next call to Handler()
	vline atomic.Uint32

	// the number of times vline has wrapped
	frames atomic.Uint32

	stats [numSelections]atomic.Uint64

	// called from Handler() when vline wraps
	frame func()
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine(ch transfer.Channel[waveform.Code], tables *waveform.Tables) *Engine {
	eng := &Engine{
		ch:     ch,
		tables: tables,
	}
	eng.lines[LongLong] = tables.LongLong[:]
	eng.lines[LongShort] = tables.LongShort[:]
	eng.lines[ShortShort] = tables.ShortShort[:]
	eng.lines[Border] = tables.Border[:]
	eng.lines[Active] = tables.Active[:]
	eng.vline.Store(1)
	return eng
}

// Arm installs the handler on the channel and performs the first dispatch.
// From then on the handler is called by the completion interrupt.
func (eng *Engine) Arm() {
	eng.ch.OnComplete(eng.Handler)
	eng.Handler()
}

// OnFrame sets the function called by Handler() at the frame boundary, after
// the last scanline of the frame has been dispatched and before the frame
// counter is incremented. The function runs in interrupt context.
//
// Must be called before Arm().
func (eng *Engine) OnFrame(f func()) {
	eng.frame = f
}

// Handler is the completion interrupt handler of the sync channel.
func (eng *Engine) Handler() {
	vline := eng.vline.Load()

	sel := Classify(int(vline))
	eng.ch.Start(eng.lines[sel], waveform.SlotsPerLine)
	eng.stats[sel].Add(1)

	vline++
	if vline > specification.ScanlinesTotal {
		vline = 1
		if eng.frame != nil {
			eng.frame()
		}
		eng.frames.Add(1)
	}
	eng.vline.Store(vline)

	eng.ch.Acknowledge()
}

// VLine returns the scanline that will be dispatched next. The value is
// always in the range 1 to specification.ScanlinesTotal.
func (eng *Engine) VLine() int {
	return int(eng.vline.Load())
}

// Frames returns the number of completed frames. The value wraps at 2^32.
func (eng *Engine) Frames() uint32 {
	return eng.frames.Load()
}

// Stats returns a count of the lines dispatched for each selection.
func (eng *Engine) Stats() Stats {
	var s Stats
	for i := range eng.stats {
		s[i] = eng.stats[i].Load()
	}
	return s
}
