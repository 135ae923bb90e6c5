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

package dispatch_test

import (
	"testing"

	"github.com/jetsetilly/cvideo/hardware/dispatch"
	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/hardware/transfer"
	"github.com/jetsetilly/cvideo/hardware/waveform"
	"github.com/jetsetilly/cvideo/test"
)

// channel records the most recent transfer
type channel struct {
	src     []waveform.Code
	count   int
	starts  int
	acks    int
	handler func()
}

func (ch *channel) Configure(transfer.Config) {}
func (ch *channel) SetCount(int) {}
func (ch *channel) OnComplete(f func()) { ch.handler = f }
func (ch *channel) Acknowledge() { ch.acks++ }

func (ch *channel) Start(src []waveform.Code, count int) {
	ch.src = src
	ch.count = count
	ch.starts++
}

func TestClassify(t *testing.T) {
	expected := func(vline int) dispatch.Selection {
		switch {
		case vline <= 2:
			return dispatch.LongLong
		case vline == 3:
			return dispatch.LongShort
		case vline <= 5:
			return dispatch.ShortShort
		case vline <= 36:
			return dispatch.Border
		case vline <= 292:
			return dispatch.Active
		case vline <= 309:
			return dispatch.Border
		}
		return dispatch.ShortShort
	}

	var active int
	for vline := 1; vline <= specification.ScanlinesTotal; vline++ {
		sel := dispatch.Classify(vline)
		test.ExpectEquality(t, sel, expected(vline), vline)
		if sel == dispatch.Active {
			active++
		}
	}
	test.ExpectEquality(t, active, specification.Height)

	// out of range scanlines
	test.ExpectEquality(t, dispatch.Classify(0), dispatch.ShortShort)
	test.ExpectEquality(t, dispatch.Classify(313), dispatch.ShortShort)
}

func TestHandler(t *testing.T) {
	tbl := waveform.NewTables(specification.Monochrome.Encoding, waveform.DefaultGap)
	ch := &channel{}
	eng := dispatch.NewEngine(ch, tbl)

	test.ExpectEquality(t, eng.VLine(), 1)
	test.ExpectEquality(t, eng.Frames(), uint32(0))

	eng.Arm()
	test.ExpectSuccess(t, ch.handler != nil)
	test.ExpectEquality(t, ch.starts, 1)
	test.ExpectEquality(t, ch.acks, 1)
	test.ExpectEquality(t, ch.count, waveform.SlotsPerLine)
	test.ExpectSuccess(t, &ch.src[0] == &tbl.LongLong[0])
	test.ExpectEquality(t, eng.VLine(), 2)

	// the remaining 311 dispatches of the frame
	for vline := 2; vline <= specification.ScanlinesTotal; vline++ {
		ch.handler()
		switch dispatch.Classify(vline) {
		case dispatch.Active:
			test.ExpectSuccess(t, &ch.src[0] == &tbl.Active[0], vline)
		case dispatch.Border:
			test.ExpectSuccess(t, &ch.src[0] == &tbl.Border[0], vline)
		}
	}

	// after 312 dispatches the engine is back at line 1 and exactly one frame
	// has completed
	test.ExpectEquality(t, eng.VLine(), 1)
	test.ExpectEquality(t, eng.Frames(), uint32(1))
	test.ExpectEquality(t, ch.acks, specification.ScanlinesTotal)

	stats := eng.Stats()
	test.ExpectEquality(t, stats[dispatch.LongLong], uint64(2))
	test.ExpectEquality(t, stats[dispatch.LongShort], uint64(1))
	test.ExpectEquality(t, stats[dispatch.ShortShort], uint64(5))
	test.ExpectEquality(t, stats[dispatch.Border], uint64(48))
	test.ExpectEquality(t, stats[dispatch.Active], uint64(256))

	// first line of the next frame
	ch.handler()
	test.ExpectSuccess(t, &ch.src[0] == &tbl.LongLong[0])
	test.ExpectEquality(t, eng.VLine(), 2)
}

func TestWithEngine(t *testing.T) {
	enc := specification.Monochrome.Encoding
	tbl := waveform.NewTables(enc, waveform.DefaultGap)

	hw := transfer.NewEngine(enc)
	eng := dispatch.NewEngine(hw.SyncChannel(), tbl)
	eng.Arm()

	hw.Frame()
	test.ExpectEquality(t, eng.Frames(), uint32(1))
	test.ExpectEquality(t, eng.VLine(), 2)
	test.ExpectEquality(t, hw.Spurious(), uint32(0))
	test.ExpectEquality(t, hw.Idle(), uint64(0))
}

func TestOnFrame(t *testing.T) {
	tbl := waveform.NewTables(specification.Monochrome.Encoding, waveform.DefaultGap)
	ch := &channel{}
	eng := dispatch.NewEngine(ch, tbl)

	// the hook sees the last line of the frame dispatched and the frame
	// counter not yet incremented
	var calls int
	eng.OnFrame(func() {
		calls++
		test.ExpectEquality(t, eng.Frames(), uint32(calls-1))
		test.ExpectSuccess(t, &ch.src[0] == &tbl.ShortShort[0])
	})
	eng.Arm()

	for range specification.ScanlinesTotal*2 - 1 {
		ch.handler()
	}
	test.ExpectEquality(t, calls, 2)
	test.ExpectEquality(t, eng.Frames(), uint32(2))
	test.ExpectEquality(t, eng.VLine(), 1)
}
