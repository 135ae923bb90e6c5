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

package generator_test

import (
	"testing"

	"github.com/jetsetilly/cvideo/hardware/generator"
	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/hardware/waveform"
	"github.com/jetsetilly/cvideo/test"
)

type recorder struct {
	signals []generator.SignalAttributes
	rows    [][]uint8

	// the slot of the most recent signal when Picture() was called
	pictureSlot int
}

func (r *recorder) Signal(sig generator.SignalAttributes) {
	r.signals = append(r.signals, sig)
}

func (r *recorder) Picture(pixels []uint8) {
	r.pictureSlot = r.signals[len(r.signals)-1].Slot
	r.rows = append(r.rows, append([]uint8{}, pixels...))
}

func TestSyncLine(t *testing.T) {
	enc := specification.Monochrome.Encoding
	tbl := waveform.NewTables(enc, waveform.DefaultGap)
	tbl.SetBorder(3)

	rec := &recorder{}
	syn := generator.NewSync(enc)
	syn.SetReceiver(rec)
	pic := generator.NewPicture()
	pic.SetReceiver(rec)

	row := []uint8{1, 2, 3, 4}
	var gates int
	syn.Line(tbl.Active[:], func() {
		gates++
		pic.Row(row)
	})

	test.ExpectEquality(t, gates, 1)
	test.ExpectEquality(t, syn.Gaps(), uint64(1))
	test.ExpectEquality(t, pic.Pixels(), uint64(4))
	test.DemandEquality(t, len(rec.signals), waveform.SlotsPerLine)
	test.DemandEquality(t, len(rec.rows), 1)
	test.ExpectEquality(t, rec.pictureSlot, waveform.DefaultGap.Start)

	test.ExpectEquality(t, rec.signals[0].Level, waveform.LevelSync)
	test.ExpectEquality(t, rec.signals[2].Level, waveform.LevelBlack)
	test.ExpectEquality(t, rec.signals[3].Level, waveform.LevelColour)
	test.ExpectEquality(t, rec.signals[3].Colour, uint8(3))
	test.ExpectSuccess(t, rec.signals[3].Border)
	test.ExpectEquality(t, rec.signals[3].String(), "03 colour 3 BORDER")
	test.ExpectEquality(t, rec.signals[10].Level, waveform.LevelPassThrough)

	// border line has no gap
	syn.Line(tbl.Border[:], func() {
		gates++
	})
	test.ExpectEquality(t, gates, 1)
}

func TestClockDivisor(t *testing.T) {
	pic := generator.NewPicture()
	test.ExpectEquality(t, pic.ClockDivisor(), 1.0)
	pic.SetClockDivisor(25.390625)
	test.ExpectEquality(t, pic.ClockDivisor(), 25.390625)
}
