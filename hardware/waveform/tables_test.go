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

package waveform_test

import (
	"testing"

	"github.com/jetsetilly/cvideo/hardware/waveform"
	"github.com/jetsetilly/cvideo/test"
)

var enc = waveform.Encoding{
	Sync:        0x00,
	Black:       0x0c,
	ColourBase:  0x10,
	BorderFlag:  0x100,
	PassThrough: 0xffffffff,
}

func count(tbl *waveform.Table, c waveform.Code) int {
	var n int
	for _, v := range tbl {
		if v == c {
			n++
		}
	}
	return n
}

func TestVSyncTables(t *testing.T) {
	tbl := waveform.NewTables(enc, waveform.DefaultGap)

	// long pulse: 14 slots of sync, 2 slots of black in each half-line
	for i := range 16 {
		expect := enc.Sync
		if i >= 14 {
			expect = enc.Black
		}
		test.ExpectEquality(t, tbl.LongLong[i], expect, "long/long first half", i)
		test.ExpectEquality(t, tbl.LongLong[i+16], expect, "long/long second half", i)
		test.ExpectEquality(t, tbl.LongShort[i], expect, "long/short first half", i)
	}

	// short pulse: 2 slots of sync, 14 slots of black in each half-line
	for i := range 16 {
		expect := enc.Black
		if i <= 1 {
			expect = enc.Sync
		}
		test.ExpectEquality(t, tbl.LongShort[i+16], expect, "long/short second half", i)
		test.ExpectEquality(t, tbl.ShortShort[i], expect, "short/short first half", i)
		test.ExpectEquality(t, tbl.ShortShort[i+16], expect, "short/short second half", i)
	}
}

func TestBorderAndActiveTables(t *testing.T) {
	tbl := waveform.NewTables(enc, waveform.DefaultGap)

	test.ExpectEquality(t, count(&tbl.Border, enc.Sync), 2)
	test.ExpectEquality(t, count(&tbl.Border, enc.Black), 1)
	test.ExpectEquality(t, count(&tbl.Border, enc.Border(0)), 29)
	test.ExpectEquality(t, count(&tbl.Border, enc.PassThrough), 0)

	test.ExpectEquality(t, count(&tbl.Active, enc.PassThrough), waveform.DefaultGap.Length)
	for i := range tbl.Active {
		inGap := i >= waveform.DefaultGap.Start && i < waveform.DefaultGap.Start+waveform.DefaultGap.Length
		if inGap {
			test.ExpectEquality(t, tbl.Active[i], enc.PassThrough, i)
		} else {
			test.ExpectEquality(t, tbl.Active[i], tbl.Border[i], i)
		}
	}
}

func TestGapClamping(t *testing.T) {
	tbl := waveform.NewTables(enc, waveform.Gap{Start: 0, Length: 100})
	test.ExpectEquality(t, tbl.Gap().Start, 3)
	test.ExpectEquality(t, tbl.Gap().Length, waveform.SlotsPerLine-3)
	test.ExpectEquality(t, tbl.Active[0], enc.Sync)
	test.ExpectEquality(t, tbl.Active[waveform.SlotsPerLine-1], enc.PassThrough)
}

func TestSetBorder(t *testing.T) {
	tbl := waveform.NewTables(enc, waveform.DefaultGap)
	longLong := tbl.LongLong

	tbl.SetBorder(7)

	for i := range tbl.Border {
		lvl, c, border := enc.Decode(tbl.Border[i])
		if border {
			test.ExpectEquality(t, lvl, waveform.LevelColour)
			test.ExpectEquality(t, c, uint8(7))
		}
	}
	test.ExpectEquality(t, count(&tbl.Border, enc.Border(7)), 29)
	test.ExpectEquality(t, count(&tbl.Active, enc.Border(7)), 29-waveform.DefaultGap.Length)
	test.ExpectEquality(t, count(&tbl.Active, enc.PassThrough), waveform.DefaultGap.Length)

	// vsync tables are never changed
	test.ExpectEquality(t, tbl.LongLong, longLong)
}

func TestDecode(t *testing.T) {
	lvl, _, border := enc.Decode(enc.Sync)
	test.ExpectEquality(t, lvl, waveform.LevelSync)
	test.ExpectFailure(t, border)

	lvl, _, _ = enc.Decode(enc.Black)
	test.ExpectEquality(t, lvl, waveform.LevelBlack)

	lvl, c, border := enc.Decode(enc.Border(12))
	test.ExpectEquality(t, lvl, waveform.LevelColour)
	test.ExpectEquality(t, c, uint8(12))
	test.ExpectSuccess(t, border)

	lvl, _, border = enc.Decode(enc.PassThrough)
	test.ExpectEquality(t, lvl, waveform.LevelPassThrough)
	test.ExpectFailure(t, border)
	test.ExpectFailure(t, enc.IsBorder(enc.PassThrough))
}
