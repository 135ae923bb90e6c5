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

package waveform

// SlotsPerLine is the number of codes in a Table.
const SlotsPerLine = 32

// Table is the sequence of codes for one scanline.
type Table [SlotsPerLine]Code

// Gap describes the position of the pass-through gap in the active table.
type Gap struct {
	Start  int
	Length int
}

// DefaultGap is the pass-through gap for a PAL line: 52µs of picture.
var DefaultGap = Gap{Start: 5, Length: 26}

// the number of sync slots at the start of a border or active line and the
// number of black slots (back porch) that follow them
const (
	hsyncSlots     = 2
	backPorchSlots = 1
)

// Tables is the set of waveform tables for a board.
type Tables struct {
	LongLong   Table
	LongShort  Table
	ShortShort Table
	Border     Table
	Active     Table

	enc Encoding
	gap Gap
}

// NewTables builds the waveform tables for the encoding. The border colour is
// initially colour zero. Gap values outside of the scanline are clamped.
func NewTables(enc Encoding, gap Gap) *Tables {
	gap.Start = max(gap.Start, hsyncSlots+backPorchSlots)
	gap.Start = min(gap.Start, SlotsPerLine)
	gap.Length = max(gap.Length, 0)
	gap.Length = min(gap.Length, SlotsPerLine-gap.Start)

	tbl := &Tables{
		enc: enc,
		gap: gap,
	}

	const half = SlotsPerLine / 2

	tbl.longPulse(tbl.LongLong[:half])
	tbl.longPulse(tbl.LongLong[half:])
	tbl.longPulse(tbl.LongShort[:half])
	tbl.shortPulse(tbl.LongShort[half:])
	tbl.shortPulse(tbl.ShortShort[:half])
	tbl.shortPulse(tbl.ShortShort[half:])

	for i := range tbl.Border {
		switch {
		case i < hsyncSlots:
			tbl.Border[i] = enc.Sync
		case i < hsyncSlots+backPorchSlots:
			tbl.Border[i] = enc.Black
		default:
			tbl.Border[i] = enc.Border(0)
		}
	}

	tbl.Active = tbl.Border
	for i := gap.Start; i < gap.Start+gap.Length; i++ {
		tbl.Active[i] = enc.PassThrough
	}

	return tbl
}

// a short sync pulse at the start of the half-line followed by the blanking
// level for the remainder
func (tbl *Tables) shortPulse(p []Code) {
	w := len(p) / 16
	for i := range p {
		if i <= w {
			p[i] = tbl.enc.Sync
		} else {
			p[i] = tbl.enc.Black
		}
	}
}

// a long sync pulse covering all of the half-line except for a short period of
// blanking at the end
func (tbl *Tables) longPulse(p []Code) {
	w := len(p) - len(p)/16 - 1
	for i := range p {
		if i >= w {
			p[i] = tbl.enc.Black
		} else {
			p[i] = tbl.enc.Sync
		}
	}
}

// Encoding returns the encoding used to build the tables.
func (tbl *Tables) Encoding() Encoding {
	return tbl.enc
}

// Gap returns the position of the pass-through gap in the active table.
func (tbl *Tables) Gap() Gap {
	return tbl.gap
}

// SetBorder rewrites every border flagged slot of the border and active tables
// with the colour index. Sync, black and pass-through slots are untouched.
//
// SetBorder is not synchronised with the readers of the tables. Each code is
// written atomically so a reader sees either the previous or the new colour
// but never a partial code.
func (tbl *Tables) SetBorder(c uint8) {
	code := tbl.enc.Border(c)
	for _, t := range []*Table{&tbl.Border, &tbl.Active} {
		for i := range t {
			if tbl.enc.IsBorder(Load(&t[i])) {
				store(&t[i], code)
			}
		}
	}
}
