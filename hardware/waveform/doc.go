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

// Package waveform builds the tables of generator codes that describe the
// shape of every non-picture scanline.
//
// A scanline of 64µs is divided into 32 slots of 2µs. Each slot of a Table
// holds one Code. A Code is either a sync level, the black (blanking) level, a
// colour level flagged as border, or the pass-through sentinel. A
// pass-through slot cedes the output to the picture generator for the
// duration of the slot.
//
// There are five tables. Three vertical sync tables, made from two half-lines
// each with either a long or a short sync pulse; the border table; and the
// active table which is the border table with a contiguous pass-through gap.
//
// The numeric value of the codes are calibration constants of the board and
// are described by the Encoding type.
package waveform
