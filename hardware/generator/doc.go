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

// Package generator simulates the two waveform generators of the video board.
//
// The Sync generator consumes one waveform.Code per slot of the scanline. A
// pass-through code cedes the output to the Picture generator, which clocks
// out the pixels of the row most recently delivered by the picture transfer
// channel.
//
// Neither generator produces voltages. The output of both is reported to a
// Receiver as levels and colour indexes. The television package implements
// Receiver.
package generator
