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

// Package specification contains the fixed geometry of the video signal, the
// display mode presets and the configuration of the supported video boards.
//
// The signal is a 312 line, 50Hz frame in the manner of PAL. Every line is
// 64µs long. The picture occupies 256 lines starting at line 37 and the
// pass-through gap of the active line.
//
// The picture generator is clocked so that any mode's width fits exactly into
// the gap. Changing mode therefore changes the picture clock but never the
// duration of the line.
package specification
