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

// Package raster contains the drawing primitives. The primitives are the only
// writers of the framebuffer and know nothing of the timing of the signal.
//
// Every function takes a Surface, which is satisfied by the framebuffer type
// in the hardware/framebuffer package. Geometry that lies outside the surface
// is clipped or dropped. None of the functions return an error.
//
// Drawing is not synchronised with the picture feeder. Pixels written while a
// row is being transferred may appear on the next frame.
package raster
