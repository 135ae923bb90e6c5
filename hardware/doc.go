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

// Package hardware is the public surface of the composite video generator.
//
// A Video instance ties together the components in the sub-packages: the
// waveform tables for the board, the framebuffer and its handle, the scanline
// dispatch engine, the picture feeder and frame pacing. The transfer channels
// that carry the waveform and the picture data are provided by an
// implementation of the Hardware interface, which in practice is the simulated
// DMA engine in the transfer package.
//
// Once initialised, the foreground program draws into the framebuffer
// returned by Video.Framebuffer() with the raster package, and synchronises
// with the signal by calling Video.WaitForFrame().
package hardware
