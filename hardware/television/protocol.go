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

package television

import "image/color"

// PixelRenderer implementations display, or otherwise work with, the picture
// rebuilt by the television. For example the SDL window and the frame digest.
type PixelRenderer interface {
	// Resize is called when the renderer is added to the television and
	// whenever the dimensions of the picture change
	Resize(width, height int) error

	// NewFrame and NewScanline are called at the start of the frame/scanline
	NewFrame(frameNum int) error
	NewScanline(y int) error

	// SetPixel is called for every pixel of every visible scanline, including
	// the pixels of the border
	SetPixel(x, y int, col color.RGBA) error

	// some renderers may need to conclude and/or dispose of resources gently.
	// the PixelRenderer should be considered unusable after EndRendering()
	// has been called
	EndRendering() error
}

// FrameTrigger implementations listen for NewFrame events. FrameTrigger is a
// subset of PixelRenderer.
type FrameTrigger interface {
	NewFrame(frameNum int) error
}
