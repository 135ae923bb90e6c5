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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image/color"

	"github.com/jetsetilly/cvideo/hardware/television"
)

// the number of bytes per pixel
const pixelDepth = 3

// Video is an implementation of the television.PixelRenderer interface. It
// generates a SHA-1 value of the picture every frame. The digest of one frame
// is chained into the digest of the next.
//
// SHA-1 is fine for this application because this is not a cryptographic
// task.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte

	width  int
	height int

	// the number of frames that have contributed to the digest
	frames int

	// whether any pixels have been set since the last frame
	drawn bool
}

// NewVideo is the preferred method of initialisation for the Video type. The
// new digest is registered as a PixelRenderer with the television.
func NewVideo(tv *television.Television) *Video {
	dig := &Video{}
	tv.AddPixelRenderer(dig)
	return dig
}

func (dig *Video) String() string {
	return fmt.Sprintf("%s (%d frames)", dig.Hash(), dig.frames)
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames that have contributed to the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// Resize implements the television.PixelRenderer interface.
func (dig *Video) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("digest: illegal dimensions: %dx%d", width, height)
	}
	dig.width = width
	dig.height = height

	// room for the previous digest value at the head of the pixels
	dig.pixels = make([]byte, len(dig.digest)+width*height*pixelDepth)

	return nil
}

// NewFrame implements the television.PixelRenderer interface. The digest of
// the frame that has just finished is computed. Frames without any pixels do
// not contribute to the digest.
func (dig *Video) NewFrame(_ int) error {
	if !dig.drawn {
		return nil
	}
	dig.drawn = false

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return fmt.Errorf("digest: error during new frame")
	}
	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++

	return nil
}

// NewScanline implements the television.PixelRenderer interface.
func (dig *Video) NewScanline(_ int) error {
	return nil
}

// SetPixel implements the television.PixelRenderer interface.
func (dig *Video) SetPixel(x, y int, col color.RGBA) error {
	if x < 0 || x >= dig.width || y < 0 || y >= dig.height {
		return nil
	}

	// preserve the first few bytes for a chained fingerprint
	i := len(dig.digest) + (y*dig.width+x)*pixelDepth
	dig.pixels[i] = col.R
	dig.pixels[i+1] = col.G
	dig.pixels[i+2] = col.B
	dig.drawn = true

	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
