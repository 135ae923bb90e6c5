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

package sdlplay

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"

	"github.com/jetsetilly/cvideo/logger"
	"github.com/jetsetilly/cvideo/paths"
)

// screenshot saves a copy of the most recent frame. the file is written in a
// separate goroutine
func (scr *SdlPlay) screenshot(prefix string) {
	scr.crit.Lock()
	rgba := image.NewRGBA(image.Rect(0, 0, scr.crit.width, scr.crit.height))
	copy(rgba.Pix, scr.crit.frame)
	scr.crit.Unlock()

	var path string
	if prefix == "" {
		path = paths.UniqueFilename("screenshot", scr.board.ID)
	} else {
		path = fmt.Sprintf("%s_%s", prefix, scr.board.ID)
	}
	path = fmt.Sprintf("%s.jpg", path)

	go saveJPEG(rgba, path)
}

// saveJPEG writes the image to the specified path.
func saveJPEG(rgba *image.RGBA, path string) {
	f, err := os.Create(path)
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		return
	}

	err = jpeg.Encode(f, rgba, &jpeg.Options{Quality: 100})
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		_ = f.Close()
		return
	}

	err = f.Close()
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		return
	}

	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)
}
