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

// Package sdlplay is a simple SDL window for the television. It implements the
// television.PixelRenderer interface and the limiter.Display interface.
//
// All SDL functions are called from the main thread through the Service()
// function. The PixelRenderer functions are called from the goroutine running
// the transfer engine. Completed frames are handed from one to the other in
// NewFrame().
package sdlplay

import (
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/jetsetilly/cvideo/gui"
	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/logger"
	"github.com/jetsetilly/cvideo/version"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of bytes per pixel in the texture
const pixelDepth = 4

// limits of the scaling value
const (
	minScale = 1.0
	maxScale = 4.0
)

// SdlPlay is a simple SDL implementation of the television.PixelRenderer
// interface.
type SdlPlay struct {
	board specification.Board

	// sdl stuff. only accessed from the main thread
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the refresh rate of the display the window was opened on
	refreshRate float32

	// the dimensions of the texture
	texWidth  int32
	texHeight int32

	// the amount of scaling applied to each pixel
	scale float32

	// feature requests are forwarded to the main thread
	featureReq chan featureRequest
	featureErr chan error

	// events are sent on this channel. only accessed from the main thread
	events chan gui.Event

	// pixels is written to by SetPixel() and is only accessed by the
	// television goroutine, along with its dimensions
	pixels []byte
	width  int
	height int

	// critical section shared between the television goroutine and the main
	// thread
	crit struct {
		sync.Mutex

		width  int
		height int

		// a copy of pixels made at the end of every frame
		frame []byte

		// the frame or the dimensions have changed since the last call to
		// Service()
		dirty   bool
		resized bool
	}
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(board specification.Board, scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		board:      board,
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	mode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	scr.refreshRate = float32(mode.RefreshRate)
	logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", mode.RefreshRate)

	// SDL window - window size is set when the texture is created
	scr.window, err = sdl.CreateWindow(version.String(),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		0, 0,
		sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		_ = scr.window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	setupService()

	// the texture is created on the first call to Service() after the
	// television has called Resize()
	scr.scale = clampScale(scale)

	return scr, nil
}

func (scr *SdlPlay) String() string {
	return fmt.Sprintf("sdl: %s board, scale %.1f", scr.board.ID, scr.scale)
}

// Destroy implements the gui.Creator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy(output io.Writer) {
	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil {
			fmt.Fprintln(output, err)
		}
	}
	if err := scr.renderer.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	if err := scr.window.Destroy(); err != nil {
		fmt.Fprintln(output, err)
	}
	sdl.Quit()
}

// DisplayRefreshRate implements the limiter.Display interface.
func (scr *SdlPlay) DisplayRefreshRate() (float32, bool) {
	return scr.refreshRate, scr.refreshRate > 0
}

// Resize implements the television.PixelRenderer interface.
func (scr *SdlPlay) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("sdl: illegal dimensions: %dx%d", width, height)
	}

	scr.width = width
	scr.height = height
	scr.pixels = make([]byte, width*height*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.crit.width = width
	scr.crit.height = height
	scr.crit.frame = make([]byte, len(scr.pixels))
	scr.crit.resized = true
	scr.crit.dirty = false

	return nil
}

// NewFrame implements the television.PixelRenderer interface.
func (scr *SdlPlay) NewFrame(_ int) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	copy(scr.crit.frame, scr.pixels)
	scr.crit.dirty = true
	return nil
}

// NewScanline implements the television.PixelRenderer interface.
func (scr *SdlPlay) NewScanline(_ int) error {
	return nil
}

// SetPixel implements the television.PixelRenderer interface.
func (scr *SdlPlay) SetPixel(x, y int, col color.RGBA) error {
	if x < 0 || x >= scr.width || y < 0 || y >= scr.height {
		return nil
	}
	i := (y*scr.width + x) * pixelDepth
	scr.pixels[i] = col.R
	scr.pixels[i+1] = col.G
	scr.pixels[i+2] = col.B
	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (scr *SdlPlay) EndRendering() error {
	return nil
}

func clampScale(scale float32) float32 {
	return min(max(scale, minScale), maxScale)
}
