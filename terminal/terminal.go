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

package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/cvideo/hardware/framebuffer"
	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/logger"
	"github.com/jetsetilly/cvideo/raster"
)

// Video is the subset of the hardware.Video type used by the terminal.
type Video interface {
	Board() specification.Board
	Framebuffer() *framebuffer.Framebuffer
	SetBorder(c int)
	SetModeContext(ctx context.Context, id specification.ModeID) error
}

// control characters
const (
	ctrlC     = 0x03
	backspace = 0x08
	cr        = 0x0d
	esc       = 0x1b
)

// the glyph drawn at the cursor position
const cursor = '_'

// Greeting is written to the port when the terminal starts.
const Greeting = "cvideo terminal: ESC or Ctrl+C to exit\r\n"

// Mode is the display mode used by the terminal.
const Mode = specification.Mode640

// Terminal draws the bytes read from a Port.
type Terminal struct {
	vid  Video
	port Port
	cols specification.TerminalColours

	// cursor position in pixels
	x int
	y int
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type.
func NewTerminal(vid Video, port Port) *Terminal {
	return &Terminal{
		vid:  vid,
		port: port,
		cols: vid.Board().Terminal,
	}
}

func (trm *Terminal) String() string {
	return fmt.Sprintf("%d, %d", trm.x/raster.GlyphSize, trm.y/raster.GlyphSize)
}

// Cursor returns the position of the cursor in character cells.
func (trm *Terminal) Cursor() (int, int) {
	return trm.x / raster.GlyphSize, trm.y / raster.GlyphSize
}

// Run the terminal until an exit character is received, the port reaches the
// end of its input or the context is done. The terminal changes the display
// mode on entry and restores the default mode on exit. The default mode is
// not restored if the context is done, because the signal may have stopped.
//
// The port is not closed by Run(). The caller should close the port if the
// context is done, otherwise the goroutine reading the port will not end.
func (trm *Terminal) Run(ctx context.Context) error {
	if err := trm.vid.SetModeContext(ctx, Mode); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer func() {
		if err := trm.vid.SetModeContext(ctx, specification.DefaultMode); err != nil {
			logger.Logf(logger.Allow, "terminal", "default mode not restored: %v", err)
		}
	}()

	trm.vid.SetBorder(int(trm.cols.Border))
	raster.Clear(trm.vid.Framebuffer(), trm.cols.Background)
	trm.x = 0
	trm.y = 0

	logger.Logf(logger.Allow, "terminal", "started: %s", trm.vid.Framebuffer())
	if _, err := io.WriteString(trm.port, Greeting); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}

	type read struct {
		b   byte
		err error
	}
	in := make(chan read)
	done := make(chan struct{})
	defer close(done)

	go func() {
		var b [1]byte
		for {
			n, err := trm.port.Read(b[:])
			if n == 0 && err == nil {
				continue
			}
			select {
			case in <- read{b: b[0], err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		trm.drawCursor()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case r := <-in:
			if r.err != nil {
				if errors.Is(r.err, io.EOF) {
					logger.Log(logger.Allow, "terminal", "end of input")
					return nil
				}
				return fmt.Errorf("terminal: %w", r.err)
			}
			if !trm.Put(r.b) {
				logger.Log(logger.Allow, "terminal", "exit")
				return nil
			}
		}
	}
}

// Put draws a single character at the cursor and advances the cursor.
// Returns false if the character is an exit character.
func (trm *Terminal) Put(c byte) bool {
	fb := trm.vid.Framebuffer()

	if c >= ' ' {
		raster.PrintChar(fb, trm.x, trm.y, c, trm.cols.Foreground, trm.cols.Background)
		trm.advance()
		return true
	}

	// remove cursor
	raster.PrintChar(fb, trm.x, trm.y, ' ', trm.cols.Foreground, trm.cols.Background)

	switch c {
	case backspace:
		trm.x = max(trm.x-raster.GlyphSize, 0)
	case cr:
		trm.newline()
	case ctrlC, esc:
		return false
	}

	return true
}

func (trm *Terminal) drawCursor() {
	raster.PrintChar(trm.vid.Framebuffer(), trm.x, trm.y, cursor, trm.cols.Cursor, trm.cols.Background)
}

func (trm *Terminal) advance() {
	trm.x += raster.GlyphSize
	if trm.x+raster.GlyphSize > trm.vid.Framebuffer().Width() {
		trm.newline()
	}
}

func (trm *Terminal) newline() {
	fb := trm.vid.Framebuffer()
	trm.x = 0
	trm.y += raster.GlyphSize
	if trm.y+raster.GlyphSize > fb.Height() {
		trm.y -= raster.GlyphSize
		raster.ScrollUp(fb, trm.cols.Background, raster.GlyphSize)
	}
}
