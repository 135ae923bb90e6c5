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

package script_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/cvideo/hardware"
	"github.com/jetsetilly/cvideo/hardware/framebuffer"
	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/hardware/transfer"
	"github.com/jetsetilly/cvideo/script"
	"github.com/jetsetilly/cvideo/test"
)

type video struct {
	board  specification.Board
	fb     *framebuffer.Framebuffer
	border int
	frames uint32
}

func newVideo() *video {
	v := &video{board: specification.Colour}
	_ = v.SetModeContext(context.Background(), specification.DefaultMode)
	return v
}

func (v *video) Board() specification.Board { return v.board }
func (v *video) Framebuffer() *framebuffer.Framebuffer { return v.fb }
func (v *video) SetBorder(c int) { v.border = c }
func (v *video) Frames() uint32 { return v.frames }

func (v *video) SetModeContext(ctx context.Context, id specification.ModeID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m, _ := specification.GetMode(id)
	v.fb, _ = framebuffer.New(m.Width, m.Height)
	return nil
}

func (v *video) WaitForFrameContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v.frames++
	return nil
}

func TestDrawing(t *testing.T) {
	v := newVideo()
	h := script.NewHost(v)
	defer h.Close()

	err := h.RunString(context.Background(), `
		video.cls(video.colour.blue)
		video.plot(1, 1, video.colour.red)
		video.line(0, 10, 9, 10, video.colour.green)
		video.circle(100, 100, 10, video.colour.white, true)
		video.triangle(50, 50, 60, 50, 50, 60, video.colour.yellow, true)
		video.print(0, 200, "Hi", video.colour.white, video.colour.black)
		video.border(video.colour.cyan)
		video.wait(3)
		assert(video.frames() == 3)
		assert(video.width() == 256)
		assert(video.board == "colour")
	`)
	test.DemandSuccess(t, err)

	c := v.board.Colours
	test.ExpectEquality(t, v.fb.Row(0)[0], c.Blue)
	test.ExpectEquality(t, v.fb.Row(1)[1], c.Red)
	test.ExpectEquality(t, v.fb.Row(10)[9], c.Green)
	test.ExpectEquality(t, v.fb.Row(100)[100], c.White)
	test.ExpectEquality(t, v.fb.Row(51)[51], c.Yellow)
	test.ExpectEquality(t, v.fb.Row(200)[0], c.Black)
	test.ExpectEquality(t, v.border, int(c.Cyan))
	test.ExpectEquality(t, v.frames, uint32(3))
}

func TestMode(t *testing.T) {
	v := newVideo()
	h := script.NewHost(v)
	defer h.Close()

	err := h.RunString(context.Background(), `
		video.mode("640")
		assert(video.width() == 640)
		assert(video.height() == 256)
	`)
	test.ExpectSuccess(t, err)

	err = h.RunString(context.Background(), `video.mode("1024")`)
	test.ExpectFailure(t, err)
}

func TestModeWithSignal(t *testing.T) {
	board := specification.Monochrome
	eng := transfer.NewEngine(board.Encoding)
	vid, err := hardware.NewVideo(board, eng)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, vid.Initialise())
	eng.Limiter().Active.Store(false)

	ctx, cancel := context.WithCancel(context.Background())
	signal := make(chan error, 1)
	go func() {
		signal <- eng.Run(ctx)
	}()

	h := script.NewHost(vid)
	defer h.Close()

	err = h.RunString(ctx, `
		video.mode("320")
		assert(video.width() == 320)
		video.border(video.colour.white)
	`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, vid.Mode().ID, specification.Mode320)
	test.ExpectEquality(t, vid.Border(), board.Colours.White)

	// once the signal has stopped a mode change fails rather than waiting
	// for a frame that never arrives
	cancel()
	test.ExpectSuccess(t, errors.Is(<-signal, context.Canceled))

	done := make(chan error, 1)
	go func() {
		done <- h.RunString(ctx, `video.mode("640")`)
	}()
	select {
	case err := <-done:
		test.ExpectFailure(t, err)
	case <-time.After(time.Second):
		t.Fatalf("mode change did not return after the signal stopped")
	}
	test.ExpectEquality(t, vid.Mode().ID, specification.Mode320)
}

func TestErrors(t *testing.T) {
	v := newVideo()
	h := script.NewHost(v)
	defer h.Close()

	// colour out of range
	err := h.RunString(context.Background(), `video.plot(0, 0, 256)`)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, v.fb.Row(0)[0], uint8(0))

	// syntax error
	err = h.RunString(context.Background(), `video.plot(`)
	test.ExpectFailure(t, err)

	err = h.RunString(context.Background(), `video.demo("pong")`)
	test.ExpectFailure(t, err)

	// a cancelled context stops a script waiting for a frame
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = h.RunString(ctx, `while true do video.wait() end`)
	test.ExpectFailure(t, err)
}

func TestDemoAndFile(t *testing.T) {
	v := newVideo()
	h := script.NewHost(v)
	defer h.Close()

	fn := filepath.Join(t.TempDir(), "test.lua")
	src := `
		video.demo("splash", 2)
		video.log("splash done")
	`
	test.DemandSuccess(t, os.WriteFile(fn, []byte(src), 0o600))

	err := h.RunFile(context.Background(), fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v.frames, uint32(2))
	test.ExpectEquality(t, v.fb.Row(0)[0], v.board.Colours.White)

	err = h.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "missing.lua"))
}
