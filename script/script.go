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

// Package script runs Lua programs against the video generator. The
// programs have access to the drawing primitives, the border and mode
// controls, frame pacing and the demos through the global "video" table.
//
// A short example:
//
//	video.cls(video.colour.black)
//	for i = 0, 100 do
//		video.wait()
//		video.circle(128, 128, i, video.colour.white, false)
//	end
package script

import (
	"context"
	"fmt"

	"github.com/jetsetilly/cvideo/demos"
	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/logger"
	"github.com/jetsetilly/cvideo/raster"
	lua "github.com/yuin/gopher-lua"
)

// Video is the subset of the hardware.Video type used by scripts.
type Video interface {
	demos.Video
	Frames() uint32
}

// Host is the Lua environment for scripts.
type Host struct {
	vid   Video
	state *lua.LState

	// the context of the script currently running
	ctx context.Context
}

// NewHost is the preferred method of initialisation for the Host type. The
// Host must be closed with Close() when it is no longer required.
func NewHost(vid Video) *Host {
	h := &Host{
		vid:   vid,
		state: lua.NewState(),
		ctx:   context.Background(),
	}
	h.register()
	return h
}

// Close the Lua environment.
func (h *Host) Close() {
	h.state.Close()
}

// RunString runs the Lua program in the string.
func (h *Host) RunString(ctx context.Context, src string) error {
	h.prepare(ctx)
	if err := h.state.DoString(src); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// RunFile runs the Lua program in the named file.
func (h *Host) RunFile(ctx context.Context, filename string) error {
	h.prepare(ctx)
	if err := h.state.DoFile(filename); err != nil {
		return fmt.Errorf("script: %s: %w", filename, err)
	}
	logger.Logf(logger.Allow, "script", "finished %s", filename)
	return nil
}

func (h *Host) prepare(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	h.ctx = ctx
	h.state.SetContext(ctx)
}

func (h *Host) register() {
	tbl := h.state.NewTable()

	h.state.SetFuncs(tbl, map[string]lua.LGFunction{
		"cls":      h.cls,
		"plot":     h.plot,
		"line":     h.line,
		"hline":    h.hline,
		"rect":     h.rect,
		"circle":   h.circle,
		"triangle": h.triangle,
		"polygon":  h.polygon,
		"print":    h.print,
		"scroll":   h.scroll,
		"border":   h.border,
		"mode":     h.mode,
		"wait":     h.wait,
		"width":    h.width,
		"height":   h.height,
		"frames":   h.frames,
		"demo":     h.demo,
		"log":      h.log,
	})

	c := h.vid.Board().Colours
	cols := h.state.NewTable()
	for name, v := range map[string]uint8{
		"black":   c.Black,
		"grey":    c.Grey,
		"white":   c.White,
		"red":     c.Red,
		"green":   c.Green,
		"blue":    c.Blue,
		"yellow":  c.Yellow,
		"magenta": c.Magenta,
		"cyan":    c.Cyan,
	} {
		h.state.SetField(cols, name, lua.LNumber(v))
	}
	h.state.SetField(tbl, "colour", cols)
	h.state.SetField(tbl, "board", lua.LString(h.vid.Board().ID))

	h.state.SetGlobal("video", tbl)
}

// colour checks that argument n is a valid colour for the board
func (h *Host) colour(n int) uint8 {
	c := h.state.CheckInt(n)
	if !h.vid.Board().ValidColour(c) {
		h.state.ArgError(n, fmt.Sprintf("colour out of range for %s board", h.vid.Board().ID))
	}
	return uint8(c)
}

func (h *Host) point(n int) raster.Point {
	return raster.Pt(h.state.CheckInt(n), h.state.CheckInt(n+1))
}

func (h *Host) cls(L *lua.LState) int {
	raster.Clear(h.vid.Framebuffer(), h.colour(1))
	return 0
}

func (h *Host) plot(L *lua.LState) int {
	raster.Plot(h.vid.Framebuffer(), L.CheckInt(1), L.CheckInt(2), h.colour(3))
	return 0
}

func (h *Host) line(L *lua.LState) int {
	raster.Line(h.vid.Framebuffer(), L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), h.colour(5))
	return 0
}

func (h *Host) hline(L *lua.LState) int {
	raster.HLine(h.vid.Framebuffer(), L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), h.colour(4))
	return 0
}

func (h *Host) rect(L *lua.LState) int {
	raster.Rect(h.vid.Framebuffer(), L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4), h.colour(5), L.OptBool(6, false))
	return 0
}

func (h *Host) circle(L *lua.LState) int {
	raster.Circle(h.vid.Framebuffer(), L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), h.colour(4), L.OptBool(5, false))
	return 0
}

func (h *Host) triangle(L *lua.LState) int {
	raster.Triangle(h.vid.Framebuffer(), h.point(1), h.point(3), h.point(5), h.colour(7), L.OptBool(8, false))
	return 0
}

func (h *Host) polygon(L *lua.LState) int {
	p := [4]raster.Point{h.point(1), h.point(3), h.point(5), h.point(7)}
	raster.Polygon(h.vid.Framebuffer(), p, h.colour(9), L.OptBool(10, false))
	return 0
}

func (h *Host) print(L *lua.LState) int {
	raster.PrintString(h.vid.Framebuffer(), L.CheckInt(1), L.CheckInt(2), L.CheckString(3), h.colour(4), h.colour(5))
	return 0
}

func (h *Host) scroll(L *lua.LState) int {
	raster.ScrollUp(h.vid.Framebuffer(), h.colour(1), L.OptInt(2, raster.GlyphSize))
	return 0
}

func (h *Host) border(L *lua.LState) int {
	h.vid.SetBorder(int(h.colour(1)))
	return 0
}

func (h *Host) mode(L *lua.LState) int {
	m, ok := specification.SearchMode(L.CheckString(1))
	if !ok {
		L.ArgError(1, "unknown mode")
	}
	if err := h.vid.SetModeContext(h.ctx, m.ID); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (h *Host) wait(L *lua.LState) int {
	frames := L.OptInt(1, 1)
	for range frames {
		if err := h.vid.WaitForFrameContext(h.ctx); err != nil {
			L.RaiseError("%v", err)
		}
	}
	return 0
}

func (h *Host) width(L *lua.LState) int {
	L.Push(lua.LNumber(h.vid.Framebuffer().Width()))
	return 1
}

func (h *Host) height(L *lua.LState) int {
	L.Push(lua.LNumber(h.vid.Framebuffer().Height()))
	return 1
}

func (h *Host) frames(L *lua.LState) int {
	L.Push(lua.LNumber(h.vid.Frames()))
	return 1
}

func (h *Host) demo(L *lua.LState) int {
	d, ok := demos.Get(L.CheckString(1))
	if !ok {
		L.ArgError(1, "unknown demo")
	}
	d.Frames = L.OptInt(2, d.Frames)
	if err := d.Run(h.ctx, h.vid); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (h *Host) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}
