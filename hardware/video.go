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

package hardware

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/cvideo/hardware/dispatch"
	"github.com/jetsetilly/cvideo/hardware/feeder"
	"github.com/jetsetilly/cvideo/hardware/framebuffer"
	"github.com/jetsetilly/cvideo/hardware/pacing"
	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/hardware/transfer"
	"github.com/jetsetilly/cvideo/hardware/waveform"
	"github.com/jetsetilly/cvideo/logger"
)

// Hardware is the interface to the transfer channels and generator clocks.
type Hardware interface {
	SyncChannel() transfer.Channel[waveform.Code]
	PictureChannel() transfer.Channel[uint8]
	SetSyncClock(divisor float64)
	SetPictureClock(divisor float64)
}

// Sentinel errors returned by Initialise().
var (
	ErrAlreadyInitialised = errors.New("video: already initialised")
)

// Video is the main container for the components of the video generator.
type Video struct {
	board specification.Board
	hw    Hardware

	handle framebuffer.Handle
	tables *waveform.Tables

	dispatch *dispatch.Engine
	feeder   *feeder.Feeder

	initialised atomic.Bool
	mode        atomic.Value // specification.Mode
	border      atomic.Uint32

	// a mode change waiting for the next frame boundary. only one change
	// can be pending at a time and modeLock serialises callers of
	// SetModeContext()
	change   atomic.Pointer[modeChange]
	modeLock sync.Mutex
}

// modeChange is staged by the foreground and installed by frameBoundary().
// the replaced framebuffer is sent on the done channel, which must have a
// buffer of one
type modeChange struct {
	mode specification.Mode
	fb   *framebuffer.Framebuffer
	done chan *framebuffer.Framebuffer
}

// NewVideo is the preferred method of initialisation for the Video type.
// Initialise() must be called before the generator produces a signal.
func NewVideo(board specification.Board, hw Hardware) (*Video, error) {
	if hw == nil {
		return nil, fmt.Errorf("video: no hardware")
	}
	vid := &Video{
		board: board,
		hw:    hw,
	}
	mode, _ := specification.GetMode(specification.DefaultMode)
	vid.mode.Store(mode)
	return vid, nil
}

func (vid *Video) String() string {
	return fmt.Sprintf("%s board, %s", vid.board.ID, vid.Mode())
}

// Initialise allocates the framebuffer for the default mode, builds the
// waveform tables, configures the transfer channels and arms both interrupt
// handlers. The signal is generated from this point on.
//
// Returns ErrAlreadyInitialised if called more than once.
func (vid *Video) Initialise() error {
	if vid.initialised.Load() {
		return ErrAlreadyInitialised
	}

	mode, _ := specification.GetMode(specification.DefaultMode)
	fb, err := framebuffer.New(mode.Width, mode.Height)
	if err != nil {
		return fmt.Errorf("video: %w", err)
	}

	vid.tables = waveform.NewTables(vid.board.Encoding, waveform.DefaultGap)
	vid.tables.SetBorder(vid.board.Colours.Black)
	vid.border.Store(uint32(vid.board.Colours.Black))

	fb.Clear(vid.board.Colours.Black)
	vid.handle.Stage(fb)
	vid.handle.Swap()
	vid.mode.Store(mode)

	syn := vid.hw.SyncChannel()
	syn.Configure(transfer.Config{
		Sink:    "sync generator",
		Trigger: "sync clock",
		Count:   waveform.SlotsPerLine,
	})
	vid.hw.SetSyncClock(specification.SyncClockDivisor)

	pic := vid.hw.PictureChannel()
	pic.Configure(transfer.Config{
		Sink:    "picture generator",
		Trigger: "pass-through",
		Count:   mode.Width,
	})
	vid.hw.SetPictureClock(mode.ClockDivisor)

	vid.feeder = feeder.NewFeeder(pic, &vid.handle)
	vid.dispatch = dispatch.NewEngine(syn, vid.tables)
	vid.dispatch.OnFrame(vid.frameBoundary)

	// the picture feeder is armed first so that the first row is waiting when
	// the sync generator reaches the first active line
	vid.feeder.Arm()
	vid.dispatch.Arm()

	vid.initialised.Store(true)
	logger.Logf(logger.Allow, "video", "initialised: %s", vid)

	return nil
}

// SetMode changes the display mode. The function blocks until the new
// framebuffer has been installed at the next frame boundary, so the
// foreground must redraw the picture afterwards. Unknown mode IDs select the
// default mode.
//
// The signal must be running or SetMode() will never return. Use
// SetModeContext() if the signal may be stopped while waiting.
func (vid *Video) SetMode(id specification.ModeID) {
	_ = vid.SetModeContext(context.Background(), id)
}

// SetModeContext is the same as SetMode() except that it returns early if
// the context is done. In that case the mode is not changed and the context's
// error is returned.
func (vid *Video) SetModeContext(ctx context.Context, id specification.ModeID) error {
	if !vid.initialised.Load() {
		logger.Logf(logger.Allow, "video", "mode change before initialisation: %d", id)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	mode, ok := specification.GetMode(id)
	if !ok {
		logger.Logf(logger.Allow, "video", "unknown mode (%d): using %s", id, mode)
	}

	fb, err := framebuffer.New(mode.Width, mode.Height)
	if err != nil {
		logger.Logf(logger.Allow, "video", "cannot allocate framebuffer: %v", err)
		panic(fmt.Sprintf("video: cannot allocate framebuffer for %s: %v", mode, err))
	}
	fb.Clear(vid.board.Colours.Black)

	vid.modeLock.Lock()
	defer vid.modeLock.Unlock()

	chg := &modeChange{
		mode: mode,
		fb:   fb,
		done: make(chan *framebuffer.Framebuffer, 1),
	}
	vid.change.Store(chg)

	var old *framebuffer.Framebuffer
	select {
	case old = <-chg.done:
	case <-ctx.Done():
		// withdraw the change. if the change has already been taken by the
		// frame boundary then it will be completed shortly
		if vid.change.CompareAndSwap(chg, nil) {
			logger.Logf(logger.Allow, "video", "mode change abandoned: %s", mode)
			return ctx.Err()
		}
		old = <-chg.done
	}

	if old != nil {
		logger.Logf(logger.Allow, "video", "released %s framebuffer", old)
	}
	logger.Logf(logger.Allow, "video", "mode: %s", mode)

	return nil
}

// frameBoundary is called by the dispatch engine in interrupt context after
// the last scanline of a frame has been dispatched. The first active line is
// still some way off so the picture channel is not in use.
func (vid *Video) frameBoundary() {
	chg := vid.change.Swap(nil)
	if chg == nil {
		if !vid.feeder.InStep() {
			vid.feeder.Resync()
		}
		return
	}

	vid.handle.Stage(chg.fb)
	old := vid.handle.Swap()
	vid.mode.Store(chg.mode)

	vid.hw.SetPictureClock(chg.mode.ClockDivisor)
	vid.hw.PictureChannel().SetCount(chg.mode.Width)

	// any row waiting in the picture channel belongs to the old framebuffer
	vid.feeder.Resync()

	chg.done <- old
}

// SetBorder changes the colour of the border. Colours that are out of range
// for the board are ignored.
func (vid *Video) SetBorder(c int) {
	if !vid.board.ValidColour(c) {
		logger.Logf(logger.Allow, "video", "border colour out of range for %s board: %d", vid.board.ID, c)
		return
	}
	if vid.tables == nil {
		logger.Log(logger.Allow, "video", "border change before initialisation")
		return
	}
	vid.tables.SetBorder(uint8(c))
	vid.border.Store(uint32(c))
}

// WaitForFrame blocks until the start of the next frame.
func (vid *Video) WaitForFrame() {
	pacing.WaitForFrame(vid.Frames, pacing.DefaultInterval)
}

// WaitForFrameContext is the same as WaitForFrame() except that it returns
// early if the context is done.
func (vid *Video) WaitForFrameContext(ctx context.Context) error {
	return pacing.WaitForFrameContext(ctx, vid.Frames, pacing.DefaultInterval)
}

// Framebuffer returns the current framebuffer. The framebuffer changes after
// a call to SetMode(). Returns nil before Initialise().
func (vid *Video) Framebuffer() *framebuffer.Framebuffer {
	return vid.handle.Current()
}

// Mode returns the current display mode.
func (vid *Video) Mode() specification.Mode {
	return vid.mode.Load().(specification.Mode)
}

// Border returns the current border colour.
func (vid *Video) Border() uint8 {
	return uint8(vid.border.Load())
}

// Board returns the board the video is generated for.
func (vid *Video) Board() specification.Board {
	return vid.board
}

// Tables returns the waveform tables. Returns nil before Initialise().
func (vid *Video) Tables() *waveform.Tables {
	return vid.tables
}

// Frames returns the number of frames generated since initialisation.
func (vid *Video) Frames() uint32 {
	if vid.dispatch == nil {
		return 0
	}
	return vid.dispatch.Frames()
}

// VLine returns the scanline that will be dispatched next.
func (vid *Video) VLine() int {
	if vid.dispatch == nil {
		return 0
	}
	return vid.dispatch.VLine()
}

// Stats returns the dispatch statistics.
func (vid *Video) Stats() dispatch.Stats {
	if vid.dispatch == nil {
		return dispatch.Stats{}
	}
	return vid.dispatch.Stats()
}

// BLine returns the framebuffer row that will be handed to the picture
// generator next.
func (vid *Video) BLine() int {
	if vid.feeder == nil {
		return 0
	}
	return vid.feeder.BLine()
}

// Resyncs returns the number of times the picture feeder has been put back in
// step with the scanline at a frame boundary. Every mode change causes one.
func (vid *Video) Resyncs() uint32 {
	if vid.feeder == nil {
		return 0
	}
	return vid.feeder.Resyncs()
}
