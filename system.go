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

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jetsetilly/cvideo/hardware"
	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/hardware/television"
	"github.com/jetsetilly/cvideo/hardware/transfer"
	"github.com/jetsetilly/cvideo/logger"
)

// system bundles the video hardware, the transfer engine that drives it and the
// television that receives the signal.
type system struct {
	board specification.Board
	eng   *transfer.Engine
	vid   *hardware.Video
	tv    *television.Television
}

func newSystem(board specification.Board) (*system, error) {
	sys := &system{
		board: board,
		eng:   transfer.NewEngine(board.Encoding),
		tv:    television.NewTelevision(board),
	}

	var err error
	sys.vid, err = hardware.NewVideo(board, sys.eng)
	if err != nil {
		return nil, err
	}
	sys.eng.SetReceiver(sys.tv)

	return sys, nil
}

func (sys *system) String() string {
	return fmt.Sprintf("%s board, %s", sys.board.ID, sys.vid.Mode())
}

// initialise the video hardware with the preferred border colour. the limiter
// is set according to the fpscap preference.
func (sys *system) initialise(p *preferences) error {
	err := sys.vid.Initialise()
	if err != nil {
		return err
	}
	sys.vid.SetBorder(p.Border.Get().(int))
	sys.eng.Limiter().Active.Store(p.FPSCap.Get().(bool))
	return nil
}

// start the transfer engine in a new goroutine. the result of the engine is
// sent on the returned channel when the context is done. the preferred mode is
// selected once the engine is running.
func (sys *system) start(ctx context.Context, mode specification.Mode) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- sys.eng.Run(ctx)
	}()

	if mode.ID != sys.vid.Mode().ID {
		if err := sys.vid.SetModeContext(ctx, mode.ID); err != nil {
			logger.Logf(logger.Allow, "cvideo", "mode not selected: %v", err)
		}
	}

	return done
}

// end the television and log the engine statistics
func (sys *system) end() {
	if err := sys.tv.End(); err != nil {
		logger.Log(logger.Allow, "cvideo", err)
	}
	s := sys.vid.Stats()
	logger.Logf(logger.Allow, "cvideo", "%d frames, %d lines, %d idle, %d spurious",
		sys.vid.Frames(), sys.eng.Lines(), sys.eng.Idle(), sys.eng.Spurious())
	logger.Logf(logger.Allow, "cvideo", "dispatch statistics: %v", s)
}

// canceled filters out the error caused by a cancelled context
func canceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
