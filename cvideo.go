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
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/cvideo/demos"
	"github.com/jetsetilly/cvideo/digest"
	"github.com/jetsetilly/cvideo/gui"
	"github.com/jetsetilly/cvideo/gui/sdlplay"
	"github.com/jetsetilly/cvideo/hardware/specification"
	"github.com/jetsetilly/cvideo/logger"
	"github.com/jetsetilly/cvideo/modalflag"
	"github.com/jetsetilly/cvideo/performance"
	"github.com/jetsetilly/cvideo/prefs"
	"github.com/jetsetilly/cvideo/script"
	"github.com/jetsetilly/cvideo/statsview"
	"github.com/jetsetilly/cvideo/terminal"
	"github.com/jetsetilly/cvideo/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative
	// handler is more appropriate.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (gui.Creator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan gui.Creator
	creationError chan error
}

var st = newStyles()

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (gui.Creator, error)),
		creation:      make(chan gui.Creator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var g gui.Creator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if g != nil {
				g.Destroy(os.Stderr)
				g = nil
			}

			c, err := creator()
			if err != nil {
				sync.creationError <- err
			} else {
				g = c
				sync.creation <- g
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if g != nil {
					g.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if g != nil {
				g.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "TERMINAL", "SCRIPT", "DIGEST", "PERFORMANCE", "VERSION")
	md.AdditionalHelp(fmt.Sprintf("demos: %s\nstills: %s",
		strings.Join(demos.Names(), ", "), strings.Join(demos.StillNames(), ", ")))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Println(st.err.Render(fmt.Sprintf("* error: %v", err)))
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "TERMINAL":
		err = runTerminal(md, sync)

	case "SCRIPT":
		err = runScript(md, sync)

	case "DIGEST":
		err = runDigest(md)

	case "PERFORMANCE":
		err = runPerformance(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Println(st.err.Render(fmt.Sprintf("* error in %s mode: %s", md.String(), err)))
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to all modes that use the video hardware
type commonFlags struct {
	board     *string
	mode      *string
	scale     *float64
	prefs     *string
	saveprefs *bool
	log       *bool
	statsview *bool
	memviz    *string
}

func addCommonFlags(md *modalflag.Modes) *commonFlags {
	f := &commonFlags{
		board:     md.AddString("board", "", "video board: mono, colour"),
		mode:      md.AddString("mode", "", "display mode: 256, 320, 640"),
		scale:     md.AddFloat64("scale", 0.0, "window scaling"),
		prefs:     md.AddString("prefs", "", "preferences for this run (eg. \"video.border::3\")"),
		saveprefs: md.AddBool("saveprefs", false, "save preferences on exit"),
		log:       md.AddBool("log", false, "echo log to stdout"),
		memviz:    md.AddString("memviz", "", "write a graph of the video hardware to the named file on exit"),
	}
	if statsview.Available() {
		f.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return f
}

// setup the logger and the statsview according to the flags and return the
// preferences, with the flags applied.
func (f *commonFlags) setup() (*preferences, error) {
	if *f.log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), false)
	} else {
		logger.SetEcho(nil, false)
	}

	if f.statsview != nil && *f.statsview {
		statsview.Launch(os.Stdout)
	}

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
	}
	p, err := newPreferences("")
	if *f.prefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Println(st.warning.Render(fmt.Sprintf("! unused preferences: %s", unused)))
		}
	}
	if err != nil {
		return nil, err
	}

	if *f.board != "" {
		if err := p.Board.Set(*f.board); err != nil {
			return nil, err
		}
	}
	if *f.mode != "" {
		if err := p.Mode.Set(*f.mode); err != nil {
			return nil, err
		}
	}
	if *f.scale > 0.0 {
		if err := p.Scale.Set(*f.scale); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// finish writes the memviz graph if requested and saves the preferences if
// requested
func (f *commonFlags) finish(sys *system, p *preferences) error {
	if *f.memviz != "" {
		w, err := os.Create(*f.memviz)
		if err != nil {
			return err
		}
		memviz.Map(w, sys.vid)
		if err := w.Close(); err != nil {
			return err
		}
		fmt.Println(st.field("memviz", *f.memviz))
	}

	if *f.saveprefs {
		return p.Save()
	}
	return nil
}

// describe prints the state of the system to stdout
func describe(md *modalflag.Modes, sys *system, p *preferences) {
	fmt.Println(st.mode.Render(fmt.Sprintf(" %s ", md.String())))
	fmt.Println(st.field("board", sys.board.ID))
	fmt.Println(st.field("mode", p.mode()))
	fmt.Printf("%s\n", st.field("fpscap", p.FPSCap.Get()))
}

// withGUI creates the SDL window and runs the video hardware until the program
// function returns or the window is closed. the program function runs in its
// own goroutine and must return when the context is done.
func withGUI(sync *mainSync, sys *system, p *preferences, program func(ctx context.Context) error) error {
	board := sys.board
	scale := float32(p.Scale.Get().(float64))
	sync.creator <- func() (gui.Creator, error) {
		return sdlplay.NewSdlPlay(board, scale)
	}

	var scr *sdlplay.SdlPlay
	select {
	case g := <-sync.creation:
		scr = g.(*sdlplay.SdlPlay)
	case err := <-sync.creationError:
		return err
	}

	sys.tv.AddPixelRenderer(scr)
	sys.eng.Limiter().SetDisplay(scr)

	events := make(chan gui.Event, 16)
	if err := scr.SetFeature(gui.ReqSetEventChan, events); err != nil {
		return err
	}
	if err := scr.SetFeature(gui.ReqSetVisibility, true); err != nil {
		return err
	}

	// the mode handles ctrl-c so that the window and the hardware can be
	// shutdown in an orderly fashion
	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	engine := sys.start(ctx, p.mode())

	done := make(chan error, 1)
	go func() {
		done <- program(ctx)
	}()

	var err error
	for running := true; running; {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case gui.EventQuit:
				cancel()
			case gui.EventKeyboard:
				logger.Logf(logger.Allow, "cvideo", "key %s (down=%v)", ev.Key, ev.Down)
			}

		case err = <-done:
			running = false
		}
	}

	cancel()
	if e := canceled(<-engine); e != nil && err == nil {
		err = e
	}
	sys.end()

	return canceled(err)
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	f := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := f.setup()
	if err != nil {
		return err
	}

	// the demos to run in sequence. all demos by default
	list := demos.List
	if len(md.RemainingArgs()) > 0 {
		list = list[:0:0]
		for _, n := range md.RemainingArgs() {
			d, ok := demos.Get(n)
			if !ok {
				return fmt.Errorf("unknown demo: %s", n)
			}
			list = append(list, d)
		}
	}

	sys, err := newSystem(pref.board())
	if err != nil {
		return err
	}
	if err := sys.initialise(pref); err != nil {
		return err
	}
	describe(md, sys, pref)

	err = withGUI(sync, sys, pref, func(ctx context.Context) error {
		return demos.Sequence(ctx, sys.vid, list...)
	})
	if err != nil {
		return err
	}

	return f.finish(sys, pref)
}

func runTerminal(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	f := addCommonFlags(md)
	serial := md.AddString("serial", "", "serial device to use instead of the tty")
	baud := md.AddInt("baud", 0, "baud rate of the serial device")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := f.setup()
	if err != nil {
		return err
	}
	if *baud > 0 {
		if err := pref.Baud.Set(*baud); err != nil {
			return err
		}
	}

	var port terminal.Port
	if *serial == "" {
		port, err = terminal.OpenTTY(terminal.DefaultTTY)
	} else {
		port, err = terminal.OpenUART(*serial, uint(pref.Baud.Get().(int)))
	}
	if err != nil {
		return err
	}
	defer port.Close()

	sys, err := newSystem(pref.board())
	if err != nil {
		return err
	}
	if err := sys.initialise(pref); err != nil {
		return err
	}
	describe(md, sys, pref)
	if *serial != "" {
		fmt.Println(st.field("serial", port))
	}

	trm := terminal.NewTerminal(sys.vid, port)
	err = withGUI(sync, sys, pref, trm.Run)
	if err != nil {
		return err
	}

	return f.finish(sys, pref)
}

func runScript(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	f := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one lua script required for %s mode", md)
	}
	filename := md.GetArg(0)

	pref, err := f.setup()
	if err != nil {
		return err
	}

	sys, err := newSystem(pref.board())
	if err != nil {
		return err
	}
	if err := sys.initialise(pref); err != nil {
		return err
	}
	describe(md, sys, pref)
	fmt.Println(st.field("script", filename))

	host := script.NewHost(sys.vid)
	defer host.Close()

	err = withGUI(sync, sys, pref, func(ctx context.Context) error {
		return host.RunFile(ctx, filename)
	})
	if err != nil {
		return err
	}

	return f.finish(sys, pref)
}

// runDigest draws a still and runs the hardware for a number of frames without
// a window. the digest of the frames is printed on completion. the digest is
// repeatable because the framebuffer does not change after the hardware has
// started.
func runDigest(md *modalflag.Modes) error {
	md.NewMode()
	f := addCommonFlags(md)
	frames := md.AddInt("frames", 10, "number of frames to run")
	still := md.AddString("still", "mandelbrot", fmt.Sprintf("still to draw: %s", strings.Join(demos.StillNames(), ", ")))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *frames <= 0 {
		return fmt.Errorf("number of frames must be positive")
	}

	draw, ok := demos.GetStill(*still)
	if !ok {
		return fmt.Errorf("unknown still: %s", *still)
	}

	pref, err := f.setup()
	if err != nil {
		return err
	}

	dig, sys, err := digestFrames(pref, draw, *frames)
	if err != nil {
		return err
	}
	describe(md, sys, pref)
	fmt.Println(st.field("still", *still))
	fmt.Println(st.field("frames", dig.Frames()))
	fmt.Println(st.field("digest", dig.Hash()))

	return f.finish(sys, pref)
}

// digestFrames runs the system for the number of frames, stepping the engine
// directly. the mode is selected before initialisation so that no frame is
// waited for.
func digestFrames(pref *preferences, draw demos.Still, frames int) (*digest.Video, *system, error) {
	sys, err := newSystem(pref.board())
	if err != nil {
		return nil, nil, err
	}
	dig := digest.NewVideo(sys.tv)

	if err := sys.initialise(pref); err != nil {
		return nil, nil, err
	}
	sys.eng.Limiter().Active.Store(false)

	mode := pref.mode()
	if mode.ID != specification.DefaultMode {
		ctx, cancel := context.WithCancel(context.Background())
		engine := sys.start(ctx, mode)
		cancel()
		<-engine
	}

	draw(sys.vid.Framebuffer(), sys.board)

	// the television synchronises on the first frame. the digest begins on
	// the frame after that
	sys.eng.Frame()
	dig.ResetDigest()
	for range frames {
		sys.eng.Frame()
	}
	sys.end()

	return dig, sys, nil
}

func runPerformance(md *modalflag.Modes) error {
	md.NewMode()
	f := addCommonFlags(md)
	uncapped := md.AddBool("uncapped", true, "run the hardware without the frame limiter")
	duration := md.AddDuration("duration", 5*time.Second, "measurement period")
	profile := md.AddString("profile", "none", "run through the profiler: cpu, mem, trace, all")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	pref, err := f.setup()
	if err != nil {
		return err
	}

	fmt.Println(st.mode.Render(fmt.Sprintf(" %s ", md.String())))
	fmt.Println(st.field("board", pref.board().ID))
	fmt.Println(st.field("profile", prf))

	return performance.Check(os.Stdout, prf, pref.board(), *uncapped, performance.DefaultLeadtime, *duration)
}
