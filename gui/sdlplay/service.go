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
	"unsafe"

	"github.com/jetsetilly/cvideo/gui"
	"github.com/jetsetilly/cvideo/logger"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and we have
	// no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service implements the gui.Creator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	select {
	case req := <-scr.featureReq:
		scr.serviceFeatureRequests(req)
	default:
	}

	// wait briefly for the first event so that the main thread doesn't spin
	// when the queue is empty. the remaining events are polled
	for ev := sdl.WaitEventTimeout(1); ev != nil; ev = sdl.PollEvent() {
		scr.serviceEvent(ev)
	}

	if err := scr.render(); err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}
}

func (scr *SdlPlay) serviceEvent(ev sdl.Event) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		scr.sendEvent(gui.EventQuit{})

	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return
		}

		mod := gui.KeyModNone
		if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
			sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
			mod = gui.KeyModAlt
		} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
			sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
			mod = gui.KeyModShift
		} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
			sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
			mod = gui.KeyModCtrl
		}

		down := ev.Type == sdl.KEYDOWN
		if down {
			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				scr.sendEvent(gui.EventQuit{})
				return
			case sdl.K_F12:
				scr.screenshot("")
				return
			case sdl.K_EQUALS:
				scr.setScaling(scr.scale + 0.5)
				return
			case sdl.K_MINUS:
				scr.setScaling(scr.scale - 0.5)
				return
			}
		}

		scr.sendEvent(gui.EventKeyboard{
			Key:  sdl.GetKeyName(ev.Keysym.Sym),
			Mod:  mod,
			Down: down,
		})
	}
}

// events are dropped rather than blocking the main thread
func (scr *SdlPlay) sendEvent(ev gui.Event) {
	if scr.events == nil {
		return
	}
	select {
	case scr.events <- ev:
	default:
		logger.Logf(logger.Allow, "sdl", "dropped event: %T", ev)
	}
}

// render the most recent frame. the texture is recreated if the television has
// changed the dimensions of the picture
func (scr *SdlPlay) render() error {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	if scr.crit.resized {
		scr.crit.resized = false

		if scr.texture != nil {
			if err := scr.texture.Destroy(); err != nil {
				return err
			}
			scr.texture = nil
		}

		var err error
		scr.texWidth = int32(scr.crit.width)
		scr.texHeight = int32(scr.crit.height)
		scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
			int(sdl.TEXTUREACCESS_STREAMING),
			scr.texWidth, scr.texHeight)
		if err != nil {
			return err
		}

		scr.setScaling(scr.scale)
		logger.Logf(logger.Allow, "sdl", "texture resized to %dx%d", scr.texWidth, scr.texHeight)
	}

	if !scr.crit.dirty || scr.texture == nil {
		return nil
	}
	scr.crit.dirty = false

	err := scr.texture.Update(nil, unsafe.Pointer(&scr.crit.frame[0]), int(scr.texWidth*pixelDepth))
	if err != nil {
		return err
	}

	err = scr.renderer.SetDrawColor(0, 0, 0, 255)
	if err != nil {
		return err
	}
	err = scr.renderer.Clear()
	if err != nil {
		return err
	}
	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}
	scr.renderer.Present()

	return nil
}

// setScaling changes the window size. the texture is stretched to fill the
// window
func (scr *SdlPlay) setScaling(scale float32) {
	scr.scale = clampScale(scale)
	if scr.texWidth == 0 || scr.texHeight == 0 {
		return
	}
	w := int32(float32(scr.texWidth) * scr.scale)
	h := int32(float32(scr.texHeight) * scr.scale)
	scr.window.SetSize(w, h)
}
