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

	"github.com/jetsetilly/cvideo/gui"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SetFeature implements the gui.GUI interface.
//
// MUST NOT be called from the #mainthread
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	scr.featureReq <- featureRequest{request: request, args: args}
	return <-scr.featureErr
}

// featureRequests have been handed over to the featureReq channel. we service
// any requests on that channel here.
func (scr *SdlPlay) serviceFeatureRequests(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			scr.featureErr <- fmt.Errorf("sdl: %s: %v", request.request, r)
		}
	}()

	var err error

	switch request.request {
	case gui.ReqSetEventChan:
		scr.events = request.args[0].(chan gui.Event)

	case gui.ReqSetVisibility:
		if request.args[0].(bool) {
			scr.window.Show()
		} else {
			scr.window.Hide()
		}

	case gui.ReqSetScale:
		scr.setScaling(request.args[0].(float32))

	case gui.ReqScreenshot:
		scr.screenshot(request.args[0].(string))

	default:
		err = fmt.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	scr.featureErr <- err
}
