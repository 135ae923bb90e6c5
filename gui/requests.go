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

package gui

// FeatureReq is used to request the setting of a gui attribute.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests. argument must be of the type specified or
// else the interface{} type conversion will fail and the request will return
// an error.
const (
	// the channel on which the gui sends events. the channel should be
	// buffered. events are dropped if the channel is full
	ReqSetEventChan FeatureReq = "ReqSetEventChan" // chan gui.Event

	// show or hide the window
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// the scaling of the television image in the window
	ReqSetScale FeatureReq = "ReqSetScale" // float32

	// save the most recent frame to a file. the argument is the filename
	// prefix; the empty string selects a unique filename
	ReqScreenshot FeatureReq = "ReqScreenshot" // string
)
