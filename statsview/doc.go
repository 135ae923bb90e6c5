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

// Package statsview offers a HTTP server running locally with runtime
// statistics of the program. The server is only available when the program is
// built with the statsview build tag:
//
//	go build -tags statsview
//
// Underlying functionality is provided by "github.com/go-echarts/statsview".
// After launch, graphical statistics will be viewable at:
//
//	localhost:12600/debug/statsview
//
// Standard Go pprof statistics are available at:
//
//	localhost:12600/debug/pprof/
package statsview
