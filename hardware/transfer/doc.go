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

// Package transfer defines the contract of a block transfer (DMA) channel and
// provides Engine, a simulation of the transfer hardware and the two waveform
// generators it feeds.
//
// The video core only ever uses the Channel interface: configure the channel,
// start a transfer of a number of elements from a source, and be notified on
// completion. The completion handler must acknowledge the interrupt before it
// returns. An interrupt that is not acknowledged fires again.
//
// The Engine owns two channels. The sync channel moves waveform codes to the
// sync generator. The picture channel moves pixels to the picture generator
// and is paced by the sync generator: a row is only consumed when the sync
// generator meets the pass-through gap of an active line.
//
// Engine.Scanline() simulates one horizontal period. Completion handlers run
// on the goroutine calling Scanline(), which stands in for interrupt context.
// The picture channel completion, if any, always runs before the sync
// channel completion.
package transfer
