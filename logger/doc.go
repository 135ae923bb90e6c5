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

// Package logger is the central log for cvideo. Entries are made with the
// package level Log() and Logf() functions, tagged with the name of the
// component making the entry.
//
//	logger.Log(logger.Allow, "video", "mode 320 selected")
//
// Consecutive entries with the same tag and detail are folded into a single
// entry with a repeat count. The number of entries kept by the central logger
// is bounded.
//
// Logging must never be performed from inside an interrupt handler of the
// hardware package. Handlers record events in counters and the foreground
// reports them.
package logger
