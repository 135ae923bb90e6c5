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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and sub
// modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Where with the flag package you would do this:
//
//	board := flag.String("board", "mono", "video board")
//	flag.Parse()
//
// With the modalflag package you do this:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	board := md.AddString("board", "mono", "video board")
//	p, err := md.Parse()
//
// The real purpose of the package is to handle sub-modes. The cvideo command
// line has four modes (RUN, TERMINAL, SCRIPT and DIGEST) and each mode has its
// own set of flags:
//
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TERMINAL", "SCRIPT", "DIGEST")
//	p, err := md.Parse()
//
//	switch md.Mode() {
//	case "TERMINAL":
//		md.NewMode()
//		serial := md.AddString("serial", "", "serial device")
//		p, err = md.Parse()
//	}
//
// The first sub-mode in the list is the default. If the first argument is not
// one of the listed sub-modes the default is selected and the argument is
// left for the next call to Parse(). Sub-mode comparisons are case
// insensitive.
//
// Parse() returns a ParseResult. ParseHelp means that help was requested and
// has already been written to the Output field.
package modalflag
