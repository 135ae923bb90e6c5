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

// Package prefs holds the typed preference values used throughout cvideo and
// the Disk type which persists them.
//
// Preference values are declared by the package that uses them and added to a
// Disk with a key. For example, the video preferences are added like this:
//
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("video.board", &p.Board)
//	err = dsk.Add("video.mode", &p.Mode)
//	err = dsk.Load()
//
// The prefs file is a plain text file. Each line is a key/value pair
// separated by the " :: " sequence. Keys not added to a Disk are preserved
// when that Disk is saved so many Disk instances can share the same file.
//
// Values can be overridden from the command line with the command line
// stack. See PushCommandLineStack().
package prefs
