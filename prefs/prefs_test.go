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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/cvideo/prefs"
	"github.com/jetsetilly/cvideo/test"
)

func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1.0))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))
	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "foo :: bar\n")

	v.SetMaxLen(2)
	test.ExpectEquality(t, v.String(), "ba")
	test.ExpectSuccess(t, v.Set("qux"))
	test.ExpectEquality(t, v.String(), "qu")
}

func TestIntAndFloat(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var n prefs.Int
	var f prefs.Float
	test.ExpectSuccess(t, dsk.Add("video.mode", &n))
	test.ExpectSuccess(t, dsk.Add("video.fpscap", &f))

	test.ExpectSuccess(t, n.Set("320"))
	test.ExpectFailure(t, n.Set("wide"))
	test.ExpectEquality(t, n.Get().(int), 320)

	test.ExpectSuccess(t, f.Set(50))
	test.ExpectEquality(t, f.Get().(float64), 50.0)

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "video.fpscap :: 50.000\nvideo.mode :: 320\n")
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var mode prefs.Int
	test.ExpectSuccess(t, dsk.Add("video.mode", &mode))

	// loading a missing file is reported with NoPrefsFile
	err = dsk.Load()
	test.ExpectSuccess(t, errors.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, mode.Set(640))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, mode.Reset())
	test.ExpectEquality(t, mode.Get().(int), 0)

	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, mode.Get().(int), 640)
}

func TestSharedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var a prefs.String
	var b prefs.Int
	test.ExpectSuccess(t, dskA.Add("video.board", &a))
	test.ExpectSuccess(t, dskB.Add("sdl.scale", &b))

	test.ExpectSuccess(t, a.Set("colour"))
	test.ExpectSuccess(t, b.Set(3))

	test.DemandSuccess(t, dskA.Save())
	test.DemandSuccess(t, dskB.Save())

	// the entry from the first disk survives the save of the second
	cmpPrefsFile(t, fn, "sdl.scale :: 3\nvideo.board :: colour\n")
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var post int
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, post, 10)

	// pre hook prevents the value from being stored
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectEquality(t, post, 10)
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	prefs.PushCommandLineStack("video.board::colour")
	defer prefs.PopCommandLineStack()

	var board prefs.String
	test.ExpectSuccess(t, dsk.Add("video.board", &board))
	test.ExpectEquality(t, board.String(), "colour")

	// duplicate and illegal keys
	test.ExpectFailure(t, dsk.Add("video.board", &board))
	test.ExpectFailure(t, dsk.Add("video board", &board))
}

func TestCommandLineOverrideLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var mode prefs.String
	test.DemandSuccess(t, dsk.Add("video.mode", &mode))
	test.DemandSuccess(t, mode.Set("640"))
	test.DemandSuccess(t, dsk.Save())

	// a value from the command line is not replaced by the value on disk
	prefs.PushCommandLineStack("video.mode::320")
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dsk.Add("video.mode", &mode))
	prefs.PopCommandLineStack()
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, mode.String(), "320")
}
