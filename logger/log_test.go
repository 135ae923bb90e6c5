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

package logger_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/cvideo/logger"
	"github.com/jetsetilly/cvideo/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatFolding(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "engine", "spurious interrupt")
	log.Log(logger.Allow, "engine", "spurious interrupt")
	log.Log(logger.Allow, "engine", "spurious interrupt")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "engine: spurious interrupt (repeat x3)\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	for i := range 25 {
		log.Logf(logger.Allow, "line", "%d", i)
	}
	log.BorrowLog(func(e []logger.Entry) {
		test.ExpectEquality(t, len(e), 10)
		test.ExpectEquality(t, e[0].Detail, "15")
	})

	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "line: 24\n")
}

type prohibitLogging struct {
	allow bool
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibitLogging{allow: false}, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(prohibitLogging{allow: true}, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail\n")
}

func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("test error")

	log.Log(logger.Allow, "tag", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")

	log.Clear()
	w.Reset()

	log.Logf(logger.Allow, "tag", "wrapped: %v", fmt.Errorf("video: %w", err))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: wrapped: video: test error\n")
}

type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestStringerLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", stringerTest{})
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: stringer test\n")

	log.Clear()
	w.Reset()

	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 100\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	log.Log(logger.Allow, "before", "echo")

	tw := &test.CompareWriter{}
	log.SetEcho(tw, true)
	test.ExpectEquality(t, tw.String(), "before: echo\n")

	log.Log(logger.Allow, "after", "echo")
	test.ExpectEquality(t, tw.String(), "before: echo\nafter: echo\n")

	log.SetEcho(nil, false)
	log.Log(logger.Allow, "off", "echo")
	test.ExpectEquality(t, tw.String(), "before: echo\nafter: echo\n")
}

func TestColorizer(t *testing.T) {
	tw := &test.CompareWriter{}
	c := logger.NewColorizer(tw)
	n, err := c.Write([]byte("no separator\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 13)
	test.ExpectEquality(t, tw.String(), "no separator\n")
}
