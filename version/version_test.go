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

package version_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/cvideo/test"
	"github.com/jetsetilly/cvideo/version"
)

func TestVersion(t *testing.T) {
	v, r, release := version.Version()

	// test binaries are never built with a version number
	test.ExpectFailure(t, release)
	test.ExpectInequality(t, v, "")
	test.ExpectInequality(t, r, "")
	test.ExpectSuccess(t, strings.HasPrefix(version.String(), version.ApplicationName))
}
