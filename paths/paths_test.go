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

package paths_test

import (
	"os"
	"regexp"
	"testing"

	"github.com/jetsetilly/cvideo/paths"
	"github.com/jetsetilly/cvideo/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(".cvideo", 0o700))

	test.ExpectEquality(t, paths.ResourcePath("screenshots", "cube"), ".cvideo/screenshots/cube")
	test.ExpectEquality(t, paths.ResourcePath("screenshots", ""), ".cvideo/screenshots")
	test.ExpectEquality(t, paths.ResourcePath("", "preferences"), ".cvideo/preferences")
	test.ExpectEquality(t, paths.ResourcePath(), ".cvideo")
}

func TestUniqueFilename(t *testing.T) {
	re := regexp.MustCompile(`^screenshot_cube_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("screenshot", "cube")))

	re = regexp.MustCompile(`^screenshot_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("screenshot", "  ")))
}
