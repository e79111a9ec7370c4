// This file is part of Meru.
//
// Meru is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Meru is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Meru.  If not, see <https://www.gnu.org/licenses/>.

package paths_test

import (
	"os"
	"regexp"
	"testing"

	"github.com/meru-emu/meru/paths"
	"github.com/meru-emu/meru/test"
)

func TestResourcePath(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".meru", 0o700))

	pth, err := paths.ResourcePath("keys", "keys.yaml")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".meru/keys/keys.yaml")

	// sub-directory has been created
	fi, err := os.Stat(".meru/keys")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())

	pth, err = paths.ResourcePath("", "preferences.yaml")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".meru/preferences.yaml")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".meru")
}

func TestUniqueFilename(t *testing.T) {
	re := regexp.MustCompile(`^keys_gba_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("keys", "gba")))

	re = regexp.MustCompile(`^rewind_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("rewind", "  ")))
}
