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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that, assuming a functioning clock, should
// not collide with any existing file. The function does not check this.
//
// Used to generate filenames for exported key bindings and for rewind
// simulation reports. Format of returned string is:
//
//	prepend_core_YYYYMMDD_HHMMSS
//
// If the core string is empty the returned string is of the format:
//
//	prepend_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, core string) string {
	return uniqueFilename(prepend, core, time.Now())
}

func uniqueFilename(prepend string, core string, n time.Time) string {
	timestamp := n.Format("20060102_150405")
	if c := strings.TrimSpace(core); c != "" {
		return fmt.Sprintf("%s_%s_%s", prepend, c, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
