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

// Package paths prepares paths to Meru resources.
//
// The ResourcePath() function prepends the resource with the appropriate
// configuration directory. For example, the following returns the path to the
// controller bindings file:
//
//	pth, err := paths.ResourcePath("", "keys.yaml")
//
// If a directory named ".meru" exists in the current working directory then
// that is used as the base path. Otherwise the "meru" directory inside
// os.UserConfigDir() is used. On a modern Linux system the example above
// returns:
//
//	/home/user/.config/meru/keys.yaml
//
// Any missing directories in the path are created. The file itself is not.
package paths
