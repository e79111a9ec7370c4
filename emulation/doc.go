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

// Package emulation defines the contract between the front-end and the
// emulator cores. The cores themselves are external to the front-end. A core
// makes itself available by calling Register() from its init() function.
//
// The package also defines the broad State of the emulation and the Events
// that are sent to the GUI.
package emulation
