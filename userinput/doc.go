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

// Package userinput handles input from the physical devices that the user of
// the emulator is using to control the emulated console and the front-end.
//
// It can be thought of as a translation layer between the GUI implementation
// and the keybind package. The GUI creates Event values and hands them to a
// State instance. Once per tick the State is converted into an immutable
// Snapshot, which records the keys and buttons currently held, the keys and
// buttons pressed since the previous tick, and the value of every analog axis
// that has reported a value.
//
// The vocabulary of the package (KeyCode, GamepadButtonType, GamepadAxisType)
// is independent of the GUI. The gui/sdlinput package translates SDL events
// into this vocabulary.
package userinput
