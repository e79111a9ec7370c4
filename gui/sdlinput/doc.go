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

// Package sdlinput translates SDL keyboard and game controller events into the
// events of the userinput package.
//
// Keyboard keys are identified by scancode. Game controller buttons are mapped
// to the compass point names used by the userinput package. The analogue
// triggers are reported both as axes and as buttons.
package sdlinput
