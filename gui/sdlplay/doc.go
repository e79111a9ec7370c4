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

// Package sdlplay implements a window for playing games with an emulator core.
//
// The window presents the frame buffer of the core using an SDL streaming
// texture. The window size is the size of the frame buffer multiplied by an
// integer scale value. Audio is played through the sdlaudio package and user
// input is collected through the sdlinput package.
package sdlplay
