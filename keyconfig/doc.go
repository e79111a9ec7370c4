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

// Package keyconfig defines the logical actions of the front-end and their
// default bindings.
//
// There are three kinds of binding table. HotKeys are checked every frame
// while a game is running. SystemKeys are used to navigate the menu and the
// rewind timeline. Controllers are the emulated controllers of a core and
// there is a different layout for every core.
//
// The Config type collects all the tables and saves them to disk. A section
// of the file that cannot be decoded is replaced by the default table for
// that section. The rest of the file is unaffected.
package keyconfig
