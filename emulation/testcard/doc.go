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

// Package testcard implements a deterministic diagnostic core. It is useful
// for testing the front-end without a real emulator core and is the core used
// by the REWINDSIM mode.
//
// Importing the package registers the core with the emulation package and its
// controller layout with the keyconfig package.
//
// The ROM image can be any data. The size of the ROM image determines the size
// of work RAM, and therefore the size of the save state.
package testcard
