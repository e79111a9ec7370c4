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

// Package random should be used in preference to the math/rand package when a
// random number is required inside an emulator core.
//
// Rewindable() returns numbers based on the frame number of the core. It
// always returns the same number for the same frame and is therefore
// compatible with the rewind store. Playing forward again from a restored
// snapshot produces the same results.
//
// NoRewind() returns numbers regardless of the frame number. It is not
// compatible with the rewind store.
//
// If the same random numbers are required every single time the program is
// run then set ZeroSeed to true. Emulator cores that must be deterministic for
// a given ROM should do this.
package random
