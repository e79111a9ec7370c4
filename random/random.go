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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers that aren't zero seeded
var baseSeed = uint64(time.Now().UnixNano())

// Clock is implemented by any emulator core that can report how many frames it
// has executed. The frame number goes backwards when a rewind snapshot is
// restored.
type Clock interface {
	Frame() int
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clock Clock
	seed  uint64

	// use the seed given to NewRandom() without adding the random base seed.
	// random numbers are then the same every time the program is run
	ZeroSeed bool

	// the sequence for NoRewind()
	seq *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clock Clock, seed uint64) *Random {
	return &Random{
		clock: clock,
		seed:  seed,
		seq:   rand.New(rand.NewPCG(seed, baseSeed)),
	}
}

// Rewindable returns a number in the range 0 to n-1. The number depends only
// on the seed and on the current frame so a restored snapshot will see the
// same numbers as the first time through. Successive calls during the same
// frame return the same value.
func (rnd *Random) Rewindable(n int) int {
	s := rnd.seed
	if !rnd.ZeroSeed {
		s += baseSeed
	}
	return rand.New(rand.NewPCG(s, uint64(rnd.clock.Frame()))).IntN(n)
}

// NoRewind returns a number in the range 0 to n-1 from a sequence that is
// unaffected by the emulation time.
func (rnd *Random) NoRewind(n int) int {
	return rnd.seq.IntN(n)
}
