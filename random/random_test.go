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

package random_test

import (
	"testing"

	"github.com/meru-emu/meru/random"
	"github.com/meru-emu/meru/test"
)

type clock struct {
	frame int
}

func (c *clock) Frame() int {
	return c.frame
}

func TestRewindable(t *testing.T) {
	clk := &clock{}
	a := random.NewRandom(clk, 100)
	b := random.NewRandom(clk, 100)
	a.ZeroSeed = true
	b.ZeroSeed = true

	var first []int
	for i := 0; i < 256; i++ {
		clk.frame = i
		v := a.Rewindable(256)
		test.ExpectEquality(t, v, b.Rewindable(256))
		first = append(first, v)
	}

	// going back in time produces the same numbers
	for i := 255; i >= 0; i-- {
		clk.frame = i
		test.ExpectEquality(t, a.Rewindable(256), first[i])
	}
}

func TestZeroSeed(t *testing.T) {
	clk := &clock{frame: 10}
	a := random.NewRandom(clk, 1)
	b := random.NewRandom(clk, 2)
	a.ZeroSeed = true
	b.ZeroSeed = true

	// different seeds should produce a different sequence
	var same int
	for i := 0; i < 100; i++ {
		clk.frame = i
		if a.Rewindable(1<<30) == b.Rewindable(1<<30) {
			same++
		}
	}
	test.ExpectInequality(t, same, 100)
}

func TestNoRewind(t *testing.T) {
	clk := &clock{}
	a := random.NewRandom(clk, 1)
	for i := 0; i < 100; i++ {
		v := a.NoRewind(10)
		test.ExpectSuccess(t, v >= 0 && v < 10)
	}
}
