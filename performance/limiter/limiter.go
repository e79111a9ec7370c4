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

package limiter

import (
	"sync/atomic"
	"time"
)

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	// the duration of one frame in nanoseconds. accessed atomically because
	// SetLimit() can be called while the ticker is running
	secondsPerFrame atomic.Int64

	tick chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
// A framesPerSecond value of zero or less is treated as one.
func NewFPSLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{
		tick: make(chan bool),
	}
	lim.SetLimit(framesPerSecond)

	// run ticker concurrently. the sleep period is adjusted to account for
	// the time taken by the receiver
	go func() {
		adjusted := time.Duration(lim.secondsPerFrame.Load())
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjusted)
			nt := time.Now()
			spf := time.Duration(lim.secondsPerFrame.Load())
			adjusted -= nt.Sub(t) - spf
			adjusted = min(max(adjusted, 0), spf)
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) {
	framesPerSecond = max(framesPerSecond, 1)
	lim.secondsPerFrame.Store(int64(time.Second / time.Duration(framesPerSecond)))
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false if it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}
