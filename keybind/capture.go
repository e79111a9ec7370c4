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

package keybind

import (
	"slices"

	"github.com/meru-emu/meru/userinput"
)

// CaptureState is returned by Capture.Feed().
type CaptureState int

// List of valid CaptureState values.
const (
	// no input has been seen yet
	CaptureWaiting CaptureState = iota

	// one or more inputs are held and are being accumulated into a Chord
	CaptureAccumulating

	// an accumulated input has been released and the Chord is complete
	CaptureCommitted
)

func (st CaptureState) String() string {
	switch st {
	case CaptureWaiting:
		return "waiting"
	case CaptureAccumulating:
		return "accumulating"
	case CaptureCommitted:
		return "committed"
	}
	return "unknown"
}

// Capture records a new Chord from the live input state. Keys and gamepad
// buttons are accumulated for as long as they are held. The Chord is
// committed on the first release of any accumulated input.
//
// Axes are not captured.
//
// A Capture that never sees a press stays in the CaptureWaiting state. The
// caller can abandon a Capture at any time simply by forgetting about it.
type Capture struct {
	accumulated Chord
	committed   bool
}

// NewCapture is the preferred method of initialisation for the Capture type.
func NewCapture() *Capture {
	return &Capture{}
}

// pressed returns the currently held inputs in a deterministic order. Keys
// come before gamepad buttons.
func pressed(s userinput.Snapshot) Chord {
	var c Chord
	for _, k := range s.HeldKeys() {
		c = append(c, NewKeyCode(k))
	}
	for _, b := range s.HeldButtons() {
		c = append(c, NewGamepadButton(b))
	}
	return c
}

// Feed the Capture with the Snapshot for the current tick. Feeding a
// committed Capture has no effect.
func (cp *Capture) Feed(s userinput.Snapshot) CaptureState {
	if cp.committed {
		return CaptureCommitted
	}

	current := pressed(s)

	if len(cp.accumulated) == 0 {
		if len(current) == 0 {
			return CaptureWaiting
		}
		cp.accumulated = current
		return CaptureAccumulating
	}

	// commit on the first release of any accumulated input
	for _, k := range cp.accumulated {
		if !slices.Contains(current, k) {
			cp.committed = true
			return CaptureCommitted
		}
	}

	// grow the chord with newly pressed inputs, in the order they were first
	// seen
	for _, k := range current {
		if !slices.Contains(cp.accumulated, k) {
			cp.accumulated = append(cp.accumulated, k)
		}
	}

	return CaptureAccumulating
}

// State returns the current state of the Capture without feeding it.
func (cp *Capture) State() CaptureState {
	if cp.committed {
		return CaptureCommitted
	}
	if len(cp.accumulated) == 0 {
		return CaptureWaiting
	}
	return CaptureAccumulating
}

// Pending returns the Chord accumulated so far. Used to show the user what
// has been pressed before the Capture is committed.
func (cp *Capture) Pending() Chord {
	return slices.Clone(cp.accumulated)
}

// Result returns the committed Chord. The boolean is false if the Capture has
// not been committed.
func (cp *Capture) Result() (Chord, bool) {
	if !cp.committed {
		return nil, false
	}
	return slices.Clone(cp.accumulated), true
}
