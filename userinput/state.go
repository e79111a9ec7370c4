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

package userinput

import (
	"maps"
	"slices"
)

// Snapshot is the state of the input devices at the end of a tick. A Snapshot
// should not be modified once created.
type Snapshot struct {
	keys        map[KeyCode]bool
	justKeys    map[KeyCode]bool
	buttons     map[GamepadButton]bool
	justButtons map[GamepadButton]bool
	axes        map[GamepadAxis]float32
}

// SnapshotData is used to create a Snapshot with NewSnapshot(). The "Just"
// fields list the inputs that were pressed during the tick. An input can be in
// a "Just" list without being held if it was pressed and released during the
// same tick.
type SnapshotData struct {
	Keys        []KeyCode
	JustKeys    []KeyCode
	Buttons     []GamepadButton
	JustButtons []GamepadButton
	Axes        map[GamepadAxis]float32
}

// NewSnapshot creates a Snapshot from a SnapshotData instance. Used by hosts
// that maintain their own input state and by tests.
func NewSnapshot(d SnapshotData) Snapshot {
	s := Snapshot{
		keys:        make(map[KeyCode]bool),
		justKeys:    make(map[KeyCode]bool),
		buttons:     make(map[GamepadButton]bool),
		justButtons: make(map[GamepadButton]bool),
		axes:        make(map[GamepadAxis]float32),
	}
	for _, k := range d.Keys {
		s.keys[k] = true
	}
	for _, k := range d.JustKeys {
		s.justKeys[k] = true
	}
	for _, b := range d.Buttons {
		s.buttons[b] = true
	}
	for _, b := range d.JustButtons {
		s.justButtons[b] = true
	}
	maps.Copy(s.axes, d.Axes)
	return s
}

// KeyHeld returns true if the key is currently held.
func (s Snapshot) KeyHeld(k KeyCode) bool {
	return s.keys[k]
}

// KeyJustPressed returns true if the key was pressed during the tick.
func (s Snapshot) KeyJustPressed(k KeyCode) bool {
	return s.justKeys[k]
}

// ButtonHeld returns true if the gamepad button is currently held.
func (s Snapshot) ButtonHeld(b GamepadButton) bool {
	return s.buttons[b]
}

// ButtonJustPressed returns true if the gamepad button was pressed during the
// tick.
func (s Snapshot) ButtonJustPressed(b GamepadButton) bool {
	return s.justButtons[b]
}

// Axis returns the value of the gamepad axis. The boolean is false if the
// axis has never reported a value.
func (s Snapshot) Axis(a GamepadAxis) (float32, bool) {
	v, ok := s.axes[a]
	return v, ok
}

// HeldKeys returns the list of held keys in KeyCode order.
func (s Snapshot) HeldKeys() []KeyCode {
	k := make([]KeyCode, 0, len(s.keys))
	for c := range s.keys {
		k = append(k, c)
	}
	slices.Sort(k)
	return k
}

// HeldButtons returns the list of held gamepad buttons, ordered by gamepad and
// then by button.
func (s Snapshot) HeldButtons() []GamepadButton {
	b := make([]GamepadButton, 0, len(s.buttons))
	for c := range s.buttons {
		b = append(b, c)
	}
	slices.SortFunc(b, func(x, y GamepadButton) int {
		if x.less(y) {
			return -1
		}
		if y.less(x) {
			return 1
		}
		return 0
	})
	return b
}

// State accumulates input events between ticks. It is not safe for
// concurrent use. The GUI and the emulation loop are expected to run in the
// same goroutine.
type State struct {
	keys        map[KeyCode]bool
	justKeys    map[KeyCode]bool
	buttons     map[GamepadButton]bool
	justButtons map[GamepadButton]bool
	axes        map[GamepadAxis]float32
}

// NewState is the preferred method of initialisation for the State type.
func NewState() *State {
	st := &State{
		keys:    make(map[KeyCode]bool),
		buttons: make(map[GamepadButton]bool),
		axes:    make(map[GamepadAxis]float32),
	}
	st.clearJust()
	return st
}

func (st *State) clearJust() {
	st.justKeys = make(map[KeyCode]bool)
	st.justButtons = make(map[GamepadButton]bool)
}

// Handle updates the State with the Event. Returns true if the event is a
// request to quit.
func (st *State) Handle(ev Event) bool {
	switch ev := ev.(type) {
	case EventQuit:
		return true

	case EventKeyboard:
		if ev.Down {
			if !st.keys[ev.Key] {
				st.justKeys[ev.Key] = true
			}
			st.keys[ev.Key] = true
		} else {
			delete(st.keys, ev.Key)
		}

	case EventGamepadButton:
		b := GamepadButton{Pad: ev.Pad, Button: ev.Button}
		if ev.Down {
			if !st.buttons[b] {
				st.justButtons[b] = true
			}
			st.buttons[b] = true
		} else {
			delete(st.buttons, b)
		}

	case EventGamepadAxis:
		st.axes[GamepadAxis{Pad: ev.Pad, Axis: ev.Axis}] = ev.Value

	case EventGamepadRemoved:
		for b := range st.buttons {
			if b.Pad == ev.Pad {
				delete(st.buttons, b)
			}
		}
		for a := range st.axes {
			if a.Pad == ev.Pad {
				delete(st.axes, a)
			}
		}
	}

	return false
}

// Tick returns a Snapshot of the current state and begins a new tick. Inputs
// pressed before the call to Tick() are not reported as pressed in the next
// Snapshot.
func (st *State) Tick() Snapshot {
	s := Snapshot{
		keys:        maps.Clone(st.keys),
		justKeys:    st.justKeys,
		buttons:     maps.Clone(st.buttons),
		justButtons: st.justButtons,
		axes:        maps.Clone(st.axes),
	}
	st.clearJust()
	return s
}

// Reset releases every key and button and centres every axis.
func (st *State) Reset() {
	clear(st.keys)
	clear(st.buttons)
	clear(st.axes)
	st.clearJust()
}
